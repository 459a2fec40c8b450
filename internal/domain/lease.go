package domain

// Lease binds one tenant to one unit for a date range at a given rent.
type Lease struct {
	ID              int64   `json:"id"`
	UnitID          int64   `json:"unitId"`
	TenantID        int64   `json:"tenantId"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	RentAmount      float64 `json:"rentAmount"`
	SecurityDeposit float64 `json:"securityDeposit"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// LeaseInput holds the data needed to create a lease.
type LeaseInput struct {
	UnitID          int64   `json:"unitId"`
	TenantID        int64   `json:"tenantId"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	RentAmount      float64 `json:"rentAmount"`
	SecurityDeposit float64 `json:"securityDeposit"`
	Status          string  `json:"status"`
}

// Validate reports field-level problems with the input.
func (in *LeaseInput) Validate() map[string]string {
	problems := map[string]string{}
	if in.UnitID <= 0 {
		problems["unitId"] = "unitId is required"
	}
	if in.TenantID <= 0 {
		problems["tenantId"] = "tenantId is required"
	}
	if in.StartDate == "" {
		problems["startDate"] = "startDate is required"
	}
	if in.EndDate == "" {
		problems["endDate"] = "endDate is required"
	}
	if in.RentAmount <= 0 {
		problems["rentAmount"] = "rentAmount must be positive"
	}
	return problems
}

// LeaseUpdate is a partial patch for a lease.
type LeaseUpdate struct {
	StartDate       *string  `json:"startDate"`
	EndDate         *string  `json:"endDate"`
	RentAmount      *float64 `json:"rentAmount"`
	SecurityDeposit *float64 `json:"securityDeposit"`
	Status          *string  `json:"status"`
}

// Payment is a payment made against a lease.
type Payment struct {
	ID          int64   `json:"id"`
	LeaseID     int64   `json:"leaseId"`
	Amount      float64 `json:"amount"`
	PaymentDate string  `json:"paymentDate"`
	PaymentType string  `json:"paymentType"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// PaymentInput holds the data needed to create a payment.
type PaymentInput struct {
	LeaseID     int64   `json:"leaseId"`
	Amount      float64 `json:"amount"`
	PaymentDate string  `json:"paymentDate"`
	PaymentType string  `json:"paymentType"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes"`
}

// Validate reports field-level problems with the input.
func (in *PaymentInput) Validate() map[string]string {
	problems := map[string]string{}
	if in.LeaseID <= 0 {
		problems["leaseId"] = "leaseId is required"
	}
	if in.Amount <= 0 {
		problems["amount"] = "amount must be positive"
	}
	if in.PaymentDate == "" {
		problems["paymentDate"] = "paymentDate is required"
	}
	return problems
}

// PaymentUpdate is a partial patch for a payment.
type PaymentUpdate struct {
	Amount      *float64 `json:"amount"`
	PaymentDate *string  `json:"paymentDate"`
	PaymentType *string  `json:"paymentType"`
	Status      *string  `json:"status"`
	Notes       *string  `json:"notes"`
}
