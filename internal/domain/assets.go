package domain

// InsurancePolicy is a property-scoped insurance record. It has no
// relationship to the lease/tenant graph beyond the property reference.
type InsurancePolicy struct {
	ID             int64   `json:"id"`
	PropertyID     int64   `json:"propertyId"`
	Provider       string  `json:"provider"`
	PolicyNumber   string  `json:"policyNumber"`
	CoverageAmount float64 `json:"coverageAmount"`
	Premium        float64 `json:"premium"`
	StartDate      *string `json:"startDate"`
	EndDate        *string `json:"endDate"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// InsurancePolicyInput holds the data needed to create a policy.
type InsurancePolicyInput struct {
	PropertyID     int64   `json:"propertyId"`
	Provider       string  `json:"provider"`
	PolicyNumber   string  `json:"policyNumber"`
	CoverageAmount float64 `json:"coverageAmount"`
	Premium        float64 `json:"premium"`
	StartDate      *string `json:"startDate"`
	EndDate        *string `json:"endDate"`
}

// Validate reports field-level problems with the input.
func (in *InsurancePolicyInput) Validate() map[string]string {
	problems := map[string]string{}
	if in.PropertyID <= 0 {
		problems["propertyId"] = "propertyId is required"
	}
	if in.Provider == "" {
		problems["provider"] = "provider is required"
	}
	if in.PolicyNumber == "" {
		problems["policyNumber"] = "policyNumber is required"
	}
	return problems
}

// InsurancePolicyUpdate is a partial patch for a policy.
type InsurancePolicyUpdate struct {
	Provider       *string  `json:"provider"`
	PolicyNumber   *string  `json:"policyNumber"`
	CoverageAmount *float64 `json:"coverageAmount"`
	Premium        *float64 `json:"premium"`
	StartDate      *string  `json:"startDate"`
	EndDate        *string  `json:"endDate"`
}

// Mortgage is a property-scoped financing record.
type Mortgage struct {
	ID             int64   `json:"id"`
	PropertyID     int64   `json:"propertyId"`
	Lender         string  `json:"lender"`
	Principal      float64 `json:"principal"`
	InterestRate   float64 `json:"interestRate"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	StartDate      *string `json:"startDate"`
	TermYears      int     `json:"termYears"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// MortgageInput holds the data needed to create a mortgage.
type MortgageInput struct {
	PropertyID     int64   `json:"propertyId"`
	Lender         string  `json:"lender"`
	Principal      float64 `json:"principal"`
	InterestRate   float64 `json:"interestRate"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	StartDate      *string `json:"startDate"`
	TermYears      int     `json:"termYears"`
}

// Validate reports field-level problems with the input.
func (in *MortgageInput) Validate() map[string]string {
	problems := map[string]string{}
	if in.PropertyID <= 0 {
		problems["propertyId"] = "propertyId is required"
	}
	if in.Lender == "" {
		problems["lender"] = "lender is required"
	}
	return problems
}

// MortgageUpdate is a partial patch for a mortgage.
type MortgageUpdate struct {
	Lender         *string  `json:"lender"`
	Principal      *float64 `json:"principal"`
	InterestRate   *float64 `json:"interestRate"`
	MonthlyPayment *float64 `json:"monthlyPayment"`
	StartDate      *string  `json:"startDate"`
	TermYears      *int     `json:"termYears"`
}

// Appliance is a unit-scoped asset record.
type Appliance struct {
	ID             int64   `json:"id"`
	UnitID         int64   `json:"unitId"`
	Name           string  `json:"name"`
	Make           *string `json:"make"`
	Model          *string `json:"model"`
	SerialNumber   *string `json:"serialNumber"`
	PurchaseDate   *string `json:"purchaseDate"`
	WarrantyExpiry *string `json:"warrantyExpiry"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ApplianceInput holds the data needed to create an appliance.
type ApplianceInput struct {
	UnitID         int64   `json:"unitId"`
	Name           string  `json:"name"`
	Make           *string `json:"make"`
	Model          *string `json:"model"`
	SerialNumber   *string `json:"serialNumber"`
	PurchaseDate   *string `json:"purchaseDate"`
	WarrantyExpiry *string `json:"warrantyExpiry"`
}

// Validate reports field-level problems with the input.
func (in *ApplianceInput) Validate() map[string]string {
	problems := map[string]string{}
	if in.UnitID <= 0 {
		problems["unitId"] = "unitId is required"
	}
	if in.Name == "" {
		problems["name"] = "name is required"
	}
	return problems
}

// ApplianceUpdate is a partial patch for an appliance.
type ApplianceUpdate struct {
	Name           *string `json:"name"`
	Make           *string `json:"make"`
	Model          *string `json:"model"`
	SerialNumber   *string `json:"serialNumber"`
	PurchaseDate   *string `json:"purchaseDate"`
	WarrantyExpiry *string `json:"warrantyExpiry"`
}
