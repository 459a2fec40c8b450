package domain

// Vacancy is a publicly listed, unleased unit available for rent.
type Vacancy struct {
	ID                int64    `json:"id"`
	UnitID            int64    `json:"unitId"`
	RentAmount        float64  `json:"rentAmount"`
	DepositAmount     float64  `json:"depositAmount"`
	AvailableDate     *string  `json:"availableDate"`
	Amenities         []string `json:"amenities"`
	IncludedUtilities []string `json:"includedUtilities"`
	Description       *string  `json:"description"`
	Status            string   `json:"status"`
	CreatedAt         string   `json:"createdAt"`
	UpdatedAt         string   `json:"updatedAt"`
}

// VacancyInput holds the data needed to create a vacancy listing.
type VacancyInput struct {
	UnitID            int64    `json:"unitId"`
	RentAmount        float64  `json:"rentAmount"`
	DepositAmount     float64  `json:"depositAmount"`
	AvailableDate     *string  `json:"availableDate"`
	Amenities         []string `json:"amenities"`
	IncludedUtilities []string `json:"includedUtilities"`
	Description       *string  `json:"description"`
	Status            string   `json:"status"`
}

// Validate reports field-level problems with the input.
func (in *VacancyInput) Validate() map[string]string {
	problems := map[string]string{}
	if in.UnitID <= 0 {
		problems["unitId"] = "unitId is required"
	}
	if in.RentAmount <= 0 {
		problems["rentAmount"] = "rentAmount must be positive"
	}
	return problems
}

// VacancyUpdate is a partial patch for a vacancy listing.
type VacancyUpdate struct {
	RentAmount        *float64 `json:"rentAmount"`
	DepositAmount     *float64 `json:"depositAmount"`
	AvailableDate     *string  `json:"availableDate"`
	Amenities         []string `json:"amenities"`
	IncludedUtilities []string `json:"includedUtilities"`
	Description       *string  `json:"description"`
	Status            *string  `json:"status"`
}

// VacancyListing is a vacancy joined with its unit and property context,
// served by the management view.
type VacancyListing struct {
	Vacancy
	UnitNumber   string `json:"unitNumber"`
	PropertyID   int64  `json:"propertyId"`
	PropertyName string `json:"propertyName"`
}

// Lead tracks a prospective tenant from first inquiry through application or
// disqualification.
type Lead struct {
	ID        int64   `json:"id"`
	ContactID int64   `json:"contactId"`
	VacancyID *int64  `json:"vacancyId"`
	Source    *string `json:"source"`
	Notes     *string `json:"notes"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// LeadInput holds the data needed to create a lead.
type LeadInput struct {
	ContactID int64   `json:"contactId"`
	VacancyID *int64  `json:"vacancyId"`
	Source    *string `json:"source"`
	Notes     *string `json:"notes"`
	Status    string  `json:"status"`
}

// Validate reports field-level problems with the input.
func (in *LeadInput) Validate() map[string]string {
	problems := map[string]string{}
	if in.ContactID <= 0 {
		problems["contactId"] = "contactId is required"
	}
	return problems
}

// LeadUpdate is a partial patch for a lead.
type LeadUpdate struct {
	VacancyID *int64  `json:"vacancyId"`
	Source    *string `json:"source"`
	Notes     *string `json:"notes"`
	Status    *string `json:"status"`
}
