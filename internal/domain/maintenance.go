package domain

// MaintenanceRequest is a repair or service request against a unit.
type MaintenanceRequest struct {
	ID               int64   `json:"id"`
	UnitID           int64   `json:"unitId"`
	TenantID         *int64  `json:"tenantId"`
	Title            string  `json:"title"`
	Description      *string `json:"description"`
	Priority         string  `json:"priority"`
	Status           string  `json:"status"`
	AssignedVendorID *int64  `json:"assignedVendorId"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// MaintenancePriorities enumerates the accepted priority values.
var MaintenancePriorities = []string{"urgent", "normal", "low"}

// MaintenanceRequestInput holds the data needed to create a request.
type MaintenanceRequestInput struct {
	UnitID           int64   `json:"unitId"`
	TenantID         *int64  `json:"tenantId"`
	Title            string  `json:"title"`
	Description      *string `json:"description"`
	Priority         string  `json:"priority"`
	Status           string  `json:"status"`
	AssignedVendorID *int64  `json:"assignedVendorId"`
}

// Validate reports field-level problems with the input.
func (in *MaintenanceRequestInput) Validate() map[string]string {
	problems := map[string]string{}
	if in.UnitID <= 0 {
		problems["unitId"] = "unitId is required"
	}
	if in.Title == "" {
		problems["title"] = "title is required"
	}
	if in.Priority != "" && !contains(MaintenancePriorities, in.Priority) {
		problems["priority"] = "priority must be one of: urgent, normal, low"
	}
	return problems
}

// MaintenanceRequestUpdate is a partial patch for a request.
type MaintenanceRequestUpdate struct {
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	Priority         *string `json:"priority"`
	Status           *string `json:"status"`
	AssignedVendorID *int64  `json:"assignedVendorId"`
}
