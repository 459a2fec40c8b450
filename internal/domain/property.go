package domain

// Property is a building that contains zero or more units.
type Property struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	PropertyType string `json:"propertyType"`
	YearBuilt    *int   `json:"yearBuilt"`
	TotalUnits   int    `json:"totalUnits"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// PropertyInput holds the data needed to create a property.
type PropertyInput struct {
	Name         string `json:"name"`
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	PropertyType string `json:"propertyType"`
	YearBuilt    *int   `json:"yearBuilt"`
	TotalUnits   int    `json:"totalUnits"`
	Status       string `json:"status"`
}

// Validate reports field-level problems with the input.
func (in *PropertyInput) Validate() map[string]string {
	problems := map[string]string{}
	if in.Name == "" {
		problems["name"] = "name is required"
	}
	if in.Street == "" {
		problems["street"] = "street is required"
	}
	if in.City == "" {
		problems["city"] = "city is required"
	}
	if in.State == "" {
		problems["state"] = "state is required"
	}
	if in.Zip == "" {
		problems["zip"] = "zip is required"
	}
	return problems
}

// PropertyUpdate is a partial patch for a property.
type PropertyUpdate struct {
	Name         *string `json:"name"`
	Street       *string `json:"street"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Zip          *string `json:"zip"`
	PropertyType *string `json:"propertyType"`
	YearBuilt    *int    `json:"yearBuilt"`
	TotalUnits   *int    `json:"totalUnits"`
	Status       *string `json:"status"`
}

// Unit belongs to exactly one property and carries occupancy status.
type Unit struct {
	ID         int64   `json:"id"`
	PropertyID int64   `json:"propertyId"`
	UnitNumber string  `json:"unitNumber"`
	Bedrooms   int     `json:"bedrooms"`
	Bathrooms  float64 `json:"bathrooms"`
	SquareFeet *int    `json:"squareFeet"`
	MarketRent float64 `json:"marketRent"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// UnitInput holds the data needed to create a unit.
type UnitInput struct {
	PropertyID int64   `json:"propertyId"`
	UnitNumber string  `json:"unitNumber"`
	Bedrooms   int     `json:"bedrooms"`
	Bathrooms  float64 `json:"bathrooms"`
	SquareFeet *int    `json:"squareFeet"`
	MarketRent float64 `json:"marketRent"`
	Status     string  `json:"status"`
}

// Validate reports field-level problems with the input.
func (in *UnitInput) Validate() map[string]string {
	problems := map[string]string{}
	if in.PropertyID <= 0 {
		problems["propertyId"] = "propertyId is required"
	}
	if in.UnitNumber == "" {
		problems["unitNumber"] = "unitNumber is required"
	}
	if in.Status != "" && !contains(UnitStatuses, in.Status) {
		problems["status"] = "status must be one of: occupied, vacant, maintenance"
	}
	return problems
}

// UnitUpdate is a partial patch for a unit.
type UnitUpdate struct {
	UnitNumber *string  `json:"unitNumber"`
	Bedrooms   *int     `json:"bedrooms"`
	Bathrooms  *float64 `json:"bathrooms"`
	SquareFeet *int     `json:"squareFeet"`
	MarketRent *float64 `json:"marketRent"`
	Status     *string  `json:"status"`
}
