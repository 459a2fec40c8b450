package domain

// Contact is the base identity record for tenants, vendors, owners, leads,
// and applicants.
type Contact struct {
	ID          int64   `json:"id"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	ContactType string  `json:"contactType"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ContactTypes enumerates the accepted contactType values.
var ContactTypes = []string{"tenant", "vendor", "owner", "employee", "lead", "applicant", "other"}

// ContactInput holds the data needed to create a contact.
type ContactInput struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	ContactType string  `json:"contactType"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes"`
}

// Validate reports field-level problems with the input.
func (in *ContactInput) Validate() map[string]string {
	problems := map[string]string{}
	if in.FirstName == "" {
		problems["firstName"] = "firstName is required"
	}
	if in.LastName == "" {
		problems["lastName"] = "lastName is required"
	}
	if in.ContactType != "" && !contains(ContactTypes, in.ContactType) {
		problems["contactType"] = "contactType must be one of: tenant, vendor, owner, employee, lead, applicant, other"
	}
	return problems
}

// ContactUpdate is a partial patch for a contact. Nil fields are left as-is.
type ContactUpdate struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	ContactType *string `json:"contactType"`
	Status      *string `json:"status"`
	Notes       *string `json:"notes"`
}

// Address is an independently owned postal address, linked to contacts
// through the contact_addresses join table.
type Address struct {
	ID        int64    `json:"id"`
	Street    string   `json:"street"`
	Street2   *string  `json:"street2"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Zip       string   `json:"zip"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// AddressInput holds the data needed to create an address.
type AddressInput struct {
	Street    string   `json:"street"`
	Street2   *string  `json:"street2"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Zip       string   `json:"zip"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Validate reports field-level problems with the input.
func (in *AddressInput) Validate() map[string]string {
	problems := map[string]string{}
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

// AddressUpdate is a partial patch for an address.
type AddressUpdate struct {
	Street    *string  `json:"street"`
	Street2   *string  `json:"street2"`
	City      *string  `json:"city"`
	State     *string  `json:"state"`
	Zip       *string  `json:"zip"`
	Country   *string  `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// ContactAddress links a contact to an address. At most one row per contact
// has IsPrimary set; the store maintains that when linking.
type ContactAddress struct {
	ID          int64  `json:"id"`
	ContactID   int64  `json:"contactId"`
	AddressID   int64  `json:"addressId"`
	AddressType string `json:"addressType"`
	IsPrimary   bool   `json:"isPrimary"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// LinkAddressInput holds the data needed to link an address to a contact.
type LinkAddressInput struct {
	AddressID   int64  `json:"addressId"`
	AddressType string `json:"addressType"`
	IsPrimary   bool   `json:"isPrimary"`
}

// Validate reports field-level problems with the input.
func (in *LinkAddressInput) Validate() map[string]string {
	problems := map[string]string{}
	if in.AddressID <= 0 {
		problems["addressId"] = "addressId is required"
	}
	return problems
}

// LinkedAddress is an address together with its link metadata for one
// contact, as returned by the contact addresses sub-resource.
type LinkedAddress struct {
	Address
	AddressType string `json:"addressType"`
	IsPrimary   bool   `json:"isPrimary"`
}

// Tenant extends a contact with lease-specific fields. Every tenant
// references exactly one contact.
type Tenant struct {
	ID                    int64    `json:"id"`
	ContactID             int64    `json:"contactId"`
	SSN                   *string  `json:"ssn"`
	Employer              *string  `json:"employer"`
	EmployerPhone         *string  `json:"employerPhone"`
	MonthlyIncome         *float64 `json:"monthlyIncome"`
	EmergencyContactName  *string  `json:"emergencyContactName"`
	EmergencyContactPhone *string  `json:"emergencyContactPhone"`
	CreatedAt             string   `json:"createdAt"`
	UpdatedAt             string   `json:"updatedAt"`
}

// TenantInput holds the data needed to create a tenant.
type TenantInput struct {
	ContactID             int64    `json:"contactId"`
	SSN                   *string  `json:"ssn"`
	Employer              *string  `json:"employer"`
	EmployerPhone         *string  `json:"employerPhone"`
	MonthlyIncome         *float64 `json:"monthlyIncome"`
	EmergencyContactName  *string  `json:"emergencyContactName"`
	EmergencyContactPhone *string  `json:"emergencyContactPhone"`
}

// Validate reports field-level problems with the input.
func (in *TenantInput) Validate() map[string]string {
	problems := map[string]string{}
	if in.ContactID <= 0 {
		problems["contactId"] = "contactId is required"
	}
	return problems
}

// TenantUpdate is a partial patch for a tenant.
type TenantUpdate struct {
	SSN                   *string  `json:"ssn"`
	Employer              *string  `json:"employer"`
	EmployerPhone         *string  `json:"employerPhone"`
	MonthlyIncome         *float64 `json:"monthlyIncome"`
	EmergencyContactName  *string  `json:"emergencyContactName"`
	EmergencyContactPhone *string  `json:"emergencyContactPhone"`
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
