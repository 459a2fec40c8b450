package domain

import "encoding/json"

// RentalApplication is a submitted, screenable request by a contact to lease
// a specific vacancy. The form answers are an opaque JSON blob because custom
// application forms have no fixed shape.
type RentalApplication struct {
	ID                    int64           `json:"id"`
	ContactID             int64           `json:"contactId"`
	VacancyID             *int64          `json:"vacancyId"`
	LeadID                *int64          `json:"leadId"`
	TemplateID            *int64          `json:"templateId"`
	ApplicationData       json.RawMessage `json:"applicationData"`
	CreditCheckPassed     *bool           `json:"creditCheckPassed"`
	BackgroundCheckPassed *bool           `json:"backgroundCheckPassed"`
	IncomeVerified        *bool           `json:"incomeVerified"`
	Status                string          `json:"status"`
	CreatedAt             string          `json:"createdAt"`
	UpdatedAt             string          `json:"updatedAt"`
}

// RentalApplicationInput holds the data needed to create an application.
type RentalApplicationInput struct {
	ContactID             int64           `json:"contactId"`
	VacancyID             *int64          `json:"vacancyId"`
	LeadID                *int64          `json:"leadId"`
	TemplateID            *int64          `json:"templateId"`
	ApplicationData       json.RawMessage `json:"applicationData"`
	CreditCheckPassed     *bool           `json:"creditCheckPassed"`
	BackgroundCheckPassed *bool           `json:"backgroundCheckPassed"`
	IncomeVerified        *bool           `json:"incomeVerified"`
	Status                string          `json:"status"`
}

// Validate reports field-level problems with the input.
func (in *RentalApplicationInput) Validate() map[string]string {
	problems := map[string]string{}
	if in.ContactID <= 0 {
		problems["contactId"] = "contactId is required"
	}
	if len(in.ApplicationData) > 0 && !json.Valid(in.ApplicationData) {
		problems["applicationData"] = "applicationData must be valid JSON"
	}
	return problems
}

// RentalApplicationUpdate is a partial patch for an application.
type RentalApplicationUpdate struct {
	VacancyID             *int64          `json:"vacancyId"`
	LeadID                *int64          `json:"leadId"`
	TemplateID            *int64          `json:"templateId"`
	ApplicationData       json.RawMessage `json:"applicationData"`
	CreditCheckPassed     *bool           `json:"creditCheckPassed"`
	BackgroundCheckPassed *bool           `json:"backgroundCheckPassed"`
	IncomeVerified        *bool           `json:"incomeVerified"`
	Status                *string         `json:"status"`
}

// TemplateField is one ordered field descriptor in an application template.
type TemplateField struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	Order    int    `json:"order"`
}

// ApplicationTemplate is a named form definition: an ordered list of field
// descriptors.
type ApplicationTemplate struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Fields      []TemplateField `json:"fields"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

// ApplicationTemplateInput holds the data needed to create a template.
type ApplicationTemplateInput struct {
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Fields      []TemplateField `json:"fields"`
}

// Validate reports field-level problems with the input.
func (in *ApplicationTemplateInput) Validate() map[string]string {
	problems := map[string]string{}
	if in.Name == "" {
		problems["name"] = "name is required"
	}
	for _, f := range in.Fields {
		if f.Name == "" || f.Label == "" {
			problems["fields"] = "every field needs a name and a label"
			break
		}
	}
	return problems
}

// ApplicationTemplateUpdate is a partial patch for a template.
type ApplicationTemplateUpdate struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Fields      []TemplateField `json:"fields"`
}
