package domain

// CommunicationLog is a free-text record of an exchange with a contact,
// optionally tied to a lead or application.
type CommunicationLog struct {
	ID            int64   `json:"id"`
	ContactID     int64   `json:"contactId"`
	LeadID        *int64  `json:"leadId"`
	ApplicationID *int64  `json:"applicationId"`
	Channel       string  `json:"channel"`
	Direction     string  `json:"direction"`
	Subject       *string `json:"subject"`
	Body          string  `json:"body"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// CommunicationLogInput holds the data needed to create a log entry.
type CommunicationLogInput struct {
	ContactID     int64   `json:"contactId"`
	LeadID        *int64  `json:"leadId"`
	ApplicationID *int64  `json:"applicationId"`
	Channel       string  `json:"channel"`
	Direction     string  `json:"direction"`
	Subject       *string `json:"subject"`
	Body          string  `json:"body"`
}

// Validate reports field-level problems with the input.
func (in *CommunicationLogInput) Validate() map[string]string {
	problems := map[string]string{}
	if in.ContactID <= 0 {
		problems["contactId"] = "contactId is required"
	}
	if in.Body == "" {
		problems["body"] = "body is required"
	}
	return problems
}

// Notification is a short message for a contact with a read flag.
type Notification struct {
	ID        int64  `json:"id"`
	ContactID int64  `json:"contactId"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// NotificationInput holds the data needed to create a notification.
type NotificationInput struct {
	ContactID int64  `json:"contactId"`
	Message   string `json:"message"`
}

// Validate reports field-level problems with the input.
func (in *NotificationInput) Validate() map[string]string {
	problems := map[string]string{}
	if in.ContactID <= 0 {
		problems["contactId"] = "contactId is required"
	}
	if in.Message == "" {
		problems["message"] = "message is required"
	}
	return problems
}
