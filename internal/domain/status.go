package domain

import "fmt"

// Status values per entity. Each status field is an explicit state machine:
// updates that change a status are checked against the transition tables
// below and illegal moves are rejected.
var (
	LeaseStatuses       = []string{"active", "expired", "terminated"}
	PaymentStatuses     = []string{"pending", "completed", "failed"}
	MaintenanceStatuses = []string{"open", "in-progress", "completed"}
	VacancyStatuses     = []string{"active", "inactive", "rented"}
	LeadStatuses        = []string{"new", "contacted", "qualified", "disqualified", "converted"}
	ApplicationStatuses = []string{"submitted", "under review", "approved", "denied", "cancelled"}
	UnitStatuses        = []string{"occupied", "vacant", "maintenance"}
)

// leaseTransitions: a lease only ever leaves active, and never comes back.
var leaseTransitions = map[string][]string{
	"active":     {"expired", "terminated"},
	"expired":    {},
	"terminated": {},
}

var paymentTransitions = map[string][]string{
	"pending":   {"completed", "failed"},
	"completed": {},
	"failed":    {},
}

var maintenanceTransitions = map[string][]string{
	"open":        {"in-progress", "completed"},
	"in-progress": {"completed"},
	"completed":   {},
}

var vacancyTransitions = map[string][]string{
	"active":   {"inactive", "rented"},
	"inactive": {"active"},
	"rented":   {},
}

// leadTransitions follow the funnel; disqualification is reachable from any
// live state.
var leadTransitions = map[string][]string{
	"new":          {"contacted", "disqualified"},
	"contacted":    {"qualified", "disqualified"},
	"qualified":    {"converted", "disqualified"},
	"disqualified": {},
	"converted":    {},
}

var applicationTransitions = map[string][]string{
	"submitted":    {"under review", "approved", "denied", "cancelled"},
	"under review": {"approved", "denied", "cancelled"},
	"approved":     {},
	"denied":       {},
	"cancelled":    {},
}

// StatusMachine validates status changes for one entity kind.
type StatusMachine struct {
	entity      string
	transitions map[string][]string
}

var (
	LeaseStatusMachine       = StatusMachine{"lease", leaseTransitions}
	PaymentStatusMachine     = StatusMachine{"payment", paymentTransitions}
	MaintenanceStatusMachine = StatusMachine{"maintenance request", maintenanceTransitions}
	VacancyStatusMachine     = StatusMachine{"vacancy", vacancyTransitions}
	LeadStatusMachine        = StatusMachine{"lead", leadTransitions}
	ApplicationStatusMachine = StatusMachine{"application", applicationTransitions}
)

// Valid reports whether s is a known status for this machine.
func (m StatusMachine) Valid(s string) bool {
	_, ok := m.transitions[s]
	return ok
}

// CheckTransition returns an error when moving from one status to another is
// not allowed. Setting the same status again is a no-op and always allowed.
func (m StatusMachine) CheckTransition(from, to string) error {
	if from == to {
		return nil
	}
	if !m.Valid(to) {
		return fmt.Errorf("%w: unknown %s status %q", ErrInvalidTransition, m.entity, to)
	}
	for _, next := range m.transitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s cannot move from %q to %q", ErrInvalidTransition, m.entity, from, to)
}

// ErrInvalidTransition marks a rejected status change.
var ErrInvalidTransition = fmt.Errorf("invalid status transition")
