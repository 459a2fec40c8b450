// Package store implements the storage service backing every entity in the
// system. Each entity gets an interface plus a SQLite implementation; the
// aggregate Store is injected into route handlers so a different backing
// store can be substituted without touching call sites.
package store

import (
	"database/sql"
	"fmt"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = fmt.Errorf("record not found")

// Store holds all sub-stores used by the application.
type Store struct {
	DB             *sql.DB
	Contacts       ContactStore
	Addresses      AddressStore
	Tenants        TenantStore
	Properties     PropertyStore
	Units          UnitStore
	Leases         LeaseStore
	Payments       PaymentStore
	Maintenance    MaintenanceStore
	Vacancies      VacancyStore
	Leads          LeadStore
	Applications   ApplicationStore
	Templates      TemplateStore
	Communications CommunicationStore
	Notifications  NotificationStore
	Insurance      InsuranceStore
	Mortgages      MortgageStore
	Appliances     ApplianceStore
}

// New creates a Store with all sub-stores initialized.
func New(db *sql.DB) *Store {
	return &Store{
		DB:             db,
		Contacts:       NewSQLiteContactStore(db),
		Addresses:      NewSQLiteAddressStore(db),
		Tenants:        NewSQLiteTenantStore(db),
		Properties:     NewSQLitePropertyStore(db),
		Units:          NewSQLiteUnitStore(db),
		Leases:         NewSQLiteLeaseStore(db),
		Payments:       NewSQLitePaymentStore(db),
		Maintenance:    NewSQLiteMaintenanceStore(db),
		Vacancies:      NewSQLiteVacancyStore(db),
		Leads:          NewSQLiteLeadStore(db),
		Applications:   NewSQLiteApplicationStore(db),
		Templates:      NewSQLiteTemplateStore(db),
		Communications: NewSQLiteCommunicationStore(db),
		Notifications:  NewSQLiteNotificationStore(db),
		Insurance:      NewSQLiteInsuranceStore(db),
		Mortgages:      NewSQLiteMortgageStore(db),
		Appliances:     NewSQLiteApplianceStore(db),
	}
}
