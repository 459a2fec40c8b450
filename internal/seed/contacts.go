package seed

import (
	"context"
	"database/sql"
	"fmt"
)

type contactDef struct {
	firstName   string
	lastName    string
	email       string
	phone       string
	contactType string
}

var defaultContacts = []contactDef{
	{firstName: "Jordan", lastName: "Reyes", email: "jordan.reyes@example.com", phone: "217-555-0141", contactType: "tenant"},
	{firstName: "Priya", lastName: "Natarajan", email: "priya.n@example.com", phone: "217-555-0178", contactType: "tenant"},
	{firstName: "Sam", lastName: "Okafor", email: "sam.okafor@example.com", phone: "217-555-0190", contactType: "lead"},
	{firstName: "Dana", lastName: "Whitfield", email: "dana@whitfieldplumbing.example.com", phone: "217-555-0102", contactType: "vendor"},
	{firstName: "Marcus", lastName: "Hale", email: "marcus.hale@example.com", phone: "217-555-0115", contactType: "owner"},
}

// Contacts inserts the demo contacts, their addresses, and tenant records if
// no contacts exist yet.
func Contacts(ctx context.Context, db *sql.DB) error {
	empty, err := tableEmpty(ctx, db, "contacts")
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	for _, cd := range defaultContacts {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO contacts (first_name, last_name, email, phone, contact_type, status, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, 'active', ?, ?)`,
			cd.firstName, cd.lastName, cd.email, cd.phone, cd.contactType, seedTS, seedTS,
		); err != nil {
			return fmt.Errorf("insert contact %s %s: %w", cd.firstName, cd.lastName, err)
		}
	}

	// Jordan gets a linked home address, marked primary.
	res, err := db.ExecContext(ctx,
		`INSERT INTO addresses (street, city, state, zip, country, created_at, updated_at)
		 VALUES ('410 Maple Ct Apt 101', 'Springfield', 'IL', '62704', 'US', ?, ?)`,
		seedTS, seedTS,
	)
	if err != nil {
		return fmt.Errorf("insert address: %w", err)
	}
	addressID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("address id: %w", err)
	}

	jordanID, err := contactID(ctx, db, "jordan.reyes@example.com")
	if err != nil {
		return fmt.Errorf("lookup contact: %w", err)
	}
	if _, err := db.ExecContext(ctx,
		`INSERT INTO contact_addresses (contact_id, address_id, address_type, is_primary, created_at, updated_at)
		 VALUES (?, ?, 'home', TRUE, ?, ?)`,
		jordanID, addressID, seedTS, seedTS,
	); err != nil {
		return fmt.Errorf("link address: %w", err)
	}

	// Tenant records for the two tenant contacts.
	tenantRows := []struct {
		email         string
		employer      string
		monthlyIncome float64
	}{
		{"jordan.reyes@example.com", "Capitol City Logistics", 4200},
		{"priya.n@example.com", "Lincoln Medical Group", 5100},
	}
	for _, tr := range tenantRows {
		cid, err := contactID(ctx, db, tr.email)
		if err != nil {
			return fmt.Errorf("lookup contact %s: %w", tr.email, err)
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO tenants (contact_id, employer, monthly_income, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?)`,
			cid, tr.employer, tr.monthlyIncome, seedTS, seedTS,
		); err != nil {
			return fmt.Errorf("insert tenant for %s: %w", tr.email, err)
		}
	}

	return nil
}

// contactID resolves a seeded contact by email.
func contactID(ctx context.Context, db *sql.DB, email string) (int64, error) {
	return lookupID(ctx, db, `SELECT id FROM contacts WHERE email = ?`, email)
}

// tenantIDByEmail resolves a seeded tenant through its contact email.
func tenantIDByEmail(ctx context.Context, db *sql.DB, email string) (int64, error) {
	return lookupID(ctx, db,
		`SELECT t.id FROM tenants t JOIN contacts c ON c.id = t.contact_id WHERE c.email = ?`,
		email)
}
