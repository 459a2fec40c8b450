package seed

import (
	"context"
	"database/sql"
	"fmt"
)

// Vacancies inserts the demo vacancy listings and the lead chasing one of
// them, if no vacancies exist yet.
func Vacancies(ctx context.Context, db *sql.DB) error {
	empty, err := tableEmpty(ctx, db, "vacancies")
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	unit201, err := unitID(ctx, db, "Maple Court Apartments", "201")
	if err != nil {
		return fmt.Errorf("lookup unit: %w", err)
	}
	unitA, err := unitID(ctx, db, "Birchwood Duplex", "A")
	if err != nil {
		return fmt.Errorf("lookup unit: %w", err)
	}

	res, err := db.ExecContext(ctx,
		`INSERT INTO vacancies (unit_id, rent_amount, deposit_amount, available_date, amenities, included_utilities, description, status, created_at, updated_at)
		 VALUES (?, 1050, 1050, '2025-02-01', '["dishwasher","on-site laundry"]', '["water","trash"]', 'Sunny one-bedroom on the second floor.', 'active', ?, ?)`,
		unit201, seedTS, seedTS,
	)
	if err != nil {
		return fmt.Errorf("insert vacancy: %w", err)
	}
	vacancyID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("vacancy id: %w", err)
	}

	if _, err := db.ExecContext(ctx,
		`INSERT INTO vacancies (unit_id, rent_amount, deposit_amount, available_date, amenities, included_utilities, description, status, created_at, updated_at)
		 VALUES (?, 1850, 2000, '2025-03-01', '["garage","fenced yard"]', '[]', 'Three-bedroom duplex side with attached garage.', 'inactive', ?, ?)`,
		unitA, seedTS, seedTS,
	); err != nil {
		return fmt.Errorf("insert vacancy: %w", err)
	}

	samID, err := contactID(ctx, db, "sam.okafor@example.com")
	if err != nil {
		return fmt.Errorf("lookup lead contact: %w", err)
	}
	if _, err := db.ExecContext(ctx,
		`INSERT INTO leads (contact_id, vacancy_id, source, notes, status, created_at, updated_at)
		 VALUES (?, ?, 'website', 'Asked about the Maple Court one-bedroom.', 'qualified', ?, ?)`,
		samID, vacancyID, seedTS, seedTS,
	); err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}

	return nil
}
