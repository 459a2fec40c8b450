package seed

import (
	"context"
	"database/sql"
	"fmt"
)

// Assets inserts the demo insurance policies, mortgages, and appliances if no
// policies exist yet.
func Assets(ctx context.Context, db *sql.DB) error {
	empty, err := tableEmpty(ctx, db, "insurance_policies")
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	mapleID, err := propertyID(ctx, db, "Maple Court Apartments")
	if err != nil {
		return fmt.Errorf("lookup property: %w", err)
	}
	birchID, err := propertyID(ctx, db, "Birchwood Duplex")
	if err != nil {
		return fmt.Errorf("lookup property: %w", err)
	}

	if _, err := db.ExecContext(ctx,
		`INSERT INTO insurance_policies (property_id, provider, policy_number, coverage_amount, premium, start_date, end_date, created_at, updated_at)
		 VALUES (?, 'Heartland Mutual', 'HM-88421-IL', 1500000, 3600, '2024-07-01', '2025-06-30', ?, ?)`,
		mapleID, seedTS, seedTS,
	); err != nil {
		return fmt.Errorf("insert insurance policy: %w", err)
	}

	if _, err := db.ExecContext(ctx,
		`INSERT INTO mortgages (property_id, lender, principal, interest_rate, monthly_payment, start_date, term_years, created_at, updated_at)
		 VALUES (?, 'First Capital Bank', 680000, 5.1, 3694.50, '2019-04-01', 30, ?, ?)`,
		mapleID, seedTS, seedTS,
	); err != nil {
		return fmt.Errorf("insert mortgage: %w", err)
	}

	if _, err := db.ExecContext(ctx,
		`INSERT INTO mortgages (property_id, lender, principal, interest_rate, monthly_payment, start_date, term_years, created_at, updated_at)
		 VALUES (?, 'First Capital Bank', 310000, 4.4, 1552.25, '2021-09-01', 30, ?, ?)`,
		birchID, seedTS, seedTS,
	); err != nil {
		return fmt.Errorf("insert mortgage: %w", err)
	}

	unit101, err := unitID(ctx, db, "Maple Court Apartments", "101")
	if err != nil {
		return fmt.Errorf("lookup unit: %w", err)
	}

	appliances := []struct {
		name   string
		make   string
		model  string
		serial string
	}{
		{"Refrigerator", "Whirlpool", "WRT518SZFM", "WP-20231104-88"},
		{"Range", "GE", "JB645RKSS", "GE-20230912-31"},
		{"Dishwasher", "Bosch", "SHEM63W55N", "BO-20240215-07"},
	}
	for _, a := range appliances {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO appliances (unit_id, name, make, model, serial_number, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			unit101, a.name, a.make, a.model, a.serial, seedTS, seedTS,
		); err != nil {
			return fmt.Errorf("insert appliance %s: %w", a.name, err)
		}
	}

	return nil
}
