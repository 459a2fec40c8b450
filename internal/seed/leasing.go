package seed

import (
	"context"
	"database/sql"
	"fmt"
)

// Leasing inserts active leases for the occupied units plus a short payment
// history, if no leases exist yet.
func Leasing(ctx context.Context, db *sql.DB) error {
	empty, err := tableEmpty(ctx, db, "leases")
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	leaseRows := []struct {
		property    string
		unit        string
		tenantEmail string
		startDate   string
		endDate     string
		rent        float64
		deposit     float64
	}{
		{"Maple Court Apartments", "101", "jordan.reyes@example.com", "2024-09-01", "2025-08-31", 1250, 1250},
		{"Maple Court Apartments", "102", "priya.n@example.com", "2024-11-01", "2025-10-31", 1300, 1300},
	}

	for _, lr := range leaseRows {
		uid, err := unitID(ctx, db, lr.property, lr.unit)
		if err != nil {
			return fmt.Errorf("lookup unit %s/%s: %w", lr.property, lr.unit, err)
		}
		tid, err := tenantIDByEmail(ctx, db, lr.tenantEmail)
		if err != nil {
			return fmt.Errorf("lookup tenant %s: %w", lr.tenantEmail, err)
		}

		res, err := db.ExecContext(ctx,
			`INSERT INTO leases (unit_id, tenant_id, start_date, end_date, rent_amount, security_deposit, status, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, 'active', ?, ?)`,
			uid, tid, lr.startDate, lr.endDate, lr.rent, lr.deposit, seedTS, seedTS,
		)
		if err != nil {
			return fmt.Errorf("insert lease for %s: %w", lr.tenantEmail, err)
		}
		leaseID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("lease id: %w", err)
		}

		// Two completed rent payments and one pending per lease.
		payments := []struct {
			date   string
			status string
		}{
			{"2024-11-01", "completed"},
			{"2024-12-01", "completed"},
			{"2025-01-01", "pending"},
		}
		for _, p := range payments {
			if _, err := db.ExecContext(ctx,
				`INSERT INTO payments (lease_id, amount, payment_date, payment_type, status, created_at, updated_at)
				 VALUES (?, ?, ?, 'rent', ?, ?, ?)`,
				leaseID, lr.rent, p.date, p.status, seedTS, seedTS,
			); err != nil {
				return fmt.Errorf("insert payment: %w", err)
			}
		}
	}

	return nil
}
