// Package seed populates the database with a small, coherent demo portfolio:
// two properties with units, a handful of contacts, active leases with
// payments, open maintenance, a vacancy funnel with a lead and application,
// and property assets. Seeding is idempotent per area.
package seed

import (
	"context"
	"database/sql"
	"fmt"
)

// seedTS is the fixed timestamp stamped on all seed rows. Anything created
// through the API afterwards sorts later.
const seedTS = "2025-01-01T00:00:00.000000000Z"

// Seed inserts all demo data. Each area checks its own row count and skips
// itself when data already exists, so re-running is safe. Call order matters:
// later areas look up rows the earlier ones created.
func Seed(ctx context.Context, db *sql.DB) error {
	if err := Properties(ctx, db); err != nil {
		return fmt.Errorf("seed properties: %w", err)
	}
	if err := Contacts(ctx, db); err != nil {
		return fmt.Errorf("seed contacts: %w", err)
	}
	if err := Leasing(ctx, db); err != nil {
		return fmt.Errorf("seed leasing: %w", err)
	}
	if err := MaintenanceRequests(ctx, db); err != nil {
		return fmt.Errorf("seed maintenance: %w", err)
	}
	if err := Vacancies(ctx, db); err != nil {
		return fmt.Errorf("seed vacancies: %w", err)
	}
	if err := Applications(ctx, db); err != nil {
		return fmt.Errorf("seed applications: %w", err)
	}
	if err := Assets(ctx, db); err != nil {
		return fmt.Errorf("seed assets: %w", err)
	}
	if err := Communications(ctx, db); err != nil {
		return fmt.Errorf("seed communications: %w", err)
	}
	return nil
}

// tableEmpty reports whether a seeded table has no rows yet.
func tableEmpty(ctx context.Context, db *sql.DB, table string) (bool, error) {
	var count int
	//nolint:gosec // table names are hardcoded constants
	if err := db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count); err != nil {
		return false, fmt.Errorf("count %s: %w", table, err)
	}
	return count == 0, nil
}

// lookupID resolves a seeded row by natural key. Seed IDs are never
// hardcoded: AUTOINCREMENT keeps counting across resets.
func lookupID(ctx context.Context, db *sql.DB, query string, args ...any) (int64, error) {
	var id int64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
