package seed

import (
	"context"
	"database/sql"
	"fmt"
)

// MaintenanceRequests inserts the demo maintenance requests if none exist
// yet. The vendor contact is assigned to the urgent one.
func MaintenanceRequests(ctx context.Context, db *sql.DB) error {
	empty, err := tableEmpty(ctx, db, "maintenance_requests")
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	vendorID, err := contactID(ctx, db, "dana@whitfieldplumbing.example.com")
	if err != nil {
		return fmt.Errorf("lookup vendor: %w", err)
	}
	jordanTenantID, err := tenantIDByEmail(ctx, db, "jordan.reyes@example.com")
	if err != nil {
		return fmt.Errorf("lookup tenant: %w", err)
	}

	unit101, err := unitID(ctx, db, "Maple Court Apartments", "101")
	if err != nil {
		return fmt.Errorf("lookup unit: %w", err)
	}
	unitB, err := unitID(ctx, db, "Birchwood Duplex", "B")
	if err != nil {
		return fmt.Errorf("lookup unit: %w", err)
	}

	if _, err := db.ExecContext(ctx,
		`INSERT INTO maintenance_requests (unit_id, tenant_id, title, description, priority, status, assigned_vendor_id, created_at, updated_at)
		 VALUES (?, ?, 'Kitchen sink leaking', 'Steady drip under the kitchen sink, cabinet floor is warping.', 'urgent', 'in-progress', ?, ?, ?)`,
		unit101, jordanTenantID, vendorID, seedTS, seedTS,
	); err != nil {
		return fmt.Errorf("insert maintenance request: %w", err)
	}

	if _, err := db.ExecContext(ctx,
		`INSERT INTO maintenance_requests (unit_id, title, description, priority, status, created_at, updated_at)
		 VALUES (?, 'Repaint after move-out', 'Full interior repaint before relisting.', 'normal', 'open', ?, ?)`,
		unitB, seedTS, seedTS,
	); err != nil {
		return fmt.Errorf("insert maintenance request: %w", err)
	}

	return nil
}
