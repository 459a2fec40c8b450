package seed

import (
	"context"
	"database/sql"
	"fmt"
)

// Communications inserts a demo communication log entry and an unread
// notification, if no log entries exist yet.
func Communications(ctx context.Context, db *sql.DB) error {
	empty, err := tableEmpty(ctx, db, "communication_logs")
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	samID, err := contactID(ctx, db, "sam.okafor@example.com")
	if err != nil {
		return fmt.Errorf("lookup contact: %w", err)
	}
	leadID, err := lookupID(ctx, db, `SELECT id FROM leads WHERE contact_id = ?`, samID)
	if err != nil {
		return fmt.Errorf("lookup lead: %w", err)
	}

	if _, err := db.ExecContext(ctx,
		`INSERT INTO communication_logs (contact_id, lead_id, channel, direction, subject, body, created_at, updated_at)
		 VALUES (?, ?, 'email', 'outbound', 'Maple Court #201 showing', 'Confirmed a showing for Saturday at 10am.', ?, ?)`,
		samID, leadID, seedTS, seedTS,
	); err != nil {
		return fmt.Errorf("insert communication: %w", err)
	}

	jordanID, err := contactID(ctx, db, "jordan.reyes@example.com")
	if err != nil {
		return fmt.Errorf("lookup contact: %w", err)
	}
	if _, err := db.ExecContext(ctx,
		`INSERT INTO notifications (contact_id, message, read, created_at, updated_at)
		 VALUES (?, 'Rent for January is due on the 1st.', FALSE, ?, ?)`,
		jordanID, seedTS, seedTS,
	); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}

	return nil
}
