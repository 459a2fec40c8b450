package seed

import (
	"context"
	"database/sql"
	"fmt"
)

const standardTemplateFields = `[
 {"name":"fullName","label":"Full legal name","type":"text","required":true,"order":1},
 {"name":"currentAddress","label":"Current address","type":"text","required":true,"order":2},
 {"name":"employer","label":"Current employer","type":"text","required":false,"order":3},
 {"name":"monthlyIncome","label":"Gross monthly income","type":"number","required":true,"order":4},
 {"name":"pets","label":"Do you have pets?","type":"boolean","required":false,"order":5}
]`

// Applications inserts the standard application template and one submitted
// application from the seeded lead, if no templates exist yet.
func Applications(ctx context.Context, db *sql.DB) error {
	empty, err := tableEmpty(ctx, db, "application_templates")
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	res, err := db.ExecContext(ctx,
		`INSERT INTO application_templates (name, description, fields, created_at, updated_at)
		 VALUES ('Standard Rental Application', 'Default screening form for all listings.', ?, ?, ?)`,
		standardTemplateFields, seedTS, seedTS,
	)
	if err != nil {
		return fmt.Errorf("insert template: %w", err)
	}
	templateID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("template id: %w", err)
	}

	samID, err := contactID(ctx, db, "sam.okafor@example.com")
	if err != nil {
		return fmt.Errorf("lookup applicant: %w", err)
	}
	leadID, err := lookupID(ctx, db, `SELECT id FROM leads WHERE contact_id = ?`, samID)
	if err != nil {
		return fmt.Errorf("lookup lead: %w", err)
	}
	vacancyID, err := lookupID(ctx, db, `SELECT vacancy_id FROM leads WHERE id = ?`, leadID)
	if err != nil {
		return fmt.Errorf("lookup vacancy: %w", err)
	}

	data := `{"fullName":"Sam Okafor","currentAddress":"12 Elm St, Springfield, IL","employer":"Prairie State Bank","monthlyIncome":3900,"pets":false}`
	if _, err := db.ExecContext(ctx,
		`INSERT INTO rental_applications (contact_id, vacancy_id, lead_id, template_id, application_data, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, 'submitted', ?, ?)`,
		samID, vacancyID, leadID, templateID, data, seedTS, seedTS,
	); err != nil {
		return fmt.Errorf("insert application: %w", err)
	}

	return nil
}
