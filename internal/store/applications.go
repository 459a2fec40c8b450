package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rentline/rentline/internal/domain"
)

// ApplicationStore defines the interface for rental application persistence.
type ApplicationStore interface {
	Get(ctx context.Context, id int64) (*domain.RentalApplication, error)
	List(ctx context.Context, status string) ([]*domain.RentalApplication, error)
	Create(ctx context.Context, in *domain.RentalApplicationInput) (*domain.RentalApplication, error)
	Update(ctx context.Context, id int64, patch *domain.RentalApplicationUpdate) (*domain.RentalApplication, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.RentalApplication, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// SQLiteApplicationStore implements ApplicationStore backed by SQLite.
type SQLiteApplicationStore struct {
	db *sql.DB
}

// NewSQLiteApplicationStore creates a new SQLiteApplicationStore.
func NewSQLiteApplicationStore(db *sql.DB) *SQLiteApplicationStore {
	return &SQLiteApplicationStore{db: db}
}

const applicationColumns = `id, contact_id, vacancy_id, lead_id, template_id, application_data,
	credit_check_passed, background_check_passed, income_verified, status, created_at, updated_at`

func scanApplication(row interface{ Scan(...any) error }) (*domain.RentalApplication, error) {
	var a domain.RentalApplication
	var data string
	err := row.Scan(&a.ID, &a.ContactID, &a.VacancyID, &a.LeadID, &a.TemplateID, &data,
		&a.CreditCheckPassed, &a.BackgroundCheckPassed, &a.IncomeVerified,
		&a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.ApplicationData = json.RawMessage(data)
	return &a, nil
}

// Get retrieves a single application by ID.
func (s *SQLiteApplicationStore) Get(ctx context.Context, id int64) (*domain.RentalApplication, error) {
	a, err := scanApplication(s.db.QueryRowContext(ctx,
		`SELECT `+applicationColumns+` FROM rental_applications WHERE id = ?`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get application: %w", err)
	}
	return a, nil
}

// List returns all applications, optionally filtered by status.
func (s *SQLiteApplicationStore) List(ctx context.Context, status string) ([]*domain.RentalApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM rental_applications`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	applications := []*domain.RentalApplication{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		applications = append(applications, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return applications, nil
}

// Create inserts a new application. Omitted form data defaults to an empty
// JSON object.
func (s *SQLiteApplicationStore) Create(ctx context.Context, in *domain.RentalApplicationInput) (*domain.RentalApplication, error) {
	ts := now()
	status := defaultStr(in.Status, "submitted")
	if !domain.ApplicationStatusMachine.Valid(status) {
		return nil, fmt.Errorf("%w: unknown application status %q", domain.ErrInvalidTransition, status)
	}
	data := string(in.ApplicationData)
	if data == "" {
		data = "{}"
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO rental_applications (contact_id, vacancy_id, lead_id, template_id, application_data,
		 credit_check_passed, background_check_passed, income_verified, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ContactID, in.VacancyID, in.LeadID, in.TemplateID, data,
		in.CreditCheckPassed, in.BackgroundCheckPassed, in.IncomeVerified, status, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert application: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &domain.RentalApplication{
		ID:                    id,
		ContactID:             in.ContactID,
		VacancyID:             in.VacancyID,
		LeadID:                in.LeadID,
		TemplateID:            in.TemplateID,
		ApplicationData:       json.RawMessage(data),
		CreditCheckPassed:     in.CreditCheckPassed,
		BackgroundCheckPassed: in.BackgroundCheckPassed,
		IncomeVerified:        in.IncomeVerified,
		Status:                status,
		CreatedAt:             ts,
		UpdatedAt:             ts,
	}, nil
}

// Update shallow-merges the patch onto the existing application. A status
// change is validated against the application state machine.
func (s *SQLiteApplicationStore) Update(ctx context.Context, id int64, patch *domain.RentalApplicationUpdate) (*domain.RentalApplication, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		if err := domain.ApplicationStatusMachine.CheckTransition(a.Status, *patch.Status); err != nil {
			return nil, err
		}
		a.Status = *patch.Status
	}
	if patch.VacancyID != nil {
		a.VacancyID = patch.VacancyID
	}
	if patch.LeadID != nil {
		a.LeadID = patch.LeadID
	}
	if patch.TemplateID != nil {
		a.TemplateID = patch.TemplateID
	}
	if len(patch.ApplicationData) > 0 {
		a.ApplicationData = patch.ApplicationData
	}
	if patch.CreditCheckPassed != nil {
		a.CreditCheckPassed = patch.CreditCheckPassed
	}
	if patch.BackgroundCheckPassed != nil {
		a.BackgroundCheckPassed = patch.BackgroundCheckPassed
	}
	if patch.IncomeVerified != nil {
		a.IncomeVerified = patch.IncomeVerified
	}
	a.UpdatedAt = now()

	_, err = s.db.ExecContext(ctx,
		`UPDATE rental_applications SET vacancy_id = ?, lead_id = ?, template_id = ?,
		 application_data = ?, credit_check_passed = ?, background_check_passed = ?,
		 income_verified = ?, status = ?, updated_at = ? WHERE id = ?`,
		a.VacancyID, a.LeadID, a.TemplateID, string(a.ApplicationData),
		a.CreditCheckPassed, a.BackgroundCheckPassed, a.IncomeVerified, a.Status, a.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}
	return a, nil
}

// UpdateStatus advances only the application status, through the same state
// machine as Update.
func (s *SQLiteApplicationStore) UpdateStatus(ctx context.Context, id int64, status string) (*domain.RentalApplication, error) {
	return s.Update(ctx, id, &domain.RentalApplicationUpdate{Status: &status})
}

// Delete removes an application.
func (s *SQLiteApplicationStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM rental_applications WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete application: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
