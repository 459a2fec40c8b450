package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rentline/rentline/internal/domain"
)

// LeadStore defines the interface for lead persistence.
type LeadStore interface {
	Get(ctx context.Context, id int64) (*domain.Lead, error)
	List(ctx context.Context, status string) ([]*domain.Lead, error)
	Create(ctx context.Context, in *domain.LeadInput) (*domain.Lead, error)
	Update(ctx context.Context, id int64, patch *domain.LeadUpdate) (*domain.Lead, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// SQLiteLeadStore implements LeadStore backed by SQLite.
type SQLiteLeadStore struct {
	db *sql.DB
}

// NewSQLiteLeadStore creates a new SQLiteLeadStore.
func NewSQLiteLeadStore(db *sql.DB) *SQLiteLeadStore {
	return &SQLiteLeadStore{db: db}
}

const leadColumns = `id, contact_id, vacancy_id, source, notes, status, created_at, updated_at`

func scanLead(row interface{ Scan(...any) error }) (*domain.Lead, error) {
	var l domain.Lead
	err := row.Scan(&l.ID, &l.ContactID, &l.VacancyID, &l.Source, &l.Notes,
		&l.Status, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Get retrieves a single lead by ID.
func (s *SQLiteLeadStore) Get(ctx context.Context, id int64) (*domain.Lead, error) {
	l, err := scanLead(s.db.QueryRowContext(ctx,
		`SELECT `+leadColumns+` FROM leads WHERE id = ?`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return l, nil
}

// List returns all leads, optionally filtered by funnel status.
func (s *SQLiteLeadStore) List(ctx context.Context, status string) ([]*domain.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer func() { _ = rows.Close() }()

	leads := []*domain.Lead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return leads, nil
}

// Create inserts a new lead.
func (s *SQLiteLeadStore) Create(ctx context.Context, in *domain.LeadInput) (*domain.Lead, error) {
	ts := now()
	status := defaultStr(in.Status, "new")
	if !domain.LeadStatusMachine.Valid(status) {
		return nil, fmt.Errorf("%w: unknown lead status %q", domain.ErrInvalidTransition, status)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO leads (contact_id, vacancy_id, source, notes, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		in.ContactID, in.VacancyID, in.Source, in.Notes, status, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert lead: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &domain.Lead{
		ID:        id,
		ContactID: in.ContactID,
		VacancyID: in.VacancyID,
		Source:    in.Source,
		Notes:     in.Notes,
		Status:    status,
		CreatedAt: ts,
		UpdatedAt: ts,
	}, nil
}

// Update shallow-merges the patch onto the existing lead. A status change is
// validated against the lead funnel.
func (s *SQLiteLeadStore) Update(ctx context.Context, id int64, patch *domain.LeadUpdate) (*domain.Lead, error) {
	l, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		if err := domain.LeadStatusMachine.CheckTransition(l.Status, *patch.Status); err != nil {
			return nil, err
		}
		l.Status = *patch.Status
	}
	if patch.VacancyID != nil {
		l.VacancyID = patch.VacancyID
	}
	if patch.Source != nil {
		l.Source = patch.Source
	}
	if patch.Notes != nil {
		l.Notes = patch.Notes
	}
	l.UpdatedAt = now()

	_, err = s.db.ExecContext(ctx,
		`UPDATE leads SET vacancy_id = ?, source = ?, notes = ?, status = ?, updated_at = ? WHERE id = ?`,
		l.VacancyID, l.Source, l.Notes, l.Status, l.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update lead: %w", err)
	}
	return l, nil
}

// Delete removes a lead.
func (s *SQLiteLeadStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM leads WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete lead: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
