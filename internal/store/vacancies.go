package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rentline/rentline/internal/domain"
)

// VacancyStore defines the interface for vacancy persistence.
type VacancyStore interface {
	Get(ctx context.Context, id int64) (*domain.Vacancy, error)
	List(ctx context.Context, status string) ([]*domain.Vacancy, error)
	ListListings(ctx context.Context) ([]*domain.VacancyListing, error)
	Create(ctx context.Context, in *domain.VacancyInput) (*domain.Vacancy, error)
	Update(ctx context.Context, id int64, patch *domain.VacancyUpdate) (*domain.Vacancy, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// SQLiteVacancyStore implements VacancyStore backed by SQLite.
type SQLiteVacancyStore struct {
	db *sql.DB
}

// NewSQLiteVacancyStore creates a new SQLiteVacancyStore.
func NewSQLiteVacancyStore(db *sql.DB) *SQLiteVacancyStore {
	return &SQLiteVacancyStore{db: db}
}

const vacancyColumns = `id, unit_id, rent_amount, deposit_amount, available_date, amenities, included_utilities, description, status, created_at, updated_at`

func scanVacancy(row interface{ Scan(...any) error }) (*domain.Vacancy, error) {
	var v domain.Vacancy
	var amenities, utilities string
	err := row.Scan(&v.ID, &v.UnitID, &v.RentAmount, &v.DepositAmount, &v.AvailableDate,
		&amenities, &utilities, &v.Description, &v.Status, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	v.Amenities = decodeList(amenities)
	v.IncludedUtilities = decodeList(utilities)
	return &v, nil
}

// Get retrieves a single vacancy by ID.
func (s *SQLiteVacancyStore) Get(ctx context.Context, id int64) (*domain.Vacancy, error) {
	v, err := scanVacancy(s.db.QueryRowContext(ctx,
		`SELECT `+vacancyColumns+` FROM vacancies WHERE id = ?`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get vacancy: %w", err)
	}
	return v, nil
}

// List returns vacancies, optionally filtered by status. The public listing
// view passes "active"; the management view passes "" for everything.
func (s *SQLiteVacancyStore) List(ctx context.Context, status string) ([]*domain.Vacancy, error) {
	query := `SELECT ` + vacancyColumns + ` FROM vacancies`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vacancies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	vacancies := []*domain.Vacancy{}
	for rows.Next() {
		v, err := scanVacancy(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vacancy: %w", err)
		}
		vacancies = append(vacancies, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return vacancies, nil
}

// ListListings returns every vacancy joined with its unit and property
// context for the management view.
func (s *SQLiteVacancyStore) ListListings(ctx context.Context) ([]*domain.VacancyListing, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT v.id, v.unit_id, v.rent_amount, v.deposit_amount, v.available_date,
		        v.amenities, v.included_utilities, v.description, v.status,
		        v.created_at, v.updated_at,
		        u.unit_number, p.id, p.name
		 FROM vacancies v
		 JOIN units u ON u.id = v.unit_id
		 JOIN properties p ON p.id = u.property_id
		 ORDER BY v.id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list vacancy listings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	listings := []*domain.VacancyListing{}
	for rows.Next() {
		var l domain.VacancyListing
		var amenities, utilities string
		if err := rows.Scan(&l.ID, &l.UnitID, &l.RentAmount, &l.DepositAmount, &l.AvailableDate,
			&amenities, &utilities, &l.Description, &l.Status, &l.CreatedAt, &l.UpdatedAt,
			&l.UnitNumber, &l.PropertyID, &l.PropertyName); err != nil {
			return nil, fmt.Errorf("scan vacancy listing: %w", err)
		}
		l.Amenities = decodeList(amenities)
		l.IncludedUtilities = decodeList(utilities)
		listings = append(listings, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return listings, nil
}

// Create inserts a new vacancy listing.
func (s *SQLiteVacancyStore) Create(ctx context.Context, in *domain.VacancyInput) (*domain.Vacancy, error) {
	ts := now()
	status := defaultStr(in.Status, "active")
	if !domain.VacancyStatusMachine.Valid(status) {
		return nil, fmt.Errorf("%w: unknown vacancy status %q", domain.ErrInvalidTransition, status)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO vacancies (unit_id, rent_amount, deposit_amount, available_date, amenities, included_utilities, description, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.UnitID, in.RentAmount, in.DepositAmount, in.AvailableDate,
		encodeList(in.Amenities), encodeList(in.IncludedUtilities), in.Description, status, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert vacancy: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	amenities := in.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	utilities := in.IncludedUtilities
	if utilities == nil {
		utilities = []string{}
	}

	return &domain.Vacancy{
		ID:                id,
		UnitID:            in.UnitID,
		RentAmount:        in.RentAmount,
		DepositAmount:     in.DepositAmount,
		AvailableDate:     in.AvailableDate,
		Amenities:         amenities,
		IncludedUtilities: utilities,
		Description:       in.Description,
		Status:            status,
		CreatedAt:         ts,
		UpdatedAt:         ts,
	}, nil
}

// Update shallow-merges the patch onto the existing vacancy. A status change
// is validated against the vacancy state machine.
func (s *SQLiteVacancyStore) Update(ctx context.Context, id int64, patch *domain.VacancyUpdate) (*domain.Vacancy, error) {
	v, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		if err := domain.VacancyStatusMachine.CheckTransition(v.Status, *patch.Status); err != nil {
			return nil, err
		}
		v.Status = *patch.Status
	}
	if patch.RentAmount != nil {
		v.RentAmount = *patch.RentAmount
	}
	if patch.DepositAmount != nil {
		v.DepositAmount = *patch.DepositAmount
	}
	if patch.AvailableDate != nil {
		v.AvailableDate = patch.AvailableDate
	}
	if patch.Amenities != nil {
		v.Amenities = patch.Amenities
	}
	if patch.IncludedUtilities != nil {
		v.IncludedUtilities = patch.IncludedUtilities
	}
	if patch.Description != nil {
		v.Description = patch.Description
	}
	v.UpdatedAt = now()

	_, err = s.db.ExecContext(ctx,
		`UPDATE vacancies SET rent_amount = ?, deposit_amount = ?, available_date = ?,
		 amenities = ?, included_utilities = ?, description = ?, status = ?, updated_at = ? WHERE id = ?`,
		v.RentAmount, v.DepositAmount, v.AvailableDate, encodeList(v.Amenities),
		encodeList(v.IncludedUtilities), v.Description, v.Status, v.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update vacancy: %w", err)
	}
	return v, nil
}

// Delete removes a vacancy.
func (s *SQLiteVacancyStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM vacancies WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete vacancy: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
