package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rentline/rentline/internal/domain"
)

// UnitStore defines the interface for unit persistence.
type UnitStore interface {
	Get(ctx context.Context, id int64) (*domain.Unit, error)
	List(ctx context.Context, status string) ([]*domain.Unit, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]*domain.Unit, error)
	Create(ctx context.Context, in *domain.UnitInput) (*domain.Unit, error)
	Update(ctx context.Context, id int64, patch *domain.UnitUpdate) (*domain.Unit, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// SQLiteUnitStore implements UnitStore backed by SQLite.
type SQLiteUnitStore struct {
	db *sql.DB
}

// NewSQLiteUnitStore creates a new SQLiteUnitStore.
func NewSQLiteUnitStore(db *sql.DB) *SQLiteUnitStore {
	return &SQLiteUnitStore{db: db}
}

const unitColumns = `id, property_id, unit_number, bedrooms, bathrooms, square_feet, market_rent, status, created_at, updated_at`

func scanUnit(row interface{ Scan(...any) error }) (*domain.Unit, error) {
	var u domain.Unit
	err := row.Scan(&u.ID, &u.PropertyID, &u.UnitNumber, &u.Bedrooms, &u.Bathrooms,
		&u.SquareFeet, &u.MarketRent, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Get retrieves a single unit by ID.
func (s *SQLiteUnitStore) Get(ctx context.Context, id int64) (*domain.Unit, error) {
	u, err := scanUnit(s.db.QueryRowContext(ctx,
		`SELECT `+unitColumns+` FROM units WHERE id = ?`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return u, nil
}

func (s *SQLiteUnitStore) listWhere(ctx context.Context, where string, args ...any) ([]*domain.Unit, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+unitColumns+` FROM units `+where+` ORDER BY id ASC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer func() { _ = rows.Close() }()

	units := []*domain.Unit{}
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return units, nil
}

// List returns all units, optionally filtered by occupancy status.
func (s *SQLiteUnitStore) List(ctx context.Context, status string) ([]*domain.Unit, error) {
	if status != "" {
		return s.listWhere(ctx, `WHERE status = ?`, status)
	}
	return s.listWhere(ctx, ``)
}

// ListByProperty returns the units belonging to one property.
func (s *SQLiteUnitStore) ListByProperty(ctx context.Context, propertyID int64) ([]*domain.Unit, error) {
	return s.listWhere(ctx, `WHERE property_id = ?`, propertyID)
}

// Create inserts a new unit.
func (s *SQLiteUnitStore) Create(ctx context.Context, in *domain.UnitInput) (*domain.Unit, error) {
	ts := now()
	status := defaultStr(in.Status, "vacant")

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO units (property_id, unit_number, bedrooms, bathrooms, square_feet, market_rent, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.PropertyID, in.UnitNumber, in.Bedrooms, in.Bathrooms, in.SquareFeet, in.MarketRent, status, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert unit: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &domain.Unit{
		ID:         id,
		PropertyID: in.PropertyID,
		UnitNumber: in.UnitNumber,
		Bedrooms:   in.Bedrooms,
		Bathrooms:  in.Bathrooms,
		SquareFeet: in.SquareFeet,
		MarketRent: in.MarketRent,
		Status:     status,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}, nil
}

// Update shallow-merges the patch onto the existing unit. Occupancy status
// moves freely between vacant, occupied, and maintenance; only unknown values
// are rejected.
func (s *SQLiteUnitStore) Update(ctx context.Context, id int64, patch *domain.UnitUpdate) (*domain.Unit, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.UnitNumber != nil {
		u.UnitNumber = *patch.UnitNumber
	}
	if patch.Bedrooms != nil {
		u.Bedrooms = *patch.Bedrooms
	}
	if patch.Bathrooms != nil {
		u.Bathrooms = *patch.Bathrooms
	}
	if patch.SquareFeet != nil {
		u.SquareFeet = patch.SquareFeet
	}
	if patch.MarketRent != nil {
		u.MarketRent = *patch.MarketRent
	}
	if patch.Status != nil {
		valid := false
		for _, st := range domain.UnitStatuses {
			if st == *patch.Status {
				valid = true
			}
		}
		if !valid {
			return nil, fmt.Errorf("%w: unknown unit status %q", domain.ErrInvalidTransition, *patch.Status)
		}
		u.Status = *patch.Status
	}
	u.UpdatedAt = now()

	_, err = s.db.ExecContext(ctx,
		`UPDATE units SET unit_number = ?, bedrooms = ?, bathrooms = ?, square_feet = ?,
		 market_rent = ?, status = ?, updated_at = ? WHERE id = ?`,
		u.UnitNumber, u.Bedrooms, u.Bathrooms, u.SquareFeet, u.MarketRent, u.Status, u.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update unit: %w", err)
	}
	return u, nil
}

// Delete removes a unit.
func (s *SQLiteUnitStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM units WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete unit: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
