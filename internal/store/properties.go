package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rentline/rentline/internal/domain"
)

// PropertyStore defines the interface for property persistence.
type PropertyStore interface {
	Get(ctx context.Context, id int64) (*domain.Property, error)
	List(ctx context.Context, status string) ([]*domain.Property, error)
	Create(ctx context.Context, in *domain.PropertyInput) (*domain.Property, error)
	Update(ctx context.Context, id int64, patch *domain.PropertyUpdate) (*domain.Property, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// SQLitePropertyStore implements PropertyStore backed by SQLite.
type SQLitePropertyStore struct {
	db *sql.DB
}

// NewSQLitePropertyStore creates a new SQLitePropertyStore.
func NewSQLitePropertyStore(db *sql.DB) *SQLitePropertyStore {
	return &SQLitePropertyStore{db: db}
}

const propertyColumns = `id, name, street, city, state, zip, property_type, year_built, total_units, status, created_at, updated_at`

func scanProperty(row interface{ Scan(...any) error }) (*domain.Property, error) {
	var p domain.Property
	err := row.Scan(&p.ID, &p.Name, &p.Street, &p.City, &p.State, &p.Zip,
		&p.PropertyType, &p.YearBuilt, &p.TotalUnits, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Get retrieves a single property by ID.
func (s *SQLitePropertyStore) Get(ctx context.Context, id int64) (*domain.Property, error) {
	p, err := scanProperty(s.db.QueryRowContext(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE id = ?`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get property: %w", err)
	}
	return p, nil
}

// List returns all properties, optionally filtered by status.
func (s *SQLitePropertyStore) List(ctx context.Context, status string) ([]*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer func() { _ = rows.Close() }()

	properties := []*domain.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return properties, nil
}

// Create inserts a new property.
func (s *SQLitePropertyStore) Create(ctx context.Context, in *domain.PropertyInput) (*domain.Property, error) {
	ts := now()
	propertyType := defaultStr(in.PropertyType, "residential")
	status := defaultStr(in.Status, "active")

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO properties (name, street, city, state, zip, property_type, year_built, total_units, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Name, in.Street, in.City, in.State, in.Zip, propertyType, in.YearBuilt, in.TotalUnits, status, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert property: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &domain.Property{
		ID:           id,
		Name:         in.Name,
		Street:       in.Street,
		City:         in.City,
		State:        in.State,
		Zip:          in.Zip,
		PropertyType: propertyType,
		YearBuilt:    in.YearBuilt,
		TotalUnits:   in.TotalUnits,
		Status:       status,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}, nil
}

// Update shallow-merges the patch onto the existing property.
func (s *SQLitePropertyStore) Update(ctx context.Context, id int64, patch *domain.PropertyUpdate) (*domain.Property, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Street != nil {
		p.Street = *patch.Street
	}
	if patch.City != nil {
		p.City = *patch.City
	}
	if patch.State != nil {
		p.State = *patch.State
	}
	if patch.Zip != nil {
		p.Zip = *patch.Zip
	}
	if patch.PropertyType != nil {
		p.PropertyType = *patch.PropertyType
	}
	if patch.YearBuilt != nil {
		p.YearBuilt = patch.YearBuilt
	}
	if patch.TotalUnits != nil {
		p.TotalUnits = *patch.TotalUnits
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	p.UpdatedAt = now()

	_, err = s.db.ExecContext(ctx,
		`UPDATE properties SET name = ?, street = ?, city = ?, state = ?, zip = ?,
		 property_type = ?, year_built = ?, total_units = ?, status = ?, updated_at = ? WHERE id = ?`,
		p.Name, p.Street, p.City, p.State, p.Zip, p.PropertyType, p.YearBuilt,
		p.TotalUnits, p.Status, p.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update property: %w", err)
	}
	return p, nil
}

// Delete removes a property. Units, leases, and assets referencing it are
// left dangling on purpose.
func (s *SQLitePropertyStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM properties WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete property: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
