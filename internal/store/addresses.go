package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rentline/rentline/internal/domain"
)

// AddressStore defines the interface for address persistence.
type AddressStore interface {
	Get(ctx context.Context, id int64) (*domain.Address, error)
	List(ctx context.Context) ([]*domain.Address, error)
	Create(ctx context.Context, in *domain.AddressInput) (*domain.Address, error)
	Update(ctx context.Context, id int64, patch *domain.AddressUpdate) (*domain.Address, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// SQLiteAddressStore implements AddressStore backed by SQLite.
type SQLiteAddressStore struct {
	db *sql.DB
}

// NewSQLiteAddressStore creates a new SQLiteAddressStore.
func NewSQLiteAddressStore(db *sql.DB) *SQLiteAddressStore {
	return &SQLiteAddressStore{db: db}
}

const addressColumns = `id, street, street2, city, state, zip, country, latitude, longitude, created_at, updated_at`

func scanAddress(row interface{ Scan(...any) error }) (*domain.Address, error) {
	var a domain.Address
	err := row.Scan(&a.ID, &a.Street, &a.Street2, &a.City, &a.State, &a.Zip,
		&a.Country, &a.Latitude, &a.Longitude, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Get retrieves a single address by ID.
func (s *SQLiteAddressStore) Get(ctx context.Context, id int64) (*domain.Address, error) {
	a, err := scanAddress(s.db.QueryRowContext(ctx,
		`SELECT `+addressColumns+` FROM addresses WHERE id = ?`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get address: %w", err)
	}
	return a, nil
}

// List returns all addresses.
func (s *SQLiteAddressStore) List(ctx context.Context) ([]*domain.Address, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+addressColumns+` FROM addresses ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	addresses := []*domain.Address{}
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		addresses = append(addresses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return addresses, nil
}

// Create inserts a new address.
func (s *SQLiteAddressStore) Create(ctx context.Context, in *domain.AddressInput) (*domain.Address, error) {
	ts := now()
	country := defaultStr(in.Country, "US")

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO addresses (street, street2, city, state, zip, country, latitude, longitude, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Street, in.Street2, in.City, in.State, in.Zip, country, in.Latitude, in.Longitude, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert address: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &domain.Address{
		ID:        id,
		Street:    in.Street,
		Street2:   in.Street2,
		City:      in.City,
		State:     in.State,
		Zip:       in.Zip,
		Country:   country,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		CreatedAt: ts,
		UpdatedAt: ts,
	}, nil
}

// Update shallow-merges the patch onto the existing address.
func (s *SQLiteAddressStore) Update(ctx context.Context, id int64, patch *domain.AddressUpdate) (*domain.Address, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Street != nil {
		a.Street = *patch.Street
	}
	if patch.Street2 != nil {
		a.Street2 = patch.Street2
	}
	if patch.City != nil {
		a.City = *patch.City
	}
	if patch.State != nil {
		a.State = *patch.State
	}
	if patch.Zip != nil {
		a.Zip = *patch.Zip
	}
	if patch.Country != nil {
		a.Country = *patch.Country
	}
	if patch.Latitude != nil {
		a.Latitude = patch.Latitude
	}
	if patch.Longitude != nil {
		a.Longitude = patch.Longitude
	}
	a.UpdatedAt = now()

	_, err = s.db.ExecContext(ctx,
		`UPDATE addresses SET street = ?, street2 = ?, city = ?, state = ?, zip = ?,
		 country = ?, latitude = ?, longitude = ?, updated_at = ? WHERE id = ?`,
		a.Street, a.Street2, a.City, a.State, a.Zip, a.Country, a.Latitude, a.Longitude, a.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update address: %w", err)
	}
	return a, nil
}

// Delete removes an address and every contact_addresses join row that
// references it. This is the only cascade in the system.
func (s *SQLiteAddressStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM addresses WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete address: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM contact_addresses WHERE address_id = ?`, id); err != nil {
		return false, fmt.Errorf("cascade contact addresses: %w", err)
	}
	return true, nil
}
