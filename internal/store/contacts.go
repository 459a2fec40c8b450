package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rentline/rentline/internal/domain"
)

// ContactStore defines the interface for contact persistence, including the
// contact↔address link operations.
type ContactStore interface {
	Get(ctx context.Context, id int64) (*domain.Contact, error)
	List(ctx context.Context, contactType, status string) ([]*domain.Contact, error)
	Create(ctx context.Context, in *domain.ContactInput) (*domain.Contact, error)
	Update(ctx context.Context, id int64, patch *domain.ContactUpdate) (*domain.Contact, error)
	Delete(ctx context.Context, id int64) (bool, error)

	AddAddress(ctx context.Context, contactID int64, in *domain.LinkAddressInput) (*domain.ContactAddress, error)
	Addresses(ctx context.Context, contactID int64) ([]*domain.LinkedAddress, error)
	RemoveAddress(ctx context.Context, contactID, addressID int64) (bool, error)
}

// SQLiteContactStore implements ContactStore backed by SQLite.
type SQLiteContactStore struct {
	db *sql.DB
}

// NewSQLiteContactStore creates a new SQLiteContactStore.
func NewSQLiteContactStore(db *sql.DB) *SQLiteContactStore {
	return &SQLiteContactStore{db: db}
}

const contactColumns = `id, first_name, last_name, email, phone, contact_type, status, notes, created_at, updated_at`

func scanContact(row interface{ Scan(...any) error }) (*domain.Contact, error) {
	var c domain.Contact
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
		&c.ContactType, &c.Status, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Get retrieves a single contact by ID.
func (s *SQLiteContactStore) Get(ctx context.Context, id int64) (*domain.Contact, error) {
	c, err := scanContact(s.db.QueryRowContext(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = ?`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

// List returns all contacts, optionally filtered by type and status.
func (s *SQLiteContactStore) List(ctx context.Context, contactType, status string) ([]*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE 1=1`
	var args []any
	if contactType != "" {
		query += ` AND contact_type = ?`
		args = append(args, contactType)
	}
	if status != "" {
		query += ` AND status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	contacts := []*domain.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return contacts, nil
}

// Create inserts a new contact, filling declared defaults for omitted fields.
func (s *SQLiteContactStore) Create(ctx context.Context, in *domain.ContactInput) (*domain.Contact, error) {
	ts := now()
	contactType := defaultStr(in.ContactType, "other")
	status := defaultStr(in.Status, "active")

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO contacts (first_name, last_name, email, phone, contact_type, status, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.FirstName, in.LastName, in.Email, in.Phone, contactType, status, in.Notes, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &domain.Contact{
		ID:          id,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
		ContactType: contactType,
		Status:      status,
		Notes:       in.Notes,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}, nil
}

// Update shallow-merges the patch onto the existing contact and re-stamps
// updatedAt.
func (s *SQLiteContactStore) Update(ctx context.Context, id int64, patch *domain.ContactUpdate) (*domain.Contact, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.FirstName != nil {
		c.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		c.LastName = *patch.LastName
	}
	if patch.Email != nil {
		c.Email = patch.Email
	}
	if patch.Phone != nil {
		c.Phone = patch.Phone
	}
	if patch.ContactType != nil {
		c.ContactType = *patch.ContactType
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	if patch.Notes != nil {
		c.Notes = patch.Notes
	}
	c.UpdatedAt = now()

	_, err = s.db.ExecContext(ctx,
		`UPDATE contacts SET first_name = ?, last_name = ?, email = ?, phone = ?,
		 contact_type = ?, status = ?, notes = ?, updated_at = ? WHERE id = ?`,
		c.FirstName, c.LastName, c.Email, c.Phone, c.ContactType, c.Status, c.Notes, c.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}
	return c, nil
}

// Delete removes a contact. It does not cascade: tenants, leads, and
// applications referencing the contact are left dangling on purpose.
func (s *SQLiteContactStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete contact: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// AddAddress links an address to a contact. When the new link is primary, any
// other primary flag for the same contact is cleared first, so at most one
// primary address per contact ever exists.
func (s *SQLiteContactStore) AddAddress(ctx context.Context, contactID int64, in *domain.LinkAddressInput) (*domain.ContactAddress, error) {
	if _, err := s.Get(ctx, contactID); err != nil {
		return nil, fmt.Errorf("contact %d: %w", contactID, err)
	}
	var exists int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM addresses WHERE id = ?`, in.AddressID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check address: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("address %d: %w", in.AddressID, ErrNotFound)
	}

	ts := now()
	if in.IsPrimary {
		if _, err := s.db.ExecContext(ctx,
			`UPDATE contact_addresses SET is_primary = FALSE, updated_at = ? WHERE contact_id = ? AND is_primary = TRUE`,
			ts, contactID,
		); err != nil {
			return nil, fmt.Errorf("clear primary flags: %w", err)
		}
	}

	addressType := defaultStr(in.AddressType, "home")
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_addresses (contact_id, address_id, address_type, is_primary, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		contactID, in.AddressID, addressType, in.IsPrimary, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert contact address: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &domain.ContactAddress{
		ID:          id,
		ContactID:   contactID,
		AddressID:   in.AddressID,
		AddressType: addressType,
		IsPrimary:   in.IsPrimary,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}, nil
}

// Addresses returns the addresses linked to a contact with their link
// metadata, primary first.
func (s *SQLiteContactStore) Addresses(ctx context.Context, contactID int64) ([]*domain.LinkedAddress, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT a.id, a.street, a.street2, a.city, a.state, a.zip, a.country,
		        a.latitude, a.longitude, a.created_at, a.updated_at,
		        ca.address_type, ca.is_primary
		 FROM contact_addresses ca
		 JOIN addresses a ON a.id = ca.address_id
		 WHERE ca.contact_id = ?
		 ORDER BY ca.is_primary DESC, ca.id ASC`,
		contactID,
	)
	if err != nil {
		return nil, fmt.Errorf("list contact addresses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	addresses := []*domain.LinkedAddress{}
	for rows.Next() {
		var la domain.LinkedAddress
		if err := rows.Scan(&la.ID, &la.Street, &la.Street2, &la.City, &la.State, &la.Zip,
			&la.Country, &la.Latitude, &la.Longitude, &la.CreatedAt, &la.UpdatedAt,
			&la.AddressType, &la.IsPrimary); err != nil {
			return nil, fmt.Errorf("scan linked address: %w", err)
		}
		addresses = append(addresses, &la)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return addresses, nil
}

// RemoveAddress unlinks an address from a contact. The address itself is
// left in place.
func (s *SQLiteContactStore) RemoveAddress(ctx context.Context, contactID, addressID int64) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM contact_addresses WHERE contact_id = ? AND address_id = ?`,
		contactID, addressID,
	)
	if err != nil {
		return false, fmt.Errorf("remove contact address: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
