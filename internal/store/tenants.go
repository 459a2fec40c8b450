package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rentline/rentline/internal/domain"
)

// TenantStore defines the interface for tenant persistence.
type TenantStore interface {
	Get(ctx context.Context, id int64) (*domain.Tenant, error)
	List(ctx context.Context) ([]*domain.Tenant, error)
	GetByContact(ctx context.Context, contactID int64) (*domain.Tenant, error)
	Create(ctx context.Context, in *domain.TenantInput) (*domain.Tenant, error)
	Update(ctx context.Context, id int64, patch *domain.TenantUpdate) (*domain.Tenant, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// SQLiteTenantStore implements TenantStore backed by SQLite.
type SQLiteTenantStore struct {
	db *sql.DB
}

// NewSQLiteTenantStore creates a new SQLiteTenantStore.
func NewSQLiteTenantStore(db *sql.DB) *SQLiteTenantStore {
	return &SQLiteTenantStore{db: db}
}

const tenantColumns = `id, contact_id, ssn, employer, employer_phone, monthly_income,
	emergency_contact_name, emergency_contact_phone, created_at, updated_at`

func scanTenant(row interface{ Scan(...any) error }) (*domain.Tenant, error) {
	var t domain.Tenant
	err := row.Scan(&t.ID, &t.ContactID, &t.SSN, &t.Employer, &t.EmployerPhone,
		&t.MonthlyIncome, &t.EmergencyContactName, &t.EmergencyContactPhone,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Get retrieves a single tenant by ID.
func (s *SQLiteTenantStore) Get(ctx context.Context, id int64) (*domain.Tenant, error) {
	t, err := scanTenant(s.db.QueryRowContext(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE id = ?`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return t, nil
}

// GetByContact retrieves the tenant record for a contact, if any.
func (s *SQLiteTenantStore) GetByContact(ctx context.Context, contactID int64) (*domain.Tenant, error) {
	t, err := scanTenant(s.db.QueryRowContext(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE contact_id = ? ORDER BY id ASC LIMIT 1`, contactID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get tenant by contact: %w", err)
	}
	return t, nil
}

// List returns all tenants.
func (s *SQLiteTenantStore) List(ctx context.Context) ([]*domain.Tenant, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+tenantColumns+` FROM tenants ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tenants := []*domain.Tenant{}
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return tenants, nil
}

// Create inserts a new tenant.
func (s *SQLiteTenantStore) Create(ctx context.Context, in *domain.TenantInput) (*domain.Tenant, error) {
	ts := now()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tenants (contact_id, ssn, employer, employer_phone, monthly_income,
		 emergency_contact_name, emergency_contact_phone, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ContactID, in.SSN, in.Employer, in.EmployerPhone, in.MonthlyIncome,
		in.EmergencyContactName, in.EmergencyContactPhone, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert tenant: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &domain.Tenant{
		ID:                    id,
		ContactID:             in.ContactID,
		SSN:                   in.SSN,
		Employer:              in.Employer,
		EmployerPhone:         in.EmployerPhone,
		MonthlyIncome:         in.MonthlyIncome,
		EmergencyContactName:  in.EmergencyContactName,
		EmergencyContactPhone: in.EmergencyContactPhone,
		CreatedAt:             ts,
		UpdatedAt:             ts,
	}, nil
}

// Update shallow-merges the patch onto the existing tenant.
func (s *SQLiteTenantStore) Update(ctx context.Context, id int64, patch *domain.TenantUpdate) (*domain.Tenant, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.SSN != nil {
		t.SSN = patch.SSN
	}
	if patch.Employer != nil {
		t.Employer = patch.Employer
	}
	if patch.EmployerPhone != nil {
		t.EmployerPhone = patch.EmployerPhone
	}
	if patch.MonthlyIncome != nil {
		t.MonthlyIncome = patch.MonthlyIncome
	}
	if patch.EmergencyContactName != nil {
		t.EmergencyContactName = patch.EmergencyContactName
	}
	if patch.EmergencyContactPhone != nil {
		t.EmergencyContactPhone = patch.EmergencyContactPhone
	}
	t.UpdatedAt = now()

	_, err = s.db.ExecContext(ctx,
		`UPDATE tenants SET ssn = ?, employer = ?, employer_phone = ?, monthly_income = ?,
		 emergency_contact_name = ?, emergency_contact_phone = ?, updated_at = ? WHERE id = ?`,
		t.SSN, t.Employer, t.EmployerPhone, t.MonthlyIncome,
		t.EmergencyContactName, t.EmergencyContactPhone, t.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update tenant: %w", err)
	}
	return t, nil
}

// Delete removes a tenant.
func (s *SQLiteTenantStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tenants WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete tenant: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
