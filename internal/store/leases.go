package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rentline/rentline/internal/domain"
)

// LeaseStore defines the interface for lease persistence.
type LeaseStore interface {
	Get(ctx context.Context, id int64) (*domain.Lease, error)
	List(ctx context.Context, status string) ([]*domain.Lease, error)
	ListByUnit(ctx context.Context, unitID int64) ([]*domain.Lease, error)
	ListByTenant(ctx context.Context, tenantID int64) ([]*domain.Lease, error)
	Create(ctx context.Context, in *domain.LeaseInput) (*domain.Lease, error)
	Update(ctx context.Context, id int64, patch *domain.LeaseUpdate) (*domain.Lease, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// SQLiteLeaseStore implements LeaseStore backed by SQLite.
type SQLiteLeaseStore struct {
	db *sql.DB
}

// NewSQLiteLeaseStore creates a new SQLiteLeaseStore.
func NewSQLiteLeaseStore(db *sql.DB) *SQLiteLeaseStore {
	return &SQLiteLeaseStore{db: db}
}

const leaseColumns = `id, unit_id, tenant_id, start_date, end_date, rent_amount, security_deposit, status, created_at, updated_at`

func scanLease(row interface{ Scan(...any) error }) (*domain.Lease, error) {
	var l domain.Lease
	err := row.Scan(&l.ID, &l.UnitID, &l.TenantID, &l.StartDate, &l.EndDate,
		&l.RentAmount, &l.SecurityDeposit, &l.Status, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Get retrieves a single lease by ID.
func (s *SQLiteLeaseStore) Get(ctx context.Context, id int64) (*domain.Lease, error) {
	l, err := scanLease(s.db.QueryRowContext(ctx,
		`SELECT `+leaseColumns+` FROM leases WHERE id = ?`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get lease: %w", err)
	}
	return l, nil
}

func (s *SQLiteLeaseStore) listWhere(ctx context.Context, where string, args ...any) ([]*domain.Lease, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+leaseColumns+` FROM leases `+where+` ORDER BY id ASC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list leases: %w", err)
	}
	defer func() { _ = rows.Close() }()

	leases := []*domain.Lease{}
	for rows.Next() {
		l, err := scanLease(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lease: %w", err)
		}
		leases = append(leases, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return leases, nil
}

// List returns all leases, optionally filtered by status.
func (s *SQLiteLeaseStore) List(ctx context.Context, status string) ([]*domain.Lease, error) {
	if status != "" {
		return s.listWhere(ctx, `WHERE status = ?`, status)
	}
	return s.listWhere(ctx, ``)
}

// ListByUnit returns the leases for one unit.
func (s *SQLiteLeaseStore) ListByUnit(ctx context.Context, unitID int64) ([]*domain.Lease, error) {
	return s.listWhere(ctx, `WHERE unit_id = ?`, unitID)
}

// ListByTenant returns the leases for one tenant.
func (s *SQLiteLeaseStore) ListByTenant(ctx context.Context, tenantID int64) ([]*domain.Lease, error) {
	return s.listWhere(ctx, `WHERE tenant_id = ?`, tenantID)
}

// Create inserts a new lease.
func (s *SQLiteLeaseStore) Create(ctx context.Context, in *domain.LeaseInput) (*domain.Lease, error) {
	ts := now()
	status := defaultStr(in.Status, "active")
	if !domain.LeaseStatusMachine.Valid(status) {
		return nil, fmt.Errorf("%w: unknown lease status %q", domain.ErrInvalidTransition, status)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO leases (unit_id, tenant_id, start_date, end_date, rent_amount, security_deposit, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.UnitID, in.TenantID, in.StartDate, in.EndDate, in.RentAmount, in.SecurityDeposit, status, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert lease: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &domain.Lease{
		ID:              id,
		UnitID:          in.UnitID,
		TenantID:        in.TenantID,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		RentAmount:      in.RentAmount,
		SecurityDeposit: in.SecurityDeposit,
		Status:          status,
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}, nil
}

// Update shallow-merges the patch onto the existing lease. A status change
// is validated against the lease state machine.
func (s *SQLiteLeaseStore) Update(ctx context.Context, id int64, patch *domain.LeaseUpdate) (*domain.Lease, error) {
	l, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		if err := domain.LeaseStatusMachine.CheckTransition(l.Status, *patch.Status); err != nil {
			return nil, err
		}
		l.Status = *patch.Status
	}
	if patch.StartDate != nil {
		l.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		l.EndDate = *patch.EndDate
	}
	if patch.RentAmount != nil {
		l.RentAmount = *patch.RentAmount
	}
	if patch.SecurityDeposit != nil {
		l.SecurityDeposit = *patch.SecurityDeposit
	}
	l.UpdatedAt = now()

	_, err = s.db.ExecContext(ctx,
		`UPDATE leases SET start_date = ?, end_date = ?, rent_amount = ?, security_deposit = ?,
		 status = ?, updated_at = ? WHERE id = ?`,
		l.StartDate, l.EndDate, l.RentAmount, l.SecurityDeposit, l.Status, l.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update lease: %w", err)
	}
	return l, nil
}

// Delete removes a lease. Payments referencing it are left dangling.
func (s *SQLiteLeaseStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM leases WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete lease: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
