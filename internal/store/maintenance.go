package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rentline/rentline/internal/domain"
)

// MaintenanceStore defines the interface for maintenance request persistence.
type MaintenanceStore interface {
	Get(ctx context.Context, id int64) (*domain.MaintenanceRequest, error)
	List(ctx context.Context, status, priority string) ([]*domain.MaintenanceRequest, error)
	ListByUnit(ctx context.Context, unitID int64) ([]*domain.MaintenanceRequest, error)
	Create(ctx context.Context, in *domain.MaintenanceRequestInput) (*domain.MaintenanceRequest, error)
	Update(ctx context.Context, id int64, patch *domain.MaintenanceRequestUpdate) (*domain.MaintenanceRequest, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// SQLiteMaintenanceStore implements MaintenanceStore backed by SQLite.
type SQLiteMaintenanceStore struct {
	db *sql.DB
}

// NewSQLiteMaintenanceStore creates a new SQLiteMaintenanceStore.
func NewSQLiteMaintenanceStore(db *sql.DB) *SQLiteMaintenanceStore {
	return &SQLiteMaintenanceStore{db: db}
}

const maintenanceColumns = `id, unit_id, tenant_id, title, description, priority, status, assigned_vendor_id, created_at, updated_at`

func scanMaintenance(row interface{ Scan(...any) error }) (*domain.MaintenanceRequest, error) {
	var m domain.MaintenanceRequest
	err := row.Scan(&m.ID, &m.UnitID, &m.TenantID, &m.Title, &m.Description,
		&m.Priority, &m.Status, &m.AssignedVendorID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Get retrieves a single maintenance request by ID.
func (s *SQLiteMaintenanceStore) Get(ctx context.Context, id int64) (*domain.MaintenanceRequest, error) {
	m, err := scanMaintenance(s.db.QueryRowContext(ctx,
		`SELECT `+maintenanceColumns+` FROM maintenance_requests WHERE id = ?`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get maintenance request: %w", err)
	}
	return m, nil
}

func (s *SQLiteMaintenanceStore) listWhere(ctx context.Context, where string, args ...any) ([]*domain.MaintenanceRequest, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+maintenanceColumns+` FROM maintenance_requests `+where+` ORDER BY id ASC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list maintenance requests: %w", err)
	}
	defer func() { _ = rows.Close() }()

	requests := []*domain.MaintenanceRequest{}
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan maintenance request: %w", err)
		}
		requests = append(requests, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return requests, nil
}

// List returns all maintenance requests, optionally filtered by status and
// priority.
func (s *SQLiteMaintenanceStore) List(ctx context.Context, status, priority string) ([]*domain.MaintenanceRequest, error) {
	where := `WHERE 1=1`
	var args []any
	if status != "" {
		where += ` AND status = ?`
		args = append(args, status)
	}
	if priority != "" {
		where += ` AND priority = ?`
		args = append(args, priority)
	}
	return s.listWhere(ctx, where, args...)
}

// ListByUnit returns the maintenance requests for one unit.
func (s *SQLiteMaintenanceStore) ListByUnit(ctx context.Context, unitID int64) ([]*domain.MaintenanceRequest, error) {
	return s.listWhere(ctx, `WHERE unit_id = ?`, unitID)
}

// Create inserts a new maintenance request.
func (s *SQLiteMaintenanceStore) Create(ctx context.Context, in *domain.MaintenanceRequestInput) (*domain.MaintenanceRequest, error) {
	ts := now()
	priority := defaultStr(in.Priority, "normal")
	status := defaultStr(in.Status, "open")
	if !domain.MaintenanceStatusMachine.Valid(status) {
		return nil, fmt.Errorf("%w: unknown maintenance status %q", domain.ErrInvalidTransition, status)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO maintenance_requests (unit_id, tenant_id, title, description, priority, status, assigned_vendor_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.UnitID, in.TenantID, in.Title, in.Description, priority, status, in.AssignedVendorID, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert maintenance request: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &domain.MaintenanceRequest{
		ID:               id,
		UnitID:           in.UnitID,
		TenantID:         in.TenantID,
		Title:            in.Title,
		Description:      in.Description,
		Priority:         priority,
		Status:           status,
		AssignedVendorID: in.AssignedVendorID,
		CreatedAt:        ts,
		UpdatedAt:        ts,
	}, nil
}

// Update shallow-merges the patch onto the existing request. A status change
// is validated against the maintenance state machine.
func (s *SQLiteMaintenanceStore) Update(ctx context.Context, id int64, patch *domain.MaintenanceRequestUpdate) (*domain.MaintenanceRequest, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		if err := domain.MaintenanceStatusMachine.CheckTransition(m.Status, *patch.Status); err != nil {
			return nil, err
		}
		m.Status = *patch.Status
	}
	if patch.Title != nil {
		m.Title = *patch.Title
	}
	if patch.Description != nil {
		m.Description = patch.Description
	}
	if patch.Priority != nil {
		m.Priority = *patch.Priority
	}
	if patch.AssignedVendorID != nil {
		m.AssignedVendorID = patch.AssignedVendorID
	}
	m.UpdatedAt = now()

	_, err = s.db.ExecContext(ctx,
		`UPDATE maintenance_requests SET title = ?, description = ?, priority = ?, status = ?,
		 assigned_vendor_id = ?, updated_at = ? WHERE id = ?`,
		m.Title, m.Description, m.Priority, m.Status, m.AssignedVendorID, m.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update maintenance request: %w", err)
	}
	return m, nil
}

// Delete removes a maintenance request.
func (s *SQLiteMaintenanceStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM maintenance_requests WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete maintenance request: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
