package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rentline/rentline/internal/domain"
)

// PaymentStore defines the interface for payment persistence.
type PaymentStore interface {
	Get(ctx context.Context, id int64) (*domain.Payment, error)
	List(ctx context.Context, status string) ([]*domain.Payment, error)
	ListByLease(ctx context.Context, leaseID int64) ([]*domain.Payment, error)
	Create(ctx context.Context, in *domain.PaymentInput) (*domain.Payment, error)
	Update(ctx context.Context, id int64, patch *domain.PaymentUpdate) (*domain.Payment, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// SQLitePaymentStore implements PaymentStore backed by SQLite.
type SQLitePaymentStore struct {
	db *sql.DB
}

// NewSQLitePaymentStore creates a new SQLitePaymentStore.
func NewSQLitePaymentStore(db *sql.DB) *SQLitePaymentStore {
	return &SQLitePaymentStore{db: db}
}

const paymentColumns = `id, lease_id, amount, payment_date, payment_type, status, notes, created_at, updated_at`

func scanPayment(row interface{ Scan(...any) error }) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(&p.ID, &p.LeaseID, &p.Amount, &p.PaymentDate, &p.PaymentType,
		&p.Status, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Get retrieves a single payment by ID.
func (s *SQLitePaymentStore) Get(ctx context.Context, id int64) (*domain.Payment, error) {
	p, err := scanPayment(s.db.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = ?`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

func (s *SQLitePaymentStore) listWhere(ctx context.Context, where string, args ...any) ([]*domain.Payment, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+paymentColumns+` FROM payments `+where+` ORDER BY id ASC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	payments := []*domain.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return payments, nil
}

// List returns all payments, optionally filtered by status.
func (s *SQLitePaymentStore) List(ctx context.Context, status string) ([]*domain.Payment, error) {
	if status != "" {
		return s.listWhere(ctx, `WHERE status = ?`, status)
	}
	return s.listWhere(ctx, ``)
}

// ListByLease returns the payments made against one lease.
func (s *SQLitePaymentStore) ListByLease(ctx context.Context, leaseID int64) ([]*domain.Payment, error) {
	return s.listWhere(ctx, `WHERE lease_id = ?`, leaseID)
}

// Create inserts a new payment.
func (s *SQLitePaymentStore) Create(ctx context.Context, in *domain.PaymentInput) (*domain.Payment, error) {
	ts := now()
	paymentType := defaultStr(in.PaymentType, "rent")
	status := defaultStr(in.Status, "pending")
	if !domain.PaymentStatusMachine.Valid(status) {
		return nil, fmt.Errorf("%w: unknown payment status %q", domain.ErrInvalidTransition, status)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO payments (lease_id, amount, payment_date, payment_type, status, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		in.LeaseID, in.Amount, in.PaymentDate, paymentType, status, in.Notes, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &domain.Payment{
		ID:          id,
		LeaseID:     in.LeaseID,
		Amount:      in.Amount,
		PaymentDate: in.PaymentDate,
		PaymentType: paymentType,
		Status:      status,
		Notes:       in.Notes,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}, nil
}

// Update shallow-merges the patch onto the existing payment. A status change
// is validated against the payment state machine.
func (s *SQLitePaymentStore) Update(ctx context.Context, id int64, patch *domain.PaymentUpdate) (*domain.Payment, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		if err := domain.PaymentStatusMachine.CheckTransition(p.Status, *patch.Status); err != nil {
			return nil, err
		}
		p.Status = *patch.Status
	}
	if patch.Amount != nil {
		p.Amount = *patch.Amount
	}
	if patch.PaymentDate != nil {
		p.PaymentDate = *patch.PaymentDate
	}
	if patch.PaymentType != nil {
		p.PaymentType = *patch.PaymentType
	}
	if patch.Notes != nil {
		p.Notes = patch.Notes
	}
	p.UpdatedAt = now()

	_, err = s.db.ExecContext(ctx,
		`UPDATE payments SET amount = ?, payment_date = ?, payment_type = ?, status = ?,
		 notes = ?, updated_at = ? WHERE id = ?`,
		p.Amount, p.PaymentDate, p.PaymentType, p.Status, p.Notes, p.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}
	return p, nil
}

// Delete removes a payment.
func (s *SQLitePaymentStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM payments WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete payment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
