package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rentline/rentline/internal/domain"
)

// CommunicationStore defines the interface for communication log persistence.
type CommunicationStore interface {
	Get(ctx context.Context, id int64) (*domain.CommunicationLog, error)
	List(ctx context.Context) ([]*domain.CommunicationLog, error)
	ListByContact(ctx context.Context, contactID int64) ([]*domain.CommunicationLog, error)
	Create(ctx context.Context, in *domain.CommunicationLogInput) (*domain.CommunicationLog, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// SQLiteCommunicationStore implements CommunicationStore backed by SQLite.
type SQLiteCommunicationStore struct {
	db *sql.DB
}

// NewSQLiteCommunicationStore creates a new SQLiteCommunicationStore.
func NewSQLiteCommunicationStore(db *sql.DB) *SQLiteCommunicationStore {
	return &SQLiteCommunicationStore{db: db}
}

const communicationColumns = `id, contact_id, lead_id, application_id, channel, direction, subject, body, created_at, updated_at`

func scanCommunication(row interface{ Scan(...any) error }) (*domain.CommunicationLog, error) {
	var c domain.CommunicationLog
	err := row.Scan(&c.ID, &c.ContactID, &c.LeadID, &c.ApplicationID, &c.Channel,
		&c.Direction, &c.Subject, &c.Body, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Get retrieves a single communication log entry by ID.
func (s *SQLiteCommunicationStore) Get(ctx context.Context, id int64) (*domain.CommunicationLog, error) {
	c, err := scanCommunication(s.db.QueryRowContext(ctx,
		`SELECT `+communicationColumns+` FROM communication_logs WHERE id = ?`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get communication: %w", err)
	}
	return c, nil
}

func (s *SQLiteCommunicationStore) listWhere(ctx context.Context, where string, args ...any) ([]*domain.CommunicationLog, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+communicationColumns+` FROM communication_logs `+where+` ORDER BY id ASC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list communications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	logs := []*domain.CommunicationLog{}
	for rows.Next() {
		c, err := scanCommunication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan communication: %w", err)
		}
		logs = append(logs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return logs, nil
}

// List returns all communication log entries.
func (s *SQLiteCommunicationStore) List(ctx context.Context) ([]*domain.CommunicationLog, error) {
	return s.listWhere(ctx, ``)
}

// ListByContact returns the log entries for one contact.
func (s *SQLiteCommunicationStore) ListByContact(ctx context.Context, contactID int64) ([]*domain.CommunicationLog, error) {
	return s.listWhere(ctx, `WHERE contact_id = ?`, contactID)
}

// Create inserts a new communication log entry.
func (s *SQLiteCommunicationStore) Create(ctx context.Context, in *domain.CommunicationLogInput) (*domain.CommunicationLog, error) {
	ts := now()
	channel := defaultStr(in.Channel, "email")
	direction := defaultStr(in.Direction, "outbound")

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO communication_logs (contact_id, lead_id, application_id, channel, direction, subject, body, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ContactID, in.LeadID, in.ApplicationID, channel, direction, in.Subject, in.Body, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert communication: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &domain.CommunicationLog{
		ID:            id,
		ContactID:     in.ContactID,
		LeadID:        in.LeadID,
		ApplicationID: in.ApplicationID,
		Channel:       channel,
		Direction:     direction,
		Subject:       in.Subject,
		Body:          in.Body,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}, nil
}

// Delete removes a communication log entry.
func (s *SQLiteCommunicationStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM communication_logs WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete communication: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// NotificationStore defines the interface for notification persistence.
type NotificationStore interface {
	Get(ctx context.Context, id int64) (*domain.Notification, error)
	ListByContact(ctx context.Context, contactID int64) ([]*domain.Notification, error)
	Create(ctx context.Context, in *domain.NotificationInput) (*domain.Notification, error)
	MarkRead(ctx context.Context, id int64) (*domain.Notification, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// SQLiteNotificationStore implements NotificationStore backed by SQLite.
type SQLiteNotificationStore struct {
	db *sql.DB
}

// NewSQLiteNotificationStore creates a new SQLiteNotificationStore.
func NewSQLiteNotificationStore(db *sql.DB) *SQLiteNotificationStore {
	return &SQLiteNotificationStore{db: db}
}

func scanNotification(row interface{ Scan(...any) error }) (*domain.Notification, error) {
	var n domain.Notification
	err := row.Scan(&n.ID, &n.ContactID, &n.Message, &n.Read, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Get retrieves a single notification by ID.
func (s *SQLiteNotificationStore) Get(ctx context.Context, id int64) (*domain.Notification, error) {
	n, err := scanNotification(s.db.QueryRowContext(ctx,
		`SELECT id, contact_id, message, read, created_at, updated_at FROM notifications WHERE id = ?`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return n, nil
}

// ListByContact returns the notifications for one contact.
func (s *SQLiteNotificationStore) ListByContact(ctx context.Context, contactID int64) ([]*domain.Notification, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, contact_id, message, read, created_at, updated_at FROM notifications WHERE contact_id = ? ORDER BY id ASC`,
		contactID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	notifications := []*domain.Notification{}
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return notifications, nil
}

// Create inserts a new unread notification.
func (s *SQLiteNotificationStore) Create(ctx context.Context, in *domain.NotificationInput) (*domain.Notification, error) {
	ts := now()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO notifications (contact_id, message, read, created_at, updated_at) VALUES (?, ?, FALSE, ?, ?)`,
		in.ContactID, in.Message, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert notification: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &domain.Notification{
		ID:        id,
		ContactID: in.ContactID,
		Message:   in.Message,
		Read:      false,
		CreatedAt: ts,
		UpdatedAt: ts,
	}, nil
}

// MarkRead flags a notification as read.
func (s *SQLiteNotificationStore) MarkRead(ctx context.Context, id int64) (*domain.Notification, error) {
	n, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	n.Read = true
	n.UpdatedAt = now()

	if _, err := s.db.ExecContext(ctx,
		`UPDATE notifications SET read = TRUE, updated_at = ? WHERE id = ?`, n.UpdatedAt, id); err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return n, nil
}

// Delete removes a notification.
func (s *SQLiteNotificationStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM notifications WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete notification: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
