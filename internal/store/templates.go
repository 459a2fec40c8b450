package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/rentline/rentline/internal/domain"
)

// TemplateStore defines the interface for application template persistence.
type TemplateStore interface {
	Get(ctx context.Context, id int64) (*domain.ApplicationTemplate, error)
	List(ctx context.Context) ([]*domain.ApplicationTemplate, error)
	Create(ctx context.Context, in *domain.ApplicationTemplateInput) (*domain.ApplicationTemplate, error)
	Update(ctx context.Context, id int64, patch *domain.ApplicationTemplateUpdate) (*domain.ApplicationTemplate, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// SQLiteTemplateStore implements TemplateStore backed by SQLite.
type SQLiteTemplateStore struct {
	db *sql.DB
}

// NewSQLiteTemplateStore creates a new SQLiteTemplateStore.
func NewSQLiteTemplateStore(db *sql.DB) *SQLiteTemplateStore {
	return &SQLiteTemplateStore{db: db}
}

func encodeFields(fields []domain.TemplateField) string {
	if fields == nil {
		fields = []domain.TemplateField{}
	}
	sort.SliceStable(fields, func(i, j int) bool { return fields[i].Order < fields[j].Order })
	b, _ := json.Marshal(fields)
	return string(b)
}

func decodeFields(raw string) []domain.TemplateField {
	var fields []domain.TemplateField
	if err := json.Unmarshal([]byte(raw), &fields); err != nil || fields == nil {
		return []domain.TemplateField{}
	}
	return fields
}

func scanTemplate(row interface{ Scan(...any) error }) (*domain.ApplicationTemplate, error) {
	var t domain.ApplicationTemplate
	var fields string
	err := row.Scan(&t.ID, &t.Name, &t.Description, &fields, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.Fields = decodeFields(fields)
	return &t, nil
}

// Get retrieves a single template by ID.
func (s *SQLiteTemplateStore) Get(ctx context.Context, id int64) (*domain.ApplicationTemplate, error) {
	t, err := scanTemplate(s.db.QueryRowContext(ctx,
		`SELECT id, name, description, fields, created_at, updated_at FROM application_templates WHERE id = ?`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	return t, nil
}

// List returns all templates.
func (s *SQLiteTemplateStore) List(ctx context.Context) ([]*domain.ApplicationTemplate, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, fields, created_at, updated_at FROM application_templates ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	templates := []*domain.ApplicationTemplate{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return templates, nil
}

// Create inserts a new template. Fields are stored sorted by their order.
func (s *SQLiteTemplateStore) Create(ctx context.Context, in *domain.ApplicationTemplateInput) (*domain.ApplicationTemplate, error) {
	ts := now()
	fields := encodeFields(in.Fields)

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO application_templates (name, description, fields, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		in.Name, in.Description, fields, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert template: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &domain.ApplicationTemplate{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Fields:      decodeFields(fields),
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}, nil
}

// Update shallow-merges the patch onto the existing template.
func (s *SQLiteTemplateStore) Update(ctx context.Context, id int64, patch *domain.ApplicationTemplateUpdate) (*domain.ApplicationTemplate, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Description != nil {
		t.Description = patch.Description
	}
	if patch.Fields != nil {
		t.Fields = decodeFields(encodeFields(patch.Fields))
	}
	t.UpdatedAt = now()

	_, err = s.db.ExecContext(ctx,
		`UPDATE application_templates SET name = ?, description = ?, fields = ?, updated_at = ? WHERE id = ?`,
		t.Name, t.Description, encodeFields(t.Fields), t.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update template: %w", err)
	}
	return t, nil
}

// Delete removes a template. Applications referencing it keep their dangling
// template id.
func (s *SQLiteTemplateStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM application_templates WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete template: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
