// Package tasks provides the PostgreSQL-backed task repository.
package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskbalance/internal/common"
	"github.com/dmitrijs2005/taskbalance/internal/dbx"
	"github.com/dmitrijs2005/taskbalance/internal/server/models"
	"github.com/dmitrijs2005/taskbalance/internal/task"
)

const columns = `id, user_id, title, description, priority, status, due_date, category, is_starred, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (*models.Task, error) {
	var (
		t   models.Task
		due sql.NullTime
	)
	err := s.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Priority, &t.Status,
		&due, &t.Category, &t.IsStarred, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if due.Valid {
		t.DueDate = due.Time.Format(common.DateLayout)
	}
	return &t, nil
}

// dueDate maps the empty string to NULL.
func dueDate(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]*models.Task, error) {
	query := `SELECT ` + columns + ` FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id, userID string) (*models.Task, error) {
	query := `SELECT ` + columns + ` FROM tasks
		WHERE id = $1 AND user_id = $2`

	t, err := scanTask(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) Create(ctx context.Context, userID string, d task.Draft) (*models.Task, error) {
	query := `INSERT INTO tasks (user_id, title, description, priority, status, due_date, category, is_starred)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + columns

	t, err := scanTask(r.db.QueryRowContext(ctx, query,
		userID, d.Title, d.Description, d.Priority, d.Status, dueDate(d.DueDate), d.Category, d.IsStarred))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

// Update writes only the fields set in p. An empty patch still touches
// updated_at, which doubles as an existence check.
func (r *PostgresRepository) Update(ctx context.Context, id, userID string, p task.Patch) (*models.Task, error) {
	sets := make([]string, 0, 8)
	args := []any{id, userID}

	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if p.Title != nil {
		set("title", *p.Title)
	}
	if p.Description != nil {
		set("description", *p.Description)
	}
	if p.Priority != nil {
		set("priority", *p.Priority)
	}
	if p.Status != nil {
		set("status", *p.Status)
	}
	if p.DueDate != nil {
		set("due_date", dueDate(*p.DueDate))
	}
	if p.Category != nil {
		set("category", *p.Category)
	}
	if p.IsStarred != nil {
		set("is_starred", *p.IsStarred)
	}
	sets = append(sets, "updated_at = now()")

	query := `UPDATE tasks SET ` + strings.Join(sets, ", ") + `
		WHERE id = $1 AND user_id = $2
		RETURNING ` + columns

	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
