// Package attachments stores metadata of files attached to tasks. The file
// content itself lives in object storage.
package attachments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskbalance/internal/common"
	"github.com/dmitrijs2005/taskbalance/internal/dbx"
	"github.com/dmitrijs2005/taskbalance/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.Attachment) (*models.Attachment, error) {
	query := `
		INSERT INTO attachments (task_id, user_id, file_name, storage_key, upload_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		a.TaskID, a.UserID, a.FileName, a.StorageKey, a.UploadStatus).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id, userID string) (*models.Attachment, error) {
	query := `
		SELECT id, task_id, user_id, file_name, storage_key, upload_status, created_at
		FROM attachments
		WHERE id = $1 AND user_id = $2
	`
	a := &models.Attachment{}
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&a.ID, &a.TaskID, &a.UserID, &a.FileName, &a.StorageKey, &a.UploadStatus, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) ListByTask(ctx context.Context, taskID, userID string) ([]*models.Attachment, error) {
	query := `
		SELECT id, task_id, user_id, file_name, storage_key, upload_status, created_at
		FROM attachments
		WHERE task_id = $1 AND user_id = $2
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, taskID, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Attachment, 0)
	for rows.Next() {
		var a models.Attachment
		if err := rows.Scan(&a.ID, &a.TaskID, &a.UserID, &a.FileName, &a.StorageKey, &a.UploadStatus, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// MarkUploaded flips upload_status to completed. Exactly one row must match.
func (r *PostgresRepository) MarkUploaded(ctx context.Context, id, userID string) error {
	query := `UPDATE attachments SET upload_status = 'completed' WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	ra, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch ra {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", ra)
	}
}
