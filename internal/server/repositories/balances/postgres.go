// Package balances persists daily balance records, one per user and date.
package balances

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

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

func scanBalance(row *sql.Row) (*models.Balance, error) {
	var (
		b    models.Balance
		date time.Time
	)
	err := row.Scan(&b.ID, &b.UserID, &date,
		&b.Hours.Work, &b.Hours.Personal, &b.Hours.Health, &b.Hours.Leisure, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	b.Date = date.Format(common.DateLayout)
	return &b, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID, date string) (*models.Balance, error) {
	query := `
		SELECT id, user_id, date, work_hours, personal_hours, health_hours, leisure_hours, updated_at
		FROM balances
		WHERE user_id = $1 AND date = $2
	`
	b, err := scanBalance(r.db.QueryRowContext(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return b, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, in *models.Balance) (*models.Balance, error) {
	query := `
		INSERT INTO balances (user_id, date, work_hours, personal_hours, health_hours, leisure_hours)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, date)
		DO UPDATE SET
			work_hours = EXCLUDED.work_hours,
			personal_hours = EXCLUDED.personal_hours,
			health_hours = EXCLUDED.health_hours,
			leisure_hours = EXCLUDED.leisure_hours,
			updated_at = now()
		RETURNING id, user_id, date, work_hours, personal_hours, health_hours, leisure_hours, updated_at
	`
	h := in.Hours
	b, err := scanBalance(r.db.QueryRowContext(ctx, query,
		in.UserID, in.Date, h.Work, h.Personal, h.Health, h.Leisure))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return b, nil
}
