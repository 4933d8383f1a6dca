package balances

import (
	"context"

	"github.com/dmitrijs2005/taskbalance/internal/server/models"
)

type Repository interface {
	// Get returns common.ErrorNotFound when nothing was saved for (userID, date).
	Get(ctx context.Context, userID, date string) (*models.Balance, error)
	// Upsert inserts or replaces the row keyed on (UserID, Date).
	Upsert(ctx context.Context, b *models.Balance) (*models.Balance, error)
}
