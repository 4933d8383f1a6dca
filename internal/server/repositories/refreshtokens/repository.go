package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/taskbalance/internal/server/models"
)

type Repository interface {
	// Create stores token for userID, valid for validity from now.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Find returns common.ErrorNotFound for unknown tokens.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete is a no-op for unknown tokens.
	Delete(ctx context.Context, token string) error

	// PurgeExpired drops every token that expired before t and reports how many.
	PurgeExpired(ctx context.Context, t time.Time) (int64, error)
}
