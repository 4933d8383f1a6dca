package attachments

import (
	"context"

	"github.com/dmitrijs2005/taskbalance/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, a *models.Attachment) (*models.Attachment, error)
	Get(ctx context.Context, id, userID string) (*models.Attachment, error)
	ListByTask(ctx context.Context, taskID, userID string) ([]*models.Attachment, error)
	MarkUploaded(ctx context.Context, id, userID string) error
}
