package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskbalance/internal/server/models"
	"github.com/dmitrijs2005/taskbalance/internal/task"
)

// Repository persists tasks. Every method is scoped to one owner.
type Repository interface {
	List(ctx context.Context, userID string) ([]*models.Task, error)
	Get(ctx context.Context, id, userID string) (*models.Task, error)
	Create(ctx context.Context, userID string, d task.Draft) (*models.Task, error)
	// Update returns common.ErrorNotFound when no task matches (id, userID).
	Update(ctx context.Context, id, userID string, p task.Patch) (*models.Task, error)
	// Delete does not fail for a task that is already gone.
	Delete(ctx context.Context, id, userID string) error
}
