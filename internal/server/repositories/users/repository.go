package users

import (
	"context"

	"github.com/dmitrijs2005/taskbalance/internal/server/models"
)

// Repository stores accounts. Usernames are unique; Create reports a
// duplicate as common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
