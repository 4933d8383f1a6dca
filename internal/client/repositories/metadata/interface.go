// Package metadata is the client's local key/value store. It keeps the
// session (user id, username, refresh token) between runs.
package metadata

import (
	"context"
)

// Well-known keys.
const (
	KeyUserID       = "user_id"
	KeyUsername     = "username"
	KeyRefreshToken = "refresh_token"
)

type Repository interface {
	// Get returns common.ErrorNotFound when key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
