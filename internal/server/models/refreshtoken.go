package models

import "time"

// RefreshToken is an opaque, single-use token that can be exchanged for a
// new access/refresh pair until ExpiresAt.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (t *RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
