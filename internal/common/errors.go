// Package common defines shared constants and sentinel errors used across
// client and server layers of taskbalance. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal         = errors.New("internal error")
	ErrorUnauthorized     = errors.New("unauthorized")
	ErrorPermissionDenied = errors.New("permission denied")
	ErrorValidation       = errors.New("validation error")
	ErrorAlreadyExists    = errors.New("already exists")

	// ErrPersistence marks a remote store call that failed or returned an error.
	ErrPersistence = errors.New("persistence error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
