// Package services holds the client-side application services: the session
// (identity provider), the task collection, the balance tracker and
// attachments.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/taskbalance/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/taskbalance/internal/common"
	"github.com/dmitrijs2005/taskbalance/internal/dbx"
	"github.com/dmitrijs2005/taskbalance/internal/logging"
)

// Session tracks who is logged in. It keeps the user id, username and
// refresh token in the local metadata store so a later run can resume.
type Session struct {
	client AuthClient
	db     *sql.DB
	logger logging.Logger

	mu       sync.RWMutex
	userID   string
	username string
}

func NewSession(c AuthClient, db *sql.DB, logger logging.Logger) *Session {
	s := &Session{client: c, db: db, logger: logger.With("module", "session")}
	c.OnTokensRefreshed(s.storeRefreshToken)
	return s
}

func (s *Session) metadataRepo(tx dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(tx)
}

// storeRefreshToken persists a token rotated by the transport.
func (s *Session) storeRefreshToken(token string) {
	if err := s.metadataRepo(s.db).Set(context.Background(), metadata.KeyRefreshToken, token); err != nil {
		s.logger.Warn(context.Background(), "refresh token not saved", "error", err)
	}
}

func (s *Session) set(userID, username string) {
	s.mu.Lock()
	s.userID, s.username = userID, username
	s.mu.Unlock()
}

// UserID returns the logged-in user's id, or false without a session.
func (s *Session) UserID() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID, s.userID != ""
}

func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

// Register creates an account. It does not log in.
func (s *Session) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", common.ErrorValidation)
	}

	if _, err := s.client.Register(ctx, username, password); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return nil
}

// Login authenticates against the server and saves the session locally.
func (s *Session) Login(ctx context.Context, username, password string) error {
	id, err := s.client.Login(ctx, strings.TrimSpace(username), password)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.metadataRepo(tx)
		if err := repo.Set(ctx, metadata.KeyUserID, id.UserID); err != nil {
			return err
		}
		if err := repo.Set(ctx, metadata.KeyUsername, id.Username); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeyRefreshToken, id.RefreshToken)
	})
	if err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}

	s.set(id.UserID, id.Username)
	s.logger.Info(ctx, "logged in", "user_id", id.UserID)
	return nil
}

// Resume restores a saved session. It reports false when there is nothing to
// resume or the server no longer accepts the stored refresh token.
func (s *Session) Resume(ctx context.Context) (bool, error) {
	repo := s.metadataRepo(s.db)

	token, err := repo.Get(ctx, metadata.KeyRefreshToken)
	if errors.Is(err, common.ErrorNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	rotated, err := s.client.Resume(ctx, token)
	if errors.Is(err, common.ErrorUnauthorized) {
		if err := repo.Clear(ctx); err != nil {
			return false, err
		}
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("resume error: %w", err)
	}

	if err := repo.Set(ctx, metadata.KeyRefreshToken, rotated); err != nil {
		return false, err
	}

	userID, err := repo.Get(ctx, metadata.KeyUserID)
	if err != nil {
		return false, err
	}
	username, err := repo.Get(ctx, metadata.KeyUsername)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return false, err
	}

	s.set(userID, username)
	return true, nil
}

// Logout drops the session in memory and on disk.
func (s *Session) Logout(ctx context.Context) error {
	s.client.Logout()
	s.set("", "")
	return s.metadataRepo(s.db).Clear(ctx)
}

func (s *Session) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}
