package server

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/taskbalance/internal/logging"
	"github.com/dmitrijs2005/taskbalance/internal/server/config"
	"github.com/dmitrijs2005/taskbalance/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/taskbalance/internal/server/services"
	"github.com/stretchr/testify/require"
)

type entry struct {
	level string
	msg   string
}

type chanLogger struct {
	logging.Nop
	entries chan entry
}

func (l *chanLogger) put(e entry) {
	select {
	case l.entries <- e:
	default:
	}
}

func (l *chanLogger) Info(_ context.Context, msg string, _ ...any) { l.put(entry{"info", msg}) }
func (l *chanLogger) Warn(_ context.Context, msg string, _ ...any) { l.put(entry{"warn", msg}) }

func newPurgeApp(t *testing.T) (*App, sqlmock.Sqlmock, *chanLogger) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{SecretKey: "secret", AccessTokenValidityDuration: time.Minute, RefreshTokenValidityDuration: time.Hour}
	l := &chanLogger{entries: make(chan entry, 8)}

	return &App{
		config:      cfg,
		logger:      l,
		db:          db,
		userService: services.NewUserService(db, repomanager.NewPostgresRepositoryManager(), cfg),
	}, mock, l
}

func runPurge(app *App, interval time.Duration) (context.CancelFunc, *sync.WaitGroup) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.purgeTokens(ctx, interval)
	}()
	return cancel, &wg
}

func TestPurgeTokens_LogsRemovedCount(t *testing.T) {
	app, mock, l := newPurgeApp(t)
	mock.ExpectExec(`DELETE FROM refresh_tokens`).WillReturnResult(sqlmock.NewResult(0, 2))

	cancel, wg := runPurge(app, 10*time.Millisecond)

	select {
	case e := <-l.entries:
		require.Equal(t, entry{"info", "purged expired refresh tokens"}, e)
	case <-time.After(2 * time.Second):
		t.Fatal("purge did not run")
	}

	cancel()
	wg.Wait()
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPurgeTokens_WarnsOnError(t *testing.T) {
	app, mock, l := newPurgeApp(t)
	mock.ExpectExec(`DELETE FROM refresh_tokens`).WillReturnError(errors.New("db down"))

	cancel, wg := runPurge(app, 10*time.Millisecond)

	select {
	case e := <-l.entries:
		require.Equal(t, entry{"warn", "refresh token purge failed"}, e)
	case <-time.After(2 * time.Second):
		t.Fatal("purge did not run")
	}

	cancel()
	wg.Wait()
}

func TestPurgeTokens_DisabledInterval(t *testing.T) {
	app, _, _ := newPurgeApp(t)

	done := make(chan struct{})
	go func() {
		app.purgeTokens(context.Background(), 0)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("purgeTokens should return at once for a zero interval")
	}
}
