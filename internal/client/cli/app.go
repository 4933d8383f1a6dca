package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/taskbalance/internal/client/client"
	"github.com/dmitrijs2005/taskbalance/internal/client/config"
	"github.com/dmitrijs2005/taskbalance/internal/client/services"
	"github.com/dmitrijs2005/taskbalance/internal/common"
	"github.com/dmitrijs2005/taskbalance/internal/logging"
)

// sessionService is the identity part of the client the commands drive.
type sessionService interface {
	UserID() (string, bool)
	Username() string
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
	Resume(ctx context.Context) (bool, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
}

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	transport   io.Closer
	session     sessionService
	tasks       *services.TaskCollection
	balance     *services.BalanceTracker
	attachments *services.AttachmentService
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewText(os.Stderr, c.LogLevel).With("module", "cli")

	db, err := client.InitDatabase(ctx, c.LocalDBPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		db.Close()
		return nil, err
	}

	notifier := services.NewWriterNotifier(os.Stdout)
	session := services.NewSession(apiClient, db, logger)

	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		transport:   apiClient,
		session:     session,
		tasks:       services.NewTaskCollection(apiClient, session, notifier, logger),
		balance:     services.NewBalanceTracker(apiClient, session, notifier, logger),
		attachments: services.NewAttachmentService(apiClient, session, notifier, logger, &http.Client{}),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

// Run resumes a saved session when there is one and blocks in the REPL
// until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("Welcome to taskbalance CLI (type 'help' for commands)")
	a.resume(ctx)

	runREPL(ctx, a, a.status, bufio.NewScanner(a.reader))
}

func (a *App) Close() {
	if a.transport != nil {
		a.transport.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
}

func (a *App) resume(ctx context.Context) {
	ok, err := a.session.Resume(ctx)
	if err != nil {
		a.logger.Warn(ctx, "session resume failed", "error", err)
		printlnFn("Could not restore the previous session, please login")
		return
	}
	if !ok {
		return
	}
	printlnFn("Logged in as", a.session.Username())
	a.Reload(ctx)
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.UserID()
	return ok
}

func (a *App) status() string {
	if name := a.session.Username(); name != "" {
		return fmt.Sprintf("(%s)", name)
	}
	return ""
}

// reported drops errors the services have already shown to the user.
func reported(err error) error {
	if errors.Is(err, common.ErrPersistence) {
		return nil
	}
	return err
}
