package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/taskbalance/internal/dbx"
	"github.com/dmitrijs2005/taskbalance/internal/server/models"
	"github.com/dmitrijs2005/taskbalance/internal/server/repositories/attachments"
	"github.com/dmitrijs2005/taskbalance/internal/server/repositories/balances"
	"github.com/dmitrijs2005/taskbalance/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/taskbalance/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskbalance/internal/server/repositories/users"
	"github.com/dmitrijs2005/taskbalance/internal/task"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	created   *models.User
	createErr error

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = "u-new"
	f.created = u
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(context.Context, string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeRefreshRepo struct {
	findOut *models.RefreshToken
	findErr error

	deleted []string
	delErr  error

	createdFor []string
	createErr  error

	purgedBefore time.Time
	purgeN       int64
}

func (f *fakeRefreshRepo) Create(_ context.Context, userID, _ string, _ time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.createdFor = append(f.createdFor, userID)
	return nil
}

func (f *fakeRefreshRepo) Find(context.Context, string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(_ context.Context, token string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, token)
	return nil
}

func (f *fakeRefreshRepo) PurgeExpired(_ context.Context, t time.Time) (int64, error) {
	f.purgedBefore = t
	return f.purgeN, nil
}

type fakeTasksRepo struct {
	rows []*models.Task
	err  error

	lastOwner string
	lastID    string
	lastDraft task.Draft
	lastPatch task.Patch
	calls     int
}

func (f *fakeTasksRepo) List(_ context.Context, userID string) ([]*models.Task, error) {
	f.calls++
	f.lastOwner = userID
	return f.rows, f.err
}

func (f *fakeTasksRepo) Get(_ context.Context, id, userID string) (*models.Task, error) {
	f.calls++
	f.lastID, f.lastOwner = id, userID
	if f.err != nil {
		return nil, f.err
	}
	return &models.Task{Task: task.Task{ID: id}, UserID: userID}, nil
}

func (f *fakeTasksRepo) Create(_ context.Context, userID string, d task.Draft) (*models.Task, error) {
	f.calls++
	f.lastOwner, f.lastDraft = userID, d
	if f.err != nil {
		return nil, f.err
	}
	return &models.Task{Task: task.Task{
		ID: "t-new", Title: d.Title, Status: d.Status, Priority: d.Priority,
	}, UserID: userID}, nil
}

func (f *fakeTasksRepo) Update(_ context.Context, id, userID string, p task.Patch) (*models.Task, error) {
	f.calls++
	f.lastID, f.lastOwner, f.lastPatch = id, userID, p
	if f.err != nil {
		return nil, f.err
	}
	t := task.Task{ID: id, Title: "orig", Status: task.StatusTodo, Priority: task.PriorityLow}
	p.Apply(&t)
	return &models.Task{Task: t, UserID: userID}, nil
}

func (f *fakeTasksRepo) Delete(_ context.Context, id, userID string) error {
	f.calls++
	f.lastID, f.lastOwner = id, userID
	return f.err
}

type fakeBalancesRepo struct {
	getOut *models.Balance
	getErr error

	upserted  *models.Balance
	upsertErr error
}

func (f *fakeBalancesRepo) Get(context.Context, string, string) (*models.Balance, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeBalancesRepo) Upsert(_ context.Context, b *models.Balance) (*models.Balance, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	f.upserted = b
	out := *b
	out.ID = "b-1"
	return &out, nil
}

type fakeAttachmentsRepo struct {
	created   *models.Attachment
	createErr error

	getOut *models.Attachment
	getErr error

	listOut []*models.Attachment
	listErr error

	markErr error
	marked  string
}

func (f *fakeAttachmentsRepo) Create(_ context.Context, a *models.Attachment) (*models.Attachment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	a.ID = "a-1"
	f.created = a
	return a, nil
}

func (f *fakeAttachmentsRepo) Get(context.Context, string, string) (*models.Attachment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeAttachmentsRepo) ListByTask(context.Context, string, string) ([]*models.Attachment, error) {
	return f.listOut, f.listErr
}

func (f *fakeAttachmentsRepo) MarkUploaded(_ context.Context, id, _ string) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.marked = id
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRefreshRepo
	t *fakeTasksRepo
	b *fakeBalancesRepo
	a *fakeAttachmentsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.r }
func (m *fakeRepoManager) Tasks(dbx.DBTX) tasks.Repository                 { return m.t }
func (m *fakeRepoManager) Balances(dbx.DBTX) balances.Repository           { return m.b }
func (m *fakeRepoManager) Attachments(dbx.DBTX) attachments.Repository     { return m.a }
