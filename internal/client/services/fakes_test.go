package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/taskbalance/internal/api"
	"github.com/dmitrijs2005/taskbalance/internal/balance"
	"github.com/dmitrijs2005/taskbalance/internal/client/client"
	"github.com/dmitrijs2005/taskbalance/internal/logging"
	"github.com/dmitrijs2005/taskbalance/internal/task"
)

var errBoom = errors.New("boom")

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type fakeIdentity struct{ id string }

func (f fakeIdentity) UserID() (string, bool) { return f.id, f.id != "" }

type note struct {
	level Level
	msg   string
}

type recordingNotifier struct {
	mu    sync.Mutex
	notes []note
}

func (r *recordingNotifier) Notify(level Level, msg string) {
	r.mu.Lock()
	r.notes = append(r.notes, note{level, msg})
	r.mu.Unlock()
}

func (r *recordingNotifier) errors() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, x := range r.notes {
		if x.level == LevelError {
			n++
		}
	}
	return n
}

type fakeTaskStore struct {
	list    []task.Task
	created task.Task
	err     error
	calls   int

	gotOwner string
	gotID    string
	gotDraft task.Draft
	gotPatch task.Patch
}

func (f *fakeTaskStore) ListTasks(_ context.Context, owner string) ([]task.Task, error) {
	f.calls++
	f.gotOwner = owner
	return f.list, f.err
}

func (f *fakeTaskStore) CreateTask(_ context.Context, owner string, d task.Draft) (task.Task, error) {
	f.calls++
	f.gotOwner, f.gotDraft = owner, d
	return f.created, f.err
}

func (f *fakeTaskStore) UpdateTask(_ context.Context, owner, id string, p task.Patch) (task.Task, error) {
	f.calls++
	f.gotOwner, f.gotID, f.gotPatch = owner, id, p
	return task.Task{ID: id}, f.err
}

func (f *fakeTaskStore) DeleteTask(_ context.Context, owner, id string) error {
	f.calls++
	f.gotOwner, f.gotID = owner, id
	return f.err
}

type fakeBalanceStore struct {
	rec    balance.Record
	getErr error
	upErr  error
	calls  int

	gotDate string
	gotRec  balance.Record
}

func (f *fakeBalanceStore) GetBalance(_ context.Context, _, date string) (balance.Record, error) {
	f.calls++
	f.gotDate = date
	return f.rec, f.getErr
}

func (f *fakeBalanceStore) UpsertBalance(_ context.Context, _ string, r balance.Record) (balance.Record, error) {
	f.calls++
	f.gotRec = r
	if f.upErr != nil {
		return balance.Record{}, f.upErr
	}
	r.ID = "b1"
	return r, nil
}

type fakeAttachmentStore struct {
	uploadURL   string
	downloadURL string
	fileName    string
	items       []api.Attachment
	requestErr  error
	markErr     error
	getErr      error

	gotFileName string
	marked      string
}

func (f *fakeAttachmentStore) RequestAttachmentUpload(_ context.Context, _, _, fileName string) (string, string, error) {
	f.gotFileName = fileName
	return "a1", f.uploadURL, f.requestErr
}

func (f *fakeAttachmentStore) MarkAttachmentUploaded(_ context.Context, _, id string) error {
	f.marked = id
	return f.markErr
}

func (f *fakeAttachmentStore) GetAttachmentURL(context.Context, string, string) (string, string, error) {
	return f.fileName, f.downloadURL, f.getErr
}

func (f *fakeAttachmentStore) ListAttachments(context.Context, string, string) ([]api.Attachment, error) {
	return f.items, f.getErr
}

type fakeAuthClient struct {
	identity   *client.Identity
	loginErr   error
	regErr     error
	resumeRet  string
	resumeErr  error
	pingErr    error
	loggedOut  bool
	onRefresh  func(string)
	gotRefresh string
}

func (f *fakeAuthClient) Register(context.Context, string, string) (string, error) {
	return "u1", f.regErr
}

func (f *fakeAuthClient) Login(context.Context, string, string) (*client.Identity, error) {
	return f.identity, f.loginErr
}

func (f *fakeAuthClient) Resume(_ context.Context, token string) (string, error) {
	f.gotRefresh = token
	return f.resumeRet, f.resumeErr
}

func (f *fakeAuthClient) Logout()                           { f.loggedOut = true }
func (f *fakeAuthClient) OnTokensRefreshed(fn func(string)) { f.onRefresh = fn }
func (f *fakeAuthClient) Ping(context.Context) error        { return f.pingErr }
