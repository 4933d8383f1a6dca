package services

import (
	"context"

	"github.com/dmitrijs2005/taskbalance/internal/api"
	"github.com/dmitrijs2005/taskbalance/internal/balance"
	"github.com/dmitrijs2005/taskbalance/internal/client/client"
	"github.com/dmitrijs2005/taskbalance/internal/task"
)

// Identity supplies the current user's id, or false when nobody is logged in.
type Identity interface {
	UserID() (string, bool)
}

type TaskStore interface {
	ListTasks(ctx context.Context, ownerID string) ([]task.Task, error)
	CreateTask(ctx context.Context, ownerID string, d task.Draft) (task.Task, error)
	UpdateTask(ctx context.Context, ownerID, id string, p task.Patch) (task.Task, error)
	DeleteTask(ctx context.Context, ownerID, id string) error
}

type BalanceStore interface {
	GetBalance(ctx context.Context, ownerID, date string) (balance.Record, error)
	UpsertBalance(ctx context.Context, ownerID string, r balance.Record) (balance.Record, error)
}

type AttachmentStore interface {
	RequestAttachmentUpload(ctx context.Context, ownerID, taskID, fileName string) (string, string, error)
	MarkAttachmentUploaded(ctx context.Context, ownerID, attachmentID string) error
	GetAttachmentURL(ctx context.Context, ownerID, attachmentID string) (string, string, error)
	ListAttachments(ctx context.Context, ownerID, taskID string) ([]api.Attachment, error)
}

// AuthClient is the part of the transport the session drives.
type AuthClient interface {
	Register(ctx context.Context, userName, password string) (string, error)
	Login(ctx context.Context, userName, password string) (*client.Identity, error)
	Resume(ctx context.Context, refreshToken string) (string, error)
	Logout()
	OnTokensRefreshed(fn func(refreshToken string))
	Ping(ctx context.Context) error
}

var (
	_ TaskStore       = (*client.GRPCClient)(nil)
	_ BalanceStore    = (*client.GRPCClient)(nil)
	_ AttachmentStore = (*client.GRPCClient)(nil)
	_ AuthClient      = (*client.GRPCClient)(nil)
)
