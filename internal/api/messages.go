package api

import (
	"time"

	"github.com/dmitrijs2005/taskbalance/internal/balance"
	"github.com/dmitrijs2005/taskbalance/internal/task"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	UserID string `json:"user_id"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Owner-scoped requests name the user they act for. The server rejects a
// request whose OwnerID differs from the authenticated user.

type ListTasksRequest struct {
	OwnerID string `json:"owner_id"`
}

type ListTasksResponse struct {
	Tasks []task.Task `json:"tasks"`
}

type CreateTaskRequest struct {
	OwnerID string     `json:"owner_id"`
	Draft   task.Draft `json:"draft"`
}

type CreateTaskResponse struct {
	Task task.Task `json:"task"`
}

type UpdateTaskRequest struct {
	OwnerID string     `json:"owner_id"`
	ID      string     `json:"id"`
	Patch   task.Patch `json:"patch"`
}

type UpdateTaskResponse struct {
	Task task.Task `json:"task"`
}

type DeleteTaskRequest struct {
	OwnerID string `json:"owner_id"`
	ID      string `json:"id"`
}

type DeleteTaskResponse struct{}

type GetBalanceRequest struct {
	OwnerID string `json:"owner_id"`
	Date    string `json:"date"`
}

type GetBalanceResponse struct {
	Record balance.Record `json:"record"`
}

type UpsertBalanceRequest struct {
	OwnerID string         `json:"owner_id"`
	Record  balance.Record `json:"record"`
}

type UpsertBalanceResponse struct {
	Record balance.Record `json:"record"`
}

type Attachment struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	FileName  string    `json:"file_name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type RequestAttachmentUploadRequest struct {
	OwnerID  string `json:"owner_id"`
	TaskID   string `json:"task_id"`
	FileName string `json:"file_name"`
}

type RequestAttachmentUploadResponse struct {
	AttachmentID string `json:"attachment_id"`
	UploadURL    string `json:"upload_url"`
}

type MarkAttachmentUploadedRequest struct {
	OwnerID      string `json:"owner_id"`
	AttachmentID string `json:"attachment_id"`
}

type MarkAttachmentUploadedResponse struct{}

type GetAttachmentURLRequest struct {
	OwnerID      string `json:"owner_id"`
	AttachmentID string `json:"attachment_id"`
}

type GetAttachmentURLResponse struct {
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}

type ListAttachmentsRequest struct {
	OwnerID string `json:"owner_id"`
	TaskID  string `json:"task_id"`
}

type ListAttachmentsResponse struct {
	Attachments []Attachment `json:"attachments"`
}
