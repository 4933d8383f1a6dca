package models

import "time"

const (
	AttachmentPending   = "pending"
	AttachmentCompleted = "completed"
)

// Attachment describes a file linked to a task. The bytes live in object
// storage under StorageKey; the row is removed together with its task.
type Attachment struct {
	ID           string
	TaskID       string
	UserID       string
	FileName     string
	StorageKey   string
	UploadStatus string
	CreatedAt    time.Time
}

// UploadTask tells the client where to PUT the attachment bytes.
type UploadTask struct {
	AttachmentID string
	URL          string
}
