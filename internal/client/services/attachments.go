package services

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/taskbalance/internal/api"
	"github.com/dmitrijs2005/taskbalance/internal/filex"
	"github.com/dmitrijs2005/taskbalance/internal/logging"
	"github.com/dmitrijs2005/taskbalance/internal/netx"
)

// AttachmentService moves files between the local disk and object storage
// through presigned URLs handed out by the server.
type AttachmentService struct {
	store    AttachmentStore
	identity Identity
	notifier Notifier
	logger   logging.Logger
	http     *http.Client
}

func NewAttachmentService(store AttachmentStore, identity Identity, notifier Notifier, logger logging.Logger, hc *http.Client) *AttachmentService {
	return &AttachmentService{
		store:    store,
		identity: identity,
		notifier: notifier,
		logger:   logger.With("module", "attachments"),
		http:     hc,
	}
}

func (s *AttachmentService) fail(ctx context.Context, op string, err error) error {
	s.logger.Error(ctx, "attachment call failed", "op", op, "error", err)
	s.notifier.Notify(LevelError, "Could not "+op)
	return &PersistenceError{Op: op, Err: err}
}

// Attach uploads the file at path and links it to taskID. It returns the
// new attachment id.
func (s *AttachmentService) Attach(ctx context.Context, taskID, path string) (string, error) {
	owner, ok := s.identity.UserID()
	if !ok {
		return "", nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}

	id, url, err := s.store.RequestAttachmentUpload(ctx, owner, taskID, filepath.Base(path))
	if err != nil {
		return "", s.fail(ctx, "request upload", err)
	}

	if err := netx.UploadToPresignedURL(ctx, s.http, url, f, fi.Size()); err != nil {
		return "", s.fail(ctx, "upload file", err)
	}

	if err := s.store.MarkAttachmentUploaded(ctx, owner, id); err != nil {
		return "", s.fail(ctx, "confirm upload", err)
	}

	s.notifier.Notify(LevelInfo, "File attached")
	return id, nil
}

func (s *AttachmentService) List(ctx context.Context, taskID string) ([]api.Attachment, error) {
	owner, ok := s.identity.UserID()
	if !ok {
		return nil, nil
	}

	items, err := s.store.ListAttachments(ctx, owner, taskID)
	if err != nil {
		return nil, s.fail(ctx, "list attachments", err)
	}
	return items, nil
}

// Download saves the attachment into dir without overwriting existing files
// and returns the path written.
func (s *AttachmentService) Download(ctx context.Context, attachmentID, dir string) (string, error) {
	owner, ok := s.identity.UserID()
	if !ok {
		return "", nil
	}

	name, url, err := s.store.GetAttachmentURL(ctx, owner, attachmentID)
	if err != nil {
		return "", s.fail(ctx, "get download link", err)
	}

	path, err := filex.FreePath(dir, name)
	if err != nil {
		return "", err
	}

	out, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", err
	}

	if _, err := netx.DownloadFromPresignedURL(ctx, s.http, url, out); err != nil {
		_ = out.Close()
		_ = os.Remove(path)
		return "", s.fail(ctx, "download file", err)
	}

	if err := out.Close(); err != nil {
		return "", err
	}
	return path, nil
}
