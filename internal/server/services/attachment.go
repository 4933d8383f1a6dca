package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskbalance/internal/common"
	sc "github.com/dmitrijs2005/taskbalance/internal/server/config"
	"github.com/dmitrijs2005/taskbalance/internal/server/models"
	"github.com/dmitrijs2005/taskbalance/internal/server/repositories/repomanager"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const presignExpiry = 15 * time.Minute

// Seams for tests.
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// AttachmentService hands out presigned object storage URLs for files
// attached to tasks and tracks their upload state.
type AttachmentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
	now         func() time.Time
}

func NewAttachmentService(db *sql.DB, m repomanager.RepositoryManager, cfg *sc.Config) *AttachmentService {
	return &AttachmentService{
		db:          db,
		repomanager: m,
		config:      cfg,
		now:         time.Now,
	}
}

// StorageKey returns a fresh object key of the form users/<y>/<m>/<d>/<uuid>.
func StorageKey(d time.Time) string {
	return fmt.Sprintf("users/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *AttachmentService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

func (s *AttachmentService) presignPut(ctx context.Context, key string) (string, error) {
	pc, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}
	bucket := s.config.S3Bucket
	req, err := presignPutObject(pc, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

func (s *AttachmentService) presignGet(ctx context.Context, key string) (string, error) {
	pc, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}
	bucket := s.config.S3Bucket
	req, err := presignGetObject(pc, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// RequestUpload registers a pending attachment on the user's task and returns
// the URL the client must PUT the bytes to.
func (s *AttachmentService) RequestUpload(ctx context.Context, userID, taskID, fileName string) (*models.UploadTask, error) {
	fileName = path.Base(strings.TrimSpace(fileName))
	if fileName == "" || fileName == "." || fileName == "/" {
		return nil, fmt.Errorf("%w: file name is required", common.ErrorValidation)
	}

	if _, err := s.repomanager.Tasks(s.db).Get(ctx, taskID, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error loading task: %w", err)
	}

	key := StorageKey(s.now())
	url, err := s.presignPut(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("error presigning upload: %w", err)
	}

	a, err := s.repomanager.Attachments(s.db).Create(ctx, &models.Attachment{
		TaskID:       taskID,
		UserID:       userID,
		FileName:     fileName,
		StorageKey:   key,
		UploadStatus: models.AttachmentPending,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating attachment: %w", err)
	}

	return &models.UploadTask{AttachmentID: a.ID, URL: url}, nil
}

func (s *AttachmentService) MarkUploaded(ctx context.Context, userID, id string) error {
	if err := s.repomanager.Attachments(s.db).MarkUploaded(ctx, id, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("error updating attachment: %w", err)
	}
	return nil
}

// DownloadURL returns the attachment's file name and a presigned GET URL.
// Attachments still pending upload are reported as not found.
func (s *AttachmentService) DownloadURL(ctx context.Context, userID, id string) (string, string, error) {
	a, err := s.repomanager.Attachments(s.db).Get(ctx, id, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", "", err
		}
		return "", "", fmt.Errorf("error loading attachment: %w", err)
	}
	if a.UploadStatus != models.AttachmentCompleted {
		return "", "", common.ErrorNotFound
	}

	url, err := s.presignGet(ctx, a.StorageKey)
	if err != nil {
		return "", "", fmt.Errorf("error presigning download: %w", err)
	}
	return a.FileName, url, nil
}

func (s *AttachmentService) List(ctx context.Context, userID, taskID string) ([]*models.Attachment, error) {
	list, err := s.repomanager.Attachments(s.db).ListByTask(ctx, taskID, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing attachments: %w", err)
	}
	return list, nil
}
