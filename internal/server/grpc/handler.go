package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/taskbalance/internal/api"
	"github.com/dmitrijs2005/taskbalance/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// authorize returns the caller's id when it matches the owner named in the request.
func (s *GRPCServer) authorize(ctx context.Context, ownerID string) (string, error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "unauthenticated")
	}
	if ownerID == "" {
		return "", status.Error(codes.InvalidArgument, "owner_id is required")
	}
	if ownerID != userID {
		return "", status.Error(codes.PermissionDenied, common.ErrorPermissionDenied.Error())
	}
	return userID, nil
}

func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, common.ErrorPermissionDenied):
		return status.Error(codes.PermissionDenied, common.ErrorPermissionDenied.Error())
	}
	s.logger.Error(ctx, err.Error())
	return status.Error(codes.Internal, "internal error")
}

func (s *GRPCServer) Register(ctx context.Context, req *api.RegisterRequest) (*api.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request")

	user, err := s.users.Register(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "username", req.Username)
	return &api.RegisterResponse{UserID: user.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error) {

	res, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.LoginResponse{
		UserID:       res.UserID,
		Username:     res.UserName,
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
	}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *api.RefreshTokenRequest) (*api.RefreshTokenResponse, error) {

	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) ListTasks(ctx context.Context, req *api.ListTasksRequest) (*api.ListTasksResponse, error) {
	userID, err := s.authorize(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	items, err := s.tasks.List(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.ListTasksResponse{Tasks: items}, nil
}

func (s *GRPCServer) CreateTask(ctx context.Context, req *api.CreateTaskRequest) (*api.CreateTaskResponse, error) {
	userID, err := s.authorize(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	t, err := s.tasks.Create(ctx, userID, req.Draft)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.CreateTaskResponse{Task: t}, nil
}

func (s *GRPCServer) UpdateTask(ctx context.Context, req *api.UpdateTaskRequest) (*api.UpdateTaskResponse, error) {
	userID, err := s.authorize(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	t, err := s.tasks.Update(ctx, userID, req.ID, req.Patch)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.UpdateTaskResponse{Task: t}, nil
}

func (s *GRPCServer) DeleteTask(ctx context.Context, req *api.DeleteTaskRequest) (*api.DeleteTaskResponse, error) {
	userID, err := s.authorize(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.Delete(ctx, userID, req.ID); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.DeleteTaskResponse{}, nil
}

func (s *GRPCServer) GetBalance(ctx context.Context, req *api.GetBalanceRequest) (*api.GetBalanceResponse, error) {
	userID, err := s.authorize(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	r, err := s.balances.Get(ctx, userID, req.Date)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.GetBalanceResponse{Record: r}, nil
}

func (s *GRPCServer) UpsertBalance(ctx context.Context, req *api.UpsertBalanceRequest) (*api.UpsertBalanceResponse, error) {
	userID, err := s.authorize(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	r, err := s.balances.Upsert(ctx, userID, req.Record)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.UpsertBalanceResponse{Record: r}, nil
}

func (s *GRPCServer) RequestAttachmentUpload(ctx context.Context, req *api.RequestAttachmentUploadRequest) (*api.RequestAttachmentUploadResponse, error) {
	userID, err := s.authorize(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	up, err := s.attachments.RequestUpload(ctx, userID, req.TaskID, req.FileName)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.RequestAttachmentUploadResponse{AttachmentID: up.AttachmentID, UploadURL: up.URL}, nil
}

func (s *GRPCServer) MarkAttachmentUploaded(ctx context.Context, req *api.MarkAttachmentUploadedRequest) (*api.MarkAttachmentUploadedResponse, error) {
	userID, err := s.authorize(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	if err := s.attachments.MarkUploaded(ctx, userID, req.AttachmentID); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.MarkAttachmentUploadedResponse{}, nil
}

func (s *GRPCServer) GetAttachmentURL(ctx context.Context, req *api.GetAttachmentURLRequest) (*api.GetAttachmentURLResponse, error) {
	userID, err := s.authorize(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	name, url, err := s.attachments.DownloadURL(ctx, userID, req.AttachmentID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.GetAttachmentURLResponse{FileName: name, URL: url}, nil
}

func (s *GRPCServer) ListAttachments(ctx context.Context, req *api.ListAttachmentsRequest) (*api.ListAttachmentsResponse, error) {
	userID, err := s.authorize(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	items, err := s.attachments.List(ctx, userID, req.TaskID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	out := make([]api.Attachment, 0, len(items))
	for _, a := range items {
		out = append(out, api.Attachment{
			ID:        a.ID,
			TaskID:    a.TaskID,
			FileName:  a.FileName,
			Status:    a.UploadStatus,
			CreatedAt: a.CreatedAt,
		})
	}

	return &api.ListAttachmentsResponse{Attachments: out}, nil
}
