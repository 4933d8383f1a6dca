// Package client is the client side of the taskbalance gRPC transport. It
// keeps the session tokens, attaches the access token to every call and
// refreshes it once when the server reports it expired.
package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/taskbalance/internal/api"
	"github.com/dmitrijs2005/taskbalance/internal/balance"
	"github.com/dmitrijs2005/taskbalance/internal/common"
	"github.com/dmitrijs2005/taskbalance/internal/task"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Identity is what a successful login or register-and-login yields.
type Identity struct {
	UserID       string
	Username     string
	RefreshToken string
}

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      api.TaskBalanceClient
	health      healthpb.HealthClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	onRefresh    func(refreshToken string)
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	s.accessToken = access
	s.refreshToken = refresh
	s.mu.Unlock()
}

func (s *GRPCClient) timeoutInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	accessToken, refreshToken := s.tokens()
	if accessToken != "" {
		ctx = withAccessToken(ctx, accessToken)
	}

	err := invoker(ctx, method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refreshToken == "" {
		return err
	}

	resp, err := s.client.RefreshToken(ctx, &api.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return err
	}

	s.setTokens(resp.AccessToken, resp.RefreshToken)
	s.notifyRefresh(resp.RefreshToken)

	ctx = withAccessToken(ctx, resp.AccessToken)
	return invoker(ctx, method, req, reply, cc, opts...)
}

func (s *GRPCClient) notifyRefresh(refreshToken string) {
	s.mu.Lock()
	fn := s.onRefresh
	s.mu.Unlock()
	if fn != nil {
		fn(refreshToken)
	}
}

// NewGRPCClient connects lazily to endpointURL. Extra dial options are
// appended after the defaults.
func NewGRPCClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(c.timeoutInterceptor, c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}

	c.conn = conn
	c.client = api.NewTaskBalanceClient(conn)
	c.health = healthpb.NewHealthClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// OnTokensRefreshed registers fn to be called with the rotated refresh token
// after a transparent refresh.
func (s *GRPCClient) OnTokensRefreshed(fn func(refreshToken string)) {
	s.mu.Lock()
	s.onRefresh = fn
	s.mu.Unlock()
}

func (s *GRPCClient) Register(ctx context.Context, userName, password string) (string, error) {

	resp, err := s.client.Register(ctx, &api.RegisterRequest{Username: userName, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.UserID, nil
}

func (s *GRPCClient) Login(ctx context.Context, userName, password string) (*Identity, error) {

	resp, err := s.client.Login(ctx, &api.LoginRequest{Username: userName, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}

	s.setTokens(resp.AccessToken, resp.RefreshToken)

	return &Identity{UserID: resp.UserID, Username: resp.Username, RefreshToken: resp.RefreshToken}, nil
}

// Resume exchanges a stored refresh token for a fresh token pair and
// returns the rotated refresh token.
func (s *GRPCClient) Resume(ctx context.Context, refreshToken string) (string, error) {

	resp, err := s.client.RefreshToken(ctx, &api.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return "", s.mapError(err)
	}

	s.setTokens(resp.AccessToken, resp.RefreshToken)
	return resp.RefreshToken, nil
}

// Logout forgets the tokens held in memory.
func (s *GRPCClient) Logout() {
	s.setTokens("", "")
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) ListTasks(ctx context.Context, ownerID string) ([]task.Task, error) {
	resp, err := s.client.ListTasks(ctx, &api.ListTasksRequest{OwnerID: ownerID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Tasks, nil
}

func (s *GRPCClient) CreateTask(ctx context.Context, ownerID string, d task.Draft) (task.Task, error) {
	resp, err := s.client.CreateTask(ctx, &api.CreateTaskRequest{OwnerID: ownerID, Draft: d})
	if err != nil {
		return task.Task{}, s.mapError(err)
	}
	return resp.Task, nil
}

func (s *GRPCClient) UpdateTask(ctx context.Context, ownerID, id string, p task.Patch) (task.Task, error) {
	resp, err := s.client.UpdateTask(ctx, &api.UpdateTaskRequest{OwnerID: ownerID, ID: id, Patch: p})
	if err != nil {
		return task.Task{}, s.mapError(err)
	}
	return resp.Task, nil
}

func (s *GRPCClient) DeleteTask(ctx context.Context, ownerID, id string) error {
	_, err := s.client.DeleteTask(ctx, &api.DeleteTaskRequest{OwnerID: ownerID, ID: id})
	return s.mapError(err)
}

func (s *GRPCClient) GetBalance(ctx context.Context, ownerID, date string) (balance.Record, error) {
	resp, err := s.client.GetBalance(ctx, &api.GetBalanceRequest{OwnerID: ownerID, Date: date})
	if err != nil {
		return balance.Record{}, s.mapError(err)
	}
	return resp.Record, nil
}

func (s *GRPCClient) UpsertBalance(ctx context.Context, ownerID string, r balance.Record) (balance.Record, error) {
	resp, err := s.client.UpsertBalance(ctx, &api.UpsertBalanceRequest{OwnerID: ownerID, Record: r})
	if err != nil {
		return balance.Record{}, s.mapError(err)
	}
	return resp.Record, nil
}

func (s *GRPCClient) RequestAttachmentUpload(ctx context.Context, ownerID, taskID, fileName string) (string, string, error) {
	resp, err := s.client.RequestAttachmentUpload(ctx, &api.RequestAttachmentUploadRequest{OwnerID: ownerID, TaskID: taskID, FileName: fileName})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.AttachmentID, resp.UploadURL, nil
}

func (s *GRPCClient) MarkAttachmentUploaded(ctx context.Context, ownerID, attachmentID string) error {
	_, err := s.client.MarkAttachmentUploaded(ctx, &api.MarkAttachmentUploadedRequest{OwnerID: ownerID, AttachmentID: attachmentID})
	return s.mapError(err)
}

func (s *GRPCClient) GetAttachmentURL(ctx context.Context, ownerID, attachmentID string) (string, string, error) {
	resp, err := s.client.GetAttachmentURL(ctx, &api.GetAttachmentURLRequest{OwnerID: ownerID, AttachmentID: attachmentID})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.FileName, resp.URL, nil
}

func (s *GRPCClient) ListAttachments(ctx context.Context, ownerID, taskID string) ([]api.Attachment, error) {
	resp, err := s.client.ListAttachments(ctx, &api.ListAttachmentsRequest{OwnerID: ownerID, TaskID: taskID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Attachments, nil
}

// mapError turns a gRPC status back into the shared sentinel errors.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.NotFound:
		return fmt.Errorf("%w: %s", common.ErrorNotFound, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrorValidation, st.Message())
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", common.ErrorUnauthorized, st.Message())
	case codes.PermissionDenied:
		return fmt.Errorf("%w: %s", common.ErrorPermissionDenied, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", common.ErrorAlreadyExists, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
