// Package grpc exposes the taskbalance services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/taskbalance/internal/api"
	"github.com/dmitrijs2005/taskbalance/internal/balance"
	"github.com/dmitrijs2005/taskbalance/internal/logging"
	"github.com/dmitrijs2005/taskbalance/internal/server/models"
	"github.com/dmitrijs2005/taskbalance/internal/server/services"
	"github.com/dmitrijs2005/taskbalance/internal/task"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type userSvc interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*services.LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

type taskSvc interface {
	List(ctx context.Context, userID string) ([]task.Task, error)
	Create(ctx context.Context, userID string, d task.Draft) (task.Task, error)
	Update(ctx context.Context, userID, id string, p task.Patch) (task.Task, error)
	Delete(ctx context.Context, userID, id string) error
}

type balanceSvc interface {
	Get(ctx context.Context, userID, date string) (balance.Record, error)
	Upsert(ctx context.Context, userID string, r balance.Record) (balance.Record, error)
}

type attachmentSvc interface {
	RequestUpload(ctx context.Context, userID, taskID, fileName string) (*models.UploadTask, error)
	MarkUploaded(ctx context.Context, userID, id string) error
	DownloadURL(ctx context.Context, userID, id string) (string, string, error)
	List(ctx context.Context, userID, taskID string) ([]*models.Attachment, error)
}

type GRPCServer struct {
	api.UnimplementedTaskBalanceServer
	address     string
	users       userSvc
	tasks       taskSvc
	balances    balanceSvc
	attachments attachmentSvc
	logger      logging.Logger
	jwtSecret   []byte
	health      *health.Server
}

func NewGRPCServer(a string, l logging.Logger, us userSvc, ts taskSvc, bs balanceSvc, as attachmentSvc, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		users:       us,
		tasks:       ts,
		balances:    bs,
		attachments: as,
		jwtSecret:   []byte(secretKey),
		health:      health.NewServer(),
	}
}

// newServer builds the grpc.Server with interceptors, the service and the
// standard health service registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	api.RegisterTaskBalanceServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	return srv
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.newServer()
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	return srv.Serve(listen)
}
