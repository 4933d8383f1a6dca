package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/taskbalance/internal/api"
	"github.com/dmitrijs2005/taskbalance/internal/common"
	"github.com/dmitrijs2005/taskbalance/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

// UserIDKey holds the authenticated user id in a request context.
const UserIDKey ctxKey = "userID"

// publicMethods are reachable without an access token.
var publicMethods = map[string]struct{}{
	api.MethodRegister:     {},
	api.MethodLogin:        {},
	api.MethodRefreshToken: {},
	healthCheckMethod:      {},
}

const healthCheckMethod = "/grpc.health.v1.Health/Check"

func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok && id != ""
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	if _, ok := publicMethods[info.FullMethod]; ok {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
			accessToken = values[0]
		}
	}
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	return handler(context.WithValue(ctx, UserIDKey, userID), req)
}

// loggingInterceptor tags every call with a request id and logs its outcome.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	log := s.logger.With("request_id", uuid.NewString(), "method", info.FullMethod)

	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{"code", code.String(), "duration", time.Since(start)}
	switch code {
	case codes.OK:
		log.Info(ctx, "request", args...)
	case codes.Internal, codes.Unknown:
		log.Error(ctx, "request", append(args, "error", err)...)
	default:
		log.Warn(ctx, "request", append(args, "error", err)...)
	}

	return resp, err
}
