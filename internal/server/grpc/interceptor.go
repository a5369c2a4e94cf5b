package grpc

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/dmitrijs2005/cameportal/internal/common"
	pb "github.com/dmitrijs2005/cameportal/internal/proto"
	"github.com/dmitrijs2005/cameportal/internal/server/session"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type access int

const (
	accessMember access = iota
	accessPublic
	accessStaff
)

var methodAccess = map[string]access{
	pb.Portal_Ping_FullMethodName:     accessPublic,
	pb.Portal_Register_FullMethodName: accessPublic,
	pb.Portal_Login_FullMethodName:    accessPublic,

	pb.Portal_ListUsers_FullMethodName:        accessStaff,
	pb.Portal_UserStats_FullMethodName:        accessStaff,
	pb.Portal_ExportUsers_FullMethodName:      accessStaff,
	pb.Portal_ResetPassword_FullMethodName:    accessStaff,
	pb.Portal_DeleteUser_FullMethodName:       accessStaff,
	pb.Portal_ListEntities_FullMethodName:     accessStaff,
	pb.Portal_EntityCompliance_FullMethodName: accessStaff,
	pb.Portal_UploadLog_FullMethodName:        accessStaff,
}

type ctxKey string

const tokenKey ctxKey = "sessionToken"

func metadataValue(ctx context.Context, key string) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(key); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

func methodName(fullMethod string) string {
	if i := strings.LastIndex(fullMethod, "/"); i >= 0 {
		return fullMethod[i+1:]
	}
	return fullMethod
}

func (s *GRPCServer) metricsInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	code := status.Code(err)
	s.metrics.ObserveRPC(methodName(info.FullMethod), code.String(), start)
	if code == codes.Internal || code == codes.Unavailable || code == codes.DataLoss {
		s.logger.Error(ctx, "call failed", "method", info.FullMethod, "code", code.String(), "error", err)
	}
	return resp, err
}

func (s *GRPCServer) timeoutInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if s.timeout <= 0 {
		return handler(ctx, req)
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return handler(ctx, req)
}

// authInterceptor resolves the member session token or checks the staff
// key, depending on the method.
func (s *GRPCServer) authInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	switch methodAccess[info.FullMethod] {
	case accessPublic:
		return handler(ctx, req)

	case accessStaff:
		key := metadataValue(ctx, common.AdminKeyHeaderName)
		if key == "" || len(s.adminKey) == 0 || subtle.ConstantTimeCompare([]byte(key), s.adminKey) != 1 {
			return nil, status.Error(codes.PermissionDenied, "admin key required")
		}
		return handler(ctx, req)

	default:
		token := metadataValue(ctx, common.SessionTokenHeaderName)
		if token == "" {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}
		sess, err := s.svc.Gate.Resolve(token)
		if err != nil || !sess.IsAuthenticated() {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}
		ctx = session.NewContext(ctx, sess)
		ctx = context.WithValue(ctx, tokenKey, token)
		return handler(ctx, req)
	}
}
