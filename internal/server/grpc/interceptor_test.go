package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/cameportal/internal/common"
	"github.com/dmitrijs2005/cameportal/internal/logging"
	pb "github.com/dmitrijs2005/cameportal/internal/proto"
	"github.com/dmitrijs2005/cameportal/internal/server/metrics"
	"github.com/dmitrijs2005/cameportal/internal/server/services"
	"github.com/dmitrijs2005/cameportal/internal/server/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type fakeGate struct {
	Gatekeeper
	sessions map[string]session.Session
	ended    []string
}

func (g *fakeGate) Resolve(token string) (session.Session, error) {
	if s, ok := g.sessions[token]; ok {
		return s, nil
	}
	return session.Anonymous(), common.ErrInvalidToken
}

func (g *fakeGate) EndSession(token string) {
	g.ended = append(g.ended, token)
}

type failingEntities struct{}

func (failingEntities) Search(context.Context, string) (*services.EntityList, error) {
	return &services.EntityList{}, fmt.Errorf("%w: disk gone", common.ErrorStorageUnavailable)
}

func newTestServer(gate Gatekeeper) *GRPCServer {
	return NewGRPCServer("", logging.Nop{}, Services{Gate: gate, Entities: failingEntities{}}, metrics.New(), testAdminKey, time.Second, 0)
}

func incoming(kv ...string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(kv...))
}

func info(fullMethod string) *grpc.UnaryServerInfo {
	return &grpc.UnaryServerInfo{FullMethod: fullMethod}
}

func TestAuthInterceptor_Public(t *testing.T) {
	s := newTestServer(&fakeGate{})
	called := false
	_, err := s.authInterceptor(context.Background(), nil, info(pb.Portal_Login_FullMethodName), func(ctx context.Context, req any) (any, error) {
		called = true
		return nil, nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestAuthInterceptor_MemberSession(t *testing.T) {
	gate := &fakeGate{sessions: map[string]session.Session{"tok": session.Authenticated("ClubNorte")}}
	s := newTestServer(gate)

	var got session.Session
	var token any
	_, err := s.authInterceptor(incoming(common.SessionTokenHeaderName, "tok"), nil, info(pb.Portal_GetProfile_FullMethodName), func(ctx context.Context, req any) (any, error) {
		got = session.FromContext(ctx)
		token = ctx.Value(tokenKey)
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ClubNorte", got.UserName())
	assert.Equal(t, "tok", token)

	_, err = s.authInterceptor(incoming(common.SessionTokenHeaderName, "other"), nil, info(pb.Portal_GetProfile_FullMethodName), nil)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = s.authInterceptor(context.Background(), nil, info(pb.Portal_GetProfile_FullMethodName), nil)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAuthInterceptor_UnknownMethodNeedsSession(t *testing.T) {
	s := newTestServer(&fakeGate{})
	_, err := s.authInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/came.Portal/Nope"}, nil)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAuthInterceptor_Staff(t *testing.T) {
	s := newTestServer(&fakeGate{})
	ok := func(ctx context.Context, req any) (any, error) { return "ok", nil }

	resp, err := s.authInterceptor(incoming(common.AdminKeyHeaderName, testAdminKey), nil, info(pb.Portal_DeleteUser_FullMethodName), ok)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)

	_, err = s.authInterceptor(incoming(common.AdminKeyHeaderName, "staff-kez"), nil, info(pb.Portal_DeleteUser_FullMethodName), ok)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	empty := NewGRPCServer("", logging.Nop{}, Services{}, metrics.New(), "", 0, 0)
	_, err = empty.authInterceptor(incoming(common.AdminKeyHeaderName, ""), nil, info(pb.Portal_DeleteUser_FullMethodName), ok)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestTimeoutInterceptor(t *testing.T) {
	s := newTestServer(&fakeGate{})
	_, err := s.timeoutInterceptor(context.Background(), nil, info(pb.Portal_Ping_FullMethodName), func(ctx context.Context, req any) (any, error) {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		return nil, nil
	})
	require.NoError(t, err)

	s.timeout = 0
	_, err = s.timeoutInterceptor(context.Background(), nil, info(pb.Portal_Ping_FullMethodName), func(ctx context.Context, req any) (any, error) {
		_, ok := ctx.Deadline()
		assert.False(t, ok)
		return nil, nil
	})
	require.NoError(t, err)
}

func TestLogout_EndsTokenFromContext(t *testing.T) {
	gate := &fakeGate{}
	s := newTestServer(gate)

	ctx := context.WithValue(context.Background(), tokenKey, "tok")
	_, err := s.Logout(ctx, &pb.LogoutRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"tok"}, gate.ended)
}

func TestListEntities_RosterUnavailable(t *testing.T) {
	s := newTestServer(&fakeGate{})

	resp, err := s.ListEntities(context.Background(), &pb.ListEntitiesRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Entities)
	assert.Contains(t, resp.Warning, "roster unavailable")
}

func TestMemberHandlers_RequireSession(t *testing.T) {
	s := newTestServer(&fakeGate{})
	_, err := s.GetProfile(context.Background(), &pb.GetProfileRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestToStatus(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
	}{
		{nil, codes.OK},
		{fmt.Errorf("%w: empty file", common.ErrorValidation), codes.InvalidArgument},
		{common.ErrorEntityNotFound, codes.NotFound},
		{common.ErrorInvalidCredentials, codes.Unauthenticated},
		{common.ErrorNotFound, codes.NotFound},
		{common.ErrorAlreadyExists, codes.AlreadyExists},
		{common.ErrInvalidToken, codes.Unauthenticated},
		{fmt.Errorf("%w: log", common.ErrorPartialWrite), codes.DataLoss},
		{fmt.Errorf("%w: s3", common.ErrorStorageUnavailable), codes.Unavailable},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{errors.New("boom"), codes.Internal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, status.Code(toStatus(tt.err)), "%v", tt.err)
	}

	assert.Equal(t, common.ErrorInternal.Error(), status.Convert(toStatus(errors.New("secret detail"))).Message())
}

func TestMethodName(t *testing.T) {
	assert.Equal(t, "Login", methodName("/came.Portal/Login"))
	assert.Equal(t, "x", methodName("x"))
}
