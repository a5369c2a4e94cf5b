package grpc

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/cameportal/internal/common"
	"github.com/dmitrijs2005/cameportal/internal/dbx"
	"github.com/dmitrijs2005/cameportal/internal/logging"
	pb "github.com/dmitrijs2005/cameportal/internal/proto"
	"github.com/dmitrijs2005/cameportal/internal/server/metrics"
	"github.com/dmitrijs2005/cameportal/internal/server/registry"
	"github.com/dmitrijs2005/cameportal/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/cameportal/internal/server/services"
	"github.com/dmitrijs2005/cameportal/internal/server/session"
	"github.com/dmitrijs2005/cameportal/internal/server/vault"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	testAdminKey = "staff-key"
	testRoster   = "entidad;igj;afip;estatuto\nClubNorte;Si;No;Si\nClubSur;No;No;No\n"
)

type portal struct {
	client  pb.PortalClient
	metrics *metrics.Metrics
}

func newPortal(t *testing.T) *portal {
	t.Helper()
	return newPortalWithCap(t, 1024)
}

// newPortalWithCap serves the portal with the given upload cap and a client
// whose message limits follow the same cap.
func newPortalWithCap(t *testing.T, maxUpload int64) *portal {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	rosterPath := filepath.Join(dir, "roster.csv")
	require.NoError(t, os.WriteFile(rosterPath, []byte(testRoster), 0o600))

	db, err := repomanager.Open(ctx, dbx.SQLite, filepath.Join(dir, "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	m := repomanager.NewSQLRepositoryManager(dbx.SQLite)
	require.NoError(t, m.RunMigrations(ctx, db))

	mx := metrics.New()
	usersSvc := services.NewUserService(db, m, logging.Nop{}, mx)
	roster := registry.NewImporter(rosterPath, logging.Nop{})
	gate := services.NewGate(roster, usersSvc, session.NewStore(), "secret", logging.Nop{}, mx)

	backend, err := vault.NewFSBackend(filepath.Join(dir, "docs"))
	require.NoError(t, err)
	docs := services.NewDocumentService(roster, vault.New(backend, logging.Nop{}), usersSvc, logging.Nop{}, mx, maxUpload, time.Minute)

	srv := NewGRPCServer("bufnet", logging.Nop{}, Services{
		Gate:      gate,
		Users:     usersSvc,
		Documents: docs,
		Entities:  services.NewEntityService(roster, logging.Nop{}, mx),
	}, mx, testAdminKey, 5*time.Second, maxUpload)

	lis := bufconn.Listen(1 << 20)
	srvCtx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(srvCtx, lis) }()

	limit := common.MessageSizeLimit(maxUpload)
	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(limit), grpc.MaxCallSendMsgSize(limit)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})

	return &portal{client: pb.NewPortalClient(conn), metrics: mx}
}

func asMember(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), common.SessionTokenHeaderName, token)
}

func asStaff(key string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), common.AdminKeyHeaderName, key)
}

func requireCode(t *testing.T, want codes.Code, err error) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, want, status.Code(err), "error: %v", err)
}

func (p *portal) registerAndLogin(t *testing.T, name, password string) string {
	t.Helper()
	ctx := context.Background()
	_, err := p.client.Register(ctx, &pb.RegisterRequest{Username: name, Password: password})
	require.NoError(t, err)
	resp, err := p.client.Login(ctx, &pb.LoginRequest{Username: name, Password: password})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestPortal_Ping(t *testing.T) {
	p := newPortal(t)

	resp, err := p.client.Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)
	assert.Equal(t, 1.0, testutil.ToFloat64(p.metrics.RPCRequests.WithLabelValues("Ping", codes.OK.String())))
}

func TestPortal_RegisterAndLogin(t *testing.T) {
	p := newPortal(t)
	ctx := context.Background()

	_, err := p.client.Register(ctx, &pb.RegisterRequest{Username: "Desconocida", Password: "pw"})
	requireCode(t, codes.NotFound, err)

	_, err = p.client.Register(ctx, &pb.RegisterRequest{Username: "ClubNorte", Password: ""})
	requireCode(t, codes.InvalidArgument, err)

	_, err = p.client.Register(ctx, &pb.RegisterRequest{Username: "ClubNorte", Password: "pw123"})
	require.NoError(t, err)

	_, err = p.client.Register(ctx, &pb.RegisterRequest{Username: "ClubNorte", Password: "other"})
	requireCode(t, codes.AlreadyExists, err)

	_, err = p.client.Login(ctx, &pb.LoginRequest{Username: "ClubNorte", Password: "wrong"})
	requireCode(t, codes.Unauthenticated, err)
	assert.Contains(t, status.Convert(err).Message(), common.ErrorInvalidCredentials.Error())

	_, err = p.client.Login(ctx, &pb.LoginRequest{Username: "Desconocida", Password: "pw123"})
	requireCode(t, codes.NotFound, err)
	assert.Contains(t, status.Convert(err).Message(), common.ErrorEntityNotFound.Error())

	resp, err := p.client.Login(ctx, &pb.LoginRequest{Username: "ClubNorte", Password: "pw123"})
	require.NoError(t, err)
	assert.Equal(t, "ClubNorte", resp.Username)
	assert.NotEmpty(t, resp.Token)
}

func TestPortal_MemberCallsNeedToken(t *testing.T) {
	p := newPortal(t)

	_, err := p.client.GetProfile(context.Background(), &pb.GetProfileRequest{})
	requireCode(t, codes.Unauthenticated, err)

	_, err = p.client.GetProfile(asMember("garbage"), &pb.GetProfileRequest{})
	requireCode(t, codes.Unauthenticated, err)
}

func TestPortal_Profile(t *testing.T) {
	p := newPortal(t)
	ctx := asMember(p.registerAndLogin(t, "ClubNorte", "pw123"))

	founded := time.Date(1950, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := p.client.UpdateProfile(ctx, &pb.UpdateProfileRequest{Contact: &pb.Contact{
		FoundingDate: timestamppb.New(founded),
		Email:        "info@clubnorte.org",
		Instagram:    "@clubnorte",
	}})
	require.NoError(t, err)

	resp, err := p.client.GetProfile(ctx, &pb.GetProfileRequest{})
	require.NoError(t, err)
	assert.Equal(t, "ClubNorte", resp.Profile.Username)
	require.NotNil(t, resp.Profile.LastLogin)
	assert.Equal(t, "info@clubnorte.org", resp.Profile.Contact.Email)
	assert.Equal(t, "@clubnorte", resp.Profile.Contact.Instagram)
	require.NotNil(t, resp.Profile.Contact.FoundingDate)
	assert.True(t, founded.Equal(resp.Profile.Contact.FoundingDate.AsTime()))
}

func TestPortal_Documents(t *testing.T) {
	p := newPortal(t)
	ctx := asMember(p.registerAndLogin(t, "ClubNorte", "pw123"))

	_, err := p.client.UploadDocument(ctx, &pb.UploadDocumentRequest{Type: "balance", FileName: "x.pdf", Content: []byte("x")})
	requireCode(t, codes.InvalidArgument, err)

	_, err = p.client.UploadDocument(ctx, &pb.UploadDocumentRequest{Type: "afip", FileName: "x.pdf"})
	requireCode(t, codes.InvalidArgument, err)

	_, err = p.client.UploadDocument(ctx, &pb.UploadDocumentRequest{Type: "afip", FileName: "x.pdf", Content: make([]byte, 2048)})
	requireCode(t, codes.InvalidArgument, err)

	_, err = p.client.DownloadDocument(ctx, &pb.DownloadDocumentRequest{Type: "afip"})
	requireCode(t, codes.NotFound, err)

	up, err := p.client.UploadDocument(ctx, &pb.UploadDocumentRequest{Type: "afip", FileName: "Constancia.PDF", Content: []byte("%PDF")})
	require.NoError(t, err)
	assert.Equal(t, "ClubNorte", up.Document.Entity)
	assert.Regexp(t, `^afip_\d{8}_\d{6}\.pdf$`, up.Document.FileName)

	list, err := p.client.ListDocuments(ctx, &pb.ListDocumentsRequest{})
	require.NoError(t, err)
	assert.True(t, list.Report.Registered)
	var afip *pb.DocumentRow
	for _, row := range list.Report.Documents {
		if row.Type == "afip" {
			afip = row
		}
	}
	require.NotNil(t, afip)
	assert.Equal(t, "Pendiente", afip.Status)
	require.NotNil(t, afip.Latest)
	assert.Equal(t, up.Document.FileName, afip.Latest.FileName)

	dl, err := p.client.DownloadDocument(ctx, &pb.DownloadDocumentRequest{Type: "afip"})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), dl.Content)
	assert.Empty(t, dl.Url)

	logResp, err := p.client.UploadLog(asStaff(testAdminKey), &pb.UploadLogRequest{Entity: "ClubNorte"})
	require.NoError(t, err)
	require.Len(t, logResp.Lines, 1)
	assert.Contains(t, logResp.Lines[0], "Subido afip - "+up.Document.FileName)
}

func TestPortal_LargeDocumentRoundTrip(t *testing.T) {
	p := newPortalWithCap(t, 20<<20)
	ctx := asMember(p.registerAndLogin(t, "ClubNorte", "pw123"))

	content := make([]byte, 5<<20)
	for i := range content {
		content[i] = byte(i % 251)
	}

	up, err := p.client.UploadDocument(ctx, &pb.UploadDocumentRequest{Type: "estatuto", FileName: "estatuto.pdf", Content: content})
	require.NoError(t, err)
	assert.EqualValues(t, len(content), up.Document.Size)

	dl, err := p.client.DownloadDocument(ctx, &pb.DownloadDocumentRequest{Type: "estatuto"})
	require.NoError(t, err)
	assert.Equal(t, content, dl.Content)
}

func TestPortal_UploadBeyondCapRejected(t *testing.T) {
	p := newPortalWithCap(t, 2<<20)
	ctx := asMember(p.registerAndLogin(t, "ClubNorte", "pw123"))

	_, err := p.client.UploadDocument(ctx, &pb.UploadDocumentRequest{Type: "afip", FileName: "x.pdf", Content: make([]byte, 2<<20+1)})
	requireCode(t, codes.InvalidArgument, err)
}

func TestPortal_StaffCallsNeedAdminKey(t *testing.T) {
	p := newPortal(t)

	_, err := p.client.ListUsers(context.Background(), &pb.ListUsersRequest{})
	requireCode(t, codes.PermissionDenied, err)

	_, err = p.client.ListUsers(asStaff("wrong"), &pb.ListUsersRequest{})
	requireCode(t, codes.PermissionDenied, err)

	token := p.registerAndLogin(t, "ClubNorte", "pw123")
	_, err = p.client.ListUsers(asMember(token), &pb.ListUsersRequest{})
	requireCode(t, codes.PermissionDenied, err)

	resp, err := p.client.ListUsers(asStaff(testAdminKey), &pb.ListUsersRequest{Search: "norte"})
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "ClubNorte", resp.Users[0].Username)
}

func TestPortal_StaffViews(t *testing.T) {
	p := newPortal(t)
	p.registerAndLogin(t, "ClubNorte", "pw123")
	ctx := asStaff(testAdminKey)

	stats, err := p.client.UserStats(ctx, &pb.UserStatsRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.Total)
	assert.EqualValues(t, 1, stats.RecentRegistrations)
	assert.EqualValues(t, 1, stats.RecentLogins)
	require.Len(t, stats.RegistrationsPerMonth, 1)

	exp, err := p.client.ExportUsers(ctx, &pb.ExportUsersRequest{})
	require.NoError(t, err)
	assert.Equal(t, services.ExportHeader, exp.Header)
	require.Len(t, exp.Rows, 1)
	assert.Equal(t, "ClubNorte", exp.Rows[0].Cells[0])

	ents, err := p.client.ListEntities(ctx, &pb.ListEntitiesRequest{Search: "club"})
	require.NoError(t, err)
	assert.Empty(t, ents.Warning)
	require.Len(t, ents.Entities, 2)

	rep, err := p.client.EntityCompliance(ctx, &pb.EntityComplianceRequest{Entity: "ClubSur"})
	require.NoError(t, err)
	assert.False(t, rep.Report.Registered)
	assert.Len(t, rep.Report.Documents, 4)

	_, err = p.client.EntityCompliance(ctx, &pb.EntityComplianceRequest{Entity: "Nadie"})
	requireCode(t, codes.NotFound, err)
}

func TestPortal_LogoutEndsSession(t *testing.T) {
	p := newPortal(t)
	ctx := asMember(p.registerAndLogin(t, "ClubNorte", "pw123"))

	_, err := p.client.Logout(ctx, &pb.LogoutRequest{})
	require.NoError(t, err)

	_, err = p.client.GetProfile(ctx, &pb.GetProfileRequest{})
	requireCode(t, codes.Unauthenticated, err)
}

func TestPortal_ResetPasswordRevokesSessions(t *testing.T) {
	p := newPortal(t)
	member := asMember(p.registerAndLogin(t, "ClubNorte", "pw123"))
	staff := asStaff(testAdminKey)

	_, err := p.client.ResetPassword(staff, &pb.ResetPasswordRequest{Username: "ClubSur", NewPassword: "x"})
	requireCode(t, codes.NotFound, err)

	_, err = p.client.ResetPassword(staff, &pb.ResetPasswordRequest{Username: "ClubNorte", NewPassword: "nueva"})
	require.NoError(t, err)

	_, err = p.client.GetProfile(member, &pb.GetProfileRequest{})
	requireCode(t, codes.Unauthenticated, err)

	_, err = p.client.Login(context.Background(), &pb.LoginRequest{Username: "ClubNorte", Password: "pw123"})
	requireCode(t, codes.Unauthenticated, err)
	_, err = p.client.Login(context.Background(), &pb.LoginRequest{Username: "ClubNorte", Password: "nueva"})
	require.NoError(t, err)
}

func TestPortal_DeleteUserRevokesSessions(t *testing.T) {
	p := newPortal(t)
	member := asMember(p.registerAndLogin(t, "ClubNorte", "pw123"))
	staff := asStaff(testAdminKey)

	_, err := p.client.DeleteUser(staff, &pb.DeleteUserRequest{Username: "ClubNorte"})
	require.NoError(t, err)

	_, err = p.client.GetProfile(member, &pb.GetProfileRequest{})
	requireCode(t, codes.Unauthenticated, err)

	_, err = p.client.DeleteUser(staff, &pb.DeleteUserRequest{Username: "ClubNorte"})
	requireCode(t, codes.NotFound, err)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", logging.Nop{}, Services{}, metrics.New(), testAdminKey, 0, 0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, Services{}, metrics.New(), testAdminKey, 0, 0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.Error(t, srv.Run(ctx))
}
