package client

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/cameportal/internal/client/models"
	"github.com/dmitrijs2005/cameportal/internal/common"
	"github.com/dmitrijs2005/cameportal/internal/netx"
	pb "github.com/dmitrijs2005/cameportal/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// downloadURL is a test seam for presigned downloads.
var downloadURL = netx.DownloadFromPresignedURL

type GRPCClient struct {
	endpointURL string
	adminKey    string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.PortalClient

	mu       sync.RWMutex
	token    string
	userName string
}

// NewGRPCClient connects lazily to endpointURL. Message limits are sized to
// carry a document of maxUpload bytes. Extra dial options are appended to
// the defaults (plaintext transport plus the auth interceptor).
func NewGRPCClient(endpointURL, adminKey string, timeout time.Duration, maxUpload int64, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, adminKey: adminKey, timeout: timeout}

	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.authInterceptor),
	}
	if limit := common.MessageSizeLimit(maxUpload); limit > 0 {
		dialOpts = append(dialOpts, grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(limit),
			grpc.MaxCallSendMsgSize(limit),
		))
	}
	dialOpts = append(dialOpts, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewPortalClient(conn)
	return c, nil
}

func (c *GRPCClient) session() (token, userName string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token, c.userName
}

func (c *GRPCClient) setSession(token, userName string) {
	c.mu.Lock()
	c.token, c.userName = token, userName
	c.mu.Unlock()
}

func (c *GRPCClient) authInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token, _ := c.session(); token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, common.SessionTokenHeaderName, token)
	}
	if c.adminKey != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, common.AdminKeyHeaderName, c.adminKey)
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	resp, err := c.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (c *GRPCClient) Register(ctx context.Context, username string, password []byte) error {
	_, err := c.client.Register(ctx, &pb.RegisterRequest{Username: username, Password: string(password)})
	return mapError(err)
}

func (c *GRPCClient) Login(ctx context.Context, username string, password []byte) error {
	resp, err := c.client.Login(ctx, &pb.LoginRequest{Username: username, Password: string(password)})
	if err != nil {
		return mapError(err)
	}
	c.setSession(resp.GetToken(), resp.GetUsername())
	return nil
}

// Logout ends the server session. The local session is dropped even when
// the server cannot be reached.
func (c *GRPCClient) Logout(ctx context.Context) error {
	token, _ := c.session()
	if token == "" {
		return nil
	}
	_, err := c.client.Logout(ctx, &pb.LogoutRequest{})
	c.setSession("", "")
	return mapError(err)
}

// UserName is empty when no member is logged in.
func (c *GRPCClient) UserName() string {
	_, u := c.session()
	return u
}

func (c *GRPCClient) Profile(ctx context.Context) (*models.Profile, error) {
	resp, err := c.client.GetProfile(ctx, &pb.GetProfileRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return profileFromPB(resp.GetProfile()), nil
}

func (c *GRPCClient) UpdateProfile(ctx context.Context, contact models.Contact) error {
	_, err := c.client.UpdateProfile(ctx, &pb.UpdateProfileRequest{Contact: contactToPB(contact)})
	return mapError(err)
}

func (c *GRPCClient) Upload(ctx context.Context, docType, fileName string, content []byte) (*models.Document, error) {
	resp, err := c.client.UploadDocument(ctx, &pb.UploadDocumentRequest{Type: docType, FileName: fileName, Content: content})
	if err != nil {
		return nil, mapError(err)
	}
	return documentFromPB(resp.GetDocument()), nil
}

func (c *GRPCClient) Documents(ctx context.Context) (*models.ComplianceReport, error) {
	resp, err := c.client.ListDocuments(ctx, &pb.ListDocumentsRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return reportFromPB(resp.GetReport()), nil
}

// Download returns the latest version of a document, following the
// presigned URL when the server hands one out.
func (c *GRPCClient) Download(ctx context.Context, docType string) (*models.Document, []byte, error) {
	resp, err := c.client.DownloadDocument(ctx, &pb.DownloadDocumentRequest{Type: docType})
	if err != nil {
		return nil, nil, mapError(err)
	}
	doc := documentFromPB(resp.GetDocument())
	if resp.GetUrl() == "" {
		return doc, resp.GetContent(), nil
	}
	data, err := downloadURL(ctx, resp.GetUrl())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return doc, data, nil
}

func (c *GRPCClient) Users(ctx context.Context, search string) ([]models.UserSummary, error) {
	resp, err := c.client.ListUsers(ctx, &pb.ListUsersRequest{Search: search})
	if err != nil {
		return nil, mapError(err)
	}
	out := make([]models.UserSummary, 0, len(resp.GetUsers()))
	for _, u := range resp.GetUsers() {
		out = append(out, userFromPB(u))
	}
	return out, nil
}

func (c *GRPCClient) Stats(ctx context.Context) (*models.UserStats, error) {
	resp, err := c.client.UserStats(ctx, &pb.UserStatsRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return statsFromPB(resp), nil
}

func (c *GRPCClient) Export(ctx context.Context, search string) (*models.Table, error) {
	resp, err := c.client.ExportUsers(ctx, &pb.ExportUsersRequest{Search: search})
	if err != nil {
		return nil, mapError(err)
	}
	return tableFromPB(resp), nil
}

func (c *GRPCClient) ResetPassword(ctx context.Context, username string, password []byte) error {
	_, err := c.client.ResetPassword(ctx, &pb.ResetPasswordRequest{Username: username, NewPassword: string(password)})
	return mapError(err)
}

func (c *GRPCClient) DeleteUser(ctx context.Context, username string) error {
	_, err := c.client.DeleteUser(ctx, &pb.DeleteUserRequest{Username: username})
	return mapError(err)
}

func (c *GRPCClient) Entities(ctx context.Context, search string) (*models.EntityList, error) {
	resp, err := c.client.ListEntities(ctx, &pb.ListEntitiesRequest{Search: search})
	if err != nil {
		return nil, mapError(err)
	}
	return entityListFromPB(resp), nil
}

func (c *GRPCClient) Compliance(ctx context.Context, entity string) (*models.ComplianceReport, error) {
	resp, err := c.client.EntityCompliance(ctx, &pb.EntityComplianceRequest{Entity: entity})
	if err != nil {
		return nil, mapError(err)
	}
	return reportFromPB(resp.GetReport()), nil
}

func (c *GRPCClient) UploadLog(ctx context.Context, entity string) ([]string, error) {
	resp, err := c.client.UploadLog(ctx, &pb.UploadLogRequest{Entity: entity})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Lines, nil
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	msg := st.Message()
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.Unauthenticated:
		if strings.Contains(msg, common.ErrorInvalidCredentials.Error()) {
			return common.ErrorInvalidCredentials
		}
		return ErrUnauthorized
	case codes.PermissionDenied:
		return ErrForbidden
	case codes.NotFound:
		if strings.Contains(msg, common.ErrorEntityNotFound.Error()) {
			return common.ErrorEntityNotFound
		}
		return common.ErrorNotFound
	case codes.AlreadyExists:
		return common.ErrorAlreadyExists
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrorValidation, msg)
	case codes.DataLoss:
		return common.ErrorPartialWrite
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
