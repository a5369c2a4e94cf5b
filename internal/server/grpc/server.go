// Package grpc exposes the portal services as the Portal gRPC service.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/cameportal/internal/common"
	"github.com/dmitrijs2005/cameportal/internal/logging"
	pb "github.com/dmitrijs2005/cameportal/internal/proto"
	"github.com/dmitrijs2005/cameportal/internal/server/metrics"
	"github.com/dmitrijs2005/cameportal/internal/server/models"
	"github.com/dmitrijs2005/cameportal/internal/server/services"
	"github.com/dmitrijs2005/cameportal/internal/server/session"
	"google.golang.org/grpc"
)

// Gatekeeper issues and checks member sessions.
type Gatekeeper interface {
	StartSession(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password string) error
	Resolve(token string) (session.Session, error)
	EndSession(token string)
	Revoke(ctx context.Context, username string)
}

// Users manages credential rows.
type Users interface {
	Get(ctx context.Context, username string) (*models.User, error)
	UpdateContactInfo(ctx context.Context, username string, contact models.ContactInfo) error
	List(ctx context.Context, search string) ([]*models.User, error)
	Stats(ctx context.Context) (*models.UserStats, error)
	ExportSnapshot(ctx context.Context, search string) (*models.Table, error)
	ResetPassword(ctx context.Context, username, newPassword string) error
	DeleteUser(ctx context.Context, username string) error
}

// Documents handles evidence files and compliance views.
type Documents interface {
	Upload(ctx context.Context, entity string, t models.DocumentType, data []byte, originalFilename string) (*models.StoredDocument, error)
	Compliance(ctx context.Context, entity string) (*models.ComplianceReport, error)
	DownloadLatest(ctx context.Context, entity string, t models.DocumentType) (*services.Download, error)
	UploadLog(ctx context.Context, entity string) ([]string, error)
}

// Entities browses the roster.
type Entities interface {
	Search(ctx context.Context, term string) (*services.EntityList, error)
}

// Services bundles what the handlers call.
type Services struct {
	Gate      Gatekeeper
	Users     Users
	Documents Documents
	Entities  Entities
}

type GRPCServer struct {
	pb.UnimplementedPortalServer
	address    string
	svc        Services
	logger     logging.Logger
	metrics    *metrics.Metrics
	adminKey   []byte
	timeout    time.Duration
	maxMsgSize int
}

// NewGRPCServer builds the Portal server. A zero timeout leaves calls
// unbounded. Messages are sized to carry a document of maxUpload bytes.
func NewGRPCServer(address string, l logging.Logger, svc Services, mx *metrics.Metrics, adminKey string, timeout time.Duration, maxUpload int64) *GRPCServer {
	return &GRPCServer{
		address:    address,
		svc:        svc,
		logger:     l.With("module", "grpc_server"),
		metrics:    mx,
		adminKey:   []byte(adminKey),
		timeout:    timeout,
		maxMsgSize: common.MessageSizeLimit(maxUpload),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	opts := []grpc.ServerOption{grpc.ChainUnaryInterceptor(
		s.metricsInterceptor,
		s.timeoutInterceptor,
		s.authInterceptor,
	)}
	if s.maxMsgSize > 0 {
		opts = append(opts, grpc.MaxRecvMsgSize(s.maxMsgSize), grpc.MaxSendMsgSize(s.maxMsgSize))
	}
	srv := grpc.NewServer(opts...)
	pb.RegisterPortalServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
