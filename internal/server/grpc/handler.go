package grpc

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/cameportal/internal/common"
	pb "github.com/dmitrijs2005/cameportal/internal/proto"
	"github.com/dmitrijs2005/cameportal/internal/server/models"
	"github.com/dmitrijs2005/cameportal/internal/server/session"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func documentType(s string) (models.DocumentType, error) {
	t, ok := models.ParseDocumentType(s)
	if !ok {
		return "", status.Errorf(codes.InvalidArgument, "unknown document type %q", s)
	}
	return t, nil
}

// member returns the entity the call was authenticated as.
func member(ctx context.Context) (string, error) {
	sess := session.FromContext(ctx)
	if !sess.IsAuthenticated() {
		return "", status.Error(codes.Unauthenticated, common.ErrorUnauthorized.Error())
	}
	return sess.UserName(), nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	if err := s.svc.Gate.Register(ctx, req.Username, req.Password); err != nil {
		s.logger.Info(ctx, "registration rejected", "username", req.Username, "error", err)
		return nil, toStatus(err)
	}
	s.logger.Info(ctx, "Registered", "username", req.Username)
	return &pb.RegisterResponse{}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	token, err := s.svc.Gate.StartSession(ctx, req.Username, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.LoginResponse{Username: req.Username, Token: token}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	if token, ok := ctx.Value(tokenKey).(string); ok {
		s.svc.Gate.EndSession(token)
	}
	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {
	name, err := member(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.svc.Users.Get(ctx, name)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetProfileResponse{Profile: &pb.Profile{
		Username:  u.UserName,
		CreatedAt: timestamppb.New(u.CreatedAt),
		LastLogin: timestamp(u.LastLogin),
		Contact:   contactToPB(u.Contact),
	}}, nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.UpdateProfileResponse, error) {
	name, err := member(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.svc.Users.UpdateContactInfo(ctx, name, contactFromPB(req.Contact)); err != nil {
		return nil, toStatus(err)
	}
	return &pb.UpdateProfileResponse{}, nil
}

func (s *GRPCServer) UploadDocument(ctx context.Context, req *pb.UploadDocumentRequest) (*pb.UploadDocumentResponse, error) {
	name, err := member(ctx)
	if err != nil {
		return nil, err
	}
	t, err := documentType(req.Type)
	if err != nil {
		return nil, err
	}
	doc, err := s.svc.Documents.Upload(ctx, name, t, req.Content, req.FileName)
	if err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info(ctx, "document uploaded", "entity", name, "type", t, "file", doc.FileName)
	return &pb.UploadDocumentResponse{Document: documentToPB(*doc)}, nil
}

func (s *GRPCServer) ListDocuments(ctx context.Context, req *pb.ListDocumentsRequest) (*pb.ListDocumentsResponse, error) {
	name, err := member(ctx)
	if err != nil {
		return nil, err
	}
	report, err := s.svc.Documents.Compliance(ctx, name)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListDocumentsResponse{Report: reportToPB(report)}, nil
}

func (s *GRPCServer) DownloadDocument(ctx context.Context, req *pb.DownloadDocumentRequest) (*pb.DownloadDocumentResponse, error) {
	name, err := member(ctx)
	if err != nil {
		return nil, err
	}
	t, err := documentType(req.Type)
	if err != nil {
		return nil, err
	}
	d, err := s.svc.Documents.DownloadLatest(ctx, name, t)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.DownloadDocumentResponse{
		Document: documentToPB(d.Document),
		Content:  d.Content,
		Url:      d.URL,
	}, nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, req *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {
	list, err := s.svc.Users.List(ctx, req.Search)
	if err != nil {
		return nil, toStatus(err)
	}
	out := make([]*pb.UserSummary, 0, len(list))
	for _, u := range list {
		out = append(out, userToPB(u))
	}
	return &pb.ListUsersResponse{Users: out}, nil
}

func (s *GRPCServer) UserStats(ctx context.Context, req *pb.UserStatsRequest) (*pb.UserStatsResponse, error) {
	st, err := s.svc.Users.Stats(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.UserStatsResponse{
		Total:               int32(st.Total),
		RecentRegistrations: int32(st.NewLast30Days),
		RecentLogins:        int32(st.ActiveLast30Days),
	}
	for _, m := range st.RegistrationsPerMonth {
		resp.RegistrationsPerMonth = append(resp.RegistrationsPerMonth, &pb.MonthCount{Month: m.Month, Count: int32(m.Count)})
	}
	return resp, nil
}

func (s *GRPCServer) ExportUsers(ctx context.Context, req *pb.ExportUsersRequest) (*pb.ExportUsersResponse, error) {
	t, err := s.svc.Users.ExportSnapshot(ctx, req.Search)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.ExportUsersResponse{Header: t.Header, Rows: make([]*pb.ExportRow, 0, len(t.Rows))}
	for _, row := range t.Rows {
		resp.Rows = append(resp.Rows, &pb.ExportRow{Cells: row})
	}
	return resp, nil
}

func (s *GRPCServer) ResetPassword(ctx context.Context, req *pb.ResetPasswordRequest) (*pb.ResetPasswordResponse, error) {
	if err := s.svc.Users.ResetPassword(ctx, req.Username, req.NewPassword); err != nil {
		return nil, toStatus(err)
	}
	s.svc.Gate.Revoke(ctx, req.Username)
	s.logger.Info(ctx, "password reset", "username", req.Username)
	return &pb.ResetPasswordResponse{}, nil
}

func (s *GRPCServer) DeleteUser(ctx context.Context, req *pb.DeleteUserRequest) (*pb.DeleteUserResponse, error) {
	if err := s.svc.Users.DeleteUser(ctx, req.Username); err != nil {
		return nil, toStatus(err)
	}
	s.svc.Gate.Revoke(ctx, req.Username)
	s.logger.Info(ctx, "user deleted", "username", req.Username)
	return &pb.DeleteUserResponse{}, nil
}

// ListEntities never fails because of the roster feed: an unreadable feed
// yields an empty list and a warning.
func (s *GRPCServer) ListEntities(ctx context.Context, req *pb.ListEntitiesRequest) (*pb.ListEntitiesResponse, error) {
	list, err := s.svc.Entities.Search(ctx, req.Search)
	if err != nil {
		return &pb.ListEntitiesResponse{
			Entities: []*pb.Entity{},
			Warning:  fmt.Sprintf("roster unavailable: %v", err),
		}, nil
	}
	resp := &pb.ListEntitiesResponse{Entities: make([]*pb.Entity, 0, len(list.Entities))}
	for _, e := range list.Entities {
		resp.Entities = append(resp.Entities, entityToPB(e))
	}
	for _, d := range list.Diagnostics {
		resp.Skipped = append(resp.Skipped, &pb.RowDiagnostic{Line: int32(d.Line), Reason: d.Reason})
	}
	return resp, nil
}

func (s *GRPCServer) EntityCompliance(ctx context.Context, req *pb.EntityComplianceRequest) (*pb.EntityComplianceResponse, error) {
	report, err := s.svc.Documents.Compliance(ctx, req.Entity)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.EntityComplianceResponse{Report: reportToPB(report)}, nil
}

func (s *GRPCServer) UploadLog(ctx context.Context, req *pb.UploadLogRequest) (*pb.UploadLogResponse, error) {
	lines, err := s.svc.Documents.UploadLog(ctx, req.Entity)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.UploadLogResponse{Lines: lines}, nil
}
