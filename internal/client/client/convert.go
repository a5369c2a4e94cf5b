package client

import (
	"time"

	"github.com/dmitrijs2005/cameportal/internal/client/models"
	pb "github.com/dmitrijs2005/cameportal/internal/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func optionalTime(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

func optionalTimestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func contactFromPB(c *pb.Contact) models.Contact {
	return models.Contact{
		FoundingDate: optionalTime(c.GetFoundingDate()),
		Email:        c.GetEmail(),
		Phone:        c.GetPhone(),
		Facebook:     c.GetFacebook(),
		Twitter:      c.GetTwitter(),
		Instagram:    c.GetInstagram(),
		LinkedIn:     c.GetLinkedin(),
	}
}

func contactToPB(c models.Contact) *pb.Contact {
	return &pb.Contact{
		FoundingDate: optionalTimestamp(c.FoundingDate),
		Email:        c.Email,
		Phone:        c.Phone,
		Facebook:     c.Facebook,
		Twitter:      c.Twitter,
		Instagram:    c.Instagram,
		Linkedin:     c.LinkedIn,
	}
}

func profileFromPB(p *pb.Profile) *models.Profile {
	return &models.Profile{
		Username:  p.GetUsername(),
		CreatedAt: p.GetCreatedAt().AsTime(),
		LastLogin: optionalTime(p.GetLastLogin()),
		Contact:   contactFromPB(p.GetContact()),
	}
}

func documentFromPB(d *pb.Document) *models.Document {
	if d == nil {
		return nil
	}
	return &models.Document{
		Entity:     d.GetEntity(),
		Type:       d.GetType(),
		FileName:   d.GetFileName(),
		UploadedAt: d.GetUploadedAt().AsTime(),
		Size:       d.GetSize(),
	}
}

func entityFromPB(e *pb.Entity) models.Entity {
	return models.Entity{
		Name:           e.GetName(),
		MemberSince:    optionalTime(e.GetMemberSince()),
		DirectiveBoard: e.GetDirectiveBoard(),
		CUIT:           e.GetCuit(),
		CUITStatus:     e.GetCuitStatus(),
		Address:        e.GetAddress(),
		City:           e.GetCity(),
		Province:       e.GetProvince(),
		President:      e.GetPresident(),
		MandateExpiry:  optionalTime(e.GetMandateExpiry()),
		IGJ:            e.GetIgj(),
		AFIP:           e.GetAfip(),
		Estatuto:       e.GetEstatuto(),
		RosterExpiry:   optionalTime(e.GetRosterExpiry()),
		RosterStatus:   e.GetRosterStatus(),
	}
}

func reportFromPB(r *pb.ComplianceReport) *models.ComplianceReport {
	out := &models.ComplianceReport{
		Entity:     entityFromPB(r.GetEntity()),
		Registered: r.GetRegistered(),
		LastLogin:  optionalTime(r.GetLastLogin()),
	}
	if r.GetContact() != nil {
		c := contactFromPB(r.GetContact())
		out.Contact = &c
	}
	for _, d := range r.GetDocuments() {
		out.Documents = append(out.Documents, models.DocumentRow{
			Type:   d.GetType(),
			Label:  d.GetLabel(),
			Status: d.GetStatus(),
			Expiry: optionalTime(d.GetExpiry()),
			Latest: documentFromPB(d.GetLatest()),
		})
	}
	return out
}

func userFromPB(u *pb.UserSummary) models.UserSummary {
	return models.UserSummary{
		Username:  u.GetUsername(),
		CreatedAt: u.GetCreatedAt().AsTime(),
		LastLogin: optionalTime(u.GetLastLogin()),
		Contact:   contactFromPB(u.GetContact()),
	}
}

func statsFromPB(s *pb.UserStatsResponse) *models.UserStats {
	out := &models.UserStats{
		Total:            int(s.GetTotal()),
		NewLast30Days:    int(s.GetRecentRegistrations()),
		ActiveLast30Days: int(s.GetRecentLogins()),
	}
	for _, m := range s.GetRegistrationsPerMonth() {
		out.RegistrationsPerMonth = append(out.RegistrationsPerMonth, models.MonthCount{Month: m.GetMonth(), Count: int(m.GetCount())})
	}
	return out
}

func tableFromPB(t *pb.ExportUsersResponse) *models.Table {
	out := &models.Table{Header: t.GetHeader(), Rows: make([][]string, 0, len(t.GetRows()))}
	for _, row := range t.GetRows() {
		out.Rows = append(out.Rows, row.GetCells())
	}
	return out
}

func entityListFromPB(l *pb.ListEntitiesResponse) *models.EntityList {
	out := &models.EntityList{Warning: l.GetWarning(), Entities: make([]models.Entity, 0, len(l.GetEntities()))}
	for _, e := range l.GetEntities() {
		out.Entities = append(out.Entities, entityFromPB(e))
	}
	for _, d := range l.GetSkipped() {
		out.Skipped = append(out.Skipped, models.RowDiagnostic{Line: int(d.GetLine()), Reason: d.GetReason()})
	}
	return out
}
