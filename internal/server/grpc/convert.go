package grpc

import (
	"time"

	pb "github.com/dmitrijs2005/cameportal/internal/proto"
	"github.com/dmitrijs2005/cameportal/internal/server/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// timestamp maps an unknown date to an unset field.
func timestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func fromTimestamp(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

func contactToPB(c models.ContactInfo) *pb.Contact {
	return &pb.Contact{
		FoundingDate: timestamp(c.FoundingDate),
		Email:        c.Email,
		Phone:        c.Phone,
		Facebook:     c.Facebook,
		Twitter:      c.Twitter,
		Instagram:    c.Instagram,
		Linkedin:     c.LinkedIn,
	}
}

func contactFromPB(c *pb.Contact) models.ContactInfo {
	return models.ContactInfo{
		FoundingDate: fromTimestamp(c.GetFoundingDate()),
		Email:        c.GetEmail(),
		Phone:        c.GetPhone(),
		Facebook:     c.GetFacebook(),
		Twitter:      c.GetTwitter(),
		Instagram:    c.GetInstagram(),
		LinkedIn:     c.GetLinkedin(),
	}
}

func userToPB(u *models.User) *pb.UserSummary {
	return &pb.UserSummary{
		Username:  u.UserName,
		CreatedAt: timestamppb.New(u.CreatedAt),
		LastLogin: timestamp(u.LastLogin),
		Contact:   contactToPB(u.Contact),
	}
}

func documentToPB(d models.StoredDocument) *pb.Document {
	return &pb.Document{
		Entity:     d.Entity,
		Type:       string(d.Type),
		FileName:   d.FileName,
		UploadedAt: timestamppb.New(d.UploadedAt),
		Size:       d.Size,
	}
}

func entityToPB(e models.EntityRecord) *pb.Entity {
	return &pb.Entity{
		Name:           e.Name,
		MemberSince:    timestamp(e.MemberSince),
		DirectiveBoard: e.DirectiveBoard,
		Cuit:           e.CUIT,
		CuitStatus:     e.CUITStatus,
		Address:        e.Address,
		City:           e.City,
		Province:       e.Province,
		President:      e.President,
		MandateExpiry:  timestamp(e.MandateExpiry),
		Igj:            e.IGJ,
		Afip:           e.AFIP,
		Estatuto:       e.Estatuto,
		RosterExpiry:   timestamp(e.RosterExpiry),
		RosterStatus:   e.RosterStatus,
	}
}

func reportToPB(r *models.ComplianceReport) *pb.ComplianceReport {
	out := &pb.ComplianceReport{
		Entity:     entityToPB(r.Entity),
		Registered: r.Registered,
		LastLogin:  timestamp(r.LastLogin),
		Documents:  make([]*pb.DocumentRow, 0, len(r.Documents)),
	}
	if r.Contact != nil {
		out.Contact = contactToPB(*r.Contact)
	}
	for _, d := range r.Documents {
		row := &pb.DocumentRow{
			Type:   string(d.Type),
			Label:  d.Type.Label(),
			Status: string(d.Status),
			Expiry: timestamp(d.Expiry),
		}
		if d.Latest != nil {
			row.Latest = documentToPB(*d.Latest)
		}
		out.Documents = append(out.Documents, row)
	}
	return out
}
