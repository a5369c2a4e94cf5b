// Package compliance derives per-document status from roster records and
// joins it with uploaded evidence and credential contact data.
//
// Status is a function of the roster alone. An upload is shown next to the
// status but never changes it; a status only moves once staff re-import the
// roster with the document approved.
package compliance

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/cameportal/internal/common"
	"github.com/dmitrijs2005/cameportal/internal/server/models"
)

// StatusOf derives the status of one document type for one entity.
// It is defined for every record and every type.
func StatusOf(rec models.EntityRecord, t models.DocumentType) models.DocumentStatus {
	switch t {
	case models.DocumentIGJ:
		return flagStatus(t, rec.IGJ)
	case models.DocumentAFIP:
		return flagStatus(t, rec.AFIP)
	case models.DocumentEstatuto:
		return flagStatus(t, rec.Estatuto)
	case models.DocumentRoster:
		st := models.DocumentStatus{Type: t, Status: models.StatusPendiente, Expiry: rec.RosterExpiry}
		if rec.RosterStatus == string(models.StatusVigente) {
			st.Status = models.StatusVigente
		}
		return st
	default:
		return models.DocumentStatus{Type: t, Status: models.StatusPendiente}
	}
}

func flagStatus(t models.DocumentType, flag string) models.DocumentStatus {
	if flag == models.Yes {
		return models.DocumentStatus{Type: t, Status: models.StatusEnviado}
	}
	return models.DocumentStatus{Type: t, Status: models.StatusPendiente}
}

// Statuses returns StatusOf for every tracked type in display order.
func Statuses(rec models.EntityRecord) []models.DocumentStatus {
	out := make([]models.DocumentStatus, 0, len(models.DocumentTypes))
	for _, t := range models.DocumentTypes {
		out = append(out, StatusOf(rec, t))
	}
	return out
}

// LatestFinder is the part of the document vault the reconciler reads.
type LatestFinder interface {
	Latest(ctx context.Context, entity string, t models.DocumentType) (*models.StoredDocument, error)
}

// Reconcile builds the full report for one entity. user may be nil when
// the entity has no credential row. A document whose latest upload cannot
// be read is reported without one; the first such error is returned with
// the otherwise complete report.
func Reconcile(ctx context.Context, rec models.EntityRecord, vault LatestFinder, user *models.User) (*models.ComplianceReport, error) {
	report := &models.ComplianceReport{
		Entity:    rec,
		Documents: make([]models.DocumentView, 0, len(models.DocumentTypes)),
	}
	if user != nil {
		report.Registered = true
		report.LastLogin = user.LastLogin
		contact := user.Contact
		report.Contact = &contact
	}

	var firstErr error
	for _, st := range Statuses(rec) {
		view := models.DocumentView{DocumentStatus: st}
		if vault != nil {
			doc, err := vault.Latest(ctx, rec.Name, st.Type)
			switch {
			case err == nil:
				view.Latest = doc
			case errors.Is(err, common.ErrorNotFound):
			default:
				if firstErr == nil {
					firstErr = err
				}
			}
		}
		report.Documents = append(report.Documents, view)
	}
	return report, firstErr
}
