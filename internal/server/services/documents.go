package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/cameportal/internal/common"
	"github.com/dmitrijs2005/cameportal/internal/logging"
	"github.com/dmitrijs2005/cameportal/internal/server/compliance"
	"github.com/dmitrijs2005/cameportal/internal/server/metrics"
	"github.com/dmitrijs2005/cameportal/internal/server/models"
	"github.com/dmitrijs2005/cameportal/internal/server/vault"
)

// UserGetter reads one credential row.
type UserGetter interface {
	Get(ctx context.Context, username string) (*models.User, error)
}

// Download is one stored version with its content. URL is set when the
// vault can hand out a direct link.
type Download struct {
	Document models.StoredDocument
	Content  []byte
	URL      string
}

// DocumentService handles evidence uploads and the compliance view that
// joins roster, vault and credential data.
type DocumentService struct {
	roster         RosterLoader
	vault          *vault.Vault
	users          UserGetter
	log            logging.Logger
	metrics        *metrics.Metrics
	maxUploadBytes int64
	urlTTL         time.Duration
}

func NewDocumentService(roster RosterLoader, v *vault.Vault, users UserGetter, log logging.Logger, mx *metrics.Metrics, maxUploadBytes int64, urlTTL time.Duration) *DocumentService {
	return &DocumentService{
		roster:         roster,
		vault:          v,
		users:          users,
		log:            log.With("module", "documents"),
		metrics:        mx,
		maxUploadBytes: maxUploadBytes,
		urlTTL:         urlTTL,
	}
}

func (s *DocumentService) record(ctx context.Context, entity string) (models.EntityRecord, error) {
	tbl, err := s.roster.Load(ctx)
	if err != nil {
		return models.EntityRecord{}, err
	}
	s.metrics.ObserveRegistryLoad(tbl.Len(), tbl.Skipped())
	rec, ok := tbl.Lookup(entity)
	if !ok {
		return models.EntityRecord{}, common.ErrorEntityNotFound
	}
	return rec, nil
}

// Upload stores a new version of a document. It does not change the
// document's status.
func (s *DocumentService) Upload(ctx context.Context, entity string, t models.DocumentType, data []byte, originalFilename string) (*models.StoredDocument, error) {
	if len(data) == 0 {
		s.metrics.UploadFailures.WithLabelValues("empty").Inc()
		return nil, fmt.Errorf("%w: empty file", common.ErrorValidation)
	}
	if s.maxUploadBytes > 0 && int64(len(data)) > s.maxUploadBytes {
		s.metrics.UploadFailures.WithLabelValues("too_large").Inc()
		return nil, fmt.Errorf("%w: file exceeds %d bytes", common.ErrorValidation, s.maxUploadBytes)
	}
	if _, err := s.record(ctx, entity); err != nil {
		return nil, err
	}

	doc, err := s.vault.Store(ctx, entity, t, data, originalFilename)
	if err != nil {
		reason := "storage"
		switch {
		case errors.Is(err, common.ErrorPartialWrite):
			reason = "partial_write"
		case errors.Is(err, common.ErrorValidation):
			reason = "invalid"
		}
		s.metrics.UploadFailures.WithLabelValues(reason).Inc()
		return nil, err
	}

	s.metrics.DocumentsUploaded.WithLabelValues(string(t)).Inc()
	return doc, nil
}

// Compliance reconciles one entity. Vault read problems are logged and the
// affected documents are shown without an upload.
func (s *DocumentService) Compliance(ctx context.Context, entity string) (*models.ComplianceReport, error) {
	rec, err := s.record(ctx, entity)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Get(ctx, entity)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
	}

	report, err := compliance.Reconcile(ctx, rec, s.vault, user)
	if err != nil {
		s.log.Warn(ctx, "vault unavailable while reconciling", "entity", entity, "error", err)
	}
	return report, nil
}

// Versions lists stored versions of one document type.
func (s *DocumentService) Versions(ctx context.Context, entity string, t models.DocumentType) ([]models.StoredDocument, error) {
	return s.vault.Versions(ctx, entity, t)
}

// DownloadLatest returns the newest version of a document. When the vault
// can presign a direct link only the URL is returned, otherwise the content.
func (s *DocumentService) DownloadLatest(ctx context.Context, entity string, t models.DocumentType) (*Download, error) {
	doc, err := s.vault.Latest(ctx, entity, t)
	if err != nil {
		return nil, err
	}

	url, err := s.vault.DownloadURL(ctx, *doc, s.urlTTL)
	if err != nil {
		s.log.Warn(ctx, "presign failed, sending content inline", "entity", entity, "file", doc.FileName, "error", err)
		url = ""
	}
	if url != "" {
		return &Download{Document: *doc, URL: url}, nil
	}

	data, err := s.vault.Open(ctx, *doc)
	if err != nil {
		return nil, err
	}
	return &Download{Document: *doc, Content: data}, nil
}

// UploadLog returns the entity's upload log lines.
func (s *DocumentService) UploadLog(ctx context.Context, entity string) ([]string, error) {
	return s.vault.Log(ctx, entity)
}
