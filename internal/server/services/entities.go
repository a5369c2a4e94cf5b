package services

import (
	"context"

	"github.com/dmitrijs2005/cameportal/internal/logging"
	"github.com/dmitrijs2005/cameportal/internal/server/metrics"
	"github.com/dmitrijs2005/cameportal/internal/server/models"
)

// EntityList is a roster search result.
type EntityList struct {
	Entities    []models.EntityRecord
	Diagnostics []models.RowDiagnostic
}

// EntityService lets staff browse the roster.
type EntityService struct {
	roster  RosterLoader
	log     logging.Logger
	metrics *metrics.Metrics
}

func NewEntityService(roster RosterLoader, log logging.Logger, mx *metrics.Metrics) *EntityService {
	return &EntityService{roster: roster, log: log.With("module", "entities"), metrics: mx}
}

// Search returns the entities whose name contains term, ignoring case,
// with the diagnostics of the load. When the feed cannot be read the list
// is empty and the error is returned alongside it.
func (s *EntityService) Search(ctx context.Context, term string) (*EntityList, error) {
	tbl, err := s.roster.Load(ctx)
	if err != nil {
		s.log.Error(ctx, "roster unavailable", "error", err)
		return &EntityList{}, err
	}
	s.metrics.ObserveRegistryLoad(tbl.Len(), tbl.Skipped())
	return &EntityList{Entities: tbl.Search(term), Diagnostics: tbl.Diagnostics}, nil
}
