package usecases

import (
	"context"

	"go.uber.org/zap"

	"github.com/nischayvm/karnataka-tolls/pkg/tollgate"
)

// CatalogService serves the toll gate listing. When a store is configured it
// reads fresh records per request; a store failure degrades to the startup
// snapshot rather than erroring, an estimation without the newest catalog is
// still correct for what it saw.
type CatalogService struct {
	log      *zap.Logger
	store    CatalogStore
	snapshot *tollgate.Catalog
}

func NewCatalogService(log *zap.Logger, store CatalogStore, snapshot *tollgate.Catalog) *CatalogService {
	return &CatalogService{
		log:      log,
		store:    store,
		snapshot: snapshot,
	}
}

func (s *CatalogService) ListGates(ctx context.Context) ([]tollgate.TollGate, error) {
	if s.store != nil {
		catalog, err := s.store.ListGates(ctx)
		if err == nil {
			return catalog.Gates(), nil
		}
		s.log.Warn("catalog store unavailable, serving startup snapshot", zap.Error(err))
	}
	return s.snapshot.Gates(), nil
}
