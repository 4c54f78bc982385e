package usecases

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nischayvm/karnataka-tolls/pkg/estimation"
	"github.com/nischayvm/karnataka-tolls/pkg/geo"
	"github.com/nischayvm/karnataka-tolls/pkg/spatialindex"
	"github.com/nischayvm/karnataka-tolls/pkg/tollgate"
	"github.com/nischayvm/karnataka-tolls/pkg/util"
)

type EstimationService struct {
	log      *zap.Logger
	engine   *estimation.Engine
	provider RouteProvider
	index    GateIndex
	catalog  *tollgate.Catalog

	matchCfg estimation.MatchConfig
	fuel     map[tollgate.VehicleClass]estimation.FuelParams
	// alternateClasses lists the vehicle classes for which a toll excluded
	// alternate is requested; other classes are routed identically either way.
	alternateClasses map[tollgate.VehicleClass]bool
}

func NewEstimationService(log *zap.Logger, engine *estimation.Engine, provider RouteProvider,
	index GateIndex, catalog *tollgate.Catalog, matchCfg estimation.MatchConfig,
	fuel map[tollgate.VehicleClass]estimation.FuelParams,
	alternateClasses map[tollgate.VehicleClass]bool) *EstimationService {
	return &EstimationService{
		log:              log,
		engine:           engine,
		provider:         provider,
		index:            index,
		catalog:          catalog,
		matchCfg:         matchCfg,
		fuel:             fuel,
		alternateClasses: alternateClasses,
	}
}

// EstimateRoute fetches the standard route (and, for classes that request
// toll exclusion, the alternate) from the routing provider and runs the
// estimation engine over the catalog snapshot. An alternate fetch failure
// degrades to "alternate absent"; a standard fetch failure is fatal for the
// request since there is no meaningful result without it.
func (s *EstimationService) EstimateRoute(ctx context.Context, origin, destination geo.Coordinate,
	class tollgate.VehicleClass) (estimation.ComparisonResult, error) {
	if !origin.Valid() || !destination.Valid() {
		return estimation.ComparisonResult{}, util.WrapErrorf(nil, util.ErrBadParamInput,
			"origin and destination must be valid coordinates")
	}
	if !class.Valid() {
		return estimation.ComparisonResult{}, util.WrapErrorf(nil, util.ErrBadParamInput,
			"unknown vehicle class %q", class)
	}

	var (
		standard  *estimation.Route
		alternate *estimation.Route
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		standard, err = s.provider.FetchRoute(gctx, origin, destination, false)
		return err
	})
	if s.alternateClasses[class] {
		g.Go(func() error {
			alt, err := s.provider.FetchRoute(gctx, origin, destination, true)
			if err != nil {
				// degrade to the single route case
				s.log.Warn("alternate route fetch failed, proceeding without it",
					zap.Error(err))
				return nil
			}
			alternate = alt
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return estimation.ComparisonResult{}, err
	}

	return s.CompareRoutes(ctx, standard, alternate, class)
}

// CompareRoutes runs the engine over caller supplied geometries.
func (s *EstimationService) CompareRoutes(ctx context.Context, standard, alternate *estimation.Route,
	class tollgate.VehicleClass) (estimation.ComparisonResult, error) {
	if standard == nil {
		return estimation.ComparisonResult{}, util.WrapErrorf(nil, util.ErrBadParamInput,
			"standard route is required")
	}

	catalog := s.candidateCatalog(standard, alternate)
	return s.engine.Estimate(standard, alternate, catalog, class, s.matchCfg, s.fuelFor(class))
}

// candidateCatalog narrows the snapshot to gates near the routes' combined
// bounding rect. The strided matcher still makes the per-gate call; the
// index only prunes gates that cannot possibly match.
func (s *EstimationService) candidateCatalog(standard, alternate *estimation.Route) *tollgate.Catalog {
	if s.index == nil {
		return s.catalog
	}
	points := standard.Points()
	if alternate != nil {
		merged := make([]geo.Coordinate, 0, len(points)+len(alternate.Points()))
		merged = append(merged, points...)
		merged = append(merged, alternate.Points()...)
		points = merged
	}
	minLat, minLon, maxLat, maxLon := spatialindex.RouteBound(points)
	radiusKm := s.matchCfg.RadiusMeters / 1000.0
	if radiusKm <= 0 {
		radiusKm = estimation.DefaultRadiusMeters / 1000.0
	}
	candidates := s.index.SearchWithinBound(minLat, minLon, maxLat, maxLon, radiusKm)
	return tollgate.NewCatalog(candidates)
}

func (s *EstimationService) fuelFor(class tollgate.VehicleClass) estimation.FuelParams {
	if params, ok := s.fuel[class]; ok {
		return params
	}
	return estimation.DefaultFuelParams()
}
