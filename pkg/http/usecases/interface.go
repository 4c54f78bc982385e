package usecases

import (
	"context"

	"github.com/nischayvm/karnataka-tolls/pkg/estimation"
	"github.com/nischayvm/karnataka-tolls/pkg/geo"
	"github.com/nischayvm/karnataka-tolls/pkg/tollgate"
)

// RouteProvider is the external routing engine (OSRM in production).
type RouteProvider interface {
	FetchRoute(ctx context.Context, origin, destination geo.Coordinate,
		excludeTolls bool) (*estimation.Route, error)
}

// GateIndex narrows the toll catalog to gates near a bounding rect before the
// per-gate proximity check runs.
type GateIndex interface {
	SearchWithinBound(minLat, minLon, maxLat, maxLon, radius float64) []tollgate.TollGate
}

// CatalogStore produces fresh toll catalog snapshots.
type CatalogStore interface {
	ListGates(ctx context.Context) (*tollgate.Catalog, error)
}
