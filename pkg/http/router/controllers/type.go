package controllers

import (
	"context"

	"github.com/nischayvm/karnataka-tolls/pkg/estimation"
	"github.com/nischayvm/karnataka-tolls/pkg/geo"
	"github.com/nischayvm/karnataka-tolls/pkg/geocoder"
	"github.com/nischayvm/karnataka-tolls/pkg/tollgate"
)

type EstimationService interface {
	EstimateRoute(ctx context.Context, origin, destination geo.Coordinate,
		class tollgate.VehicleClass) (estimation.ComparisonResult, error)
	CompareRoutes(ctx context.Context, standard, alternate *estimation.Route,
		class tollgate.VehicleClass) (estimation.ComparisonResult, error)
}

type CatalogService interface {
	ListGates(ctx context.Context) ([]tollgate.TollGate, error)
}

type GeocodeService interface {
	Search(ctx context.Context, query string) (geocoder.Place, error)
}
