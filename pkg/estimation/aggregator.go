package estimation

import (
	"fmt"

	"github.com/nischayvm/karnataka-tolls/pkg/tollgate"
	"github.com/nischayvm/karnataka-tolls/pkg/util"
)

// RouteCost is the aggregated cost of driving one route: the tolls it crosses
// plus a fuel estimate derived from its distance.
type RouteCost struct {
	Route        *Route
	MatchedGates []tollgate.TollGate
	TollCost     float64
	FuelCost     float64
	TotalCost    float64
}

// Aggregate sums the matched gate fees for the vehicle class and adds a fuel
// estimate (distanceKm / economy * price, rounded to whole currency units).
// A gate appearing more than once in matchedGates is charged exactly once;
// loops through the same plaza never double-charge.
func Aggregate(route *Route, matchedGates []tollgate.TollGate, class tollgate.VehicleClass,
	fuel FuelParams) (RouteCost, error) {
	if route == nil {
		return RouteCost{}, util.WrapErrorf(nil, util.ErrBadParamInput, "route is required")
	}
	if !class.Valid() {
		return RouteCost{}, util.WrapErrorf(nil, util.ErrBadParamInput,
			fmt.Sprintf("unknown vehicle class %q", class))
	}
	if route.DistanceKm() < 0 {
		return RouteCost{}, util.WrapErrorf(nil, util.ErrBadParamInput,
			fmt.Sprintf("route distance must be nonnegative, got %f", route.DistanceKm()))
	}
	fuel = fuel.normalized()

	var tollCost float64
	seen := make(map[string]struct{}, len(matchedGates))
	unique := make([]tollgate.TollGate, 0, len(matchedGates))
	for _, gate := range matchedGates {
		if _, ok := seen[gate.ID]; ok {
			continue
		}
		seen[gate.ID] = struct{}{}
		unique = append(unique, gate)
		tollCost += gate.Tariff.CostFor(class)
	}

	fuelCost := util.RoundFloat(route.DistanceKm()/fuel.EconomyKmPerUnit*fuel.PricePerUnit, 0)

	return RouteCost{
		Route:        route,
		MatchedGates: unique,
		TollCost:     tollCost,
		FuelCost:     fuelCost,
		TotalCost:    tollCost + fuelCost,
	}, nil
}
