package estimation

import (
	"fmt"

	"github.com/nischayvm/karnataka-tolls/pkg/geo"
	"github.com/nischayvm/karnataka-tolls/pkg/util"
)

// Route is one ordered path produced by the routing provider, normalized to
// km/minutes. Immutable once built; owned by a single estimation call.
type Route struct {
	points      []geo.Coordinate
	distanceKm  float64
	durationMin float64
}

// NewRoute validates and builds a route. A route needs at least two points,
// every point inside the WGS84 degree ranges, and nonnegative
// distance/duration.
func NewRoute(points []geo.Coordinate, distanceKm, durationMin float64) (*Route, error) {
	if len(points) < 2 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			fmt.Sprintf("route needs at least 2 points, got %d", len(points)))
	}
	for i, p := range points {
		if !p.Valid() {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
				fmt.Sprintf("route point %d out of range: (%f, %f)", i, p.Lat, p.Lon))
		}
	}
	if distanceKm < 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			fmt.Sprintf("route distance must be nonnegative, got %f", distanceKm))
	}
	if durationMin < 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			fmt.Sprintf("route duration must be nonnegative, got %f", durationMin))
	}
	copied := make([]geo.Coordinate, len(points))
	copy(copied, points)
	return &Route{
		points:      copied,
		distanceKm:  distanceKm,
		durationMin: durationMin,
	}, nil
}

func (r *Route) Points() []geo.Coordinate {
	return r.points
}

func (r *Route) DistanceKm() float64 {
	return r.distanceKm
}

func (r *Route) DurationMin() float64 {
	return r.durationMin
}
