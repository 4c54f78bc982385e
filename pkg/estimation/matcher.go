package estimation

import (
	"github.com/nischayvm/karnataka-tolls/pkg/geo"
	"github.com/nischayvm/karnataka-tolls/pkg/tollgate"
)

// Matches reports whether the route physically passes the gate: some sampled
// route point lies within cfg.RadiusMeters of the gate location.
//
// Sampling checks index 0, N, 2N, ... plus the last point, N = cfg.Stride.
// Striding keeps matching linear in the route length at the price of possible
// false negatives for a gate sitting entirely between two sampled points.
// It never introduces false positives. Routes with fewer points than the
// stride are checked pointwise. Pure function, no hidden state.
func Matches(route *Route, gate tollgate.TollGate, cfg MatchConfig) bool {
	cfg = cfg.normalized()
	points := route.Points()

	stride := cfg.Stride
	if len(points) <= stride {
		stride = 1
	}

	for i := 0; i < len(points); i += stride {
		if geo.HaversineDistanceMeters(points[i], gate.Location) < cfg.RadiusMeters {
			return true
		}
	}
	last := points[len(points)-1]
	return geo.HaversineDistanceMeters(last, gate.Location) < cfg.RadiusMeters
}

// NearestSampledPointIndex returns the index of the sampled route point
// closest to the gate. Used to attach a snapped gate location to responses;
// matching itself only needs the boolean above.
func NearestSampledPointIndex(route *Route, gate tollgate.TollGate, cfg MatchConfig) int {
	cfg = cfg.normalized()
	points := route.Points()

	stride := cfg.Stride
	if len(points) <= stride {
		stride = 1
	}

	bestIdx := 0
	bestDist := geo.HaversineDistanceMeters(points[0], gate.Location)
	check := func(i int) {
		d := geo.HaversineDistanceMeters(points[i], gate.Location)
		if d < bestDist {
			bestDist = d
			bestIdx = i
		}
	}
	for i := stride; i < len(points); i += stride {
		check(i)
	}
	check(len(points) - 1)
	return bestIdx
}
