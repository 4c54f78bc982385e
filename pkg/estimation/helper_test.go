package estimation

import (
	"testing"

	"github.com/nischayvm/karnataka-tolls/pkg/geo"
	"github.com/nischayvm/karnataka-tolls/pkg/tollgate"
)

// straightPath builds n points heading north from (lat, lon), spacingMeters
// apart.
func straightPath(lat, lon float64, n int, spacingMeters float64) []geo.Coordinate {
	points := make([]geo.Coordinate, n)
	points[0] = geo.NewCoordinate(lat, lon)
	for i := 1; i < n; i++ {
		nextLat, nextLon := geo.GetDestinationPoint(points[i-1].Lat, points[i-1].Lon, 0, spacingMeters/1000.0)
		points[i] = geo.NewCoordinate(nextLat, nextLon)
	}
	return points
}

func mustRoute(t *testing.T, points []geo.Coordinate, distanceKm, durationMin float64) *Route {
	t.Helper()
	route, err := NewRoute(points, distanceKm, durationMin)
	if err != nil {
		t.Fatalf("build route: %v", err)
	}
	return route
}

// gateNear places a gate offsetMeters east of the given point.
func gateNear(id string, point geo.Coordinate, offsetMeters float64, tariff tollgate.Tariff) tollgate.TollGate {
	lat, lon := geo.GetDestinationPoint(point.Lat, point.Lon, 90, offsetMeters/1000.0)
	return tollgate.TollGate{
		ID:       id,
		Name:     "gate " + id,
		Location: geo.NewCoordinate(lat, lon),
		Tariff:   tariff,
		Type:     tollgate.GateHighway,
	}
}
