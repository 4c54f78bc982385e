package geo

import (
	"github.com/golang/geo/s2"
)

// ProjectPointToLineCoord projects snap onto the segment (pointA, pointB) and
// returns the projected coordinate.
func ProjectPointToLineCoord(pointA Coordinate, pointB Coordinate,
	snap Coordinate) Coordinate {
	pointAS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(pointA.Lat, pointA.Lon))
	pointBS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(pointB.Lat, pointB.Lon))
	snapS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(snap.Lat, snap.Lon))
	projection := s2.Project(snapS2, pointAS2, pointBS2)
	projectLatLng := s2.LatLngFromPoint(projection)
	return NewCoordinate(projectLatLng.Lat.Degrees(), projectLatLng.Lng.Degrees())
}

// return in meter
func PointLinePerpendicularDistance(pointA Coordinate, pointB Coordinate,
	snap Coordinate) float64 {
	projectionPoint := ProjectPointToLineCoord(pointA, pointB, snap)

	dist := CalculateHaversineDistance(snap.GetLat(), snap.GetLon(), projectionPoint.GetLat(), projectionPoint.GetLon())

	return dist * 1000
}

// SnapToPath projects snap onto the closest segment of path and returns the
// snapped coordinate. Paths shorter than two points snap to themselves.
func SnapToPath(path []Coordinate, snap Coordinate) Coordinate {
	if len(path) < 2 {
		return snap
	}
	best := ProjectPointToLineCoord(path[0], path[1], snap)
	bestDist := PointLinePerpendicularDistance(path[0], path[1], snap)
	for i := 1; i+1 < len(path); i++ {
		if d := PointLinePerpendicularDistance(path[i], path[i+1], snap); d < bestDist {
			bestDist = d
			best = ProjectPointToLineCoord(path[i], path[i+1], snap)
		}
	}
	return best
}
