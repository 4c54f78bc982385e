package spatialindex

import (
	"math"

	"github.com/tidwall/rtree"
	"go.uber.org/zap"

	"github.com/nischayvm/karnataka-tolls/pkg/geo"
	"github.com/nischayvm/karnataka-tolls/pkg/tollgate"
)

// GateIndex is an r-tree over the toll catalog. One estimation pass first
// narrows the catalog to gates whose bounding box intersects the route's
// bounding box, then runs the strided proximity check on the survivors.
type GateIndex struct {
	tr *rtree.RTreeG[tollgate.TollGate]
}

func NewGateIndex() *GateIndex {
	var tr rtree.RTreeG[tollgate.TollGate]
	return &GateIndex{
		tr: &tr,
	}
}

// Build. build r-tree over catalog gates, each leaf a bounding box with radius
// boundingBoxRadius (in km) around the gate location.
func (gi *GateIndex) Build(catalog *tollgate.Catalog, boundingBoxRadius float64, log *zap.Logger) {
	log.Info("Building toll gate R-tree index...", zap.Int("gates", catalog.Len()))
	for _, gate := range catalog.Gates() {
		lowerLat, lowerLon := geo.GetDestinationPoint(gate.Location.Lat, gate.Location.Lon, 225, boundingBoxRadius)
		upperLat, upperLon := geo.GetDestinationPoint(gate.Location.Lat, gate.Location.Lon, 45, boundingBoxRadius)

		gi.tr.Insert([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat}, gate)
	}
	log.Info("Toll gate R-tree index built.")
}

// SearchWithinBound returns every gate whose box intersects the rect spanned
// by (minLat,minLon)-(maxLat,maxLon), expanded by radius (in km).
func (gi *GateIndex) SearchWithinBound(minLat, minLon, maxLat, maxLon, radius float64) []tollgate.TollGate {
	lowerLat, lowerLon := geo.GetDestinationPoint(minLat, minLon, 225, radius)
	upperLat, upperLon := geo.GetDestinationPoint(maxLat, maxLon, 45, radius)

	results := make([]tollgate.TollGate, 0, 8)
	gi.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, gate tollgate.TollGate) bool {
			results = append(results, gate)
			return true
		})
	return results
}

// SearchWithinRadius returns every gate within radius (in km) from the query
// point (qLat, qLon).
func (gi *GateIndex) SearchWithinRadius(qLat, qLon, radius float64) []tollgate.TollGate {
	candidates := gi.SearchWithinBound(qLat, qLon, qLat, qLon, radius)
	results := candidates[:0]
	for _, gate := range candidates {
		dist := geo.CalculateHaversineDistance(qLat, qLon, gate.Location.Lat, gate.Location.Lon)
		if dist <= radius {
			results = append(results, gate)
		}
	}
	return results
}

// RouteBound returns the bounding rect of a coordinate path.
func RouteBound(points []geo.Coordinate) (minLat, minLon, maxLat, maxLon float64) {
	minLat, minLon = math.Inf(1), math.Inf(1)
	maxLat, maxLon = math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minLat = math.Min(minLat, p.Lat)
		minLon = math.Min(minLon, p.Lon)
		maxLat = math.Max(maxLat, p.Lat)
		maxLon = math.Max(maxLon, p.Lon)
	}
	return minLat, minLon, maxLat, maxLon
}
