package geo

import (
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords encodes an ordered coordinate sequence into a google
// encoded polyline (precision 1e-5).
func PolylineFromCoords(coords []Coordinate) string {
	flat := make([][]float64, len(coords))
	for i, c := range coords {
		flat[i] = []float64{c.Lat, c.Lon}
	}
	return string(polyline.EncodeCoords(flat))
}

// CoordsFromPolyline decodes an encoded polyline into coordinates. Polyline
// order is already (lat, lon), so no component flip is needed here.
func CoordsFromPolyline(encoded string) ([]Coordinate, error) {
	flat, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, err
	}
	coords := make([]Coordinate, len(flat))
	for i, pair := range flat {
		coords[i] = NewCoordinate(pair[0], pair[1])
	}
	return coords, nil
}

// CoordsFromLonLatPairs normalizes a provider-native [lon, lat] pair list
// (geojson order) into coordinates.
func CoordsFromLonLatPairs(pairs [][]float64) []Coordinate {
	coords := make([]Coordinate, len(pairs))
	for i, pair := range pairs {
		coords[i] = NewCoordinate(pair[1], pair[0])
	}
	return coords
}
