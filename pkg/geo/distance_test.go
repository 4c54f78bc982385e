package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateHaversineDistance(t *testing.T) {
	// one degree of longitude at the equator is ~111.19 km
	dist := CalculateHaversineDistance(0, 0, 0, 1)
	assert.InDelta(t, 111.19, dist, 0.01)

	// symmetric
	assert.InDelta(t, dist, CalculateHaversineDistance(0, 1, 0, 0), 1e-9)

	// zero for identical points
	assert.Equal(t, 0.0, CalculateHaversineDistance(12.9, 77.5, 12.9, 77.5))
}

func TestGetDestinationPointRoundTrip(t *testing.T) {
	lat, lon := GetDestinationPoint(12.9, 77.5, 0, 1.0)
	back := CalculateHaversineDistance(12.9, 77.5, lat, lon)
	assert.InDelta(t, 1.0, back, 1e-6)
}

func TestMidPoint(t *testing.T) {
	lat, lon := MidPoint(0, 0, 0, 2)
	assert.InDelta(t, 0.0, lat, 1e-9)
	assert.InDelta(t, 1.0, lon, 1e-9)
}

func TestCoordinateValid(t *testing.T) {
	assert.True(t, NewCoordinate(12.9, 77.5).Valid())
	assert.False(t, NewCoordinate(91, 0).Valid())
	assert.False(t, NewCoordinate(0, 181).Valid())
	assert.False(t, NewCoordinate(-91, 0).Valid())
}

func TestPolylineRoundTrip(t *testing.T) {
	coords := []Coordinate{
		NewCoordinate(12.9, 77.5),
		NewCoordinate(12.95, 77.55),
		NewCoordinate(13.0, 77.6),
	}
	encoded := PolylineFromCoords(coords)
	decoded, err := CoordsFromPolyline(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, len(coords))
	for i := range coords {
		assert.InDelta(t, coords[i].Lat, decoded[i].Lat, 1e-5)
		assert.InDelta(t, coords[i].Lon, decoded[i].Lon, 1e-5)
	}
}

func TestCoordsFromLonLatPairsFlipsOrder(t *testing.T) {
	coords := CoordsFromLonLatPairs([][]float64{{77.5, 12.9}})
	require.Len(t, coords, 1)
	assert.Equal(t, 12.9, coords[0].Lat)
	assert.Equal(t, 77.5, coords[0].Lon)
}

func TestSnapToPath(t *testing.T) {
	path := []Coordinate{
		NewCoordinate(12.9, 77.5),
		NewCoordinate(13.0, 77.5),
	}
	// point slightly east of the segment midpoint snaps onto the segment
	snap := SnapToPath(path, NewCoordinate(12.95, 77.51))
	assert.InDelta(t, 12.95, snap.Lat, 1e-3)
	assert.InDelta(t, 77.5, snap.Lon, 1e-3)
}
