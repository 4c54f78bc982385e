package spatialindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nischayvm/karnataka-tolls/pkg/geo"
	"github.com/nischayvm/karnataka-tolls/pkg/tollgate"
)

func testCatalog() *tollgate.Catalog {
	return tollgate.NewCatalog([]tollgate.TollGate{
		{ID: "tg-1", Name: "Electronic City Toll Plaza", Location: geo.NewCoordinate(12.852, 77.648)},
		{ID: "tg-2", Name: "Attibele Toll Plaza", Location: geo.NewCoordinate(12.772, 77.772)},
		// far away, near Belagavi
		{ID: "tg-3", Name: "Hattargi Toll Plaza", Location: geo.NewCoordinate(16.016, 74.602)},
	})
}

func TestSearchWithinBound(t *testing.T) {
	index := NewGateIndex()
	index.Build(testCatalog(), 0.3, zap.NewNop())

	// rect around the Bengaluru gates only
	gates := index.SearchWithinBound(12.7, 77.5, 12.9, 77.8, 0.3)
	require.Len(t, gates, 2)
	ids := []string{gates[0].ID, gates[1].ID}
	assert.ElementsMatch(t, []string{"tg-1", "tg-2"}, ids)
}

func TestSearchWithinRadius(t *testing.T) {
	index := NewGateIndex()
	index.Build(testCatalog(), 0.3, zap.NewNop())

	// 1 km around the Electronic City plaza finds only that plaza
	gates := index.SearchWithinRadius(12.852, 77.648, 1.0)
	require.Len(t, gates, 1)
	assert.Equal(t, "tg-1", gates[0].ID)

	// ~900m north of the plaza with a 100m radius finds nothing
	assert.Empty(t, index.SearchWithinRadius(12.86, 77.648, 0.1))
}

func TestRouteBound(t *testing.T) {
	minLat, minLon, maxLat, maxLon := RouteBound([]geo.Coordinate{
		geo.NewCoordinate(12.9, 77.6),
		geo.NewCoordinate(12.8, 77.7),
		geo.NewCoordinate(13.0, 77.5),
	})
	assert.Equal(t, 12.8, minLat)
	assert.Equal(t, 77.5, minLon)
	assert.Equal(t, 13.0, maxLat)
	assert.Equal(t, 77.7, maxLon)
}
