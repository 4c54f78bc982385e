package estimation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nischayvm/karnataka-tolls/pkg/tollgate"
)

var testTariff = tollgate.Tariff{tollgate.VehicleCar: 50}

func TestMatchesGateNearSampledPoint(t *testing.T) {
	// 11 points, 500 m apart; stride 5 samples indices 0, 5, 10
	points := straightPath(12.9, 77.5, 11, 500)
	route := mustRoute(t, points, 5, 6)
	cfg := NewMatchConfig(300, 5)

	gate := gateNear("tg-1", points[5], 100, testTariff)
	assert.True(t, Matches(route, gate, cfg))
}

func TestMatchesGateFarFromEveryPoint(t *testing.T) {
	points := straightPath(12.9, 77.5, 11, 500)
	route := mustRoute(t, points, 5, 6)
	cfg := NewMatchConfig(300, 5)

	gate := gateNear("tg-1", points[5], 2000, testTariff)
	assert.False(t, Matches(route, gate, cfg))
}

func TestMatchesLastPointAlwaysSampled(t *testing.T) {
	// 12 points: stride 5 samples 0, 5, 10 and the final index 11
	points := straightPath(12.9, 77.5, 12, 500)
	route := mustRoute(t, points, 5.5, 7)
	cfg := NewMatchConfig(300, 5)

	gate := gateNear("tg-1", points[11], 100, testTariff)
	assert.True(t, Matches(route, gate, cfg))
}

func TestMatchesStridingCanMissGateBetweenSamples(t *testing.T) {
	// the documented false-negative: gate sits next to an unsampled point,
	// out of radius from every sampled one
	points := straightPath(12.9, 77.5, 11, 500)
	route := mustRoute(t, points, 5, 6)
	cfg := NewMatchConfig(300, 5)

	gate := gateNear("tg-1", points[2], 50, testTariff)
	assert.False(t, Matches(route, gate, cfg))

	// the same gate is found with pointwise sampling
	assert.True(t, Matches(route, gate, NewMatchConfig(300, 1)))
}

func TestMatchesShortRouteFallsBackToEveryPoint(t *testing.T) {
	// 3 points < stride 5, so every point is checked
	points := straightPath(12.9, 77.5, 3, 500)
	route := mustRoute(t, points, 1, 2)
	cfg := NewMatchConfig(300, 5)

	gate := gateNear("tg-1", points[1], 100, testTariff)
	assert.True(t, Matches(route, gate, cfg))
}

func TestMatchesIsIdempotent(t *testing.T) {
	points := straightPath(12.9, 77.5, 11, 500)
	route := mustRoute(t, points, 5, 6)
	cfg := NewMatchConfig(300, 5)
	gate := gateNear("tg-1", points[5], 100, testTariff)

	first := Matches(route, gate, cfg)
	second := Matches(route, gate, cfg)
	assert.Equal(t, first, second)
	assert.True(t, first)
}

func TestNearestSampledPointIndex(t *testing.T) {
	points := straightPath(12.9, 77.5, 11, 500)
	route := mustRoute(t, points, 5, 6)
	cfg := NewMatchConfig(300, 5)

	gate := gateNear("tg-1", points[5], 100, testTariff)
	assert.Equal(t, 5, NearestSampledPointIndex(route, gate, cfg))

	// a gate near an unsampled point maps to the closest sampled one
	gate = gateNear("tg-2", points[2], 50, testTariff)
	assert.Equal(t, 0, NearestSampledPointIndex(route, gate, cfg))
}

func TestMatchesZeroConfigUsesDefaults(t *testing.T) {
	points := straightPath(12.9, 77.5, 11, 500)
	route := mustRoute(t, points, 5, 6)

	gate := gateNear("tg-1", points[0], 100, testTariff)
	assert.True(t, Matches(route, gate, MatchConfig{}))
}
