package estimation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nischayvm/karnataka-tolls/pkg/tollgate"
)

func TestAggregateCarWithOneGate(t *testing.T) {
	// 50 km / 60 min route past one ₹50 gate:
	// toll 50, fuel round(50/15*105) = 350, total 400
	points := straightPath(12.9, 77.5, 11, 500)
	route := mustRoute(t, points, 50, 60)
	gate := gateNear("tg-1", points[5], 100, tollgate.Tariff{tollgate.VehicleCar: 50})

	cost, err := Aggregate(route, []tollgate.TollGate{gate}, tollgate.VehicleCar, DefaultFuelParams())
	require.NoError(t, err)

	assert.Equal(t, 50.0, cost.TollCost)
	assert.Equal(t, 350.0, cost.FuelCost)
	assert.Equal(t, 400.0, cost.TotalCost)
	assert.Len(t, cost.MatchedGates, 1)
}

func TestAggregateBikeWithFreePassage(t *testing.T) {
	// absent tariff entry means free passage for that class
	points := straightPath(12.9, 77.5, 11, 500)
	route := mustRoute(t, points, 50, 60)
	gate := gateNear("tg-1", points[5], 100, tollgate.Tariff{tollgate.VehicleCar: 50})

	cost, err := Aggregate(route, []tollgate.TollGate{gate}, tollgate.VehicleBike, DefaultFuelParams())
	require.NoError(t, err)

	assert.Equal(t, 0.0, cost.TollCost)
	assert.Equal(t, cost.FuelCost, cost.TotalCost)
}

func TestAggregateChargesEachGateOnce(t *testing.T) {
	points := straightPath(12.9, 77.5, 11, 500)
	route := mustRoute(t, points, 50, 60)
	gate := gateNear("tg-1", points[5], 100, tollgate.Tariff{tollgate.VehicleCar: 50})

	cost, err := Aggregate(route, []tollgate.TollGate{gate, gate, gate}, tollgate.VehicleCar, DefaultFuelParams())
	require.NoError(t, err)

	assert.Equal(t, 50.0, cost.TollCost)
	assert.Len(t, cost.MatchedGates, 1)
}

func TestAggregateRoundsFuelToWholeUnits(t *testing.T) {
	points := straightPath(12.9, 77.5, 3, 500)
	route := mustRoute(t, points, 50, 60)

	// 50/14*100 = 357.142..., rounds to 357
	cost, err := Aggregate(route, nil, tollgate.VehicleCar, NewFuelParams(14, 100))
	require.NoError(t, err)
	assert.Equal(t, 357.0, cost.FuelCost)
}

func TestAggregateRejectsUnknownClass(t *testing.T) {
	points := straightPath(12.9, 77.5, 3, 500)
	route := mustRoute(t, points, 10, 15)

	_, err := Aggregate(route, nil, tollgate.VehicleClass("rickshaw"), DefaultFuelParams())
	assert.Error(t, err)
}

func TestAggregateRejectsNilRoute(t *testing.T) {
	_, err := Aggregate(nil, nil, tollgate.VehicleCar, DefaultFuelParams())
	assert.Error(t, err)
}

func TestNewRouteValidation(t *testing.T) {
	points := straightPath(12.9, 77.5, 3, 500)

	_, err := NewRoute(points[:1], 1, 1)
	assert.Error(t, err, "fewer than 2 points")

	_, err = NewRoute(points, -1, 1)
	assert.Error(t, err, "negative distance")

	_, err = NewRoute(points, 1, -1)
	assert.Error(t, err, "negative duration")

	outOfRange := straightPath(12.9, 77.5, 3, 500)
	outOfRange[1].Lat = 91
	_, err = NewRoute(outOfRange, 1, 1)
	assert.Error(t, err, "latitude out of range")
}
