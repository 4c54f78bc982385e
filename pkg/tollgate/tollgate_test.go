package tollgate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nischayvm/karnataka-tolls/pkg/geo"
	"github.com/nischayvm/karnataka-tolls/pkg/util"
)

func TestParseVehicleClass(t *testing.T) {
	for _, s := range []string{"car", "bike", "truck"} {
		class, err := ParseVehicleClass(s)
		require.NoError(t, err)
		assert.Equal(t, VehicleClass(s), class)
		assert.True(t, class.Valid())
	}

	_, err := ParseVehicleClass("bus")
	require.Error(t, err)
	var ierr *util.Error
	require.True(t, errors.As(err, &ierr))
	assert.Equal(t, util.ErrBadParamInput, ierr.Code())
	assert.False(t, VehicleClass("bus").Valid())
}

func TestTariffCostFor(t *testing.T) {
	tariff := Tariff{VehicleCar: 50, VehicleTruck: 100}

	assert.Equal(t, 50.0, tariff.CostFor(VehicleCar))
	assert.Equal(t, 100.0, tariff.CostFor(VehicleTruck))
	// class without an entry passes for free
	assert.Equal(t, 0.0, tariff.CostFor(VehicleBike))

	var none Tariff
	assert.Equal(t, 0.0, none.CostFor(VehicleCar))
}

func TestCatalogSnapshotIsolation(t *testing.T) {
	gates := []TollGate{
		{ID: "tg-1", Name: "Attibele Toll Plaza", Location: geo.NewCoordinate(12.77, 77.77)},
	}
	catalog := NewCatalog(gates)

	gates[0].Name = "mutated"
	assert.Equal(t, "Attibele Toll Plaza", catalog.Gates()[0].Name)
	assert.Equal(t, 1, catalog.Len())
}

func TestCatalogNilSafe(t *testing.T) {
	var catalog *Catalog
	assert.Nil(t, catalog.Gates())
	assert.Equal(t, 0, catalog.Len())
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gates.json")
	payload := `[
		{
			"id": "tg-1",
			"name": "Electronic City Toll Plaza",
			"location": {"lat": 12.852, "lon": 77.648},
			"cost": {"car": 55, "truck": 190},
			"type": "Expressway"
		}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	catalog, err := LoadCatalogFromFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, catalog.Len())

	gate := catalog.Gates()[0]
	assert.Equal(t, "tg-1", gate.ID)
	assert.Equal(t, GateExpressway, gate.Type)
	assert.Equal(t, 55.0, gate.Tariff.CostFor(VehicleCar))
	assert.Equal(t, 0.0, gate.Tariff.CostFor(VehicleBike))
}

func TestLoadCatalogFromFileErrors(t *testing.T) {
	_, err := LoadCatalogFromFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	var ierr *util.Error
	require.True(t, errors.As(err, &ierr))
	assert.Equal(t, util.ErrUpstreamUnavailable, ierr.Code())

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = LoadCatalogFromFile(path)
	require.Error(t, err)
}
