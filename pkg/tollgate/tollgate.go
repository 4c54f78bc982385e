package tollgate

import (
	"fmt"

	"github.com/nischayvm/karnataka-tolls/pkg/geo"
	"github.com/nischayvm/karnataka-tolls/pkg/util"
)

// VehicleClass selects which tariff entry of a toll gate applies and which
// fuel economy parameters are used.
type VehicleClass string

const (
	VehicleCar   VehicleClass = "car"
	VehicleBike  VehicleClass = "bike"
	VehicleTruck VehicleClass = "truck"
)

func ParseVehicleClass(s string) (VehicleClass, error) {
	switch VehicleClass(s) {
	case VehicleCar, VehicleBike, VehicleTruck:
		return VehicleClass(s), nil
	}
	return "", util.WrapErrorf(nil, util.ErrBadParamInput,
		fmt.Sprintf("unknown vehicle class %q", s))
}

func (v VehicleClass) Valid() bool {
	_, err := ParseVehicleClass(string(v))
	return err == nil
}

// Tariff maps a vehicle class to the fee charged at a gate. A class missing
// from the map passes for free (bikes on most NH plazas).
type Tariff map[VehicleClass]float64

// CostFor returns the fee for the given class, zero when the class has no
// tariff entry.
func (t Tariff) CostFor(class VehicleClass) float64 {
	if t == nil {
		return 0
	}
	return t[class]
}

// GateType is an informational classification tag carried from the catalog.
type GateType string

const (
	GateExpressway GateType = "Expressway"
	GateHighway    GateType = "Highway"
	GateBridge     GateType = "Bridge"
)

// TollGate is one fixed checkpoint from the toll catalog. Gates are owned by
// the external catalog store; the engine only reads them.
type TollGate struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Location geo.Coordinate `json:"location"`
	Tariff   Tariff         `json:"cost"`
	Type     GateType       `json:"type"`
}

// Catalog is a point-in-time, read-only snapshot of the toll gate records.
// Safe for concurrent reads; never mutated after construction.
type Catalog struct {
	gates []TollGate
}

func NewCatalog(gates []TollGate) *Catalog {
	copied := make([]TollGate, len(gates))
	copy(copied, gates)
	return &Catalog{gates: copied}
}

func (c *Catalog) Gates() []TollGate {
	if c == nil {
		return nil
	}
	return c.gates
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.gates)
}
