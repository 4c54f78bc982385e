package estimation

const (
	// DefaultRadiusMeters is the proximity radius used when the caller does
	// not override it. The radius/stride trade-off is domain tunable, so both
	// are configuration, not contract.
	DefaultRadiusMeters = 300.0
	// DefaultStride checks every 5th route point against a gate.
	DefaultStride = 5

	// DefaultFuelEconomyKmPerUnit and DefaultFuelPricePerUnit mirror the
	// reference fuel model (km per litre, rupees per litre).
	DefaultFuelEconomyKmPerUnit = 15.0
	DefaultFuelPricePerUnit     = 105.0
)

// MatchConfig tunes the proximity matcher. Zero values fall back to defaults.
type MatchConfig struct {
	RadiusMeters float64
	Stride       int
}

func NewMatchConfig(radiusMeters float64, stride int) MatchConfig {
	return MatchConfig{RadiusMeters: radiusMeters, Stride: stride}
}

func (c MatchConfig) normalized() MatchConfig {
	if c.RadiusMeters <= 0 {
		c.RadiusMeters = DefaultRadiusMeters
	}
	if c.Stride <= 0 {
		c.Stride = DefaultStride
	}
	return c
}

// FuelParams is the fuel cost model: how far one fuel unit goes and what one
// unit costs. Overridable per vehicle class at the configuration surface.
type FuelParams struct {
	EconomyKmPerUnit float64
	PricePerUnit     float64
}

func NewFuelParams(economyKmPerUnit, pricePerUnit float64) FuelParams {
	return FuelParams{EconomyKmPerUnit: economyKmPerUnit, PricePerUnit: pricePerUnit}
}

func DefaultFuelParams() FuelParams {
	return FuelParams{
		EconomyKmPerUnit: DefaultFuelEconomyKmPerUnit,
		PricePerUnit:     DefaultFuelPricePerUnit,
	}
}

func (f FuelParams) normalized() FuelParams {
	if f.EconomyKmPerUnit <= 0 {
		f.EconomyKmPerUnit = DefaultFuelEconomyKmPerUnit
	}
	if f.PricePerUnit <= 0 {
		f.PricePerUnit = DefaultFuelPricePerUnit
	}
	return f
}
