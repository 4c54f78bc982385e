package estimation

import (
	"runtime"
	"sort"

	"go.uber.org/zap"

	"github.com/nischayvm/karnataka-tolls/pkg/concurrent"
	"github.com/nischayvm/karnataka-tolls/pkg/tollgate"
	"github.com/nischayvm/karnataka-tolls/pkg/util"
)

// gate counts below this are matched serially, the pool overhead is not worth it
const parallelMatchThreshold = 32

// Engine runs the full estimation pass: proximity matching per route, cost
// aggregation, comparison. Stateless between calls; safe for concurrent use.
type Engine struct {
	log *zap.Logger
}

func NewEngine(log *zap.Logger) *Engine {
	return &Engine{log: log}
}

// Estimate orchestrates matcher, aggregator and comparator for one request.
// catalog and cfg are shared immutable inputs for the duration of the call.
// A nil or empty catalog means zero tolls on any route. A nil alternate is
// the single route case, not an error.
func (e *Engine) Estimate(standard, alternate *Route, catalog *tollgate.Catalog,
	class tollgate.VehicleClass, cfg MatchConfig, fuel FuelParams) (ComparisonResult, error) {
	if standard == nil {
		return ComparisonResult{}, util.WrapErrorf(nil, util.ErrBadParamInput,
			"standard route is required")
	}
	if len(standard.Points()) < 2 {
		return ComparisonResult{}, util.WrapErrorf(nil, util.ErrBadParamInput,
			"standard route needs at least 2 points")
	}
	if !class.Valid() {
		return ComparisonResult{}, util.WrapErrorf(nil, util.ErrBadParamInput,
			"unknown vehicle class %q", class)
	}
	cfg = cfg.normalized()

	standardCost, err := Aggregate(standard, e.MatchGates(standard, catalog, cfg), class, fuel)
	if err != nil {
		return ComparisonResult{}, err
	}

	var alternateCost *RouteCost
	if alternate != nil {
		cost, err := Aggregate(alternate, e.MatchGates(alternate, catalog, cfg), class, fuel)
		if err != nil {
			return ComparisonResult{}, err
		}
		alternateCost = &cost
	}

	return Compare(standardCost, alternateCost), nil
}

// MatchGates returns the set of catalog gates the route crosses, each at most
// once, ordered by gate id. Fans out over a worker pool for large catalogs.
func (e *Engine) MatchGates(route *Route, catalog *tollgate.Catalog, cfg MatchConfig) []tollgate.TollGate {
	gates := catalog.Gates()
	if len(gates) == 0 {
		return nil
	}
	cfg = cfg.normalized()

	var matched []tollgate.TollGate
	if len(gates) < parallelMatchThreshold {
		for _, gate := range gates {
			if Matches(route, gate, cfg) {
				matched = append(matched, gate)
			}
		}
	} else {
		matched = e.matchGatesParallel(route, gates, cfg)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched
}

type gateMatch struct {
	gate    tollgate.TollGate
	matched bool
}

func (e *Engine) matchGatesParallel(route *Route, gates []tollgate.TollGate,
	cfg MatchConfig) []tollgate.TollGate {
	pool := concurrent.NewWorkerPool[tollgate.TollGate, gateMatch](runtime.NumCPU(), len(gates))
	pool.Start(func(gate tollgate.TollGate) gateMatch {
		return gateMatch{gate: gate, matched: Matches(route, gate, cfg)}
	})
	for _, gate := range gates {
		pool.AddJob(gate)
	}
	pool.Close()
	pool.Wait()

	var matched []tollgate.TollGate
	for res := range pool.CollectResults() {
		if res.matched {
			matched = append(matched, res.gate)
		}
	}
	return matched
}
