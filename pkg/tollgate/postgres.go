package tollgate

import (
	"context"
	"database/sql"
	"strconv"

	_ "github.com/lib/pq"

	"github.com/nischayvm/karnataka-tolls/pkg/geo"
	"github.com/nischayvm/karnataka-tolls/pkg/util"
)

// PostgresStore persists the toll gate catalog. The estimation engine never
// talks to it directly; it only consumes snapshots produced by ListGates.
type PostgresStore struct {
	db *sql.DB
}

func OpenPostgres(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrUpstreamUnavailable, "open postgres")
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

const createTableStmt = `
CREATE TABLE IF NOT EXISTS toll_gates (
	id         SERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	lat        DOUBLE PRECISION NOT NULL,
	lon        DOUBLE PRECISION NOT NULL,
	cost_car   DOUBLE PRECISION NOT NULL,
	cost_bike  DOUBLE PRECISION NOT NULL DEFAULT 0,
	cost_truck DOUBLE PRECISION,
	gate_type  TEXT NOT NULL DEFAULT 'Highway'
)`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableStmt); err != nil {
		return util.WrapErrorf(err, util.ErrUpstreamUnavailable, "migrate toll_gates")
	}
	return nil
}

// ListGates reads every gate record and returns them as an immutable snapshot.
func (s *PostgresStore) ListGates(ctx context.Context) (*Catalog, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, lat, lon, cost_car, cost_bike, cost_truck, gate_type FROM toll_gates ORDER BY id`)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrUpstreamUnavailable, "query toll_gates")
	}
	defer rows.Close()

	var gates []TollGate
	for rows.Next() {
		var (
			id                 int64
			name, gateType     string
			lat, lon           float64
			costCar, costBike  float64
			costTruck          sql.NullFloat64
		)
		if err := rows.Scan(&id, &name, &lat, &lon, &costCar, &costBike, &costTruck, &gateType); err != nil {
			return nil, util.WrapErrorf(err, util.ErrUpstreamUnavailable, "scan toll_gates row")
		}
		tariff := Tariff{VehicleCar: costCar, VehicleBike: costBike}
		if costTruck.Valid {
			tariff[VehicleTruck] = costTruck.Float64
		}
		gates = append(gates, TollGate{
			ID:       fmtID(id),
			Name:     name,
			Location: geo.NewCoordinate(lat, lon),
			Tariff:   tariff,
			Type:     GateType(gateType),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, util.WrapErrorf(err, util.ErrUpstreamUnavailable, "iterate toll_gates rows")
	}
	return NewCatalog(gates), nil
}

// InsertGate upserts nothing; the seeder truncates and reinserts.
func (s *PostgresStore) InsertGate(ctx context.Context, g TollGate) error {
	var costTruck sql.NullFloat64
	if v, ok := g.Tariff[VehicleTruck]; ok {
		costTruck = sql.NullFloat64{Float64: v, Valid: true}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO toll_gates (name, lat, lon, cost_car, cost_bike, cost_truck, gate_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		g.Name, g.Location.Lat, g.Location.Lon,
		g.Tariff.CostFor(VehicleCar), g.Tariff.CostFor(VehicleBike), costTruck, string(g.Type))
	if err != nil {
		return util.WrapErrorf(err, util.ErrUpstreamUnavailable, "insert toll gate %s", g.Name)
	}
	return nil
}

func (s *PostgresStore) Truncate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `TRUNCATE toll_gates RESTART IDENTITY`); err != nil {
		return util.WrapErrorf(err, util.ErrUpstreamUnavailable, "truncate toll_gates")
	}
	return nil
}

func fmtID(id int64) string {
	// keep ids stable and human readable in API responses
	return "tg-" + strconv.FormatInt(id, 10)
}
