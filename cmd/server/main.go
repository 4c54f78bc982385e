package main

import (
	"context"
	"strings"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/nischayvm/karnataka-tolls/pkg/estimation"
	"github.com/nischayvm/karnataka-tolls/pkg/geocoder"
	"github.com/nischayvm/karnataka-tolls/pkg/http"
	"github.com/nischayvm/karnataka-tolls/pkg/http/usecases"
	"github.com/nischayvm/karnataka-tolls/pkg/logger"
	"github.com/nischayvm/karnataka-tolls/pkg/osrm"
	"github.com/nischayvm/karnataka-tolls/pkg/spatialindex"
	"github.com/nischayvm/karnataka-tolls/pkg/tollgate"
	"github.com/nischayvm/karnataka-tolls/pkg/util"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		log.Warn("no config file, using defaults and environment", zap.Error(err))
	}
	setDefaults()

	catalog, store := loadCatalog(log)

	radiusKm := viper.GetFloat64("MATCH_RADIUS_METERS") / 1000.0
	gateIndex := spatialindex.NewGateIndex()
	gateIndex.Build(catalog, radiusKm, log)

	osrmClient := osrm.NewClient(viper.GetString("OSRM_BASE_URL"),
		viper.GetDuration("OSRM_TIMEOUT"), log)

	var rc *redis.Client
	if addr := viper.GetString("REDIS_ADDR"); addr != "" {
		rc = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: viper.GetString("REDIS_PASS"),
		})
	}
	geocodeClient := geocoder.NewClient(viper.GetString("NOMINATIM_BASE_URL"),
		viper.GetString("GEOCODE_REGION_HINT"), viper.GetDuration("GEOCODE_TIMEOUT"),
		rc, viper.GetDuration("GEOCODE_CACHE_TTL"), log)

	engine := estimation.NewEngine(log)

	matchCfg := estimation.NewMatchConfig(viper.GetFloat64("MATCH_RADIUS_METERS"),
		viper.GetInt("MATCH_SAMPLING_STRIDE"))

	estimationService := usecases.NewEstimationService(log, engine, osrmClient, gateIndex,
		catalog, matchCfg, fuelParams(), alternateClasses())
	catalogService := usecases.NewCatalogService(log, store, catalog)

	api := http.NewServer(log)

	ctx, cancel := context.WithCancel(context.Background())
	if _, err := api.Use(ctx, log, viper.GetBool("USE_RATE_LIMIT"),
		estimationService, catalogService, geocodeClient); err != nil {
		panic(err)
	}

	signal := http.GracefulShutdown()

	log.Info("Karnataka Tolls Server Stopped", zap.String("signal", signal.String()))
	cancel()
}

func setDefaults() {
	viper.SetDefault("OSRM_BASE_URL", osrm.DefaultBaseURL)
	viper.SetDefault("OSRM_TIMEOUT", "15s")
	viper.SetDefault("NOMINATIM_BASE_URL", geocoder.DefaultBaseURL)
	viper.SetDefault("GEOCODE_REGION_HINT", "Karnataka, India")
	viper.SetDefault("GEOCODE_TIMEOUT", "10s")
	viper.SetDefault("GEOCODE_CACHE_TTL", "1h")
	viper.SetDefault("MATCH_RADIUS_METERS", estimation.DefaultRadiusMeters)
	viper.SetDefault("MATCH_SAMPLING_STRIDE", estimation.DefaultStride)
	viper.SetDefault("FUEL_ECONOMY_KM_PER_UNIT", estimation.DefaultFuelEconomyKmPerUnit)
	viper.SetDefault("FUEL_PRICE_PER_UNIT", estimation.DefaultFuelPricePerUnit)
	viper.SetDefault("ALTERNATE_CLASSES", "car,truck")
	viper.SetDefault("TOLL_CATALOG_FILE", "./data/tollgates.json")
	viper.SetDefault("USE_RATE_LIMIT", false)
}

// loadCatalog prefers postgres when DATABASE_URL is set, falling back to the
// bundled JSON catalog. An empty catalog is not fatal: estimations then see
// zero tolls everywhere.
func loadCatalog(log *zap.Logger) (*tollgate.Catalog, usecases.CatalogStore) {
	if databaseURL := viper.GetString("DATABASE_URL"); databaseURL != "" {
		catalog, store, err := loadPostgresCatalog(databaseURL)
		if err == nil {
			log.Info("loaded toll catalog from postgres", zap.Int("gates", catalog.Len()))
			return catalog, store
		}
		log.Warn("postgres catalog unavailable, falling back to file", zap.Error(err))
	}

	path := viper.GetString("TOLL_CATALOG_FILE")
	catalog, err := tollgate.LoadCatalogFromFile(path)
	if err != nil {
		log.Warn("toll catalog file unavailable, starting with empty catalog",
			zap.String("path", path), zap.Error(err))
		return tollgate.NewCatalog(nil), nil
	}
	log.Info("loaded toll catalog from file", zap.String("path", path),
		zap.Int("gates", catalog.Len()))
	return catalog, nil
}

func loadPostgresCatalog(databaseURL string) (*tollgate.Catalog, *tollgate.PostgresStore, error) {
	store, err := tollgate.OpenPostgres(databaseURL)
	if err != nil {
		return nil, nil, err
	}
	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		return nil, nil, err
	}
	catalog, err := store.ListGates(ctx)
	if err != nil {
		return nil, nil, err
	}
	return catalog, store, nil
}

func fuelParams() map[tollgate.VehicleClass]estimation.FuelParams {
	base := estimation.NewFuelParams(viper.GetFloat64("FUEL_ECONOMY_KM_PER_UNIT"),
		viper.GetFloat64("FUEL_PRICE_PER_UNIT"))

	params := make(map[tollgate.VehicleClass]estimation.FuelParams)
	for _, class := range []tollgate.VehicleClass{tollgate.VehicleCar, tollgate.VehicleBike, tollgate.VehicleTruck} {
		classParams := base
		key := "FUEL_ECONOMY_KM_PER_UNIT_" + strings.ToUpper(string(class))
		if viper.IsSet(key) {
			classParams.EconomyKmPerUnit = viper.GetFloat64(key)
		}
		key = "FUEL_PRICE_PER_UNIT_" + strings.ToUpper(string(class))
		if viper.IsSet(key) {
			classParams.PricePerUnit = viper.GetFloat64(key)
		}
		params[class] = classParams
	}
	return params
}

func alternateClasses() map[tollgate.VehicleClass]bool {
	classes := make(map[tollgate.VehicleClass]bool)
	for _, raw := range strings.Split(viper.GetString("ALTERNATE_CLASSES"), ",") {
		class, err := tollgate.ParseVehicleClass(strings.TrimSpace(raw))
		if err != nil {
			continue
		}
		classes[class] = true
	}
	return classes
}
