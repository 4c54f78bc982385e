// Seeds the toll_gates table from a JSON catalog file. Destructive: the
// table is truncated first.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/nischayvm/karnataka-tolls/pkg/logger"
	"github.com/nischayvm/karnataka-tolls/pkg/tollgate"
)

var (
	catalogFile = flag.String("file", "./data/tollgates.json", "toll gate catalog JSON file")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	catalog, err := tollgate.LoadCatalogFromFile(*catalogFile)
	if err != nil {
		log.Fatal("load catalog file", zap.Error(err))
	}

	store, err := tollgate.OpenPostgres(databaseURL)
	if err != nil {
		log.Fatal("open postgres", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}
	if err := store.Truncate(ctx); err != nil {
		log.Fatal("clear existing tolls", zap.Error(err))
	}
	for _, gate := range catalog.Gates() {
		if err := store.InsertGate(ctx, gate); err != nil {
			log.Fatal("insert gate", zap.String("name", gate.Name), zap.Error(err))
		}
	}
	log.Info("seeded toll gates", zap.Int("count", catalog.Len()))
}
