package factory

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/ship-console/internal/storage"
	"github.com/DjordjeVuckovic/ship-console/internal/storage/es"
	"github.com/DjordjeVuckovic/ship-console/internal/storage/pg"
	"github.com/DjordjeVuckovic/ship-console/pkg/config/env"
	"github.com/DjordjeVuckovic/ship-console/pkg/utils"
)

const defaultIndexName = "apps"

type StorageConfig struct {
	storage.Type
	Pg *pg.PoolConfig
	Es *es.ClientConfig
	// SeedFile is the YAML catalog loaded by the in_mem backend, optional
	SeedFile string
}

func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		slog.Info("STORAGE_TYPE is not set, using in-memory app catalog")
		storageType = storage.InMem
	}
	if storageType != storage.ES && storageType != storage.PG && storageType != storage.InMem {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			[]storage.Type{storage.ES, storage.PG, storage.InMem})
	}

	cfg := &StorageConfig{
		Type:     storageType,
		SeedFile: os.Getenv("APPS_SEED_FILE"),
	}

	switch storageType {
	case storage.ES:
		addresses := utils.SplitTrimmed(os.Getenv("ES_ADDRESSES"), ",")
		cfg.Es = &es.ClientConfig{
			Addresses: addresses,
			IndexName: env.Get("ES_INDEX_NAME", defaultIndexName),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if len(cfg.Es.Addresses) == 0 || cfg.Es.IndexName == "" {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", cfg.Es.Addresses, "indexName", cfg.Es.IndexName)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses or index name is missing")
		}
	case storage.PG:
		cfg.Pg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if cfg.Pg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
	}

	return cfg, nil
}
