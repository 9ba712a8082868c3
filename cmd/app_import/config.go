package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/ship-console/internal/storage/factory"
	"github.com/DjordjeVuckovic/ship-console/pkg/config/env"
)

const defaultBulkSize = 500

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppImportConfig struct {
	SeedFile string
	BulkSize int
	factory.StorageConfig
}

func (as *AppConfig) Load() (*AppImportConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/app_import/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	bulkSize, err := strconv.Atoi(env.Get("BULK_SIZE", strconv.Itoa(defaultBulkSize)))
	if err != nil {
		return nil, fmt.Errorf("invalid BULK_SIZE: %w", err)
	}

	cfg := &AppImportConfig{StorageConfig: *storageCfg}

	flag.StringVar(&cfg.SeedFile, "file", storageCfg.SeedFile, "YAML file with the apps to import")
	flag.IntVar(&cfg.BulkSize, "bulk", bulkSize, "Apps written per batch")
	flag.Parse()

	if cfg.SeedFile == "" {
		return nil, fmt.Errorf("no seed file, set -file or APPS_SEED_FILE")
	}
	return cfg, nil
}
