// Package main imports a YAML app catalog into the configured backend
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DjordjeVuckovic/ship-console/internal/ingest"
	"github.com/DjordjeVuckovic/ship-console/internal/storage/factory"
	"github.com/DjordjeVuckovic/ship-console/internal/storage/in_mem"
)

func main() {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	file, err := os.Open(cfg.SeedFile)
	if err != nil {
		slog.Error("Failed to open seed file", "path", cfg.SeedFile, "error", err)
		os.Exit(1)
	}
	apps, err := in_mem.DecodeSeed(file)
	file.Close()
	if err != nil {
		slog.Error("Failed to read seed file", "path", cfg.SeedFile, "error", err)
		os.Exit(1)
	}

	slog.Info("Creating pipeline", "storageType", cfg.StorageConfig.Type)
	writer, err := factory.NewWriter(ctx, cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create catalog writer", "error", err)
		os.Exit(1)
	}
	defer writer.Close()

	pipeline := ingest.NewPipeline(writer, ingest.WithBulk(cfg.BulkSize), ingest.WithName("import-"+string(cfg.StorageConfig.Type)))

	stats, err := pipeline.Run(ctx, apps)
	if err != nil {
		slog.Error("Import failed", "error", err)
		writer.Close()
		os.Exit(1)
	}
	if stats.Failed > 0 {
		slog.Error("Import finished with failures", "failed", stats.Failed)
		writer.Close()
		os.Exit(1)
	}
}
