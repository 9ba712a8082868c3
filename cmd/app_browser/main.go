// Package main is an interactive terminal browser for the app catalog
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DjordjeVuckovic/ship-console/internal/browser"
	"github.com/DjordjeVuckovic/ship-console/internal/client"
	"github.com/DjordjeVuckovic/ship-console/internal/location"
)

func main() {
	cfg := parseFlags()
	if cfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	apps, err := client.NewAppClient(cfg.ApiURL)
	if err != nil {
		slog.Error("Failed to create api client", "error", err)
		os.Exit(1)
	}

	list := browser.NewAppList(apps, location.NewHistory(cfg.Path), os.Stdout)
	if cfg.Query != "" {
		list.SetQuery(cfg.Query)
	}

	if err := list.Run(ctx, os.Stdin); err != nil {
		slog.Error("Browser stopped", "error", err)
		os.Exit(1)
	}
}
