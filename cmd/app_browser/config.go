package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/ship-console/pkg/config/env"
)

const defaultApiURL = "http://localhost:8080"

type cliConfig struct {
	ApiURL string
	Path   string
	Query  string
	Debug  bool
}

func parseFlags() cliConfig {
	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/app_browser/.env"); err != nil {
		slog.Debug("Skipping .env ...", "error", err)
	}

	cfg := cliConfig{}

	flag.StringVar(&cfg.ApiURL, "api", env.Get("API_URL", defaultApiURL), "Base URL of the app catalog API")
	flag.StringVar(&cfg.Path, "path", "/web/apps", "Console path to open, may end in /<offset>/<limit>")
	flag.StringVar(&cfg.Query, "q", "", "Initial app name prefix filter")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")

	flag.Parse()
	return cfg
}
