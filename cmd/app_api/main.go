// Package main Ship Console API
// @title Ship Console API
// @version 1.0
// @description Paged app catalog backing the ship console web and terminal browsers
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email support@shipconsole.dev
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	_ "github.com/DjordjeVuckovic/ship-console/docs"
	"github.com/DjordjeVuckovic/ship-console/internal/api/router"
	"github.com/DjordjeVuckovic/ship-console/internal/api/server"
	"github.com/DjordjeVuckovic/ship-console/internal/storage/factory"
	"github.com/labstack/echo/v4"
)

const catalogStartupTimeout = 30 * time.Second

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), catalogStartupTimeout)
	catalog, err := factory.NewCatalog(ctx, cfg.StorageConfig)
	cancel()
	if err != nil {
		slog.Error("Failed to create app catalog", "storage", cfg.StorageConfig.Type, "error", err)
		os.Exit(1)
	}
	defer catalog.Close()

	s := server.New(sCfg, catalog.Health).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/web/")
	})

	router.NewAppRouter(s.Echo, catalog.Reader).Bind()
	router.NewWebRouter(s.Echo, sCfg.WebRoot).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		catalog.Close()
		os.Exit(1)
	}
}
