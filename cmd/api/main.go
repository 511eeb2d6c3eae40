package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "quote_service/docs"
	"quote_service/internal/adapter/http/routes"
	"quote_service/internal/infrastructure/config"
	"quote_service/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
)

// Version is injected at build time with -ldflags "-X main.Version=...".
var Version = "dev"

// @title           Quote Service API
// @version         1.0
// @description     Quote lifecycle service: GT-YYYY-NNNN references, totals, one-month expiry and new-quote notifications.

// @host      localhost:8080
// @BasePath  /

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("APP_PROFILE"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	version := cfg.App.Version
	if Version != "dev" {
		version = Version
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			Level:      cfg.Log.File.Level,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", version),
		slog.String("environment", cfg.App.Environment),
	)

	return routes.Run(context.Background(), cfg, logger)
}
