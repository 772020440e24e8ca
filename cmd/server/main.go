// Package main implements the entry point for the shop API server, which
// handles account signup/login and the product catalog.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/dkrasnov/shop-api/internal/config"
	"github.com/dkrasnov/shop-api/internal/platform/logger"
	"github.com/dkrasnov/shop-api/internal/platform/mongo"
)

// main wires configuration, logging, the document store handle and the
// HTTP server together. A failed store initialization is fatal; per-request
// store failures later on are not.
func main() {
	ctx := context.Background()

	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// One-time store handle initialization. Connection failure here is
	// fatal to startup by design.
	handle := mongo.NewHandle(cfg.Database)
	if err := handle.Init(ctx); err != nil {
		log.Fatalf("Failed to initialize document store: %v", err)
	}

	app, err := newApplication(cfg, appLogger, handle)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
// Returns the loaded config, the root logger, and any initialization error.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	// Presence-only logging; never the values themselves.
	if cfg.Database.URL != "" {
		slog.Debug("Database configuration", "url_present", true)
	}
	if cfg.Auth.JWTSecret != "" {
		slog.Debug("Auth configuration", "jwt_secret_present", true)
	}

	return cfg, appLogger, nil
}
