package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dkrasnov/shop-api/internal/config"
	"github.com/dkrasnov/shop-api/internal/platform/mongo"
	"github.com/dkrasnov/shop-api/internal/service/auth"
	"github.com/dkrasnov/shop-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Store handle (init-once, injected into the stores below)
	storeHandle *mongo.Handle

	// Stores (using interfaces for proper abstraction)
	userStore    store.UserStore
	productStore store.ProductStore

	// Service interfaces
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
}

// newApplication creates a new application instance with all dependencies
// initialized. The store handle must already be initialized by the caller.
func newApplication(cfg *config.Config, logger *slog.Logger, handle *mongo.Handle) (*application, error) {
	app := &application{
		config:      cfg,
		logger:      logger,
		storeHandle: handle,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_seconds", cfg.Auth.TokenLifetimeSeconds)

	app.passwordVerifier, err = auth.NewBcryptVerifier(cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize password verifier: %w", err)
	}

	app.userStore = mongo.NewMongoUserStore(handle, cfg.Auth.BcryptCost)
	app.productStore = mongo.NewMongoProductStore(handle)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.storeHandle != nil {
		if err := app.storeHandle.Close(context.Background()); err != nil {
			app.logger.Error("Error closing document store connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
