package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dkrasnov/shop-api/internal/api"
	apiMiddleware "github.com/dkrasnov/shop-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.CORS)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
	)
	productHandler := api.NewProductHandler(app.productStore)

	// Authentication endpoints (public, registered at the root)
	r.Post("/signup", authHandler.Signup)
	r.Post("/login", authHandler.Login)

	// Catalog endpoints
	r.Route("/products", func(r chi.Router) {
		r.Get("/", productHandler.List)
		r.Post("/", productHandler.Create)
		r.Get("/{id}", productHandler.Get)
		// PATCH carries full-replacement semantics here; PUT is accepted
		// as an alias for clients that send the more accurate verb.
		r.Patch("/{id}", productHandler.Update)
		r.Put("/{id}", productHandler.Update)
		r.Delete("/{id}", productHandler.Delete)
	})

	// Static product images
	if dir := app.config.Server.ImageDir; dir != "" {
		fileServer := http.StripPrefix("/images/", http.FileServer(http.Dir(dir)))
		r.Get("/images/*", func(w http.ResponseWriter, r *http.Request) {
			fileServer.ServeHTTP(w, r)
		})
	}

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
