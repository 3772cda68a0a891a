// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"bloomshop/internal/api/handler"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(authHandler *handler.AuthHandler, catalogHandler *handler.CatalogHandler, cartHandler *handler.CartHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)                       // Add a request ID to the context
	r.Use(middleware.RealIP)                          // Use the real IP address
	r.Use(middleware.Logger)                          // Log HTTP requests
	r.Use(middleware.Recoverer)                       // Recover from panics and return 500
	r.Use(middleware.Timeout(handler.DefaultTimeout)) // Set a default timeout for requests

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Account routes
	r.Post("/signup", authHandler.Signup)
	r.Post("/login", authHandler.Login)
	r.Get("/profile", authHandler.Profile)

	// Catalog routes
	r.Route("/flowers", func(r chi.Router) {
		r.Get("/", catalogHandler.ListFlowers)
		r.Post("/", catalogHandler.AddFlower)
	})

	// Cart routes (mocked surface)
	r.Route("/cart", func(r chi.Router) {
		r.Post("/items", cartHandler.AddItem)
		r.Get("/items", cartHandler.ListItems)
	})

	// Purchase routes (mocked surface)
	r.Post("/purchased", cartHandler.Checkout)
	r.Get("/purchased", cartHandler.ListPurchased)

	return r
}
