package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sk8shop/payment-service/api/bootstrap"
	"github.com/sk8shop/payment-service/api/config"
)

// NewRouter returns the central HTTP router for the API.
// Payment endpoints live under /api/payments; the health check sits at the root.
func NewRouter() http.Handler {
	// Initialize app dependencies (non-fatal if it fails here; handlers re-check).
	if err := bootstrap.Ensure(); err != nil {
		slog.Error("bootstrap ensure failed", "err", err)
	}

	allowedOrigins := []string{"*"}
	if config.AppConfig != nil && config.AppConfig.AllowedOrigin != "" {
		allowedOrigins = []string{config.AppConfig.AllowedOrigin}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", handleHealth)

	h := paymentHandlers{service: bootstrap.GetPaymentService}
	r.Route("/api/payments", func(r chi.Router) {
		r.Post("/create-payment-intent", h.handleCreatePaymentIntent)
		r.Post("/create-subscription", h.handleCreateSubscription)
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
