package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cpc-billing/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the click use case and a logger for structured logging. Routes
// are registered on a chi.Router for convenient method handling.
type Handler struct {
	svc    port.ClickUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. When gatherer is
// not nil its metrics are exposed on /metrics.
func NewHandler(svc port.ClickUseCase, logger *slog.Logger, gatherer prometheus.Gatherer) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/clicks", h.handleClick)
		r.Get("/products/{productID}/out", h.handleProductOut)
		r.Get("/campaigns/{campaignID}/stats", h.handleCampaignStats)
	})
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
