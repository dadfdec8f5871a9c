package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adpacing/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a PacingUseCase to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc    port.PacingUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.PacingUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Route("/api/v1/pacing", func(r chi.Router) {
		r.Get("/summary", h.handleSummary)
		r.Post("/check", h.handleCheck)
		r.Get("/recommendations", h.handleRecommendations)

		r.Route("/campaigns/{campaignID}", func(r chi.Router) {
			r.Get("/analysis", h.handleAnalysis)
			r.Get("/hourly", h.handleHourly)
			r.Get("/monthly", h.handleMonthly)
			r.Put("/strategy", h.handleChangeStrategy)
		})
	})
	r.Handle("/metrics", promhttp.Handler())
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
