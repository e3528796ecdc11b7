package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Invisble-man/path-ai-sub000/internal/assist"
	"github.com/Invisble-man/path-ai-sub000/internal/config"
	"github.com/Invisble-man/path-ai-sub000/internal/events"
	"github.com/Invisble-man/path-ai-sub000/internal/gate"
	"github.com/Invisble-man/path-ai-sub000/internal/store"
)

func NewRouter(s store.Store, ev events.Client, ac assist.Client, eng *gate.Engine, cfg *config.Config, adminToken string, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(120))

	runs := NewRunsHandler(s, ev, ac, eng, cfg, logger)
	elig := NewEligibilityHandler(ev)
	admin := NewAdminHandler(s)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/runs", runs.Create)
		r.Get("/runs", runs.List)
		r.Get("/runs/{id}", runs.Get)
		r.Patch("/runs/{id}", runs.Update)
		r.Delete("/runs/{id}", runs.Delete)

		r.Post("/runs/{id}/extract", runs.Extract)
		r.Post("/runs/{id}/audit", runs.Audit)
		r.Patch("/runs/{id}/items/{item_id}", runs.UpdateItem)
		r.Post("/runs/{id}/gate", runs.RunGate)
		r.Get("/runs/{id}/progress", runs.Progress)
		r.Get("/runs/{id}/export", runs.Export)

		r.Get("/runs/{id}/snapshot", runs.GetSnapshot)
		r.Post("/runs/{id}/snapshot", runs.LoadSnapshot)

		r.Post("/eligibility", elig.Check)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(adminToken))
			r.Get("/stats", admin.Stats)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
