// Package http is the operational HTTP surface: liveness, readiness and
// metrics. No business endpoint lives here; the service's only business
// input is the document-exchange topics.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthCheck pings one dependency.
type HealthCheck func(ctx context.Context) error

// NewRouter wires the ops endpoints. checks maps dependency name to its
// ping; a failing ping degrades /health to 503 with per-dependency detail.
func NewRouter(logger *slog.Logger, checks map[string]HealthCheck) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		detail := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(ctx); err != nil {
				logger.WarnContext(ctx, "health check failed", "dependency", name, "error", err)
				detail[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			detail[name] = "ok"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(detail)
	})

	r.Handle("/metrics", promhttp.Handler())
	return r
}
