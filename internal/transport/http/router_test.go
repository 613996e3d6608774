package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"journalforing/pkg/testutil"
)

func TestHealth(t *testing.T) {
	log := slog.New(slog.DiscardHandler)

	t.Run("all dependencies healthy", func(t *testing.T) {
		router := NewRouter(log, map[string]HealthCheck{
			"postgres": func(context.Context) error { return nil },
			"redis":    func(context.Context) error { return nil },
		})

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/health"))
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "postgres", "ok")
		testutil.AssertJSONContains(t, rr, "redis", "ok")
	})

	t.Run("one failing dependency degrades to 503 with detail", func(t *testing.T) {
		router := NewRouter(log, map[string]HealthCheck{
			"postgres": func(context.Context) error { return nil },
			"redis":    func(context.Context) error { return errors.New("connection refused") },
		})

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/health"))
		testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
		testutil.AssertJSONContains(t, rr, "postgres", "ok")
		testutil.AssertJSONContains(t, rr, "redis", "connection refused")
	})

	t.Run("no registered checks", func(t *testing.T) {
		router := NewRouter(log, nil)
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/health"))
		testutil.AssertStatusOK(t, rr)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	router := NewRouter(slog.New(slog.DiscardHandler), nil)
	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, testutil.ReadBody(t, rr))
}
