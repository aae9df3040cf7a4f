package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// HealthProber reports readiness of a backing store.
type HealthProber interface {
	Probe(ctx context.Context) error
}

// RouterDependencies collects handler dependencies. Limiter may be nil.
type RouterDependencies struct {
	Auth     *AuthHandler
	Analysis *AnalysisHandler
	Health   HealthProber
	Limiter  *RateLimiter
}

// NewRouter wires the HTTP routes exposed by the backend API.
func NewRouter(logger *slog.Logger, deps RouterDependencies) http.Handler {
	mux := http.NewServeMux()

	limited := func(h http.HandlerFunc) http.Handler {
		if deps.Limiter == nil {
			return h
		}
		return RateLimitMiddleware(deps.Limiter, logger, h)
	}

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		payload := map[string]any{"status": "ok"}
		if deps.Health != nil {
			if err := deps.Health.Probe(ctx); err != nil {
				logger.Error("health probe failed", "error", err)
				status = http.StatusServiceUnavailable
				payload["status"] = "degraded"
				payload["error"] = err.Error()
			}
		}
		respondJSON(w, status, payload)
	})

	if deps.Auth != nil {
		mux.Handle("/register", limited(deps.Auth.Register))
		mux.Handle("/login", limited(deps.Auth.Login))
		mux.Handle("/delete/user/", limited(deps.Auth.DeleteUser))
	}

	if deps.Analysis != nil {
		mux.Handle("/accounts/", limited(deps.Analysis.GetAccount))
		mux.Handle("/analysis/account", limited(deps.Analysis.AnalyzeAccount))
		mux.Handle("/analysis/snapshot", limited(deps.Analysis.AnalyzeSnapshot))
		mux.Handle("/tax/calculate", limited(deps.Analysis.CalculateTax))
		mux.Handle("/insurance/check", limited(deps.Analysis.CheckInsurance))
	}

	return loggingMiddleware(logger, mux)
}

func loggingMiddleware(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
