package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"workforce/internal/platform/config"
	"workforce/internal/platform/metrics"
	"workforce/internal/transport/http/api"
	analyticshandler "workforce/internal/transport/http/handlers/analytics"
	audithandler "workforce/internal/transport/http/handlers/audit"
	authhandler "workforce/internal/transport/http/handlers/auth"
	corehandler "workforce/internal/transport/http/handlers/core"
	"workforce/internal/transport/http/middleware"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the services the router dispatches to.
type Deps struct {
	Config    config.Config
	Pinger    Pinger
	Metrics   *metrics.Collector
	Auth      authhandler.TokenIssuer
	Core      corehandler.Service
	Analytics analyticshandler.Service
	Exporter  analyticshandler.Exporter
	Audit     audithandler.Service
}

func NewRouter(d Deps) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(d.Metrics))
	router.Use(middleware.Recoverer)
	router.Use(chimiddleware.StripSlashes)
	router.Use(middleware.SecureHeaders(d.Config.Environment == "production"))
	router.Use(middleware.BodyLimit(d.Config.MaxBodyBytes))
	router.Use(middleware.Auth(d.Config.JWTSecret))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		api.Fail(w, http.StatusNotFound, "not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		api.Fail(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if d.Pinger == nil || d.Pinger.Ping(ctx) != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if d.Config.MetricsEnabled && d.Metrics != nil {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, d.Metrics.Snapshot())
		})
	}

	router.Route("/api", func(r chi.Router) {
		authhandler.NewHandler(d.Auth, d.Config.TokenRateLimit, d.Config.TokenRateWindow).RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			analyticshandler.NewHandler(d.Analytics, d.Exporter).RegisterRoutes(r)
			corehandler.NewHandler(d.Core).RegisterRoutes(r)
			if d.Audit != nil {
				audithandler.NewHandler(d.Audit).RegisterRoutes(r)
			}
		})
	})

	return router
}
