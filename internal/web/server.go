package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/examdesk/examdesk/internal/config"
	"github.com/examdesk/examdesk/internal/examapi"
	"github.com/examdesk/examdesk/internal/store"
	"github.com/examdesk/examdesk/internal/ui"
)

// sessionPurgeInterval is how often lapsed session-cache rows are
// swept from the store.
const sessionPurgeInterval = 10 * time.Minute

// Server is the ExamDesk web frontend server.
type Server struct {
	router    chi.Router
	logger    *slog.Logger
	config    config.ServerConfig
	startTime time.Time
	store     store.Store
	metrics   *metrics
	registry  *prometheus.Registry
	ui        *ui.UI
}

// New creates a new Server with all routes registered.
func New(cfg config.ServerConfig, api *examapi.Client, st store.Store, logger *slog.Logger) *Server {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	s := &Server{
		router:    chi.NewRouter(),
		logger:    logger.With("component", "server"),
		config:    cfg,
		startTime: time.Now(),
		store:     st,
		metrics:   newMetrics(registry),
		registry:  registry,
	}

	s.ui = ui.New(api, st, logger, ui.Config{
		Secure: cfg.SecureCookie,
	})

	s.routes()
	return s
}

// StartJanitor sweeps expired session-cache rows in the background
// until the context is cancelled.
func (s *Server) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(sessionPurgeInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := s.store.DeleteExpiredSessions(ctx)
				if err != nil {
					s.logger.Error("session purge failed", "error", err)
					continue
				}
				if n > 0 {
					s.logger.Debug("purged expired sessions", "count", n)
				}
			}
		}
	}()
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))
	r.Use(s.metrics.middleware)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	// UI routes (HTML)
	s.ui.RegisterRoutes(r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"uptime":  time.Since(s.startTime).Round(time.Second).String(),
		"api_url": s.config.APIBaseURL,
	})
}
