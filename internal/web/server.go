// Package web serves the JSON API for mood analysis, recommendations and
// report summaries.
package web

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// DefaultAddr is the default server address.
const DefaultAddr = ":8080"

// ServerConfig holds server configuration.
type ServerConfig struct {
	Addr        string
	Analyzer    Analyzer
	Recommender Recommender
	Log         *logrus.Logger
}

// Server is the HTTP server for the API.
type Server struct {
	router   chi.Router
	server   *http.Server
	handlers *Handlers
	log      *logrus.Logger
}

// NewServer creates a new API server.
func NewServer(cfg ServerConfig) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	handlers := NewHandlers(cfg.Analyzer, cfg.Recommender, log)
	router := chi.NewRouter()

	s := &Server{
		router:   router,
		handlers: handlers,
		log:      log,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware for the router.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

// setupRoutes configures routes for the API.
func (s *Server) setupRoutes() {
	s.router.Get("/", s.handlers.Status)
	s.router.Get("/healthz", s.handlers.Health)

	s.router.Post("/analyze", s.handlers.Analyze)
	s.router.Post("/recommendations", s.handlers.Recommendations)
	s.router.Post("/report/summary", s.handlers.ReportSummary)
}

// Handler returns the configured router, for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.log.WithField("addr", s.server.Addr).Info("starting server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Run starts the server and handles graceful shutdown on interrupt signals.
func (s *Server) Run() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
		s.log.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.log.Info("server stopped")
	return nil
}
