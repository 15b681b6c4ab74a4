// Package server exposes chart layout and rendering over HTTP.
//
// Routes:
//
//	GET  /healthz          liveness probe
//	POST /layout           chart definition in, geometry JSON out
//	POST /render/{format}  chart definition in, svg/png/pdf/json out
//
// Definitions are JSON by default; a Content-Type containing "toml"
// selects TOML. Query parameters width, height, scale, title, kind and
// orientation override the definition. Every response carries an
// X-Request-ID header.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/microcharts/pkg/pipeline"
)

// Defaults applied by New.
const (
	DefaultAddress      = ":8080"
	DefaultMaxBodyBytes = 1 << 20
	DefaultTimeout      = 30 * time.Second
)

// Config configures the HTTP server.
type Config struct {
	// Address is the HTTP listen address (default ":8080").
	Address string

	// MaxBodyBytes caps the size of a chart definition (default 1 MiB).
	MaxBodyBytes int64

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server serves chart rendering through a shared pipeline runner.
type Server struct {
	config     Config
	runner     *pipeline.Runner
	logger     *log.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. The runner's cache is shared by all requests.
func New(runner *pipeline.Runner, logger *log.Logger, cfg Config) *Server {
	if cfg.Address == "" {
		cfg.Address = DefaultAddress
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = DefaultTimeout
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = DefaultTimeout
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		config: cfg,
		runner: runner,
		logger: logger,
		router: chi.NewRouter(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(requestID)
	s.router.Use(s.observe)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Post("/layout", s.handleLayout)
	s.router.Post("/render/{format}", s.handleRender)
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured address. It blocks until the server
// stops and returns http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	s.httpServer = s.newHTTPServer()
	s.logger.Info("listening", "addr", s.config.Address)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Run starts the server and shuts it down when ctx is done.
func (s *Server) Run(ctx context.Context) error {
	srv := s.newHTTPServer()
	s.httpServer = srv

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.config.Address)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) newHTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
}
