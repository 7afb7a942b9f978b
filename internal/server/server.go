// Package server exposes sketch rendering over HTTP.
//
// Routes:
//
//	GET  /healthz                 liveness and build version
//	GET  /sketches                the sketch registry
//	GET  /token                   a freshly manufactured seed token
//	GET  /render/{sketch}         ?seed=&format=&width=&height=&scale=&embed_font=
//	POST /render/{sketch}         same, with a TOML settings document as body
//
// A GET render without a usable seed redirects to the same URL carrying a
// fresh one, so every rendered image has a shareable address. Rendered
// responses are immutable for their URL and are served with long-lived
// cache headers.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/seedglyph/pkg/pipeline"
	"github.com/matzehuels/seedglyph/pkg/seed"
)

const (
	// DefaultAddr is the listen address when none is configured.
	DefaultAddr = ":8080"

	// maxSettingsBytes bounds a POSTed settings document.
	maxSettingsBytes = 64 << 10

	renderTimeout   = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Config configures a Server.
type Config struct {
	Addr    string
	Runner  *pipeline.Runner
	Logger  *log.Logger
	Entropy seed.Entropy
}

// Server serves the HTTP API.
type Server struct {
	addr    string
	runner  *pipeline.Runner
	logger  *log.Logger
	entropy seed.Entropy
	router  chi.Router
}

// New builds a server and its routes.
func New(cfg Config) *Server {
	s := &Server{
		addr:    cfg.Addr,
		runner:  cfg.Runner,
		logger:  cfg.Logger,
		entropy: cfg.Entropy,
	}
	if s.addr == "" {
		s.addr = DefaultAddr
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.runner == nil {
		s.runner = pipeline.NewRunner(nil, nil, s.logger)
	}
	if s.entropy == nil {
		s.entropy = seed.SystemEntropy{}
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/sketches", s.handleSketches)
	r.Get("/token", s.handleToken)
	r.Route("/render/{sketch}", func(r chi.Router) {
		r.Use(middleware.Timeout(renderTimeout))
		r.Get("/", s.handleRender)
		r.Post("/", s.handleRender)
	})
	return r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
