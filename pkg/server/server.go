// Package server serves rendered icons and sprites over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ideamans/svgkit/pkg/logging"
	"github.com/ideamans/svgkit/pkg/sprite"
	"github.com/ideamans/svgkit/pkg/svg"
)

// Config contains HTTP server settings
type Config struct {
	Host string
	Port int
}

// Server represents the HTTP server
type Server struct {
	config     Config
	factory    *svg.Factory
	sprites    *sprite.Builder
	router     *http.ServeMux
	logger     logging.Logger
	httpServer *http.Server
}

// New creates a new server instance
func New(cfg Config, factory *svg.Factory, logger logging.Logger) *Server {
	s := &Server{
		config:  cfg,
		factory: factory,
		sprites: sprite.NewBuilder(factory),
		logger:  logger.WithModule("server"),
	}

	s.setupRouter()
	return s
}

// setupRouter configures the HTTP router
func (s *Server) setupRouter() {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /icons/{name}", s.handleIcon)
	mux.HandleFunc("GET /sprite/{set}", s.handleSprite)

	s.router = mux
}

// Handler returns the server's HTTP handler with logging applied.
func (s *Server) Handler() http.Handler {
	return s.logMiddleware(s.router)
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("Starting server", "address", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	s.logger.Info("Shutting down server")
	return s.httpServer.Shutdown(ctx)
}

// logMiddleware logs each request with its duration
func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
