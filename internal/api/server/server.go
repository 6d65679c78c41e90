// Package server provides the HTTP server implementation
package server

// @title           Kubernetes Test Application API
// @version         1.0
// @description     Diagnostic service reporting host, platform and pod metadata.
//
// @description.markdown
// Requests other than /health and /swagger are rate limited per client IP.
// When the limit is exceeded the server answers 429 with Retry-After and
// X-RateLimit-* headers.
//
// @host            localhost:5000
// @BasePath        /

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"podinfo/internal/api/handlers"
	"podinfo/internal/api/middleware"
	"podinfo/internal/api/routes"
	"podinfo/internal/config"
)

// pruneInterval is how often idle rate limit entries are dropped
const pruneInterval = 10 * time.Minute

// Server represents the HTTP server
type Server struct {
	cfg        *config.Config
	limiter    *middleware.RateLimiter
	httpServer *http.Server
}

// New creates a new server instance
func New(cfg *config.Config, collector handlers.InfoCollector) *Server {
	limiter := middleware.NewRateLimiter(cfg)
	router := routes.SetupRoutes(cfg, collector, limiter)

	return &Server{
		cfg:     cfg,
		limiter: limiter,
		httpServer: &http.Server{
			Addr:              cfg.API.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler returns the configured router
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run binds the configured address and serves until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then gives
// outstanding requests the configured shutdown timeout to complete
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	stop := make(chan struct{})
	defer close(stop)
	go s.limiter.Run(pruneInterval, stop)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s", ln.Addr())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.API.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("Server exiting")
	return nil
}
