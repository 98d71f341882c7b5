package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/SigilForge_Go/internal/forge"
	"github.com/osse101/SigilForge_Go/internal/handler"
	"github.com/osse101/SigilForge_Go/internal/metrics"
	"github.com/osse101/SigilForge_Go/internal/player"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	APIKey         string
	Version        string
	TrustedProxies []string
}

// Services are the domain services the routes call into
type Services struct {
	Forge   forge.Service
	Players player.Service
	Rules   forge.Rules
	// Readiness lists the dependencies /readyz probes
	Readiness []handler.ReadinessCheck
}

type Server struct {
	httpServer *http.Server
}

// NewServer builds the router and wraps it in an http.Server
func NewServer(opts Options, svcs Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svcs),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter returns the full route tree. Middleware runs outermost first.
func NewRouter(opts Options, svcs Services) http.Handler {
	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector()

	r.Use(requestIDMiddleware)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svcs.Readiness...))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Post("/register", handler.HandleRegisterPlayer(svcs.Players))
			r.Get("/{playerID}", handler.HandleGetPlayer(svcs.Players))
		})

		r.Post("/upgrade", handler.HandleUpgrade(svcs.Forge))
		r.Get("/upgrade/chances", handler.HandleGetChances(svcs.Forge, svcs.Rules))
	})

	return r
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start blocks serving HTTP until Stop is called
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
