package discord

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

const (
	healthReadHeaderTimeout = 5 * time.Second
	healthShutdownTimeout   = 5 * time.Second
)

// HTTPServer exposes the bot's health endpoint
type HTTPServer struct {
	server *http.Server
	bot    *Bot
}

// NewHTTPServer creates a new HTTP server
func NewHTTPServer(port string, bot *Bot) *HTTPServer {
	mux := http.NewServeMux()

	srv := &HTTPServer{
		server: &http.Server{
			Addr:              ":" + port,
			Handler:           mux,
			ReadHeaderTimeout: healthReadHeaderTimeout,
		},
		bot: bot,
	}

	mux.HandleFunc("GET /healthz", srv.HandleHealth)
	return srv
}

// Start starts the HTTP server in the background
func (s *HTTPServer) Start() {
	go func() {
		slog.Info("Starting Discord health server", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Discord health server failed", "error", err)
		}
	}()
}

// Stop shuts the HTTP server down
func (s *HTTPServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), healthShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("Discord health server shutdown failed", "error", err)
	}
}
