// Package api provides the HTTP REST API for the tourism assistant.
//
// Architecture:
//
//	┌─────────────────────────────────────────────────────────┐
//	│                      API Endpoints                      │
//	├─────────────────────────────────────────────────────────┤
//	│                                                         │
//	│  Protected (X-API-Key, rate limited):                   │
//	│  ────────────────────────────────────                   │
//	│  POST /chat           →  grounded chat answer           │
//	│  POST /api/flow/chat  →  genkit.Handler(tfm/chat Flow)  │
//	│                                                         │
//	│  Open (standard HTTP handlers):                         │
//	│  ──────────────────────────────                         │
//	│  GET  /         →  service banner                       │
//	│  GET  /health   →  liveness probe + record count        │
//	│  GET  /ready    →  readiness probe (dataset loaded)     │
//	│  GET  /metrics  →  Prometheus metrics                   │
//	│                                                         │
//	└─────────────────────────────────────────────────────────┘
//
// File structure:
//   - server.go: HTTP server setup and lifecycle
//   - middleware.go: HTTP middleware (recovery, request ID, logging, CORS, auth)
//   - ratelimit.go: per-IP token bucket rate limiting
//   - health.go: health check endpoints (/health, /ready)
//   - chat.go: chat endpoint
//   - response.go: JSON response helpers
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/firebase/genkit/go/genkit"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/FabioCubas101/tfm-ai-api/internal/assistant"
	"github.com/FabioCubas101/tfm-ai-api/internal/log"
	"github.com/FabioCubas101/tfm-ai-api/internal/tourism"
)

const (
	// DefaultAddr is the default address for the HTTP server.
	DefaultAddr = "127.0.0.1:8000"

	// ShutdownTimeout is the maximum time to wait for graceful shutdown.
	ShutdownTimeout = 10 * time.Second

	// ReadHeaderTimeout is the timeout for reading request headers.
	// This prevents Slowloris attacks (CWE-400).
	ReadHeaderTimeout = 10 * time.Second

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout = 30 * time.Second

	// WriteTimeout is the maximum duration for writing the response.
	// Model calls with retries can take a while.
	WriteTimeout = 120 * time.Second

	// IdleTimeout is the maximum time to wait for the next request on keep-alive connections.
	IdleTimeout = 120 * time.Second
)

// ServerConfig contains the dependencies and settings for the HTTP server.
type ServerConfig struct {
	Responder Responder
	Flow      *assistant.Flow // optional: exposes the Genkit flow endpoint when set
	Store     *tourism.Store
	Logger    log.Logger

	// APIKey is the value clients must present in X-API-Key.
	APIKey string

	CORSOrigins []string
	TrustProxy  bool

	// Per-client token bucket settings.
	RateLimitRPS   float64
	RateLimitBurst int
}

// Server is the HTTP server for the assistant's REST API.
type Server struct {
	mux    *http.ServeMux
	logger log.Logger

	cors func(http.Handler) http.Handler

	health *HealthHandler
	chat   *ChatHandler
}

// NewServer creates a new HTTP server with all routes registered.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("API key is required")
	}

	rps := cfg.RateLimitRPS
	if rps <= 0 {
		rps = 2.0
	}
	burst := cfg.RateLimitBurst
	if burst < 1 {
		burst = 5
	}

	mux := http.NewServeMux()
	s := &Server{
		mux:    mux,
		logger: cfg.Logger,
		cors:   corsMiddleware(cfg.CORSOrigins),
		health: NewHealthHandler(cfg.Store, cfg.Logger),
		chat:   NewChatHandler(cfg.Responder, cfg.Logger),
	}

	// Protected routes share auth and per-IP rate limiting.
	rl := newRateLimiter(rps, burst)
	protect := func(h http.Handler) http.Handler {
		return chain(h,
			rateLimitMiddleware(rl, cfg.TrustProxy, cfg.Logger),
			apiKeyMiddleware(cfg.APIKey, cfg.Logger),
		)
	}

	mux.Handle("POST /chat", protect(http.HandlerFunc(s.chat.handleChat)))
	if cfg.Flow != nil {
		mux.Handle("POST /api/flow/chat", protect(genkit.Handler(cfg.Flow)))
	}

	s.health.RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /{$}", s.handleRoot)

	return s, nil
}

// handleRoot returns a small service banner.
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "tfm-ai-api",
		"message": "Asistente de turismo de las Islas Canarias",
	}, s.logger)
}

// Handler returns the HTTP handler with global middleware applied.
// Order: recovery → request ID → logging → CORS → mux.
func (s *Server) Handler() http.Handler {
	return chain(s.mux,
		recoveryMiddleware(s.logger),
		requestIDMiddleware,
		loggingMiddleware(s.logger),
		s.cors,
	)
}

// Run starts the HTTP server and blocks until the context is cancelled.
// It handles graceful shutdown when the context is done.
func (s *Server) Run(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: ReadHeaderTimeout,
		ReadTimeout:       ReadTimeout,
		WriteTimeout:      WriteTimeout,
		IdleTimeout:       IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
