package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/FabioCubas101/tfm-ai-api/api"
	"github.com/FabioCubas101/tfm-ai-api/internal/app"
	"github.com/FabioCubas101/tfm-ai-api/internal/assistant"
	"github.com/FabioCubas101/tfm-ai-api/internal/config"
)

// runServe initializes and starts the HTTP API server.
func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	addr, err := parseServeAddr(cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("parsing address: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := slog.Default()
	logger.Info("starting HTTP API server", "version", Version)

	a, err := app.Setup(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("initializing application: %w", err)
	}
	defer func() {
		if closeErr := a.Close(); closeErr != nil {
			logger.Warn("shutdown error", "error", closeErr)
		}
	}()

	flow := assistant.NewFlow(a.Genkit, a.Agent)

	srv, err := api.NewServer(api.ServerConfig{
		Responder:      a.Agent,
		Flow:           flow,
		Store:          a.Store,
		Logger:         logger,
		APIKey:         cfg.MasterAPIKey,
		CORSOrigins:    cfg.CORSOrigins,
		TrustProxy:     cfg.TrustProxy,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	logger.Info("HTTP server ready",
		"addr", addr,
		"chat", "/chat",
		"health", "/health, /ready",
		"metrics", "/metrics",
	)

	return srv.Run(ctx, addr)
}
