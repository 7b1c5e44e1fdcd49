// Package app provides application initialization and dependency injection.
//
// App is the core container that orchestrates all application components.
// It initializes tracing, Genkit, the tourism dataset store, the retrieval
// engine, and the assistant agent.
package app

import (
	"github.com/firebase/genkit/go/genkit"

	"github.com/FabioCubas101/tfm-ai-api/internal/assistant"
	"github.com/FabioCubas101/tfm-ai-api/internal/config"
	"github.com/FabioCubas101/tfm-ai-api/internal/log"
	"github.com/FabioCubas101/tfm-ai-api/internal/observability"
	"github.com/FabioCubas101/tfm-ai-api/internal/rag"
	"github.com/FabioCubas101/tfm-ai-api/internal/tourism"
)

// App is the core application container.
type App struct {
	Config *config.Config
	Logger log.Logger

	Genkit  *genkit.Genkit
	Store   *tourism.Store
	Engine  *rag.Engine
	Agent   *assistant.Agent
	Metrics *observability.Metrics

	otelCleanup func()
}

// Close gracefully shuts down all resources.
func (a *App) Close() error {
	if a.Logger != nil {
		a.Logger.Info("shutting down application")
	}

	if a.otelCleanup != nil {
		a.otelCleanup()
	}

	return nil
}
