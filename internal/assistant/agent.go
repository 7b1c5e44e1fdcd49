// Package assistant implements the LLM collaborator: it gates incoming
// questions for relevance, grounds them through the rag pipeline, and calls
// the model via Genkit to produce the final natural-language answer.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/FabioCubas101/tfm-ai-api/internal/log"
	"github.com/FabioCubas101/tfm-ai-api/internal/observability"
	"github.com/FabioCubas101/tfm-ai-api/internal/rag"
)

// ErrGenerationFailed indicates the model call failed after retries.
var ErrGenerationFailed = errors.New("generation failed")

// Config contains all required parameters for the assistant Agent.
type Config struct {
	Genkit  *genkit.Genkit
	Engine  *rag.Engine
	Logger  log.Logger
	Metrics *observability.Metrics

	// ModelName is the provider-qualified model identifier,
	// e.g. "googleai/gemini-2.5-flash".
	ModelName   string
	Temperature float32
	MaxTokens   int

	// RetryConfig zero-value uses defaults.
	RetryConfig RetryConfig

	// RateLimiter proactively throttles model calls (nil = default limiter).
	RateLimiter *rate.Limiter
}

func (cfg Config) validate() error {
	if cfg.Genkit == nil {
		return errors.New("genkit instance is required")
	}
	if cfg.Engine == nil {
		return errors.New("rag engine is required")
	}
	if cfg.Logger == nil {
		return errors.New("logger is required")
	}
	if cfg.Metrics == nil {
		return errors.New("metrics are required")
	}
	return nil
}

// Agent answers tourism questions grounded in the record store.
//
// All configuration is captured immutably at construction, so a single
// Agent is safe for concurrent requests; each Answer invocation is an
// independent, side-effect-free pipeline run plus one model call.
type Agent struct {
	g           *genkit.Genkit
	engine      *rag.Engine
	logger      log.Logger
	metrics     *observability.Metrics
	modelName   string
	genConfig   *genai.GenerateContentConfig
	retryConfig RetryConfig
	rateLimiter *rate.Limiter
}

// New creates an Agent with the given configuration.
func New(cfg Config) (*Agent, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	retryConfig := cfg.RetryConfig
	if retryConfig.MaxRetries == 0 {
		retryConfig = DefaultRetryConfig()
	}

	// Default: 1 request/sec sustained, burst of 5. The api layer applies
	// its own per-client limit; this one protects the model quota.
	rl := cfg.RateLimiter
	if rl == nil {
		rl = rate.NewLimiter(1, 5)
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	a := &Agent{
		g:         cfg.Genkit,
		engine:    cfg.Engine,
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
		modelName: cfg.ModelName,
		genConfig: &genai.GenerateContentConfig{
			Temperature:     genai.Ptr(cfg.Temperature),
			MaxOutputTokens: int32(maxTokens),
		},
		retryConfig: retryConfig,
		rateLimiter: rl,
	}

	a.logger.Info("assistant agent initialized",
		"model", a.modelName,
		"max_tokens", maxTokens,
	)
	return a, nil
}

// Answer produces the assistant's reply to a user message.
//
// Off-topic messages get the rejection message without a model call.
// On-topic messages run the retrieval pipeline and one grounded generation.
// The retrieval pipeline itself never fails; only the model call can return
// an error, wrapped in ErrGenerationFailed.
func (a *Agent) Answer(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)

	if !IsTourismQuestion(message) {
		a.logger.Debug("question rejected by relevance gate", "length", len(message))
		a.metrics.ChatRequests.WithLabelValues(observability.OutcomeRejected).Inc()
		return RejectionMessage, nil
	}

	result := a.engine.Retrieve(message)
	a.metrics.RetrievedRecords.Observe(float64(len(result.Records)))

	opts := []ai.GenerateOption{
		ai.WithSystem(SystemPrompt),
		ai.WithPrompt(BuildUserPrompt(result.Context, message)),
		ai.WithConfig(a.genConfig),
	}
	if a.modelName != "" {
		opts = append(opts, ai.WithModelName(a.modelName))
	}

	start := time.Now()
	resp, err := a.generateWithRetry(ctx, opts)
	a.metrics.ModelDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		a.metrics.ChatRequests.WithLabelValues(observability.OutcomeError).Inc()
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		a.logger.Warn("model returned empty response")
		text = fallbackMessage
	}

	outcome := observability.OutcomeAnswered
	if len(result.Records) == 0 {
		outcome = observability.OutcomeNoData
	}
	a.metrics.ChatRequests.WithLabelValues(outcome).Inc()

	a.logger.Debug("answer generated",
		"records", len(result.Records),
		"metric", result.Hints.Metric.String(),
		"response_len", len(text),
	)
	return text, nil
}
