package config

import (
	"fmt"
	"log/slog"
	"os"
)

// Validate validates configuration values.
// Returns sentinel errors that can be checked with errors.Is().
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigNil
	}

	// 1. API key validation (required for all model calls)
	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("%w: GEMINI_API_KEY environment variable is required\n"+
			"Get your API key at: https://ai.google.dev/gemini-api/docs/api-key",
			ErrMissingAPIKey)
	}

	// 2. Model configuration validation
	if c.ModelName == "" {
		return fmt.Errorf("%w: model_name cannot be empty", ErrInvalidModelName)
	}

	// Temperature range: 0.0 (deterministic) to 2.0 (maximum creativity)
	if c.Temperature < 0.0 || c.Temperature > 2.0 {
		return fmt.Errorf("%w: must be between 0.0 and 2.0, got %.2f", ErrInvalidTemperature, c.Temperature)
	}

	// MaxTokens range: 1 to 65536 (Gemini 2.5 Flash max output)
	if c.MaxTokens < 1 || c.MaxTokens > 65536 {
		return fmt.Errorf("%w: must be between 1 and 65,536, got %d", ErrInvalidMaxTokens, c.MaxTokens)
	}

	// 3. Dataset validation
	if c.DataFile == "" {
		return fmt.Errorf("%w: data_file cannot be empty", ErrInvalidDataFile)
	}

	// 4. Retrieval window validation
	if c.RecentWeeks < 1 || c.RecentWeeks > 520 {
		return fmt.Errorf("%w: recent_weeks must be between 1 and 520, got %d",
			ErrInvalidRetrieval, c.RecentWeeks)
	}
	if c.MaxContextRecords < 1 || c.MaxContextRecords > 1000 {
		return fmt.Errorf("%w: max_context_records must be between 1 and 1000, got %d",
			ErrInvalidRetrieval, c.MaxContextRecords)
	}

	// 5. Master API key validation (clients present it in X-API-Key)
	if c.MasterAPIKey == "" {
		return fmt.Errorf("%w: set MASTER_API_KEY environment variable or master_api_key in config.yaml",
			ErrMissingMasterKey)
	}
	if len(c.MasterAPIKey) < 16 {
		return fmt.Errorf("%w: must be at least 16 characters (got %d)",
			ErrInvalidMasterKey, len(c.MasterAPIKey))
	}
	if c.MasterAPIKey == "change_me_please" {
		slog.Warn("Using placeholder master API key",
			"warning", "Set a real MASTER_API_KEY for production deployments")
	}

	// 6. Rate limit validation
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("%w: rate_limit_rps must be positive, got %g",
			ErrInvalidRateLimit, c.RateLimitRPS)
	}
	if c.RateLimitBurst < 1 {
		return fmt.Errorf("%w: rate_limit_burst must be at least 1, got %d",
			ErrInvalidRateLimit, c.RateLimitBurst)
	}

	return nil
}
