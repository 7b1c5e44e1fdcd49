package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// validConfig returns a configuration that passes Validate.
func validConfig() *Config {
	return &Config{
		Provider:          ProviderGemini,
		ModelName:         "gemini-2.5-flash",
		Temperature:       0.3,
		MaxTokens:         1024,
		DataFile:          "data/tourism_data.json",
		RecentWeeks:       12,
		MaxContextRecords: 20,
		ListenAddr:        ":8000",
		MasterAPIKey:      "a-long-master-key-for-tests",
		RateLimitRPS:      2,
		RateLimitBurst:    5,
	}
}

func TestValidate(t *testing.T) {
	// No t.Parallel: t.Setenv forbids it.
	t.Setenv("GEMINI_API_KEY", "test-key")

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty model name",
			mutate:  func(c *Config) { c.ModelName = "" },
			wantErr: ErrInvalidModelName,
		},
		{
			name:    "temperature too high",
			mutate:  func(c *Config) { c.Temperature = 2.5 },
			wantErr: ErrInvalidTemperature,
		},
		{
			name:    "negative temperature",
			mutate:  func(c *Config) { c.Temperature = -0.1 },
			wantErr: ErrInvalidTemperature,
		},
		{
			name:    "zero max tokens",
			mutate:  func(c *Config) { c.MaxTokens = 0 },
			wantErr: ErrInvalidMaxTokens,
		},
		{
			name:    "empty data file",
			mutate:  func(c *Config) { c.DataFile = "" },
			wantErr: ErrInvalidDataFile,
		},
		{
			name:    "zero recent weeks",
			mutate:  func(c *Config) { c.RecentWeeks = 0 },
			wantErr: ErrInvalidRetrieval,
		},
		{
			name:    "max context records too large",
			mutate:  func(c *Config) { c.MaxContextRecords = 5000 },
			wantErr: ErrInvalidRetrieval,
		},
		{
			name:    "missing master key",
			mutate:  func(c *Config) { c.MasterAPIKey = "" },
			wantErr: ErrMissingMasterKey,
		},
		{
			name:    "short master key",
			mutate:  func(c *Config) { c.MasterAPIKey = "short" },
			wantErr: ErrInvalidMasterKey,
		},
		{
			name:    "zero rate limit",
			mutate:  func(c *Config) { c.RateLimitRPS = 0 },
			wantErr: ErrInvalidRateLimit,
		},
		{
			name:    "zero burst",
			mutate:  func(c *Config) { c.RateLimitBurst = 0 },
			wantErr: ErrInvalidRateLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRequiresGeminiKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	err := validConfig().Validate()
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestValidateNilConfig(t *testing.T) {
	t.Parallel()

	var cfg *Config
	assert.ErrorIs(t, cfg.Validate(), ErrConfigNil)
}
