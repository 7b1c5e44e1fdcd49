package config

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskSecret(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		secret string
		want   string
	}{
		{"empty", "", ""},
		{"short fully masked", "abc12345", maskedValue},
		{"long shows edges", "my_long_secret_key_123", "my<" + maskedValue + ">23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, maskSecret(tt.secret))
		})
	}
}

func TestConfigMarshalJSONMasksSecrets(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.MasterAPIKey = "super-secret-master-key-value"

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "super-secret-master-key-value")
	assert.Contains(t, string(data), maskedValue)
}

func TestConfigStringMasksSecrets(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.MasterAPIKey = "another-secret-value-here"

	s := cfg.String()
	assert.False(t, strings.Contains(s, "another-secret-value-here"))
}

func TestFullModelName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		model string
		want  string
	}{
		{"bare name gets provider prefix", "gemini-2.5-flash", "googleai/gemini-2.5-flash"},
		{"qualified name passes through", "googleai/gemini-2.5-pro", "googleai/gemini-2.5-pro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			cfg.ModelName = tt.model
			assert.Equal(t, tt.want, cfg.FullModelName())
		})
	}
}
