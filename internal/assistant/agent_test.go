package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FabioCubas101/tfm-ai-api/internal/log"
	"github.com/FabioCubas101/tfm-ai-api/internal/observability"
)

func TestNewRejectsIncompleteConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero config", Config{}},
		{"missing engine", Config{Logger: log.NewNop(), Metrics: observability.NewMetricsForTesting()}},
		{"missing logger", Config{Metrics: observability.NewMetricsForTesting()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.cfg)
			assert.Error(t, err)
		})
	}
}
