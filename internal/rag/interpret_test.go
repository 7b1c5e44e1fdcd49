package rag

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInterpretIslands(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, januaryTenerife())

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "single island",
			query: "¿Cuántos turistas visitaron Tenerife?",
			want:  []string{"Tenerife"},
		},
		{
			name:  "case insensitive",
			query: "ocupación en LANZAROTE",
			want:  []string{"Lanzarote"},
		},
		{
			name:  "comparison keeps all matches in code order",
			query: "compara Gran Canaria con Tenerife",
			want:  []string{"Tenerife", "Gran Canaria"},
		},
		{
			name:  "two-word island",
			query: "datos de fuerteventura y la gomera",
			want:  []string{"Fuerteventura", "La Gomera"},
		},
		{
			name:  "archipelago name restricts nothing",
			query: "turismo en Canarias",
			want:  nil,
		},
		{
			name:  "no island",
			query: "¿cuál fue la ocupación media?",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, e.Interpret(tt.query).Islands)
		})
	}
}

func TestInterpretTemporal(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, januaryTenerife())

	tests := []struct {
		name      string
		query     string
		wantYear  int
		wantMonth time.Month
	}{
		{
			name:     "bare year",
			query:    "turistas en 2025",
			wantYear: 2025,
		},
		{
			name:      "month name with year",
			query:     "turistas en enero de 2025",
			wantYear:  2025,
			wantMonth: time.January,
		},
		{
			name:      "month name without year",
			query:     "ocupación en agosto",
			wantMonth: time.August,
		},
		{
			name:      "september alternate spelling",
			query:     "datos de setiembre",
			wantMonth: time.September,
		},
		{
			name:      "numeric M/YYYY",
			query:     "estadísticas de 1/2025",
			wantYear:  2025,
			wantMonth: time.January,
		},
		{
			name:      "numeric YYYY-MM",
			query:     "estadísticas de 2025-03",
			wantYear:  2025,
			wantMonth: time.March,
		},
		{
			name:  "year before dataset epoch ignored",
			query: "turistas en 2019",
		},
		{
			name:  "future year ignored",
			query: "turistas en 2030",
		},
		{
			name:      "month name wins over numeric form",
			query:     "enero o 3/2025",
			wantYear:  2025,
			wantMonth: time.January,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := e.Interpret(tt.query)
			assert.Equal(t, tt.wantYear, h.Year, "year")
			assert.Equal(t, tt.wantMonth, h.Month, "month")
		})
	}
}

func TestInterpretMetric(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, januaryTenerife())

	tests := []struct {
		name  string
		query string
		want  Metric
	}{
		{"tourists", "cuántos turistas llegaron", MetricVolume},
		{"occupancy accented", "tasa de ocupación hotelera", MetricOccupancy},
		{"occupancy unaccented", "ocupacion media", MetricOccupancy},
		{"revenue", "ingresos del sector", MetricRevenue},
		{"daily rate", "tarifa media diaria", MetricDailyRate},
		{"stay duration", "estancia media de los visitantes", MetricDuration},
		{"earliest keyword wins", "ocupación y turistas", MetricOccupancy},
		{"occupancy rate resolves to occupancy", "occupancy rate en Tenerife", MetricOccupancy},
		{"no keyword", "¿qué islas hay?", MetricNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, e.Interpret(tt.query).Metric)
		})
	}
}

func TestInterpretNeverPanicsOnNoise(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, januaryTenerife())

	for _, q := range []string{"", "   ", "!!!???", "99/9999", "aaaaaaaaaaaaaaaa"} {
		h := e.Interpret(q)
		assert.Equal(t, Hints{}, h, "query %q should yield zero hints", q)
	}
}
