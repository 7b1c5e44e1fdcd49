package rag

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/FabioCubas101/tfm-ai-api/internal/tourism"
)

// testNow is the frozen clock time used across the package tests.
var testNow = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

func week(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// rec builds a valid record for the given island code and week.
func rec(code int, w time.Time, tourists int, occ float64) tourism.Record {
	return tourism.Record{
		IslandCode:              code,
		IslandName:              tourism.IslandNames[code],
		WeekStartDate:           w,
		TotalTourists:           tourists,
		InternationalPassengers: tourists * 7 / 10,
		DomesticPassengers:      tourists * 3 / 10,
		OccupancyRate:           occ,
		AverageDailyRate:        90,
		Revenue:                 float64(tourists) * 100,
		Expenses:                float64(tourists) * 60,
		AverageStayDuration:     6,
	}
}

// januaryTenerife is the per-week volume series used by the aggregation and
// end-to-end tests: sum 4200, mean 1050, peak 1200.
func januaryTenerife() []tourism.Record {
	return []tourism.Record{
		rec(tourism.CodeTenerife, week(2025, time.January, 6), 900, 0.70),
		rec(tourism.CodeTenerife, week(2025, time.January, 13), 1050, 0.80),
		rec(tourism.CodeTenerife, week(2025, time.January, 20), 1050, 0.85),
		rec(tourism.CodeTenerife, week(2025, time.January, 27), 1200, 0.90),
	}
}

// newTestEngine builds an engine over records with a frozen clock.
func newTestEngine(t *testing.T, records []tourism.Record, mutate ...func(*Config)) *Engine {
	t.Helper()

	store, err := tourism.NewStore(records)
	require.NoError(t, err)

	cfg := Config{
		Store: store,
		Clock: clockwork.NewFakeClockAt(testNow),
	}
	for _, m := range mutate {
		m(&cfg)
	}

	e, err := New(cfg)
	require.NoError(t, err)
	return e
}
