package rag

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/FabioCubas101/tfm-ai-api/internal/tourism"
)

func TestAggregateVolume(t *testing.T) {
	t.Parallel()

	s := Aggregate(MetricVolume, januaryTenerife())

	assert.Equal(t, 4, s.Count)
	assert.Equal(t, 4200, s.TouristSum)
	assert.InDelta(t, 1050.0, s.TouristAvg, 1e-9)
	assert.Equal(t, "Tenerife", s.PeakWeek.Island)
	assert.Equal(t, week(2025, time.January, 27), s.PeakWeek.Week)
	assert.InDelta(t, 1200.0, s.PeakWeek.Value, 1e-9)
}

func TestAggregateOccupancy(t *testing.T) {
	t.Parallel()

	records := []tourism.Record{
		rec(tourism.CodeTenerife, week(2025, time.January, 6), 1000, 0.60),
		rec(tourism.CodeGranCanaria, week(2025, time.January, 6), 1000, 0.90),
		rec(tourism.CodeTenerife, week(2025, time.January, 13), 1000, 0.75),
	}

	s := Aggregate(MetricOccupancy, records)

	assert.InDelta(t, 0.75, s.OccupancyAvg, 1e-9)
	assert.Equal(t, "Tenerife", s.OccupancyMin.Island)
	assert.InDelta(t, 0.60, s.OccupancyMin.Value, 1e-9)
	assert.Equal(t, "Gran Canaria", s.OccupancyMax.Island)
	assert.InDelta(t, 0.90, s.OccupancyMax.Value, 1e-9)
}

func TestAggregateRevenue(t *testing.T) {
	t.Parallel()

	// rec() derives revenue = tourists*100 and expenses = tourists*60.
	records := []tourism.Record{
		rec(tourism.CodeTenerife, week(2025, time.January, 6), 1000, 0.8),
		rec(tourism.CodeTenerife, week(2025, time.January, 13), 2000, 0.8),
	}

	s := Aggregate(MetricRevenue, records)

	assert.InDelta(t, 300000.0, s.RevenueSum, 1e-9)
	assert.InDelta(t, 180000.0, s.ExpenseSum, 1e-9)
	assert.InDelta(t, 120000.0, s.Net, 1e-9)
}

func TestAggregateDailyRateAndDuration(t *testing.T) {
	t.Parallel()

	a := rec(tourism.CodeTenerife, week(2025, time.January, 6), 1000, 0.8)
	a.AverageDailyRate = 80
	a.AverageStayDuration = 5
	b := rec(tourism.CodeTenerife, week(2025, time.January, 13), 1000, 0.8)
	b.AverageDailyRate = 120
	b.AverageStayDuration = 7

	rateSummary := Aggregate(MetricDailyRate, []tourism.Record{a, b})
	assert.InDelta(t, 100.0, rateSummary.DailyRateAvg, 1e-9)

	staySummary := Aggregate(MetricDuration, []tourism.Record{a, b})
	assert.InDelta(t, 6.0, staySummary.StayAvg, 1e-9)
}

func TestAggregateEmptyInput(t *testing.T) {
	t.Parallel()

	s := Aggregate(MetricVolume, nil)
	assert.Equal(t, Summary{Metric: MetricVolume}, s)
}

func TestAggregateSingleRecordExtremes(t *testing.T) {
	t.Parallel()

	only := rec(tourism.CodeElHierro, week(2025, time.February, 3), 50, 0.40)
	s := Aggregate(MetricOccupancy, []tourism.Record{only})

	assert.Equal(t, s.OccupancyMin, s.OccupancyMax)
	assert.Equal(t, "El Hierro", s.OccupancyMin.Island)
}
