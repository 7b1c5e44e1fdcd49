package rag

import (
	"time"

	"github.com/FabioCubas101/tfm-ai-api/internal/tourism"
)

// WeekValue pins an extreme value to its island and week, so the model can
// cite a concrete highlight ("semana pico: Tenerife, 2025-01-13").
type WeekValue struct {
	Island string
	Week   time.Time
	Value  float64
}

// Summary holds the aggregate statistics for one metric category. Only the
// fields of the Metric kind are populated; Count always is.
//
// All aggregation is plain sum / arithmetic mean over the input records —
// no weighting across islands.
type Summary struct {
	Metric Metric
	Count  int

	// MetricVolume
	TouristSum int
	TouristAvg float64
	PeakWeek   WeekValue

	// MetricOccupancy (fractions in [0, 1], like the records)
	OccupancyAvg float64
	OccupancyMin WeekValue
	OccupancyMax WeekValue

	// MetricRevenue
	RevenueSum float64
	ExpenseSum float64
	Net        float64

	// MetricDailyRate
	DailyRateAvg float64

	// MetricDuration
	StayAvg float64
}

// Aggregate computes the summary statistics for a metric over the relevant
// records. Callers skip aggregation when metric is MetricNone or records is
// empty; the empty-input guard here only keeps misuse from dividing by zero.
func Aggregate(metric Metric, records []tourism.Record) Summary {
	s := Summary{Metric: metric, Count: len(records)}
	if len(records) == 0 {
		return s
	}
	n := float64(len(records))

	switch metric {
	case MetricVolume:
		peak := records[0]
		for _, r := range records {
			s.TouristSum += r.TotalTourists
			if r.TotalTourists > peak.TotalTourists {
				peak = r
			}
		}
		s.TouristAvg = float64(s.TouristSum) / n
		s.PeakWeek = WeekValue{Island: peak.IslandName, Week: peak.WeekStartDate, Value: float64(peak.TotalTourists)}

	case MetricOccupancy:
		lowest, highest := records[0], records[0]
		sum := 0.0
		for _, r := range records {
			sum += r.OccupancyRate
			if r.OccupancyRate < lowest.OccupancyRate {
				lowest = r
			}
			if r.OccupancyRate > highest.OccupancyRate {
				highest = r
			}
		}
		s.OccupancyAvg = sum / n
		s.OccupancyMin = WeekValue{Island: lowest.IslandName, Week: lowest.WeekStartDate, Value: lowest.OccupancyRate}
		s.OccupancyMax = WeekValue{Island: highest.IslandName, Week: highest.WeekStartDate, Value: highest.OccupancyRate}

	case MetricRevenue:
		for _, r := range records {
			s.RevenueSum += r.Revenue
			s.ExpenseSum += r.Expenses
		}
		s.Net = s.RevenueSum - s.ExpenseSum

	case MetricDailyRate:
		sum := 0.0
		for _, r := range records {
			sum += r.AverageDailyRate
		}
		s.DailyRateAvg = sum / n

	case MetricDuration:
		sum := 0.0
		for _, r := range records {
			sum += r.AverageStayDuration
		}
		s.StayAvg = sum / n
	}

	return s
}
