package rag

import "strings"

// Metric identifies the statistic category a query asks about.
type Metric int

const (
	// MetricNone means no metric keyword matched: return raw relevant
	// records with no aggregation.
	MetricNone Metric = iota
	MetricVolume
	MetricOccupancy
	MetricRevenue
	MetricDailyRate
	MetricDuration
)

// String returns the metric name used in logs and metrics labels.
func (m Metric) String() string {
	switch m {
	case MetricVolume:
		return "volume"
	case MetricOccupancy:
		return "occupancy"
	case MetricRevenue:
		return "revenue"
	case MetricDailyRate:
		return "daily_rate"
	case MetricDuration:
		return "duration"
	default:
		return "none"
	}
}

// metricKeywords is the fixed keyword-to-category table, evaluated by
// explicit iteration. Spanish keywords are listed without their plural
// suffix so substring matching covers both forms ("turista"/"turistas").
// Accent-stripped variants are included because user input is inconsistent.
var metricKeywords = []struct {
	keyword string
	metric  Metric
}{
	{"ocupación", MetricOccupancy},
	{"ocupacion", MetricOccupancy},
	{"occupancy", MetricOccupancy},
	{"ingreso", MetricRevenue},
	{"revenue", MetricRevenue},
	{"turista", MetricVolume},
	{"tourist", MetricVolume},
	{"tarifa", MetricDailyRate},
	{"rate", MetricDailyRate},
	{"estancia", MetricDuration},
	{"stay", MetricDuration},
}

// detectMetric returns the category of the keyword appearing earliest in the
// lowercased query; ties at the same position resolve to the earlier table
// entry. No match yields MetricNone.
func detectMetric(lower string) Metric {
	best := MetricNone
	bestPos := -1
	for _, kw := range metricKeywords {
		pos := strings.Index(lower, kw.keyword)
		if pos < 0 {
			continue
		}
		if bestPos == -1 || pos < bestPos {
			best = kw.metric
			bestPos = pos
		}
	}
	return best
}
