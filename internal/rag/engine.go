package rag

import (
	"errors"

	"github.com/jonboulle/clockwork"

	"github.com/FabioCubas101/tfm-ai-api/internal/log"
	"github.com/FabioCubas101/tfm-ai-api/internal/tourism"
)

const (
	// DefaultRecentWeeks is how many of the most recent weeks the recency
	// fallback keeps when a query carries no usable temporal hint.
	DefaultRecentWeeks = 12

	// DefaultMaxContextRecords is the hard cap on individual record lines
	// in a rendered context block.
	DefaultMaxContextRecords = 20

	// DatasetEpochYear is the first year covered by the dataset; explicit
	// years below it are treated as implausible and ignored.
	DatasetEpochYear = 2024

	// NoDataMarker is emitted instead of an empty context block. The system
	// prompt instructs the model to answer gracefully when it sees it.
	NoDataMarker = "no data available for this query"
)

// Config contains the Engine dependencies and tunables.
// Zero-value tunables fall back to the package defaults so tests can
// exercise boundary values (e.g. MaxContextRecords = 1) directly.
type Config struct {
	Store *tourism.Store

	RecentWeeks       int
	MaxContextRecords int

	// Clock bounds the plausible-year range during interpretation.
	// Tests inject a fake clock for deterministic output.
	Clock  clockwork.Clock
	Logger log.Logger
}

// Engine runs the four-stage retrieval pipeline over the record store.
// Immutable after New; safe for concurrent use.
type Engine struct {
	store             *tourism.Store
	recentWeeks       int
	maxContextRecords int
	clock             clockwork.Clock
	logger            log.Logger
}

// New creates an Engine, applying defaults for unset tunables.
func New(cfg Config) (*Engine, error) {
	if cfg.Store == nil {
		return nil, errors.New("record store is required")
	}
	if cfg.RecentWeeks <= 0 {
		cfg.RecentWeeks = DefaultRecentWeeks
	}
	if cfg.MaxContextRecords <= 0 {
		cfg.MaxContextRecords = DefaultMaxContextRecords
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNop()
	}
	return &Engine{
		store:             cfg.Store,
		recentWeeks:       cfg.RecentWeeks,
		maxContextRecords: cfg.MaxContextRecords,
		clock:             cfg.Clock,
		logger:            cfg.Logger,
	}, nil
}

// Result is one complete pipeline invocation: the extracted hints, the
// relevant records (most recent first), the summary when a metric was
// detected, and the rendered context block.
type Result struct {
	Hints   Hints
	Records []tourism.Record
	Summary *Summary
	Context string
}

// Retrieve runs Interpret, Filter, Aggregate and Render for a query.
// It never fails: an unrecognized query falls back to broad recent data,
// and an empty store yields the NoDataMarker context.
func (e *Engine) Retrieve(query string) Result {
	hints := e.Interpret(query)
	records := e.Filter(hints)

	var summary *Summary
	if hints.Metric != MetricNone && len(records) > 0 {
		s := Aggregate(hints.Metric, records)
		summary = &s
	}

	e.logger.Debug("retrieved context",
		"islands", hints.Islands,
		"year", hints.Year,
		"month", int(hints.Month),
		"metric", hints.Metric.String(),
		"records", len(records),
	)

	return Result{
		Hints:   hints,
		Records: records,
		Summary: summary,
		Context: e.Render(records, summary),
	}
}
