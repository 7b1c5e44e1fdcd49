package rag

import (
	"slices"
	"time"

	"github.com/FabioCubas101/tfm-ai-api/internal/tourism"
)

// Filter applies the extracted hints to the record store and returns the
// relevant subset, ordered descending by week start date (most recent
// first). That ordering is load-bearing: aggregation highlights and the
// renderer's cap both assume "first K records" means "most recent K".
//
// Stages, each narrowing the previous one:
//  1. island stage
//  2. temporal stage (a bare month resolves to the most recent year that
//     contains it among the island-filtered records, or no temporal filter
//     when no year has it)
//  3. recency fallback: when stages 1-2 end empty, or no temporal hint was
//     given at all, keep only the most recent RecentWeeks distinct weeks of
//     the island-filtered data
//
// An empty store yields an empty result, not an error; the renderer
// distinguishes that from a hard failure.
func (e *Engine) Filter(hints Hints) []tourism.Record {
	if e.store.Len() == 0 {
		return nil
	}

	// Work on a copy: the store's backing slice is shared across requests
	// and must never be reordered.
	byIsland := slices.Clone(e.store.Records())

	if len(hints.Islands) > 0 {
		wanted := make(map[string]bool, len(hints.Islands))
		for _, name := range hints.Islands {
			wanted[name] = true
		}
		byIsland = slices.DeleteFunc(byIsland, func(r tourism.Record) bool {
			return !wanted[r.IslandName]
		})
	}

	result := byIsland
	hadTemporal := hints.Year != 0 || hints.Month != 0

	switch {
	case hints.Year != 0:
		result = filterPeriod(byIsland, hints.Year, hints.Month)
	case hints.Month != 0:
		if year := mostRecentYearWithMonth(byIsland, hints.Month); year != 0 {
			result = filterPeriod(byIsland, year, hints.Month)
		}
		// No year has that month: fall through with no temporal filter.
	}

	if len(result) == 0 || !hadTemporal {
		result = e.recentWeeksOf(byIsland)
	}

	sortByWeekDesc(result)
	return result
}

// filterPeriod keeps records in the given year, and month when non-zero.
func filterPeriod(records []tourism.Record, year int, month time.Month) []tourism.Record {
	var out []tourism.Record
	for _, r := range records {
		if r.WeekStartDate.Year() != year {
			continue
		}
		if month != 0 && r.WeekStartDate.Month() != month {
			continue
		}
		out = append(out, r)
	}
	return out
}

// mostRecentYearWithMonth returns the latest year among records that has at
// least one record in the given month, or 0 when none does.
func mostRecentYearWithMonth(records []tourism.Record, month time.Month) int {
	year := 0
	for _, r := range records {
		if r.WeekStartDate.Month() == month && r.WeekStartDate.Year() > year {
			year = r.WeekStartDate.Year()
		}
	}
	return year
}

// recentWeeksOf keeps the records belonging to the most recent RecentWeeks
// distinct week dates. All islands present in those weeks are retained, so a
// broad query still allows cross-island comparison.
func (e *Engine) recentWeeksOf(records []tourism.Record) []tourism.Record {
	if len(records) == 0 {
		return nil
	}

	weekSet := make(map[time.Time]bool)
	for _, r := range records {
		weekSet[r.WeekStartDate] = true
	}
	weeks := make([]time.Time, 0, len(weekSet))
	for w := range weekSet {
		weeks = append(weeks, w)
	}
	slices.SortFunc(weeks, func(a, b time.Time) int { return b.Compare(a) })
	if len(weeks) > e.recentWeeks {
		weeks = weeks[:e.recentWeeks]
	}

	keep := make(map[time.Time]bool, len(weeks))
	for _, w := range weeks {
		keep[w] = true
	}

	var out []tourism.Record
	for _, r := range records {
		if keep[r.WeekStartDate] {
			out = append(out, r)
		}
	}
	return out
}

// sortByWeekDesc orders records most recent first. The sort is stable so
// same-week records keep their dataset order across invocations.
func sortByWeekDesc(records []tourism.Record) {
	slices.SortStableFunc(records, func(a, b tourism.Record) int {
		return b.WeekStartDate.Compare(a.WeekStartDate)
	})
}
