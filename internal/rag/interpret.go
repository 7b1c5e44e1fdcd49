package rag

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/FabioCubas101/tfm-ai-api/internal/tourism"
)

// Hints are the structured filter criteria extracted from a free-text query.
type Hints struct {
	// Islands holds canonical island names; empty means "all islands".
	Islands []string

	// Year is the explicit 4-digit year, 0 when absent.
	Year int

	// Month is 0 when absent. A month with no year is resolved against the
	// store at filter time, not here.
	Month time.Month

	Metric Metric
}

// spanishMonths maps month names to their number. Both the accented and
// accent-stripped spellings of September are accepted.
var spanishMonths = []struct {
	name  string
	month time.Month
}{
	{"enero", time.January},
	{"febrero", time.February},
	{"marzo", time.March},
	{"abril", time.April},
	{"mayo", time.May},
	{"junio", time.June},
	{"julio", time.July},
	{"agosto", time.August},
	{"septiembre", time.September},
	{"setiembre", time.September},
	{"octubre", time.October},
	{"noviembre", time.November},
	{"diciembre", time.December},
}

// numericPeriod matches "M/YYYY" and "YYYY-MM" style period references.
var numericPeriod = regexp.MustCompile(`\b(?:(0?[1-9]|1[0-2])/(20\d{2})|(20\d{2})-(0[1-9]|1[0-2]))\b`)

// Interpret extracts island, temporal and metric hints from a query.
//
// It never fails on malformed input: every token that matches no rule is
// ignored, and the zero Hints value is a valid result meaning "broad,
// unfiltered, no metric". "Canarias" alone names the archipelago, so it
// implies no single-island restriction.
func (e *Engine) Interpret(query string) Hints {
	lower := strings.ToLower(query)

	var h Hints

	// Island detection: case-insensitive substring match against the closed
	// set, in code order for deterministic output. Comparison queries can
	// match several islands; all matches are kept.
	for code := tourism.CodeTenerife; code <= tourism.CodeElHierro; code++ {
		name := tourism.IslandNames[code]
		if strings.Contains(lower, strings.ToLower(name)) {
			h.Islands = append(h.Islands, name)
		}
	}

	// Explicit year within the plausible range [DatasetEpochYear, now].
	maxYear := e.clock.Now().Year()
	for year := DatasetEpochYear; year <= maxYear; year++ {
		if strings.Contains(lower, strconv.Itoa(year)) {
			h.Year = year
			break
		}
	}

	// Spanish month names; first match wins.
	for _, m := range spanishMonths {
		if strings.Contains(lower, m.name) {
			h.Month = m.month
			break
		}
	}

	// Numeric period forms ("1/2025", "2025-01") as a fallback when the
	// query spells neither a month name nor a bare year.
	if h.Month == 0 {
		if match := numericPeriod.FindStringSubmatch(lower); match != nil {
			var monthStr, yearStr string
			if match[1] != "" {
				monthStr, yearStr = match[1], match[2]
			} else {
				yearStr, monthStr = match[3], match[4]
			}
			month, _ := strconv.Atoi(monthStr)
			year, _ := strconv.Atoi(yearStr)
			h.Month = time.Month(month)
			if h.Year == 0 && year >= DatasetEpochYear && year <= maxYear {
				h.Year = year
			}
		}
	}

	h.Metric = detectMetric(lower)
	return h
}
