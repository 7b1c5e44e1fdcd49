// Package tourism defines the weekly tourism record model and the immutable
// in-memory store the retrieval pipeline reads from.
//
// Records are produced once at startup by the dataset loader (see loader.go)
// and never mutated afterwards, so the store is safe for unsynchronized
// concurrent reads across requests.
package tourism

import (
	"errors"
	"fmt"
	"time"
)

// Island codes, matching the numbering used across the Canary Islands
// statistics datasets (1 = Tenerife .. 7 = El Hierro).
const (
	CodeTenerife      = 1
	CodeGranCanaria   = 2
	CodeLanzarote     = 3
	CodeFuerteventura = 4
	CodeLaPalma       = 5
	CodeLaGomera      = 6
	CodeElHierro      = 7
)

// IslandNames maps island codes to their canonical names. This is the closed
// set of valid islands; records naming anything else are rejected at load.
var IslandNames = map[int]string{
	CodeTenerife:      "Tenerife",
	CodeGranCanaria:   "Gran Canaria",
	CodeLanzarote:     "Lanzarote",
	CodeFuerteventura: "Fuerteventura",
	CodeLaPalma:       "La Palma",
	CodeLaGomera:      "La Gomera",
	CodeElHierro:      "El Hierro",
}

// Sentinel errors for record validation.
var (
	ErrUnknownIsland    = errors.New("unknown island")
	ErrInvalidOccupancy = errors.New("invalid occupancy rate")
	ErrNegativeValue    = errors.New("negative value")
	ErrZeroWeekStart    = errors.New("missing week start date")
)

// Record is one island-week tourism statistics entry.
//
// OccupancyRate is stored as a fraction in [0, 1]; the renderer converts to
// a percentage for display. Monetary amounts are EUR. Records are treated as
// immutable after construction.
type Record struct {
	IslandCode int    `json:"island_code"`
	IslandName string `json:"island_name"`

	// WeekStartDate is the first day of the ISO week this record covers.
	WeekStartDate time.Time `json:"week_start_date"`

	TotalTourists           int `json:"total_tourists"`
	InternationalPassengers int `json:"international_passengers"`
	DomesticPassengers      int `json:"domestic_passengers"`

	// TopOriginCountry may be empty when the dataset has no breakdown.
	TopOriginCountry string `json:"top_origin_country,omitempty"`

	OccupancyRate       float64 `json:"occupancy_rate"`
	AverageDailyRate    float64 `json:"average_daily_rate"`
	Revenue             float64 `json:"revenue"`
	Expenses            float64 `json:"expenses"`
	AverageStayDuration float64 `json:"average_stay_duration"`

	// Events is an optional free-text event name for the week.
	Events          string `json:"events,omitempty"`
	EventAttendance int    `json:"event_attendance,omitempty"`
}

// Validate checks the domain values of a record. Field types are the
// loader's concern; this enforces the closed island set, the occupancy
// representation, and non-negativity.
//
// InternationalPassengers + DomesticPassengers is NOT required to equal
// TotalTourists: the dataset sources count them independently.
func (r Record) Validate() error {
	name, ok := IslandNames[r.IslandCode]
	if !ok || name != r.IslandName {
		return fmt.Errorf("%w: code=%d name=%q", ErrUnknownIsland, r.IslandCode, r.IslandName)
	}
	if r.WeekStartDate.IsZero() {
		return fmt.Errorf("%w: island %s", ErrZeroWeekStart, r.IslandName)
	}
	if r.OccupancyRate < 0 || r.OccupancyRate > 1 {
		return fmt.Errorf("%w: %.4f not in [0, 1] (stored as fraction, not percentage)",
			ErrInvalidOccupancy, r.OccupancyRate)
	}
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"total_tourists", float64(r.TotalTourists)},
		{"international_passengers", float64(r.InternationalPassengers)},
		{"domestic_passengers", float64(r.DomesticPassengers)},
		{"average_daily_rate", r.AverageDailyRate},
		{"revenue", r.Revenue},
		{"expenses", r.Expenses},
		{"average_stay_duration", r.AverageStayDuration},
		{"event_attendance", float64(r.EventAttendance)},
	} {
		if v.value < 0 {
			return fmt.Errorf("%w: %s=%v", ErrNegativeValue, v.name, v.value)
		}
	}
	return nil
}

// Week returns the record's week start formatted as YYYY-MM-DD,
// the format used in context blocks and logs.
func (r Record) Week() string {
	return r.WeekStartDate.Format("2006-01-02")
}
