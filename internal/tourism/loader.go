package tourism

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// weekDateLayout is the on-disk date format for week_start_date.
const weekDateLayout = "2006-01-02"

// ErrNoDataset indicates the dataset file was missing or unreadable.
var ErrNoDataset = errors.New("dataset file not available")

// rawRecord mirrors the JSON dataset schema before domain conversion.
// Dates arrive as strings and are parsed into time.Time here, following
// the raw-to-domain transform split used for ingest records elsewhere.
type rawRecord struct {
	IslandCode              int     `json:"island_code"`
	IslandName              string  `json:"island_name"`
	WeekStartDate           string  `json:"week_start_date"`
	TotalTourists           int     `json:"total_tourists"`
	InternationalPassengers int     `json:"international_passengers"`
	DomesticPassengers      int     `json:"domestic_passengers"`
	TopOriginCountry        string  `json:"top_origin_country"`
	OccupancyRate           float64 `json:"occupancy_rate"`
	AverageDailyRate        float64 `json:"average_daily_rate"`
	Revenue                 float64 `json:"revenue"`
	Expenses                float64 `json:"expenses"`
	AverageStayDuration     float64 `json:"average_stay_duration"`
	Events                  string  `json:"events"`
	EventAttendance         int     `json:"event_attendance"`
}

// Load reads and parses the JSON dataset file into records, preserving file
// order. Called once at startup; any parse or domain validation failure is
// fatal for the service and is returned here, never per request.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoDataset, err)
	}

	var raws []rawRecord
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}

	records := make([]Record, 0, len(raws))
	for i, raw := range raws {
		rec, err := raw.toRecord()
		if err != nil {
			return nil, fmt.Errorf("dataset record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadStore is the startup convenience: Load followed by NewStore, so
// domain validation and the empty-dataset check happen in one call.
func LoadStore(path string) (*Store, error) {
	records, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewStore(records)
}

func (raw rawRecord) toRecord() (Record, error) {
	week, err := time.Parse(weekDateLayout, raw.WeekStartDate)
	if err != nil {
		return Record{}, fmt.Errorf("parsing week_start_date %q: %w", raw.WeekStartDate, err)
	}

	rec := Record{
		IslandCode:              raw.IslandCode,
		IslandName:              raw.IslandName,
		WeekStartDate:           week,
		TotalTourists:           raw.TotalTourists,
		InternationalPassengers: raw.InternationalPassengers,
		DomesticPassengers:      raw.DomesticPassengers,
		TopOriginCountry:        raw.TopOriginCountry,
		OccupancyRate:           raw.OccupancyRate,
		AverageDailyRate:        raw.AverageDailyRate,
		Revenue:                 raw.Revenue,
		Expenses:                raw.Expenses,
		AverageStayDuration:     raw.AverageStayDuration,
		Events:                  raw.Events,
		EventAttendance:         raw.EventAttendance,
	}
	if err := rec.Validate(); err != nil {
		return Record{}, err
	}
	return rec, nil
}
