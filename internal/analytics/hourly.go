package analytics

import (
	"errors"
	"time"

	"github.com/spec-kit/inquiry-console/internal/domain"
)

// Severity tiers for the hourly heat map. Thresholds are fixed constants,
// not derived from the data distribution.
type Severity string

const (
	SeverityLow    Severity = "low"    // <= 2
	SeverityMedium Severity = "medium" // 3..4
	SeverityHigh   Severity = "high"   // >= 5
)

// SeverityFor classifies a cell count.
func SeverityFor(count int) Severity {
	switch {
	case count >= 5:
		return SeverityHigh
	case count >= 3:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// HourlyFilter narrows the hourly distribution by at most one dimension.
type HourlyFilter struct {
	Category string
	UserType string
	Country  string
}

// ErrMultipleDimensions is returned when more than one drill-down dimension
// is active; the console allows only one at a time.
var ErrMultipleDimensions = errors.New("only one of category, user_type, country may be filtered")

func (f HourlyFilter) validate() error {
	active := 0
	for _, v := range []string{f.Category, f.UserType, f.Country} {
		if v != "" && v != FilterAll {
			active++
		}
	}
	if active > 1 {
		return ErrMultipleDimensions
	}
	return nil
}

func (f HourlyFilter) matches(q domain.Inquiry) bool {
	if f.Category != "" && f.Category != FilterAll && string(q.Category) != f.Category {
		return false
	}
	if f.UserType != "" && f.UserType != FilterAll && string(q.UserType) != f.UserType {
		return false
	}
	if f.Country != "" && f.Country != FilterAll && q.UserCountry != f.Country {
		return false
	}
	return true
}

// HourlyCell is one (bucket, hour) grid cell.
type HourlyCell struct {
	Count    int      `json:"count"`
	Severity Severity `json:"severity"`
}

// HourlyGrid crosses the period buckets with hour-of-day 0..23 (UTC).
type HourlyGrid struct {
	Labels []string         `json:"labels"`
	Cells  [][24]HourlyCell `json:"cells"` // one row of 24 cells per label
}

// Hourly groups records by UTC hour-of-day crossed with the chosen period
// granularity, optionally narrowed to one dimension value.
func Hourly(records []domain.Inquiry, opts BucketOptions, filter HourlyFilter, now time.Time) (HourlyGrid, error) {
	if err := filter.validate(); err != nil {
		return HourlyGrid{}, err
	}

	windows := buildWindows(opts, now)
	grid := HourlyGrid{
		Labels: make([]string, len(windows)),
		Cells:  make([][24]HourlyCell, len(windows)),
	}
	for i, w := range windows {
		grid.Labels[i] = w.label
	}

	for _, q := range records {
		if !filter.matches(q) {
			continue
		}
		idx := assignBucket(q, windows, now.Location())
		if idx < 0 {
			continue
		}
		created, ok := q.CreatedTime()
		if !ok {
			continue
		}
		hour := created.UTC().Hour()
		grid.Cells[idx][hour].Count++
	}

	for i := range grid.Cells {
		for h := 0; h < 24; h++ {
			grid.Cells[i][h].Severity = SeverityFor(grid.Cells[i][h].Count)
		}
	}
	return grid, nil
}
