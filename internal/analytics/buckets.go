package analytics

import (
	"sort"
	"time"

	"github.com/spec-kit/inquiry-console/internal/domain"
)

// Granularity selects the time-bucket layout.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"   // 30 trailing days
	GranularityWeekly  Granularity = "weekly"  // 12 trailing Monday-start weeks
	GranularityMonthly Granularity = "monthly" // 12 trailing calendar months
	GranularityCustom  Granularity = "custom"  // every day in an inclusive range
)

// BucketOptions parameterizes the aggregation.
type BucketOptions struct {
	Granularity Granularity
	Status      string // FilterAll or a concrete status
	CustomStart string // YYYY-MM-DD, required for custom
	CustomEnd   string
}

// BucketSeries is the chart-ready output: ordered labels with parallel
// answered/pending counts and the deduplicated record IDs per bucket for
// drill-down.
type BucketSeries struct {
	Labels   []string   `json:"labels"`
	Answered []int      `json:"answered"`
	Pending  []int      `json:"pending"`
	IDs      [][]string `json:"ids"`
}

type bucketWindow struct {
	label string
	start time.Time // zero for prefix-matched buckets
	end   time.Time
	day   string // date-string prefix for daily/custom
}

// Buckets groups records into time buckets anchored at now. A record lands in
// at most one bucket. Daily and custom buckets match by date-string prefix;
// weekly and monthly compare at day granularity against [start, end).
func Buckets(records []domain.Inquiry, opts BucketOptions, now time.Time) BucketSeries {
	windows := buildWindows(opts, now)
	series := BucketSeries{
		Labels:   make([]string, len(windows)),
		Answered: make([]int, len(windows)),
		Pending:  make([]int, len(windows)),
		IDs:      make([][]string, len(windows)),
	}
	seen := make([]map[string]struct{}, len(windows))
	for i, w := range windows {
		series.Labels[i] = w.label
		series.IDs[i] = []string{}
		seen[i] = make(map[string]struct{})
	}

	for _, q := range records {
		if opts.Status != "" && opts.Status != FilterAll && string(q.Status) != opts.Status {
			continue
		}
		idx := assignBucket(q, windows, now.Location())
		if idx < 0 {
			continue
		}
		if _, dup := seen[idx][q.ID]; !dup {
			seen[idx][q.ID] = struct{}{}
			series.IDs[idx] = append(series.IDs[idx], q.ID)
			if q.Answered() {
				series.Answered[idx]++
			} else {
				series.Pending[idx]++
			}
		}
	}
	return series
}

func buildWindows(opts BucketOptions, now time.Time) []bucketWindow {
	loc := now.Location()
	today := dateOnly(now)

	switch opts.Granularity {
	case GranularityWeekly:
		windows := make([]bucketWindow, 0, 12)
		current := mondayOf(today)
		for i := 11; i >= 0; i-- {
			start := current.AddDate(0, 0, -7*i)
			windows = append(windows, bucketWindow{
				label: start.Format("2006-01-02"),
				start: start,
				end:   start.AddDate(0, 0, 7),
			})
		}
		return windows
	case GranularityMonthly:
		windows := make([]bucketWindow, 0, 12)
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc)
		for i := 11; i >= 0; i-- {
			start := first.AddDate(0, -i, 0)
			windows = append(windows, bucketWindow{
				label: start.Format("2006-01"),
				start: start,
				end:   start.AddDate(0, 1, 0),
			})
		}
		return windows
	case GranularityCustom:
		start, err := time.ParseInLocation("2006-01-02", opts.CustomStart, loc)
		if err != nil {
			return nil
		}
		end, err := time.ParseInLocation("2006-01-02", opts.CustomEnd, loc)
		if err != nil || end.Before(start) {
			return nil
		}
		var windows []bucketWindow
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			label := day.Format("2006-01-02")
			windows = append(windows, bucketWindow{label: label, day: label})
		}
		return windows
	default: // daily
		windows := make([]bucketWindow, 0, 30)
		for i := 29; i >= 0; i-- {
			day := today.AddDate(0, 0, -i)
			label := day.Format("2006-01-02")
			windows = append(windows, bucketWindow{label: label, day: label})
		}
		return windows
	}
}

func assignBucket(q domain.Inquiry, windows []bucketWindow, loc *time.Location) int {
	if len(windows) == 0 {
		return -1
	}
	if windows[0].day != "" {
		// prefix match against the record's raw date string
		if len(q.CreatedAt) < 10 {
			return -1
		}
		prefix := q.CreatedAt[:10]
		for i, w := range windows {
			if w.day == prefix {
				return i
			}
		}
		return -1
	}

	created, ok := q.CreatedTime()
	if !ok {
		return -1
	}
	day := dateOnly(created.In(loc))
	for i, w := range windows {
		if !day.Before(w.start) && day.Before(w.end) {
			return i
		}
	}
	return -1
}

// DimensionCount is one drill-down row.
type DimensionCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// BucketDrilldown breaks a bucket's records down by the three dimensions.
type BucketDrilldown struct {
	ByCategory []DimensionCount `json:"by_category"`
	ByUserType []DimensionCount `json:"by_user_type"`
	ByCountry  []DimensionCount `json:"by_country"`
}

// Drilldown computes sub-counts for the records whose IDs belong to one
// bucket, deduplicated by record ID and sorted descending by count.
func Drilldown(records []domain.Inquiry, ids []string) BucketDrilldown {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	byCategory := map[string]int{}
	byUserType := map[string]int{}
	byCountry := map[string]int{}
	counted := make(map[string]struct{}, len(ids))
	for _, q := range records {
		if _, ok := wanted[q.ID]; !ok {
			continue
		}
		if _, dup := counted[q.ID]; dup {
			continue
		}
		counted[q.ID] = struct{}{}
		byCategory[string(q.Category)]++
		byUserType[string(q.UserType)]++
		byCountry[q.UserCountry]++
	}

	return BucketDrilldown{
		ByCategory: sortedCounts(byCategory),
		ByUserType: sortedCounts(byUserType),
		ByCountry:  sortedCounts(byCountry),
	}
}

func sortedCounts(counts map[string]int) []DimensionCount {
	out := make([]DimensionCount, 0, len(counts))
	for key, count := range counts {
		out = append(out, DimensionCount{Key: key, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func mondayOf(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return day.AddDate(0, 0, -offset)
}
