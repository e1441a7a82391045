package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/spec-kit/inquiry-console/internal/domain"
)

// ProcessingPeriod restricts the processing-time aggregation window.
type ProcessingPeriod string

const (
	PeriodToday  ProcessingPeriod = "today"
	Period7Days  ProcessingPeriod = "7days"
	Period30Days ProcessingPeriod = "30days"
)

// ResponderStat is the per-answerer resolution statistic within a category.
type ResponderStat struct {
	AnswererID   string  `json:"answerer_id"`
	Count        int     `json:"count"`
	AverageHours float64 `json:"average_hours"`
	Formatted    string  `json:"formatted"`
}

// CategoryProcessing aggregates resolution time for one category. Categories
// with no answered records in the period are omitted entirely.
type CategoryProcessing struct {
	Category     domain.InquiryCategory `json:"category"`
	Count        int                    `json:"count"`
	AverageHours float64                `json:"average_hours"`
	Formatted    string                 `json:"formatted"`
	Responders   []ResponderStat        `json:"responders"`
}

// ProcessingTime computes per-category, per-responder average resolution time
// (answered_at - created_at, in hours) over answered records created within
// the period.
func ProcessingTime(records []domain.Inquiry, period ProcessingPeriod, now time.Time) []CategoryProcessing {
	cutoff := periodCutoff(period, now)

	type acc struct {
		count int
		hours float64
	}
	byCategory := map[domain.InquiryCategory]*acc{}
	byResponder := map[domain.InquiryCategory]map[string]*acc{}

	for _, q := range records {
		if !q.Answered() {
			continue
		}
		created, ok := q.CreatedTime()
		if !ok {
			continue
		}
		created = created.In(now.Location())
		if created.Before(cutoff) || created.After(now) {
			continue
		}
		answered, ok := q.AnsweredTime()
		if !ok {
			continue
		}
		hours := answered.Sub(created).Hours()
		if hours < 0 {
			continue
		}

		if byCategory[q.Category] == nil {
			byCategory[q.Category] = &acc{}
			byResponder[q.Category] = map[string]*acc{}
		}
		byCategory[q.Category].count++
		byCategory[q.Category].hours += hours

		if byResponder[q.Category][q.AnswererID] == nil {
			byResponder[q.Category][q.AnswererID] = &acc{}
		}
		byResponder[q.Category][q.AnswererID].count++
		byResponder[q.Category][q.AnswererID].hours += hours
	}

	out := make([]CategoryProcessing, 0, len(byCategory))
	for _, category := range domain.Categories() {
		total, ok := byCategory[category]
		if !ok || total.count == 0 {
			continue
		}
		avg := total.hours / float64(total.count)
		entry := CategoryProcessing{
			Category:     category,
			Count:        total.count,
			AverageHours: avg,
			Formatted:    FormatDuration(avg),
		}
		for answerer, stat := range byResponder[category] {
			entry.Responders = append(entry.Responders, ResponderStat{
				AnswererID:   answerer,
				Count:        stat.count,
				AverageHours: stat.hours / float64(stat.count),
				Formatted:    FormatDuration(stat.hours / float64(stat.count)),
			})
		}
		sort.Slice(entry.Responders, func(i, j int) bool {
			return entry.Responders[i].AnswererID < entry.Responders[j].AnswererID
		})
		out = append(out, entry)
	}
	return out
}

func periodCutoff(period ProcessingPeriod, now time.Time) time.Time {
	switch period {
	case PeriodToday:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case Period30Days:
		return now.AddDate(0, 0, -30)
	default:
		return now.AddDate(0, 0, -7)
	}
}

// FormatDuration renders a resolution time given in hours:
// under one hour as minutes, under a day as hours+minutes, and from one day
// up as days+hours. Zero remainders are omitted.
func FormatDuration(hours float64) string {
	if hours < 0 {
		hours = 0
	}
	totalMinutes := int(math.Round(hours * 60))

	if totalMinutes < 60 {
		return fmt.Sprintf("%d분", totalMinutes)
	}
	if totalMinutes < 24*60 {
		h := totalMinutes / 60
		m := totalMinutes % 60
		if m == 0 {
			return fmt.Sprintf("%d시간", h)
		}
		return fmt.Sprintf("%d시간 %d분", h, m)
	}
	totalHours := totalMinutes / 60
	d := totalHours / 24
	h := totalHours % 24
	if h == 0 {
		return fmt.Sprintf("%d일", d)
	}
	return fmt.Sprintf("%d일 %d시간", d, h)
}
