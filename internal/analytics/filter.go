package analytics

import (
	"strings"
	"time"

	"github.com/spec-kit/inquiry-console/internal/domain"
)

// FilterAll is the sentinel that disables an equality predicate.
const FilterAll = "all"

// SearchField selects which record field the free-text query runs against.
type SearchField string

const (
	SearchFieldAll      SearchField = "all"
	SearchFieldID       SearchField = "id"
	SearchFieldTitle    SearchField = "title"
	SearchFieldContent  SearchField = "content"
	SearchFieldUserID   SearchField = "user_id"
	SearchFieldUserName SearchField = "user_name"
	SearchFieldNickname SearchField = "user_nickname"
	SearchFieldEmail    SearchField = "user_email"
)

// DatePreset selects one of the fixed date windows.
type DatePreset string

const (
	PresetAll    DatePreset = "all"
	PresetToday  DatePreset = "today"
	PresetWeek   DatePreset = "week"
	PresetMonth  DatePreset = "month"
	PresetCustom DatePreset = "custom"
)

// Filter is the conjunction of all active list predicates. Status is held
// separately from the rest so summary counts can be taken before the status
// pass (see ApplyStatus).
type Filter struct {
	Query       string
	Field       SearchField
	Category    string
	UserType    string
	Country     string
	Preset      DatePreset
	CustomStart string // YYYY-MM-DD, inclusive
	CustomEnd   string // YYYY-MM-DD, inclusive
	Status      string
}

// Summary carries the tab counts computed on the pre-status-filtered set.
type Summary struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Answered int `json:"answered"`
}

// Apply evaluates every predicate except status. now anchors the relative
// date presets. Malformed record timestamps never match an active date
// window; no predicate errors on bad input.
func Apply(records []domain.Inquiry, f Filter, now time.Time) []domain.Inquiry {
	out := make([]domain.Inquiry, 0, len(records))
	for _, q := range records {
		if !matchesSearch(q, f.Field, f.Query) {
			continue
		}
		if f.Category != "" && f.Category != FilterAll && string(q.Category) != f.Category {
			continue
		}
		if f.UserType != "" && f.UserType != FilterAll && string(q.UserType) != f.UserType {
			continue
		}
		if f.Country != "" && f.Country != FilterAll && q.UserCountry != f.Country {
			continue
		}
		if !matchesDate(q, f, now) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// ApplyStatus is the final status pass over an already-filtered set.
func ApplyStatus(records []domain.Inquiry, status string) []domain.Inquiry {
	if status == "" || status == FilterAll {
		return records
	}
	out := make([]domain.Inquiry, 0, len(records))
	for _, q := range records {
		if string(q.Status) == status {
			out = append(out, q)
		}
	}
	return out
}

// Summarize counts the status partition of a record set.
func Summarize(records []domain.Inquiry) Summary {
	s := Summary{Total: len(records)}
	for _, q := range records {
		if q.Answered() {
			s.Answered++
		} else {
			s.Pending++
		}
	}
	return s
}

func matchesSearch(q domain.Inquiry, field SearchField, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	needle := strings.ToLower(query)

	switch field {
	case SearchFieldID:
		// IDs are opaque keys; substring matching them surfaces noise.
		return strings.ToLower(q.ID) == needle
	case SearchFieldTitle:
		return contains(q.Title, needle)
	case SearchFieldContent:
		return contains(q.Content, needle)
	case SearchFieldUserID:
		return contains(q.UserID, needle)
	case SearchFieldUserName:
		return contains(q.UserName, needle)
	case SearchFieldNickname:
		return contains(q.UserNickname, needle)
	case SearchFieldEmail:
		return contains(q.UserEmail, needle)
	default:
		return contains(q.Title, needle) ||
			contains(q.Content, needle) ||
			contains(q.UserID, needle) ||
			contains(q.UserName, needle) ||
			contains(q.UserNickname, needle) ||
			contains(q.UserEmail, needle)
	}
}

func contains(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}

func matchesDate(q domain.Inquiry, f Filter, now time.Time) bool {
	preset := f.Preset
	if preset == "" || preset == PresetAll {
		return true
	}

	created, ok := q.CreatedTime()
	if !ok {
		return false
	}
	created = created.In(now.Location())

	switch preset {
	case PresetToday:
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return !created.Before(midnight) && !created.After(now)
	case PresetWeek:
		return !created.Before(now.AddDate(0, 0, -7)) && !created.After(now)
	case PresetMonth:
		return !created.Before(now.AddDate(0, 0, -30)) && !created.After(now)
	case PresetCustom:
		return matchesCustomRange(created, f.CustomStart, f.CustomEnd, now.Location())
	default:
		return true
	}
}

func matchesCustomRange(created time.Time, start, end string, loc *time.Location) bool {
	if start != "" {
		if from, err := time.ParseInLocation("2006-01-02", start, loc); err == nil {
			if created.Before(from) {
				return false
			}
		}
	}
	if end != "" {
		if until, err := time.ParseInLocation("2006-01-02", end, loc); err == nil {
			// inclusive through end-of-day
			if created.After(until.Add(24*time.Hour - time.Second)) {
				return false
			}
		}
	}
	return true
}
