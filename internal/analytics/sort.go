package analytics

import (
	"sort"

	"github.com/spec-kit/inquiry-console/internal/domain"
)

// SortDirection orders ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortBy returns a new slice ordered by the given field key. Unrecognized
// keys return the input order unchanged. created_at compares as parsed time;
// everything else compares as its string value. Ties may reorder.
func SortBy(records []domain.Inquiry, field string, dir SortDirection) []domain.Inquiry {
	out := make([]domain.Inquiry, len(records))
	copy(out, records)

	less := lessFunc(field)
	if less == nil {
		return out
	}

	sort.Slice(out, func(i, j int) bool {
		if dir == SortDesc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(field string) func(a, b domain.Inquiry) bool {
	switch field {
	case "id":
		return func(a, b domain.Inquiry) bool { return a.ID < b.ID }
	case "category":
		return func(a, b domain.Inquiry) bool { return a.Category < b.Category }
	case "user_type":
		return func(a, b domain.Inquiry) bool { return a.UserType < b.UserType }
	case "user_id":
		return func(a, b domain.Inquiry) bool { return a.UserID < b.UserID }
	case "user_name":
		return func(a, b domain.Inquiry) bool { return a.UserName < b.UserName }
	case "user_email":
		return func(a, b domain.Inquiry) bool { return a.UserEmail < b.UserEmail }
	case "user_country":
		return func(a, b domain.Inquiry) bool { return a.UserCountry < b.UserCountry }
	case "title":
		return func(a, b domain.Inquiry) bool { return a.Title < b.Title }
	case "status":
		return func(a, b domain.Inquiry) bool { return a.Status < b.Status }
	case "created_at":
		return func(a, b domain.Inquiry) bool {
			at, aok := a.CreatedTime()
			bt, bok := b.CreatedTime()
			if !aok || !bok {
				// malformed timestamps sort after valid ones
				return aok && !bok
			}
			return at.Before(bt)
		}
	default:
		return nil
	}
}
