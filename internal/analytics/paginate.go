package analytics

import "github.com/spec-kit/inquiry-console/internal/domain"

// Page returns the zero-based page slice [page*size, page*size+size).
// Out-of-range pages yield an empty slice.
func Page(records []domain.Inquiry, page, size int) []domain.Inquiry {
	if page < 0 || size <= 0 {
		return []domain.Inquiry{}
	}
	start := page * size
	if start >= len(records) {
		return []domain.Inquiry{}
	}
	end := start + size
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// PageCount reports how many pages a record set spans.
func PageCount(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
