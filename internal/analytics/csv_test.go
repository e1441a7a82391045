package analytics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/inquiry-console/internal/domain"
)

func TestExportCSVShape(t *testing.T) {
	q := makeInquiry("INQ-0001", domain.CategoryPayment, "2026-08-15T10:30:00Z", true)
	out := ExportCSV([]domain.Inquiry{q}, domain.LocaleEn)

	require.True(t, strings.HasPrefix(out, "\uFEFF"), "missing UTF-8 BOM")

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)

	header := strings.TrimPrefix(lines[0], "\uFEFF")
	assert.Len(t, strings.Split(header, ","), 15)
	assert.True(t, strings.HasPrefix(header, "ID,Category,"))

	row := strings.Split(lines[1], ",")
	require.Len(t, row, 15)
	assert.Equal(t, "INQ-0001", row[0])
	// dates are truncated to day precision
	assert.Equal(t, "2026-08-15", row[10])
}

func TestExportCSVQuotesFreeText(t *testing.T) {
	q := makeInquiry("INQ-0002", domain.CategoryPayment, "2026-08-15T10:30:00Z", false)
	q.Title = `He said "hi"`
	q.Content = "plain content"

	out := ExportCSV([]domain.Inquiry{q}, domain.LocaleKo)
	assert.Contains(t, out, `"He said ""hi"""`)
	assert.Contains(t, out, `"plain content"`)
	// identity columns stay unquoted
	assert.Contains(t, out, "INQ-0002,")
}

func TestExportCSVUnknownLocaleFallsBackToKorean(t *testing.T) {
	out := ExportCSV(nil, domain.Locale("fr"))
	assert.Contains(t, out, "카테고리")
}
