package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/inquiry-console/internal/domain"
)

func TestSeverityFor(t *testing.T) {
	assert.Equal(t, SeverityLow, SeverityFor(0))
	assert.Equal(t, SeverityLow, SeverityFor(2))
	assert.Equal(t, SeverityMedium, SeverityFor(3))
	assert.Equal(t, SeverityMedium, SeverityFor(4))
	assert.Equal(t, SeverityHigh, SeverityFor(5))
	assert.Equal(t, SeverityHigh, SeverityFor(42))
}

func TestHourlyCountsUTCHours(t *testing.T) {
	records := []domain.Inquiry{
		makeInquiry("a", domain.CategoryPayment, "2026-08-28T09:15:00Z", false),
		makeInquiry("b", domain.CategoryPayment, "2026-08-28T09:45:00Z", false),
		// +09:00 offset lands in UTC hour 0
		makeInquiry("c", domain.CategoryPayment, "2026-08-28T09:30:00+09:00", false),
	}

	grid, err := Hourly(records, BucketOptions{Granularity: GranularityDaily}, HourlyFilter{}, testNow)
	require.NoError(t, err)
	require.Len(t, grid.Cells, 30)

	today := grid.Cells[29]
	assert.Equal(t, 2, today[9].Count)
	assert.Equal(t, 1, today[0].Count)
	assert.Equal(t, SeverityLow, today[9].Severity)
}

func TestHourlySingleDimensionFilter(t *testing.T) {
	records := []domain.Inquiry{
		makeInquiry("a", domain.CategoryPayment, "2026-08-28T09:15:00Z", false),
		makeInquiry("b", domain.CategoryLearning, "2026-08-28T09:45:00Z", false),
	}

	grid, err := Hourly(records, BucketOptions{Granularity: GranularityDaily}, HourlyFilter{Category: string(domain.CategoryPayment)}, testNow)
	require.NoError(t, err)
	assert.Equal(t, 1, grid.Cells[29][9].Count)
}

func TestHourlyRejectsMultipleDimensions(t *testing.T) {
	_, err := Hourly(nil, BucketOptions{Granularity: GranularityDaily}, HourlyFilter{Category: "Payment", Country: "KR"}, testNow)
	assert.ErrorIs(t, err, ErrMultipleDimensions)

	// "all" placeholders do not count as an active dimension
	_, err = Hourly(nil, BucketOptions{Granularity: GranularityDaily}, HourlyFilter{Category: "Payment", Country: FilterAll}, testNow)
	assert.NoError(t, err)
}
