package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/inquiry-console/internal/domain"
)

func TestBucketsDaily(t *testing.T) {
	records := []domain.Inquiry{
		makeInquiry("today-1", domain.CategoryPayment, "2026-08-28T01:00:00Z", true),
		makeInquiry("today-2", domain.CategoryPayment, "2026-08-28T23:00:00Z", false),
		makeInquiry("edge", domain.CategoryPayment, "2026-07-30T00:00:00Z", false),
		makeInquiry("too-old", domain.CategoryPayment, "2026-07-29T23:59:59Z", false),
		makeInquiry("broken", domain.CategoryPayment, "bad", false),
	}

	series := Buckets(records, BucketOptions{Granularity: GranularityDaily, Status: FilterAll}, testNow)
	require.Len(t, series.Labels, 30)
	assert.Equal(t, "2026-07-30", series.Labels[0])
	assert.Equal(t, "2026-08-28", series.Labels[29])

	assert.Equal(t, 1, series.Answered[29])
	assert.Equal(t, 1, series.Pending[29])
	assert.ElementsMatch(t, []string{"today-1", "today-2"}, series.IDs[29])
	assert.Equal(t, []string{"edge"}, series.IDs[0])

	total := 0
	for i := range series.Labels {
		total += len(series.IDs[i])
	}
	assert.Equal(t, 3, total)
}

func TestBucketsDeduplicatesIDs(t *testing.T) {
	dup := makeInquiry("dup", domain.CategoryPayment, "2026-08-28T09:00:00Z", false)
	series := Buckets([]domain.Inquiry{dup, dup}, BucketOptions{Granularity: GranularityDaily, Status: FilterAll}, testNow)
	assert.Equal(t, []string{"dup"}, series.IDs[29])
	assert.Equal(t, 1, series.Pending[29])
}

func TestBucketsWeeklyStartsMonday(t *testing.T) {
	// 2026-08-28 is a Friday; the current week starts Monday 2026-08-24.
	series := Buckets(nil, BucketOptions{Granularity: GranularityWeekly, Status: FilterAll}, testNow)
	require.Len(t, series.Labels, 12)
	assert.Equal(t, "2026-08-24", series.Labels[11])
	assert.Equal(t, "2026-06-08", series.Labels[0])

	for _, label := range series.Labels {
		day, err := time.Parse("2006-01-02", label)
		require.NoError(t, err)
		assert.Equal(t, time.Monday, day.Weekday())
	}
}

func TestBucketsWeeklyAssignsWholeWeek(t *testing.T) {
	records := []domain.Inquiry{
		makeInquiry("mon", domain.CategoryPayment, "2026-08-24T00:00:00Z", false),
		makeInquiry("sun", domain.CategoryPayment, "2026-08-30T23:00:00Z", false),
		makeInquiry("prev", domain.CategoryPayment, "2026-08-23T12:00:00Z", false),
	}

	series := Buckets(records, BucketOptions{Granularity: GranularityWeekly, Status: FilterAll}, testNow)
	assert.ElementsMatch(t, []string{"mon", "sun"}, series.IDs[11])
	assert.Equal(t, []string{"prev"}, series.IDs[10])
}

func TestBucketsMonthly(t *testing.T) {
	records := []domain.Inquiry{
		makeInquiry("aug", domain.CategoryPayment, "2026-08-01T00:00:00Z", false),
		makeInquiry("sep-last-year", domain.CategoryPayment, "2025-09-30T23:00:00Z", false),
		makeInquiry("before-window", domain.CategoryPayment, "2025-08-31T10:00:00Z", false),
	}

	series := Buckets(records, BucketOptions{Granularity: GranularityMonthly, Status: FilterAll}, testNow)
	require.Len(t, series.Labels, 12)
	assert.Equal(t, "2025-09", series.Labels[0])
	assert.Equal(t, "2026-08", series.Labels[11])
	assert.Equal(t, []string{"aug"}, series.IDs[11])
	assert.Equal(t, []string{"sep-last-year"}, series.IDs[0])
	for i := 1; i < 11; i++ {
		assert.Empty(t, series.IDs[i])
	}
}

func TestBucketsCustomRange(t *testing.T) {
	records := []domain.Inquiry{
		makeInquiry("in", domain.CategoryPayment, "2026-08-02T12:00:00Z", false),
		makeInquiry("out", domain.CategoryPayment, "2026-08-05T12:00:00Z", false),
	}

	opts := BucketOptions{Granularity: GranularityCustom, Status: FilterAll, CustomStart: "2026-08-01", CustomEnd: "2026-08-03"}
	series := Buckets(records, opts, testNow)
	require.Equal(t, []string{"2026-08-01", "2026-08-02", "2026-08-03"}, series.Labels)
	assert.Equal(t, []string{"in"}, series.IDs[1])

	// reversed range yields no buckets
	reversed := Buckets(records, BucketOptions{Granularity: GranularityCustom, CustomStart: "2026-08-03", CustomEnd: "2026-08-01"}, testNow)
	assert.Empty(t, reversed.Labels)
}

func TestBucketsStatusFilter(t *testing.T) {
	records := []domain.Inquiry{
		makeInquiry("a", domain.CategoryPayment, "2026-08-28T09:00:00Z", true),
		makeInquiry("p", domain.CategoryPayment, "2026-08-28T10:00:00Z", false),
	}

	series := Buckets(records, BucketOptions{Granularity: GranularityDaily, Status: string(domain.StatusAnswered)}, testNow)
	assert.Equal(t, []string{"a"}, series.IDs[29])
	assert.Equal(t, 0, series.Pending[29])
}

func TestDrilldownSortedByCount(t *testing.T) {
	records := []domain.Inquiry{
		makeInquiry("1", domain.CategoryPayment, "2026-08-28T09:00:00Z", false),
		makeInquiry("2", domain.CategoryPayment, "2026-08-28T09:00:00Z", false),
		makeInquiry("3", domain.CategoryLearning, "2026-08-28T09:00:00Z", false),
		makeInquiry("ignored", domain.CategoryTest, "2026-08-28T09:00:00Z", false),
	}
	records[2].UserCountry = "VN"

	dd := Drilldown(records, []string{"1", "2", "3"})
	require.Len(t, dd.ByCategory, 2)
	assert.Equal(t, DimensionCount{Key: string(domain.CategoryPayment), Count: 2}, dd.ByCategory[0])
	assert.Equal(t, DimensionCount{Key: string(domain.CategoryLearning), Count: 1}, dd.ByCategory[1])

	require.Len(t, dd.ByCountry, 2)
	assert.Equal(t, "KR", dd.ByCountry[0].Key)
	assert.Equal(t, 2, dd.ByCountry[0].Count)
}
