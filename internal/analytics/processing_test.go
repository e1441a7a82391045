package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/inquiry-console/internal/domain"
)

func answeredInquiry(id string, category domain.InquiryCategory, createdAt, answeredAt, answerer string) domain.Inquiry {
	q := makeInquiry(id, category, createdAt, false)
	q.Status = domain.StatusAnswered
	q.AnswerContent = "answer"
	q.AnswererID = answerer
	q.AnsweredAt = answeredAt
	return q
}

func TestProcessingTimeAverages(t *testing.T) {
	records := []domain.Inquiry{
		// payment: 2h and 4h, avg 3h
		answeredInquiry("p1", domain.CategoryPayment, "2026-08-27T10:00:00Z", "2026-08-27T12:00:00Z", "admin-a"),
		answeredInquiry("p2", domain.CategoryPayment, "2026-08-26T10:00:00Z", "2026-08-26T14:00:00Z", "admin-b"),
		// learning: 30 minutes
		answeredInquiry("l1", domain.CategoryLearning, "2026-08-27T10:00:00Z", "2026-08-27T10:30:00Z", "admin-a"),
		// pending records never count
		makeInquiry("pending", domain.CategoryPayment, "2026-08-27T10:00:00Z", false),
	}

	stats := ProcessingTime(records, Period7Days, testNow)
	require.Len(t, stats, 2)

	var payment, learning CategoryProcessing
	for _, s := range stats {
		switch s.Category {
		case domain.CategoryPayment:
			payment = s
		case domain.CategoryLearning:
			learning = s
		}
	}

	assert.Equal(t, 2, payment.Count)
	assert.InDelta(t, 3.0, payment.AverageHours, 1e-9)
	assert.Equal(t, "3시간", payment.Formatted)
	require.Len(t, payment.Responders, 2)
	assert.Equal(t, "admin-a", payment.Responders[0].AnswererID)
	assert.Equal(t, "2시간", payment.Responders[0].Formatted)
	assert.Equal(t, "admin-b", payment.Responders[1].AnswererID)
	assert.Equal(t, "4시간", payment.Responders[1].Formatted)

	assert.Equal(t, 1, learning.Count)
	assert.Equal(t, "30분", learning.Formatted)
}

func TestProcessingTimePeriodCutoff(t *testing.T) {
	records := []domain.Inquiry{
		answeredInquiry("today", domain.CategoryPayment, "2026-08-28T01:00:00Z", "2026-08-28T02:00:00Z", "admin-a"),
		answeredInquiry("old", domain.CategoryPayment, "2026-08-20T01:00:00Z", "2026-08-20T02:00:00Z", "admin-a"),
	}

	today := ProcessingTime(records, PeriodToday, testNow)
	require.Len(t, today, 1)
	assert.Equal(t, 1, today[0].Count)

	month := ProcessingTime(records, Period30Days, testNow)
	require.Len(t, month, 1)
	assert.Equal(t, 2, month[0].Count)
}

func TestProcessingTimeSkipsNegativeSpans(t *testing.T) {
	records := []domain.Inquiry{
		answeredInquiry("backwards", domain.CategoryPayment, "2026-08-27T10:00:00Z", "2026-08-27T09:00:00Z", "admin-a"),
	}
	assert.Empty(t, ProcessingTime(records, Period7Days, testNow))
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{0, "0분"},
		{0.5, "30분"},
		{1, "1시간"},
		{1.5, "1시간 30분"},
		{23.983333, "23시간 59분"},
		{24, "1일"},
		{50, "2일 2시간"},
		{-3, "0분"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatDuration(tc.hours), "hours=%v", tc.hours)
	}
}

func TestPeriodCutoffDefaultsToWeek(t *testing.T) {
	cutoff := periodCutoff(ProcessingPeriod("unknown"), testNow)
	assert.Equal(t, testNow.AddDate(0, 0, -7), cutoff)
	assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), periodCutoff(PeriodToday, testNow))
}
