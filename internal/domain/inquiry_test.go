package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatedTimeAcceptsCommonLayouts(t *testing.T) {
	cases := []string{
		"2026-08-15T10:30:00Z",
		"2026-08-15T10:30:00+09:00",
		"2026-08-15T10:30:00",
		"2026-08-15 10:30:00",
		"2026-08-15",
	}
	for _, value := range cases {
		q := Inquiry{CreatedAt: value}
		ts, ok := q.CreatedTime()
		require.True(t, ok, "layout %q", value)
		assert.Equal(t, 2026, ts.Year())
	}

	_, ok := Inquiry{CreatedAt: "15/08/2026"}.CreatedTime()
	assert.False(t, ok)
}

func TestAnsweredTimeEmptyIsAbsent(t *testing.T) {
	_, ok := Inquiry{}.AnsweredTime()
	assert.False(t, ok)

	ts, ok := Inquiry{AnsweredAt: "2026-08-15T12:00:00Z"}.AnsweredTime()
	require.True(t, ok)
	assert.Equal(t, time.August, ts.Month())
}

func TestDeriveHistoryStatus(t *testing.T) {
	assert.Equal(t, MailHistorySuccess, DeriveHistoryStatus(5, 0))
	assert.Equal(t, MailHistorySuccess, DeriveHistoryStatus(0, 0))
	assert.Equal(t, MailHistoryFailed, DeriveHistoryStatus(0, 3))
	assert.Equal(t, MailHistoryPartial, DeriveHistoryStatus(2, 1))
}
