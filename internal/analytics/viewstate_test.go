package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/inquiry-console/internal/domain"
)

func TestViewStateTransitions(t *testing.T) {
	s := NewViewState()
	assert.Equal(t, FilterAll, s.Tab)
	assert.Equal(t, -1, s.SelectedBucket)

	s = s.WithPage(3)
	assert.Equal(t, 3, s.Page)

	// tab switch resets pagination
	s = s.WithTab(string(domain.StatusPending))
	assert.Equal(t, string(domain.StatusPending), s.Tab)
	assert.Equal(t, 0, s.Page)

	s = s.WithPage(2).WithPageSize(50)
	assert.Equal(t, 50, s.PageSize)
	assert.Equal(t, 0, s.Page)

	s = s.WithPageSize(-5)
	assert.Equal(t, 10, s.PageSize)
}

func TestViewStatePresetClearsCustomRange(t *testing.T) {
	s := NewViewState().WithCustomRange("2026-08-01", "2026-08-10")
	assert.Equal(t, PresetCustom, s.Preset)
	assert.Equal(t, "2026-08-01", s.CustomStart)

	s = s.WithPreset(PresetWeek)
	assert.Equal(t, PresetWeek, s.Preset)
	assert.Empty(t, s.CustomStart)
	assert.Empty(t, s.CustomEnd)
}

func TestViewStateGranularityClearsSelection(t *testing.T) {
	s := NewViewState().WithSelectedBucket(5)
	assert.Equal(t, 5, s.SelectedBucket)

	s = s.WithGranularity(GranularityWeekly)
	assert.Equal(t, GranularityWeekly, s.Granularity)
	assert.Equal(t, -1, s.SelectedBucket)

	s = s.WithSelectedBucket(-7)
	assert.Equal(t, -1, s.SelectedBucket)
}
