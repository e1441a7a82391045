package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/inquiry-console/internal/persistence"
)

func TestAutoSendDefaultsToEnabled(t *testing.T) {
	ctx := context.Background()
	repo := NewAutoSendRepository(ctx, persistence.NewMemoryStore(), zap.NewNop())

	assert.True(t, repo.IsEnabled(ctx, "g-1", "t-1"))
}

func TestAutoSendToggleSurvivesReload(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemoryStore()
	repo := NewAutoSendRepository(ctx, store, zap.NewNop())

	repo.SetEnabled(ctx, "g-1", "t-1", false)
	assert.False(t, repo.IsEnabled(ctx, "g-1", "t-1"))
	assert.True(t, repo.IsEnabled(ctx, "g-1", "t-other"))

	reloaded := NewAutoSendRepository(ctx, store, zap.NewNop())
	assert.False(t, reloaded.IsEnabled(ctx, "g-1", "t-1"))

	repo.SetEnabled(ctx, "g-1", "t-1", true)
	assert.True(t, repo.IsEnabled(ctx, "g-1", "t-1"))
	require.Len(t, repo.List(ctx), 1)
}
