package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/inquiry-console/internal/domain"
	"github.com/spec-kit/inquiry-console/internal/persistence"
)

func TestHistoryPrependKeepsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemoryStore()
	repo := NewHistoryRepository(ctx, store, zap.NewNop())

	repo.Prepend(ctx, domain.MailHistory{ID: "h-1"})
	repo.Prepend(ctx, domain.MailHistory{ID: "h-2"})
	repo.Prepend(ctx, domain.MailHistory{ID: "h-3"})

	records := repo.List(ctx)
	require.Len(t, records, 3)
	assert.Equal(t, "h-3", records[0].ID)
	assert.Equal(t, "h-1", records[2].ID)

	reloaded := NewHistoryRepository(ctx, store, zap.NewNop())
	assert.Equal(t, records, reloaded.List(ctx))
}
