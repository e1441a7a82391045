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

func TestSendGroupCRUD(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemoryStore()
	repo := NewSendGroupRepository(ctx, store, zap.NewNop())

	group := domain.SendGroup{ID: "sg-1", Name: "VIP 수강생", MemberCount: 120, CreatedAt: "2026-08-01T00:00:00Z"}
	require.NoError(t, repo.Create(ctx, group))

	assert.ErrorIs(t, repo.Create(ctx, domain.SendGroup{ID: "sg-2", Name: "VIP 수강생"}), ErrDuplicateName)

	updated := group
	updated.MemberCount = 150
	require.NoError(t, repo.Update(ctx, updated))

	got, err := repo.GetByID(ctx, "sg-1")
	require.NoError(t, err)
	assert.Equal(t, 150, got.MemberCount)
	// creation time survives updates, modification time is stamped
	assert.Equal(t, "2026-08-01T00:00:00Z", got.CreatedAt)
	assert.NotEmpty(t, got.UpdatedAt)

	require.NoError(t, repo.Delete(ctx, "sg-1"))
	assert.ErrorIs(t, repo.Delete(ctx, "sg-1"), ErrNotFound)
}
