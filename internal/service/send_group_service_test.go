package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/inquiry-console/internal/persistence"
	"github.com/spec-kit/inquiry-console/internal/repository"
)

func newSendGroupService(t *testing.T) *SendGroupService {
	t.Helper()
	repo := repository.NewSendGroupRepository(context.Background(), persistence.NewMemoryStore(), zap.NewNop())
	return NewSendGroupService(repo, fixedClock)
}

func TestSendGroupServiceLifecycle(t *testing.T) {
	svc := newSendGroupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "   ", "", 10)
	requireDomainCode(t, err, "VALIDATION_FAILED")

	_, err = svc.Create(ctx, "VIP", "", -1)
	requireDomainCode(t, err, "VALIDATION_FAILED")

	group, err := svc.Create(ctx, "  VIP  ", " top spenders ", 120)
	require.NoError(t, err)
	assert.Equal(t, "VIP", group.Name)
	assert.Equal(t, "top spenders", group.Description)
	assert.NotEmpty(t, group.ID)
	assert.NotEmpty(t, group.CreatedAt)

	_, err = svc.Create(ctx, "VIP", "", 10)
	requireDomainCode(t, err, "CONFLICT")

	group.MemberCount = 140
	require.NoError(t, svc.Update(ctx, *group))
	got, err := svc.Get(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, 140, got.MemberCount)

	require.NoError(t, svc.Delete(ctx, group.ID))
	err = svc.Delete(ctx, group.ID)
	requireDomainCode(t, err, "NOT_FOUND")
	assert.Empty(t, svc.List(ctx))
}
