package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/inquiry-console/internal/config"
	"github.com/spec-kit/inquiry-console/internal/persistence"
	"github.com/spec-kit/inquiry-console/internal/repository"
)

func newAuthFixture(t *testing.T) (*AuthService, *persistence.MemoryStore) {
	t.Helper()
	store := persistence.NewMemoryStore()
	svc, err := NewAuthService(config.AuthConfig{
		JWTSecret:            "test-secret",
		SessionTTLMinutes:    60,
		AdminDefaultPassword: "admin",
		BcryptCost:           4,
	}, store, zap.NewNop())
	require.NoError(t, err)
	return svc, store
}

func TestLoginIssuesAndMirrorsToken(t *testing.T) {
	svc, store := newAuthFixture(t)
	ctx := context.Background()

	token, expiresAt, err := svc.Login(ctx, "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, AdminSubject, claims.Subject)

	stored, ok := store.Load(ctx, repository.KeyAuthToken)
	require.True(t, ok)
	assert.Equal(t, token, string(stored))

	svc.Logout(ctx)
	_, ok = store.Load(ctx, repository.KeyAuthToken)
	assert.False(t, ok)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, _, err := svc.Login(context.Background(), "wrong")
	requireDomainCode(t, err, "UNAUTHORIZED")
}
