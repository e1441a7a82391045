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

func TestTemplateContentSetGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewTemplateContentRepository(ctx, persistence.NewMemoryStore(), zap.NewNop())

	content := domain.TemplateContent{
		GroupID:    "g-1",
		TemplateID: "t-1",
		Title:      domain.LocalizedText{Ko: "제목", En: "Subject", Vi: "Chủ đề"},
		Content:    domain.NewLocalizedText("본문"),
	}
	repo.Set(ctx, content)

	got, err := repo.Get(ctx, "g-1", "t-1")
	require.NoError(t, err)
	assert.Equal(t, "Subject", got.Title.En)

	content.Title = domain.NewLocalizedText("바뀐 제목")
	repo.Set(ctx, content)
	got, err = repo.Get(ctx, "g-1", "t-1")
	require.NoError(t, err)
	assert.Equal(t, "바뀐 제목", got.Title.Ko)

	repo.Delete(ctx, "g-1", "t-1")
	_, err = repo.Get(ctx, "g-1", "t-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTemplateContentLegacyPlainStrings(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemoryStore()
	legacy := `[{"groupId":"g-1","templateId":"t-1","title":"Welcome","content":"Hello there"}]`
	require.NoError(t, store.Save(ctx, KeyMailTemplates, []byte(legacy)))

	repo := NewTemplateContentRepository(ctx, store, zap.NewNop())
	got, err := repo.Get(ctx, "g-1", "t-1")
	require.NoError(t, err)

	assert.Equal(t, "Welcome", got.Title.Ko)
	assert.Equal(t, "Welcome", got.Title.En)
	assert.Equal(t, "Hello there", got.Content.Vi)
}
