package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.Load(ctx, "inquiries")
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, "inquiries", []byte(`[{"id":"INQ-1"}]`)))
	blob, ok := store.Load(ctx, "inquiries")
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"INQ-1"}]`, string(blob))

	require.NoError(t, store.Save(ctx, "inquiries", []byte(`[]`)))
	blob, _ = store.Load(ctx, "inquiries")
	assert.Equal(t, "[]", string(blob))

	require.NoError(t, store.Delete(ctx, "inquiries"))
	_, ok = store.Load(ctx, "inquiries")
	assert.False(t, ok)

	// deleting an absent key is not an error
	assert.NoError(t, store.Delete(ctx, "inquiries"))
}

func TestFileStoreRejectsPathTraversal(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	assert.Error(t, store.Save(ctx, "../escape", []byte("x")))
	_, ok := store.Load(ctx, "nested/key")
	assert.False(t, ok)
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	original := []byte(`{"a":1}`)
	require.NoError(t, store.Save(ctx, "k", original))
	original[0] = 'X'

	blob, ok := store.Load(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, string(blob))
}
