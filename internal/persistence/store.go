package persistence

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/inquiry-console/internal/config"
)

// BlobStore is the string-keyed JSON blob storage the console persists into.
// It mirrors the storage contract of the original console: whole-value reads
// and writes per key, no partial updates, no transactions.
//
// Load returns false when the key is absent or the backend is unreachable;
// callers fall back to their seed/empty state. Save errors are logged by the
// repositories and never surfaced further.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, bool)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close()
}

// Open constructs the blob store selected by configuration.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (BlobStore, error) {
	switch cfg.Storage.Driver {
	case "file", "":
		return NewFileStore(cfg.Storage.DataDir, logger)
	case "redis":
		return NewRedisStore(cfg.Redis, logger), nil
	case "postgres":
		return NewPostgresStore(ctx, cfg.Postgres, logger)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// MemoryStore keeps blobs in a map. Used in tests and as a throwaway backend.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Load returns the stored blob for key.
func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.blobs[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, true
}

// Save stores the blob under key.
func (s *MemoryStore) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	blob := make([]byte, len(value))
	copy(blob, value)
	s.blobs[key] = blob
	return nil
}

// Delete removes the key.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() {}
