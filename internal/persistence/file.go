package persistence

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"

	"go.uber.org/zap"
)

var fileKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// FileStore persists each key as one JSON file in a data directory. It is the
// default driver and the closest analogue of the original console's
// per-key blob storage.
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dir string, logger *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

// Load reads the blob for key. Missing files report absence, not an error.
func (s *FileStore) Load(_ context.Context, key string) ([]byte, bool) {
	path, err := s.pathFor(key)
	if err != nil {
		s.logger.Warn("invalid storage key", zap.String("key", key))
		return nil, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("storage read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

// Save writes the blob atomically via a temp file rename.
func (s *FileStore) Save(_ context.Context, key string, value []byte) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Delete removes the key's file if it exists.
func (s *FileStore) Delete(_ context.Context, key string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Close is a no-op.
func (s *FileStore) Close() {}

func (s *FileStore) pathFor(key string) (string, error) {
	if !fileKeyPattern.MatchString(key) {
		return "", errors.New("storage key contains invalid characters")
	}
	return filepath.Join(s.dir, key+".json"), nil
}
