package repository

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/inquiry-console/internal/domain"
	"github.com/spec-kit/inquiry-console/internal/persistence"
)

// HistoryRepository stores completed send records, newest first.
type HistoryRepository interface {
	List(ctx context.Context) []domain.MailHistory
	Prepend(ctx context.Context, record domain.MailHistory)
}

type historyRepository struct {
	mu      sync.RWMutex
	store   persistence.BlobStore
	logger  *zap.Logger
	records []domain.MailHistory
}

// NewHistoryRepository loads the manual_mail_history blob.
func NewHistoryRepository(ctx context.Context, store persistence.BlobStore, logger *zap.Logger) HistoryRepository {
	repo := &historyRepository{store: store, logger: logger}

	blob, ok := store.Load(ctx, KeyManualHistory)
	if !ok {
		return repo
	}
	var records []domain.MailHistory
	if err := json.Unmarshal(blob, &records); err != nil {
		logger.Warn("stored mail history unreadable", zap.Error(err))
		return repo
	}
	repo.records = records
	return repo
}

func (r *historyRepository) List(_ context.Context) []domain.MailHistory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.MailHistory, len(r.records))
	copy(out, r.records)
	return out
}

func (r *historyRepository) Prepend(ctx context.Context, record domain.MailHistory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append([]domain.MailHistory{record}, r.records...)
	r.persist(ctx)
}

func (r *historyRepository) persist(ctx context.Context) {
	blob, err := json.Marshal(r.records)
	if err != nil {
		r.logger.Warn("marshal mail history failed", zap.Error(err))
		return
	}
	if err := r.store.Save(ctx, KeyManualHistory, blob); err != nil {
		r.logger.Warn("storage write failed", zap.String("key", KeyManualHistory), zap.Error(err))
	}
}
