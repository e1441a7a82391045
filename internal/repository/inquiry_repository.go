package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/inquiry-console/internal/domain"
	"github.com/spec-kit/inquiry-console/internal/persistence"
)

// InquiryRepository owns the in-memory inquiry list. The loaded state is
// authoritative for the whole session; every mutation is mirrored back to
// the blob store fire-and-forget.
type InquiryRepository interface {
	List(ctx context.Context) []domain.Inquiry
	GetByID(ctx context.Context, id string) (*domain.Inquiry, error)
	Answer(ctx context.Context, id, content, answererID string, now time.Time) (*domain.Inquiry, error)
	Replace(ctx context.Context, records []domain.Inquiry)
}

type inquiryRepository struct {
	mu      sync.RWMutex
	store   persistence.BlobStore
	logger  *zap.Logger
	records []domain.Inquiry
}

// NewInquiryRepository loads the inquiries blob, falling back to the seed
// dataset when the key is absent or unreadable.
func NewInquiryRepository(ctx context.Context, store persistence.BlobStore, logger *zap.Logger) InquiryRepository {
	repo := &inquiryRepository{store: store, logger: logger}

	blob, ok := store.Load(ctx, KeyInquiries)
	if !ok {
		logger.Info("no stored inquiries; using seed dataset")
		repo.records = seedInquiries()
		repo.persist(ctx)
		return repo
	}

	var records []domain.Inquiry
	if err := json.Unmarshal(blob, &records); err != nil {
		logger.Warn("stored inquiries unreadable; using seed dataset", zap.Error(err))
		repo.records = seedInquiries()
		return repo
	}
	repo.records = records
	return repo
}

func (r *inquiryRepository) List(_ context.Context) []domain.Inquiry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Inquiry, len(r.records))
	copy(out, r.records)
	return out
}

func (r *inquiryRepository) GetByID(_ context.Context, id string) (*domain.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.records {
		if r.records[i].ID == id {
			q := r.records[i]
			return &q, nil
		}
	}
	return nil, ErrNotFound
}

// Answer performs the one-way Pending -> Answered transition, setting all
// three answer fields at once and touching nothing else.
func (r *inquiryRepository) Answer(ctx context.Context, id, content, answererID string, now time.Time) (*domain.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID != id {
			continue
		}
		if r.records[i].Answered() {
			return nil, ErrAlreadyAnswered
		}
		r.records[i].Status = domain.StatusAnswered
		r.records[i].AnswerContent = content
		r.records[i].AnswererID = answererID
		r.records[i].AnsweredAt = now.Format(time.RFC3339)
		q := r.records[i]
		r.persist(ctx)
		return &q, nil
	}
	return nil, ErrNotFound
}

// Replace swaps the whole record set. Used by tests and data imports.
func (r *inquiryRepository) Replace(ctx context.Context, records []domain.Inquiry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = make([]domain.Inquiry, len(records))
	copy(r.records, records)
	r.persist(ctx)
}

// persist mirrors the in-memory state to storage. Failures are logged and
// swallowed; the in-memory state stays authoritative.
func (r *inquiryRepository) persist(ctx context.Context) {
	blob, err := json.Marshal(r.records)
	if err != nil {
		r.logger.Warn("marshal inquiries failed", zap.Error(err))
		return
	}
	if err := r.store.Save(ctx, KeyInquiries, blob); err != nil {
		r.logger.Warn("storage write failed", zap.String("key", KeyInquiries), zap.Error(err))
	}
}
