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

// SendGroupRepository manages the audience definitions for manual sends.
type SendGroupRepository interface {
	List(ctx context.Context) []domain.SendGroup
	GetByID(ctx context.Context, id string) (*domain.SendGroup, error)
	Create(ctx context.Context, group domain.SendGroup) error
	Update(ctx context.Context, group domain.SendGroup) error
	Delete(ctx context.Context, id string) error
}

type sendGroupRepository struct {
	mu     sync.RWMutex
	store  persistence.BlobStore
	logger *zap.Logger
	groups []domain.SendGroup
}

// NewSendGroupRepository loads the send_groups blob.
func NewSendGroupRepository(ctx context.Context, store persistence.BlobStore, logger *zap.Logger) SendGroupRepository {
	repo := &sendGroupRepository{store: store, logger: logger}

	blob, ok := store.Load(ctx, KeySendGroups)
	if !ok {
		return repo
	}
	var groups []domain.SendGroup
	if err := json.Unmarshal(blob, &groups); err != nil {
		logger.Warn("stored send groups unreadable", zap.Error(err))
		return repo
	}
	repo.groups = groups
	return repo
}

func (r *sendGroupRepository) List(_ context.Context) []domain.SendGroup {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.SendGroup, len(r.groups))
	copy(out, r.groups)
	return out
}

func (r *sendGroupRepository) GetByID(_ context.Context, id string) (*domain.SendGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.groups {
		if r.groups[i].ID == id {
			group := r.groups[i]
			return &group, nil
		}
	}
	return nil, ErrNotFound
}

func (r *sendGroupRepository) Create(ctx context.Context, group domain.SendGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.groups {
		if r.groups[i].Name == group.Name {
			return ErrDuplicateName
		}
	}
	r.groups = append(r.groups, group)
	r.persist(ctx)
	return nil
}

func (r *sendGroupRepository) Update(ctx context.Context, group domain.SendGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.groups {
		if r.groups[i].ID != group.ID && r.groups[i].Name == group.Name {
			return ErrDuplicateName
		}
	}
	for i := range r.groups {
		if r.groups[i].ID == group.ID {
			group.CreatedAt = r.groups[i].CreatedAt
			group.UpdatedAt = time.Now().Format(time.RFC3339)
			r.groups[i] = group
			r.persist(ctx)
			return nil
		}
	}
	return ErrNotFound
}

func (r *sendGroupRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.groups {
		if r.groups[i].ID == id {
			r.groups = append(r.groups[:i], r.groups[i+1:]...)
			r.persist(ctx)
			return nil
		}
	}
	return ErrNotFound
}

func (r *sendGroupRepository) persist(ctx context.Context) {
	blob, err := json.Marshal(r.groups)
	if err != nil {
		r.logger.Warn("marshal send groups failed", zap.Error(err))
		return
	}
	if err := r.store.Save(ctx, KeySendGroups, blob); err != nil {
		r.logger.Warn("storage write failed", zap.String("key", KeySendGroups), zap.Error(err))
	}
}
