package repository

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/inquiry-console/internal/domain"
	"github.com/spec-kit/inquiry-console/internal/persistence"
)

// TemplateContentRepository stores email bodies/subjects keyed by
// (groupID, templateID), separate from the group tree.
type TemplateContentRepository interface {
	Get(ctx context.Context, groupID, templateID string) (*domain.TemplateContent, error)
	Set(ctx context.Context, content domain.TemplateContent)
	Delete(ctx context.Context, groupID, templateID string)
}

type templateContentRepository struct {
	mu      sync.RWMutex
	store   persistence.BlobStore
	logger  *zap.Logger
	entries []domain.TemplateContent
}

// NewTemplateContentRepository loads the mail_templates blob. Legacy entries
// whose title/content are plain strings are upgraded during decoding by
// LocalizedText.
func NewTemplateContentRepository(ctx context.Context, store persistence.BlobStore, logger *zap.Logger) TemplateContentRepository {
	repo := &templateContentRepository{store: store, logger: logger}

	blob, ok := store.Load(ctx, KeyMailTemplates)
	if !ok {
		return repo
	}
	var entries []domain.TemplateContent
	if err := json.Unmarshal(blob, &entries); err != nil {
		logger.Warn("stored mail templates unreadable", zap.Error(err))
		return repo
	}
	repo.entries = entries
	return repo
}

func (r *templateContentRepository) Get(_ context.Context, groupID, templateID string) (*domain.TemplateContent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.entries {
		if r.entries[i].GroupID == groupID && r.entries[i].TemplateID == templateID {
			entry := r.entries[i]
			return &entry, nil
		}
	}
	return nil, ErrNotFound
}

func (r *templateContentRepository) Set(ctx context.Context, content domain.TemplateContent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].GroupID == content.GroupID && r.entries[i].TemplateID == content.TemplateID {
			r.entries[i] = content
			r.persist(ctx)
			return
		}
	}
	r.entries = append(r.entries, content)
	r.persist(ctx)
}

func (r *templateContentRepository) Delete(ctx context.Context, groupID, templateID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.entries[:0]
	for _, entry := range r.entries {
		if entry.GroupID == groupID && entry.TemplateID == templateID {
			continue
		}
		kept = append(kept, entry)
	}
	r.entries = kept
	r.persist(ctx)
}

func (r *templateContentRepository) persist(ctx context.Context) {
	blob, err := json.Marshal(r.entries)
	if err != nil {
		r.logger.Warn("marshal mail templates failed", zap.Error(err))
		return
	}
	if err := r.store.Save(ctx, KeyMailTemplates, blob); err != nil {
		r.logger.Warn("storage write failed", zap.String("key", KeyMailTemplates), zap.Error(err))
	}
}
