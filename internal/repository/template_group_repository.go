package repository

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/inquiry-console/internal/domain"
	"github.com/spec-kit/inquiry-console/internal/persistence"
)

// TemplateGroupRepository manages one kind's template-group tree
// (auto_mail_groups or manual_mail_groups).
type TemplateGroupRepository interface {
	List(ctx context.Context) []domain.TemplateGroup
	GetGroup(ctx context.Context, groupID string) (*domain.TemplateGroup, error)
	GetTemplate(ctx context.Context, groupID, templateID string) (*domain.MailTemplate, error)
	CreateGroup(ctx context.Context, group domain.TemplateGroup) error
	UpdateGroup(ctx context.Context, group domain.TemplateGroup) error
	DeleteGroup(ctx context.Context, groupID string) error
	UpsertTemplate(ctx context.Context, groupID string, template domain.MailTemplate) error
	DeleteTemplate(ctx context.Context, groupID, templateID string) error
}

type templateGroupRepository struct {
	mu     sync.RWMutex
	store  persistence.BlobStore
	logger *zap.Logger
	key    string
	groups []domain.TemplateGroup
}

// NewTemplateGroupRepository loads the group tree for the given kind. Legacy
// plain-string names migrate through LocalizedText decoding.
func NewTemplateGroupRepository(ctx context.Context, store persistence.BlobStore, logger *zap.Logger, kind domain.TemplateKind) TemplateGroupRepository {
	key := KeyManualMailGroups
	if kind == domain.TemplateKindAuto {
		key = KeyAutoMailGroups
	}
	repo := &templateGroupRepository{store: store, logger: logger, key: key}

	blob, ok := store.Load(ctx, key)
	if !ok {
		return repo
	}
	var groups []domain.TemplateGroup
	if err := json.Unmarshal(blob, &groups); err != nil {
		logger.Warn("stored mail groups unreadable", zap.String("key", key), zap.Error(err))
		return repo
	}
	repo.groups = groups
	return repo
}

func (r *templateGroupRepository) List(_ context.Context) []domain.TemplateGroup {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.TemplateGroup, len(r.groups))
	copy(out, r.groups)
	return out
}

func (r *templateGroupRepository) GetGroup(_ context.Context, groupID string) (*domain.TemplateGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.groups {
		if r.groups[i].ID == groupID {
			group := r.groups[i]
			return &group, nil
		}
	}
	return nil, ErrNotFound
}

func (r *templateGroupRepository) GetTemplate(_ context.Context, groupID, templateID string) (*domain.MailTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.groups {
		if r.groups[i].ID != groupID {
			continue
		}
		for j := range r.groups[i].Templates {
			if r.groups[i].Templates[j].ID == templateID {
				template := r.groups[i].Templates[j]
				return &template, nil
			}
		}
	}
	return nil, ErrNotFound
}

func (r *templateGroupRepository) CreateGroup(ctx context.Context, group domain.TemplateGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.groups {
		if r.groups[i].ID == group.ID || r.groups[i].Name.Ko == group.Name.Ko {
			return ErrDuplicateName
		}
	}
	if group.Templates == nil {
		group.Templates = []domain.MailTemplate{}
	}
	r.groups = append(r.groups, group)
	r.persist(ctx)
	return nil
}

func (r *templateGroupRepository) UpdateGroup(ctx context.Context, group domain.TemplateGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.groups {
		if r.groups[i].ID != group.ID && r.groups[i].Name.Ko == group.Name.Ko {
			return ErrDuplicateName
		}
	}
	for i := range r.groups {
		if r.groups[i].ID == group.ID {
			// template list is managed through the template operations
			group.Templates = r.groups[i].Templates
			r.groups[i] = group
			r.persist(ctx)
			return nil
		}
	}
	return ErrNotFound
}

func (r *templateGroupRepository) DeleteGroup(ctx context.Context, groupID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.groups {
		if r.groups[i].ID == groupID {
			r.groups = append(r.groups[:i], r.groups[i+1:]...)
			r.persist(ctx)
			return nil
		}
	}
	return ErrNotFound
}

func (r *templateGroupRepository) UpsertTemplate(ctx context.Context, groupID string, template domain.MailTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.groups {
		if r.groups[i].ID != groupID {
			continue
		}
		for j := range r.groups[i].Templates {
			if r.groups[i].Templates[j].ID == template.ID {
				r.groups[i].Templates[j] = template
				r.persist(ctx)
				return nil
			}
		}
		r.groups[i].Templates = append(r.groups[i].Templates, template)
		r.persist(ctx)
		return nil
	}
	return ErrNotFound
}

func (r *templateGroupRepository) DeleteTemplate(ctx context.Context, groupID, templateID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.groups {
		if r.groups[i].ID != groupID {
			continue
		}
		for j := range r.groups[i].Templates {
			if r.groups[i].Templates[j].ID == templateID {
				r.groups[i].Templates = append(r.groups[i].Templates[:j], r.groups[i].Templates[j+1:]...)
				r.persist(ctx)
				return nil
			}
		}
		return ErrNotFound
	}
	return ErrNotFound
}

func (r *templateGroupRepository) persist(ctx context.Context) {
	blob, err := json.Marshal(r.groups)
	if err != nil {
		r.logger.Warn("marshal mail groups failed", zap.String("key", r.key), zap.Error(err))
		return
	}
	if err := r.store.Save(ctx, r.key, blob); err != nil {
		r.logger.Warn("storage write failed", zap.String("key", r.key), zap.Error(err))
	}
}
