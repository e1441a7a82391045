package repository

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/inquiry-console/internal/domain"
	"github.com/spec-kit/inquiry-console/internal/persistence"
)

// AutoSendRepository stores the enabled/disabled flags of automatic
// campaigns. Absence of an entry means enabled.
type AutoSendRepository interface {
	List(ctx context.Context) []domain.AutoSendSetting
	IsEnabled(ctx context.Context, groupID, templateID string) bool
	SetEnabled(ctx context.Context, groupID, templateID string, enabled bool)
}

type autoSendRepository struct {
	mu       sync.RWMutex
	store    persistence.BlobStore
	logger   *zap.Logger
	settings []domain.AutoSendSetting
}

// NewAutoSendRepository loads the mail_auto_send_settings blob.
func NewAutoSendRepository(ctx context.Context, store persistence.BlobStore, logger *zap.Logger) AutoSendRepository {
	repo := &autoSendRepository{store: store, logger: logger}

	blob, ok := store.Load(ctx, KeyAutoSendSettings)
	if !ok {
		return repo
	}
	var settings []domain.AutoSendSetting
	if err := json.Unmarshal(blob, &settings); err != nil {
		logger.Warn("stored auto-send settings unreadable", zap.Error(err))
		return repo
	}
	repo.settings = settings
	return repo
}

func (r *autoSendRepository) List(_ context.Context) []domain.AutoSendSetting {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.AutoSendSetting, len(r.settings))
	copy(out, r.settings)
	return out
}

func (r *autoSendRepository) IsEnabled(_ context.Context, groupID, templateID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, setting := range r.settings {
		if setting.GroupID == groupID && setting.TemplateID == templateID {
			return setting.Enabled
		}
	}
	return true
}

func (r *autoSendRepository) SetEnabled(ctx context.Context, groupID, templateID string, enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.settings {
		if r.settings[i].GroupID == groupID && r.settings[i].TemplateID == templateID {
			r.settings[i].Enabled = enabled
			r.persist(ctx)
			return
		}
	}
	r.settings = append(r.settings, domain.AutoSendSetting{GroupID: groupID, TemplateID: templateID, Enabled: enabled})
	r.persist(ctx)
}

func (r *autoSendRepository) persist(ctx context.Context) {
	blob, err := json.Marshal(r.settings)
	if err != nil {
		r.logger.Warn("marshal auto-send settings failed", zap.Error(err))
		return
	}
	if err := r.store.Save(ctx, KeyAutoSendSettings, blob); err != nil {
		r.logger.Warn("storage write failed", zap.String("key", KeyAutoSendSettings), zap.Error(err))
	}
}
