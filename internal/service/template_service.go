package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/spec-kit/inquiry-console/internal/domain"
	"github.com/spec-kit/inquiry-console/internal/repository"
	apperrors "github.com/spec-kit/inquiry-console/pkg/util"
)

// TemplateService manages mail template groups, templates, template content
// and auto-send settings for both campaign kinds.
type TemplateService struct {
	auto     repository.TemplateGroupRepository
	manual   repository.TemplateGroupRepository
	contents repository.TemplateContentRepository
	autoSend repository.AutoSendRepository
}

// TemplateDependencies bundles repositories for the template service.
type TemplateDependencies struct {
	AutoGroups   repository.TemplateGroupRepository
	ManualGroups repository.TemplateGroupRepository
	Contents     repository.TemplateContentRepository
	AutoSend     repository.AutoSendRepository
}

// NewTemplateService constructs the service.
func NewTemplateService(deps TemplateDependencies) *TemplateService {
	return &TemplateService{
		auto:     deps.AutoGroups,
		manual:   deps.ManualGroups,
		contents: deps.Contents,
		autoSend: deps.AutoSend,
	}
}

func (s *TemplateService) groupsFor(kind domain.TemplateKind) (repository.TemplateGroupRepository, error) {
	switch kind {
	case domain.TemplateKindAuto:
		return s.auto, nil
	case domain.TemplateKindManual:
		return s.manual, nil
	default:
		return nil, apperrors.NewValidationError("unknown template kind", map[string]any{"kind": string(kind)})
	}
}

// ListGroups returns the group tree for a kind.
func (s *TemplateService) ListGroups(ctx context.Context, kind domain.TemplateKind) ([]domain.TemplateGroup, error) {
	repo, err := s.groupsFor(kind)
	if err != nil {
		return nil, err
	}
	return repo.List(ctx), nil
}

// CreateGroup adds a group with a fresh id.
func (s *TemplateService) CreateGroup(ctx context.Context, kind domain.TemplateKind, name domain.LocalizedText) (*domain.TemplateGroup, error) {
	repo, err := s.groupsFor(kind)
	if err != nil {
		return nil, err
	}
	if name.IsZero() {
		return nil, apperrors.NewValidationError("group name required", nil)
	}
	group := domain.TemplateGroup{
		ID:        uuid.NewString(),
		Name:      name,
		Templates: []domain.MailTemplate{},
	}
	if err := repo.CreateGroup(ctx, group); err != nil {
		return nil, mapRepositoryError(err, "template group")
	}
	return &group, nil
}

// RenameGroup updates a group's display name.
func (s *TemplateService) RenameGroup(ctx context.Context, kind domain.TemplateKind, groupID string, name domain.LocalizedText) error {
	repo, err := s.groupsFor(kind)
	if err != nil {
		return err
	}
	if name.IsZero() {
		return apperrors.NewValidationError("group name required", nil)
	}
	if err := repo.UpdateGroup(ctx, domain.TemplateGroup{ID: groupID, Name: name}); err != nil {
		return mapRepositoryError(err, "template group")
	}
	return nil
}

// DeleteGroup removes a group and the stored content of its templates.
func (s *TemplateService) DeleteGroup(ctx context.Context, kind domain.TemplateKind, groupID string) error {
	repo, err := s.groupsFor(kind)
	if err != nil {
		return err
	}
	group, err := repo.GetGroup(ctx, groupID)
	if err != nil {
		return mapRepositoryError(err, "template group")
	}
	for _, template := range group.Templates {
		s.contents.Delete(ctx, groupID, template.ID)
	}
	if err := repo.DeleteGroup(ctx, groupID); err != nil {
		return mapRepositoryError(err, "template group")
	}
	return nil
}

// CreateTemplate adds a template to a group.
func (s *TemplateService) CreateTemplate(ctx context.Context, kind domain.TemplateKind, groupID string, name, title, description domain.LocalizedText) (*domain.MailTemplate, error) {
	repo, err := s.groupsFor(kind)
	if err != nil {
		return nil, err
	}
	if name.IsZero() {
		return nil, apperrors.NewValidationError("template name required", nil)
	}
	template := domain.MailTemplate{
		ID:          uuid.NewString(),
		Name:        name,
		Title:       title,
		Description: description,
	}
	if err := repo.UpsertTemplate(ctx, groupID, template); err != nil {
		return nil, mapRepositoryError(err, "template group")
	}
	return &template, nil
}

// UpdateTemplate replaces a template's metadata.
func (s *TemplateService) UpdateTemplate(ctx context.Context, kind domain.TemplateKind, groupID string, template domain.MailTemplate) error {
	repo, err := s.groupsFor(kind)
	if err != nil {
		return err
	}
	if template.Name.IsZero() {
		return apperrors.NewValidationError("template name required", nil)
	}
	if _, err := repo.GetTemplate(ctx, groupID, template.ID); err != nil {
		return mapRepositoryError(err, "template")
	}
	if err := repo.UpsertTemplate(ctx, groupID, template); err != nil {
		return mapRepositoryError(err, "template")
	}
	return nil
}

// DeleteTemplate removes a template and its content.
func (s *TemplateService) DeleteTemplate(ctx context.Context, kind domain.TemplateKind, groupID, templateID string) error {
	repo, err := s.groupsFor(kind)
	if err != nil {
		return err
	}
	if err := repo.DeleteTemplate(ctx, groupID, templateID); err != nil {
		return mapRepositoryError(err, "template")
	}
	s.contents.Delete(ctx, groupID, templateID)
	return nil
}

// GetContent returns the stored body/subject for a template, or a not-found
// error the handlers render as the fallback panel.
func (s *TemplateService) GetContent(ctx context.Context, groupID, templateID string) (*domain.TemplateContent, error) {
	content, err := s.contents.Get(ctx, groupID, templateID)
	if err != nil {
		return nil, mapRepositoryError(err, "template content")
	}
	return content, nil
}

// SetContent stores the body/subject for a template.
func (s *TemplateService) SetContent(ctx context.Context, content domain.TemplateContent) error {
	if content.GroupID == "" || content.TemplateID == "" {
		return apperrors.NewValidationError("groupId and templateId required", nil)
	}
	if content.Content.IsZero() {
		return apperrors.NewValidationError("template content required", nil)
	}
	s.contents.Set(ctx, content)
	return nil
}

// AutoSendSettings lists the stored toggles. Templates without an entry are
// enabled by default.
func (s *TemplateService) AutoSendSettings(ctx context.Context) []domain.AutoSendSetting {
	return s.autoSend.List(ctx)
}

// SetAutoSendEnabled toggles an automatic campaign.
func (s *TemplateService) SetAutoSendEnabled(ctx context.Context, groupID, templateID string, enabled bool) error {
	if _, err := s.auto.GetTemplate(ctx, groupID, templateID); err != nil {
		return mapRepositoryError(err, "template")
	}
	s.autoSend.SetEnabled(ctx, groupID, templateID, enabled)
	return nil
}

func mapRepositoryError(err error, resource string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.NewNotFound(resource, nil)
	case errors.Is(err, repository.ErrDuplicateName):
		return apperrors.NewConflict(resource+" name already in use", nil)
	default:
		return apperrors.MapError(err)
	}
}
