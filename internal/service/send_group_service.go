package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/inquiry-console/internal/domain"
	"github.com/spec-kit/inquiry-console/internal/repository"
	apperrors "github.com/spec-kit/inquiry-console/pkg/util"
)

// SendGroupService manages the audience definitions for manual campaigns.
type SendGroupService struct {
	groups repository.SendGroupRepository
	clock  func() time.Time
}

// NewSendGroupService constructs the service. clock may be nil for wall time.
func NewSendGroupService(groups repository.SendGroupRepository, clock func() time.Time) *SendGroupService {
	if clock == nil {
		clock = time.Now
	}
	return &SendGroupService{groups: groups, clock: clock}
}

// List returns every send group.
func (s *SendGroupService) List(ctx context.Context) []domain.SendGroup {
	return s.groups.List(ctx)
}

// Get fetches one send group.
func (s *SendGroupService) Get(ctx context.Context, id string) (*domain.SendGroup, error) {
	group, err := s.groups.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "send group")
	}
	return group, nil
}

// Create validates and stores a new send group.
func (s *SendGroupService) Create(ctx context.Context, name, description string, memberCount int) (*domain.SendGroup, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("group name required", nil)
	}
	if memberCount < 0 {
		return nil, apperrors.NewValidationError("member count must not be negative", nil)
	}
	now := s.clock().Format(time.RFC3339)
	group := domain.SendGroup{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(description),
		MemberCount: memberCount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.groups.Create(ctx, group); err != nil {
		return nil, mapRepositoryError(err, "send group")
	}
	return &group, nil
}

// Update replaces a send group's mutable fields.
func (s *SendGroupService) Update(ctx context.Context, group domain.SendGroup) error {
	group.Name = strings.TrimSpace(group.Name)
	if group.Name == "" {
		return apperrors.NewValidationError("group name required", nil)
	}
	if group.MemberCount < 0 {
		return apperrors.NewValidationError("member count must not be negative", nil)
	}
	if err := s.groups.Update(ctx, group); err != nil {
		return mapRepositoryError(err, "send group")
	}
	return nil
}

// Delete removes a send group.
func (s *SendGroupService) Delete(ctx context.Context, id string) error {
	if err := s.groups.Delete(ctx, id); err != nil {
		return mapRepositoryError(err, "send group")
	}
	return nil
}
