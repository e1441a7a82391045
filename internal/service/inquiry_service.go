package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spec-kit/inquiry-console/internal/analytics"
	"github.com/spec-kit/inquiry-console/internal/domain"
	"github.com/spec-kit/inquiry-console/internal/events"
	"github.com/spec-kit/inquiry-console/internal/i18n"
	"github.com/spec-kit/inquiry-console/internal/repository"
	apperrors "github.com/spec-kit/inquiry-console/pkg/util"
)

// InquiryService coordinates the inquiry console workflows: list, answer,
// export.
type InquiryService struct {
	inquiries  repository.InquiryRepository
	dispatcher events.Dispatcher
	clock      func() time.Time
}

// NewInquiryService constructs the service. clock may be nil for wall time.
func NewInquiryService(inquiries repository.InquiryRepository, dispatcher events.Dispatcher, clock func() time.Time) *InquiryService {
	if clock == nil {
		clock = time.Now
	}
	return &InquiryService{inquiries: inquiries, dispatcher: dispatcher, clock: clock}
}

// ListInput bundles the list request parameters.
type ListInput struct {
	Filter   analytics.Filter
	Sort     string
	Dir      analytics.SortDirection
	Page     int
	PageSize int
}

// ListResult is the table payload: the visible page plus counts computed on
// the pre-status-filtered set.
type ListResult struct {
	Items     []domain.Inquiry  `json:"items"`
	Summary   analytics.Summary `json:"summary"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
	PageCount int               `json:"page_count"`
	Total     int               `json:"total"`
	Message   string            `json:"message,omitempty"`
}

// List runs the filter/sort/paginate pipeline. The status tab is applied
// after the summary counts are taken.
func (s *InquiryService) List(ctx context.Context, input ListInput, locale domain.Locale) ListResult {
	if input.PageSize <= 0 {
		input.PageSize = 10
	}
	if input.Page < 0 {
		input.Page = 0
	}

	now := s.clock()
	records := s.inquiries.List(ctx)
	filtered := analytics.Apply(records, input.Filter, now)
	summary := analytics.Summarize(filtered)
	visible := analytics.ApplyStatus(filtered, input.Filter.Status)
	sorted := analytics.SortBy(visible, input.Sort, input.Dir)

	result := ListResult{
		Items:     analytics.Page(sorted, input.Page, input.PageSize),
		Summary:   summary,
		Page:      input.Page,
		PageSize:  input.PageSize,
		PageCount: analytics.PageCount(len(sorted), input.PageSize),
		Total:     len(sorted),
	}
	if len(result.Items) == 0 {
		result.Message = i18n.NoDataMessage.Get(locale)
	}
	return result
}

// Get fetches one inquiry.
func (s *InquiryService) Get(ctx context.Context, id string) (*domain.Inquiry, error) {
	q, err := s.inquiries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("inquiry", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return q, nil
}

// Answer performs the one-way Pending -> Answered transition.
func (s *InquiryService) Answer(ctx context.Context, id, content, answererID string) (*domain.Inquiry, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.NewValidationError("answer content required", nil)
	}
	if strings.TrimSpace(answererID) == "" {
		return nil, apperrors.NewValidationError("answerer id required", nil)
	}

	answered, err := s.inquiries.Answer(ctx, id, content, answererID, s.clock())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperrors.NewNotFound("inquiry", map[string]any{"id": id})
		case errors.Is(err, repository.ErrAlreadyAnswered):
			return nil, apperrors.NewConflict("inquiry already answered", map[string]any{"id": id})
		default:
			return nil, apperrors.MapError(err)
		}
	}

	s.publishEvent(ctx, events.Event{
		Type:  events.EventInquiryAnswered,
		Actor: answererID,
		Payload: events.InquiryAnsweredPayload{
			InquiryID:  answered.ID,
			Category:   string(answered.Category),
			AnswererID: answered.AnswererID,
			AnsweredAt: answered.AnsweredAt,
		},
	})
	return answered, nil
}

// ExportCSV serializes the filtered and sorted record set.
func (s *InquiryService) ExportCSV(ctx context.Context, input ListInput, locale domain.Locale) string {
	now := s.clock()
	records := s.inquiries.List(ctx)
	filtered := analytics.Apply(records, input.Filter, now)
	visible := analytics.ApplyStatus(filtered, input.Filter.Status)
	sorted := analytics.SortBy(visible, input.Sort, input.Dir)
	return analytics.ExportCSV(sorted, locale)
}

func (s *InquiryService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
