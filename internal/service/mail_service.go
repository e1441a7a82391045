package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/inquiry-console/internal/config"
	"github.com/spec-kit/inquiry-console/internal/domain"
	"github.com/spec-kit/inquiry-console/internal/events"
	"github.com/spec-kit/inquiry-console/internal/repository"
	apperrors "github.com/spec-kit/inquiry-console/pkg/util"
)

// MailService runs the simulated delivery engine for manual and automatic
// campaigns. There is no real mail transport; delivery is a fixed
// per-recipient latency plus a fixed success ratio.
type MailService struct {
	manual     repository.TemplateGroupRepository
	auto       repository.TemplateGroupRepository
	contents   repository.TemplateContentRepository
	sendGroups repository.SendGroupRepository
	autoSend   repository.AutoSendRepository
	history    repository.HistoryRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.MailConfig
	rng        *rand.Rand
	sleep      func(time.Duration)
	clock      func() time.Time
}

// MailDependencies bundles the service's collaborators.
type MailDependencies struct {
	ManualGroups repository.TemplateGroupRepository
	AutoGroups   repository.TemplateGroupRepository
	Contents     repository.TemplateContentRepository
	SendGroups   repository.SendGroupRepository
	AutoSend     repository.AutoSendRepository
	History      repository.HistoryRepository
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
	Rand         *rand.Rand          // nil for a time-seeded source
	Sleep        func(time.Duration) // nil for time.Sleep
	Clock        func() time.Time    // nil for time.Now
}

// NewMailService constructs the service.
func NewMailService(cfg config.MailConfig, deps MailDependencies) *MailService {
	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	sleep := deps.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &MailService{
		manual:     deps.ManualGroups,
		auto:       deps.AutoGroups,
		contents:   deps.Contents,
		sendGroups: deps.SendGroups,
		autoSend:   deps.AutoSend,
		history:    deps.History,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		cfg:        cfg,
		rng:        rng,
		sleep:      sleep,
		clock:      clock,
	}
}

// ManualSendInput describes a manual campaign run.
type ManualSendInput struct {
	SendGroupID     string
	TemplateGroupID string
	TemplateID      string
	Recipients      []string
	Locale          domain.Locale
}

// SendManual validates the campaign, simulates delivery to every recipient
// and records the outcome in history.
func (s *MailService) SendManual(ctx context.Context, input ManualSendInput) (*domain.MailHistory, error) {
	if len(input.Recipients) == 0 {
		return nil, apperrors.NewValidationError("no recipients selected", nil)
	}
	for _, recipient := range input.Recipients {
		if !strings.Contains(recipient, "@") {
			return nil, apperrors.NewValidationError("malformed recipient address", map[string]any{"recipient": recipient})
		}
	}

	sendGroup, err := s.sendGroups.GetByID(ctx, input.SendGroupID)
	if err != nil {
		return nil, mapRepositoryError(err, "send group")
	}
	template, err := s.manual.GetTemplate(ctx, input.TemplateGroupID, input.TemplateID)
	if err != nil {
		return nil, mapRepositoryError(err, "template")
	}
	if _, err := s.contents.Get(ctx, input.TemplateGroupID, input.TemplateID); err != nil {
		return nil, mapRepositoryError(err, "template content")
	}

	record := s.deliver(ctx, template.Name.Get(input.Locale), sendGroup.Name, input.Recipients, false)
	return record, nil
}

// RunAuto executes every enabled automatic campaign once. The audience is
// synthesized since there is no real subscriber store; each run delivers to a
// small simulated batch.
func (s *MailService) RunAuto(ctx context.Context) []domain.MailHistory {
	var results []domain.MailHistory
	for _, group := range s.auto.List(ctx) {
		for _, template := range group.Templates {
			if !s.autoSend.IsEnabled(ctx, group.ID, template.ID) {
				continue
			}
			if _, err := s.contents.Get(ctx, group.ID, template.ID); err != nil {
				s.logger.Warn("auto campaign skipped: no content",
					zap.String("group_id", group.ID),
					zap.String("template_id", template.ID))
				continue
			}
			recipients := s.syntheticAudience()
			record := s.deliver(ctx, template.Name.Get(domain.LocaleKo), group.Name.Get(domain.LocaleKo), recipients, true)
			results = append(results, *record)
		}
	}
	return results
}

// History lists past sends, newest first.
func (s *MailService) History(ctx context.Context) []domain.MailHistory {
	return s.history.List(ctx)
}

func (s *MailService) deliver(ctx context.Context, templateName, groupName string, recipients []string, automatic bool) *domain.MailHistory {
	delay := time.Duration(s.cfg.PerRecipientDelayMs) * time.Millisecond

	var succeeded, failed []string
	for _, recipient := range recipients {
		if delay > 0 {
			s.sleep(delay)
		}
		if s.rng.Float64() < s.cfg.SuccessRatio {
			succeeded = append(succeeded, recipient)
		} else {
			failed = append(failed, recipient)
		}
	}

	record := domain.MailHistory{
		ID:             uuid.NewString(),
		TemplateName:   templateName,
		GroupName:      groupName,
		RecipientCount: len(recipients),
		SentCount:      len(succeeded),
		FailedCount:    len(failed),
		Status:         domain.DeriveHistoryStatus(len(succeeded), len(failed)),
		CreatedAt:      s.clock().Format(time.RFC3339),
		Succeeded:      succeeded,
		Failed:         failed,
	}
	s.history.Prepend(ctx, record)

	s.logger.Info("mail batch delivered",
		zap.String("template", templateName),
		zap.String("group", groupName),
		zap.Int("sent", record.SentCount),
		zap.Int("failed", record.FailedCount),
		zap.Bool("automatic", automatic))

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type: events.EventMailSent,
			Payload: events.MailSentPayload{
				HistoryID:      record.ID,
				TemplateName:   record.TemplateName,
				GroupName:      record.GroupName,
				RecipientCount: record.RecipientCount,
				SentCount:      record.SentCount,
				FailedCount:    record.FailedCount,
				Automatic:      automatic,
			},
		})
	}
	return &record
}

func (s *MailService) syntheticAudience() []string {
	size := s.rng.Intn(5) + 1
	recipients := make([]string, size)
	for i := range recipients {
		recipients[i] = fmt.Sprintf("subscriber-%04d@simulated.local", s.rng.Intn(10000))
	}
	return recipients
}
