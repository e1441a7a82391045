package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/inquiry-console/internal/events"
)

// NotificationService logs domain events for operators. There is no real
// outbound channel; the console's notifications are purely informational.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventInquiryAnswered, n.handleInquiryAnswered)
	n.dispatcher.Subscribe(events.EventMailSent, n.handleMailSent)
}

func (n *NotificationService) handleInquiryAnswered(_ context.Context, event events.Event) error {
	n.logger.Info("InquiryAnswered", zap.String("actor", event.Actor), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleMailSent(_ context.Context, event events.Event) error {
	n.logger.Info("MailSent", zap.Any("payload", event.Payload))
	return nil
}
