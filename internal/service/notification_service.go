package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/workspace-hub/internal/config"
	"github.com/spec-kit/workspace-hub/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventReportSubmitted, n.handleReportSubmitted)
	n.dispatcher.Subscribe(events.EventReportReviewStarted, n.handleReportReviewStarted)
	n.dispatcher.Subscribe(events.EventReportFinalized, n.handleReportFinalized)
	n.dispatcher.Subscribe(events.EventTaskCompleted, n.handleTaskCompleted)
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleTicketCreated)
	n.dispatcher.Subscribe(events.EventTicketStatusChanged, n.handleTicketStatusChanged)
}

func (n *NotificationService) handleReportSubmitted(ctx context.Context, event events.Event) error {
	n.logger.Info("ReportSubmitted", zap.String("workspace_id", event.WorkspaceID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleReportReviewStarted(ctx context.Context, event events.Event) error {
	n.logger.Info("ReportReviewStarted", zap.String("workspace_id", event.WorkspaceID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleReportFinalized(ctx context.Context, event events.Event) error {
	n.logger.Info("ReportFinalized", zap.String("workspace_id", event.WorkspaceID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleTaskCompleted(ctx context.Context, event events.Event) error {
	n.logger.Info("TaskCompleted", zap.String("workspace_id", event.WorkspaceID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleTicketCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketCreated", zap.String("workspace_id", event.WorkspaceID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleTicketStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketStatusChanged", zap.String("workspace_id", event.WorkspaceID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("workspace_id", event.WorkspaceID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("workspace_id", event.WorkspaceID),
		zap.String("event_type", string(event.Type)))
}
