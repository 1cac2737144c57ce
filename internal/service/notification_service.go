package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/hiring-service/internal/config"
	"github.com/spec-kit/hiring-service/internal/events"
	"github.com/spec-kit/hiring-service/internal/observability"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventImportCompleted, n.handleImportCompleted)
	n.dispatcher.Subscribe(events.EventReportGenerated, n.handleReportGenerated)
}

func (n *NotificationService) handleImportCompleted(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ImportCompletedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("ImportCompleted",
		zap.String("entity", payload.Entity),
		zap.Int("successful_imports", payload.Successful),
		zap.Int("failed_imports", payload.Failed),
	)
	n.metrics.RecordImport(payload.Entity, payload.Successful, payload.Failed)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleReportGenerated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ReportGeneratedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("ReportGenerated",
		zap.Int("year", payload.Year),
		zap.Int("row_count", payload.RowCount),
	)
	return nil
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))
}
