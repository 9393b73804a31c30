package sink

import (
	"context"
	"log/slog"

	"orderbell/internal/domain/entity"
	"orderbell/internal/domain/service"
)

// logSink writes intents to the structured log. It backs the email and
// sms channels, whose real providers are operated outside this service;
// the log line is the integration point for them in development.
type logSink struct {
	logger *slog.Logger
}

// NewLogSink creates a delivery sink that logs intents
func NewLogSink(logger *slog.Logger) service.DeliverySink {
	return &logSink{logger: logger}
}

// Deliver logs the intent
func (s *logSink) Deliver(ctx context.Context, intent entity.NotificationIntent) error {
	s.logger.InfoContext(ctx, "notification dispatched",
		slog.String("audience", intent.Audience.String()),
		slog.String("channel", intent.Channel.String()),
		slog.String("recipient", intent.Recipient),
		slog.String("order_id", intent.OrderID),
		slog.String("message", intent.Message),
	)

	return nil
}
