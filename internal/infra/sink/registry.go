package sink

import (
	"context"
	"log/slog"

	"orderbell/config"
	"orderbell/internal/domain/entity"
	"orderbell/internal/domain/service"

	"go.uber.org/fx"
)

// registry routes intents to the channel-specific sink. Channels without
// a configured backend fall back to the log sink so pipeline behavior is
// observable in development.
type registry struct {
	channels map[entity.Channel]service.DeliverySink
	fallback service.DeliverySink
}

// Params holds dependencies for the sink registry, injected by Fx
type Params struct {
	fx.In

	Ctx       context.Context
	Config    *config.Config
	Logger    *slog.Logger
	Publisher service.EventPublisher
}

// NewRegistry creates the delivery sink registry based on configuration
func NewRegistry(params Params) (service.DeliverySink, error) {
	logger := params.Logger
	logSink := NewLogSink(logger)

	channels := map[entity.Channel]service.DeliverySink{
		entity.ChannelEmail:     logSink,
		entity.ChannelSMS:       logSink,
		entity.ChannelDashboard: NewDashboardSink(params.Publisher),
	}

	if cfg := params.Config.Firebase; cfg != nil && cfg.ProjectID != "" {
		push, err := NewFirebaseSink(params.Ctx, cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("Using Firebase Cloud Messaging for push notifications",
			slog.String("project_id", cfg.ProjectID),
		)
		channels[entity.ChannelPush] = push
	} else {
		logger.Info("Firebase not configured, push notifications go to the log")
		channels[entity.ChannelPush] = logSink
	}

	return &registry{channels: channels, fallback: logSink}, nil
}

// Deliver routes the intent to the sink registered for its channel
func (r *registry) Deliver(ctx context.Context, intent entity.NotificationIntent) error {
	if s, ok := r.channels[intent.Channel]; ok {
		return s.Deliver(ctx, intent)
	}

	return r.fallback.Deliver(ctx, intent)
}

// Module provides the delivery sink FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRegistry),
)
