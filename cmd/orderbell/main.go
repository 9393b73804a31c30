package main

import (
	"context"
	"log/slog"
	"os"

	"orderbell/config"
	"orderbell/internal/delivery"
	"orderbell/internal/delivery/http"
	"orderbell/internal/delivery/http/middleware"
	"orderbell/internal/delivery/http/router/handler"
	"orderbell/internal/domain/entity"
	"orderbell/internal/domain/service"
	"orderbell/internal/infra/commerce"
	"orderbell/internal/infra/inventory"
	logs "orderbell/internal/infra/log"
	"orderbell/internal/infra/pubsub"
	"orderbell/internal/infra/routing"
	"orderbell/internal/infra/sink"
	"orderbell/internal/usecase"
	"orderbell/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
			startPolling,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			newCommerceGateway,
			inventory.NewDriverInventory,
			routing.NewRouteService,
		),
		pubsub.Module,
		sink.Module,
	)
}

// newCommerceGateway creates the commerce gateway with dependency injection
func newCommerceGateway(cfg *config.Config, logger *slog.Logger) (service.CommerceGateway, error) {
	if cfg.Commerce == nil || cfg.Commerce.Endpoint == "" {
		return nil, errors.New("commerce backend is not configured")
	}

	return commerce.NewClient(cfg.Commerce, logger), nil
}

// newQueueSettings maps poller configuration to the queue service knobs
func newQueueSettings(cfg *config.Config) impl.QueueSettings {
	statuses := make([]entity.UpstreamStatus, 0, len(cfg.Poller.Statuses))
	for _, status := range cfg.Poller.Statuses {
		statuses = append(statuses, entity.UpstreamStatus(status))
	}

	return impl.QueueSettings{
		BaseInterval: cfg.Poller.BaseInterval,
		Statuses:     statuses,
		PageSize:     cfg.Poller.PageSize,
		SeenCapacity: cfg.Poller.SeenCapacity,
	}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newQueueSettings,
			impl.NewDispatchService,
			impl.NewOrderEventService,
			impl.NewQueueService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewWebhookHandler,
			handler.NewQueueHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

// startPolling brings up a polling session for every configured scope and
// tears them down on shutdown. Scopes enabled through the API afterwards
// are managed by the queue usecase itself.
func startPolling(lc fx.Lifecycle, cfg *config.Config, queueUC usecase.QueueUsecase) {
	scopes := cfg.Poller.Scopes

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			for _, scope := range scopes {
				if err := queueUC.EnablePolling(ctx, scope); err != nil {
					return errors.Wrapf(err, "enable polling for scope %s", scope)
				}
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			for _, scope := range scopes {
				queueUC.DisablePolling(scope)
			}

			return nil
		},
	})
}
