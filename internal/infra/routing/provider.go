package routing

import (
	"log/slog"

	"orderbell/config"
	"orderbell/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for RouteService, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewRouteService creates a RouteService based on configuration
func NewRouteService(params Params) (service.RouteService, error) {
	cfg := params.Config.Routing
	logger := params.Logger

	if cfg == nil {
		return nil, errors.New("routing configuration is required")
	}

	if cfg.Endpoint != "" {
		logger.Info("Using HTTP routing service",
			slog.String("endpoint", cfg.Endpoint),
		)

		return NewHTTPRouteService(cfg.Endpoint, logger), nil
	}

	logger.Info("Using haversine route estimator",
		slog.Float64("default_speed_kmh", cfg.DefaultSpeedKmh),
	)

	return NewHaversineEstimator(cfg, logger), nil
}
