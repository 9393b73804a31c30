package inventory

import (
	"log/slog"

	"orderbell/config"
	"orderbell/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for DriverInventory, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewDriverInventory creates a DriverInventory based on configuration
func NewDriverInventory(params Params) (service.DriverInventory, error) {
	cfg := params.Config.Inventory
	logger := params.Logger

	if cfg == nil {
		return nil, errors.New("inventory configuration is required")
	}

	if cfg.Endpoint != "" {
		logger.Info("Using HTTP driver inventory",
			slog.String("endpoint", cfg.Endpoint),
		)

		return NewHTTPInventory(cfg.Endpoint, logger), nil
	}

	if len(cfg.Drivers) == 0 {
		return nil, errors.New("either an inventory endpoint or static drivers must be configured")
	}

	logger.Info("Using static driver pool",
		slog.Int("drivers", len(cfg.Drivers)),
	)

	return NewStaticPool(cfg.Drivers, logger), nil
}
