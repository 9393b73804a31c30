// Package inventory implements the DriverInventory boundary. The pool is
// external; adapters here only read candidates.
package inventory

import (
	"context"
	"log/slog"
	"time"

	"orderbell/config"
	"orderbell/internal/domain/entity"
	"orderbell/internal/domain/service"
)

// staticPool serves driver candidates from configuration. It stands in for
// a real dispatch system in development and keeps the candidate order as
// configured, which is the pool's ranking.
type staticPool struct {
	drivers []config.DriverConfig
	logger  *slog.Logger
}

// NewStaticPool creates a driver inventory backed by configured drivers.
func NewStaticPool(drivers []config.DriverConfig, logger *slog.Logger) service.DriverInventory {
	return &staticPool{
		drivers: drivers,
		logger:  logger,
	}
}

// FindCandidates returns every configured driver for the scope, in
// configured order.
func (p *staticPool) FindCandidates(ctx context.Context, order *entity.Order, scope string) ([]entity.Driver, error) {
	candidates := make([]entity.Driver, 0, len(p.drivers))
	for _, d := range p.drivers {
		eta := time.Now().Add(time.Duration(d.PickupMinutes) * time.Minute)
		candidates = append(candidates, entity.Driver{
			ID:                  d.ID,
			Name:                d.Name,
			Phone:               d.Phone,
			CurrentLocation:     d.Location,
			Vehicle:             entity.Vehicle{Type: d.VehicleType, Plate: d.Plate, Color: d.Color},
			Rating:              d.Rating,
			DeliveriesCompleted: d.Completed,
			Available:           d.Available,
			EstimatedArrival:    &eta,
		})
	}

	p.logger.DebugContext(ctx, "static driver pool queried",
		slog.String("scope", scope),
		slog.String("order_id", order.ID),
		slog.Int("candidates", len(candidates)),
	)

	return candidates, nil
}
