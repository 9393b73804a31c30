package service

import (
	"context"

	"orderbell/internal/domain/entity"
)

// RouteService computes a delivery route between two free-form locations.
type RouteService interface {
	ComputeRoute(ctx context.Context, origin, destination string) (entity.Route, error)
}
