package service

import (
	"context"
	"time"

	"orderbell/internal/domain/entity"
)

// OrderQuery describes one active-orders snapshot read.
type OrderQuery struct {
	Scope       string                  // Restaurant channel the snapshot is scoped to.
	Statuses    []entity.UpstreamStatus // Upstream statuses considered active.
	PageSize    int                     // Maximum orders returned.
	BypassCache bool                    // Force a fresh read, skipping any backend-side cache.
}

// CommerceGateway is the boundary to the commerce backend. Orders are
// owned by the backend; all mutations here are fire-and-forget from the
// pipeline's perspective.
type CommerceGateway interface {
	// FetchActiveOrders returns the current snapshot of active orders for
	// a scope, most recent first.
	FetchActiveOrders(ctx context.Context, query OrderQuery) ([]entity.Order, error)

	// RecordStatus writes delivery tracking metadata for an order.
	RecordStatus(ctx context.Context, orderID string, phase entity.DeliveryPhase, location string, eta *time.Time) error

	// RecordAssignment writes driver assignment metadata for an order.
	RecordAssignment(ctx context.Context, orderID, driverName, driverPhone, vehicleInfo string) error

	// AcceptOrder marks an order accepted with the given preparation time.
	AcceptOrder(ctx context.Context, orderID, preparationTime string) error

	// RejectOrder marks an order rejected with the given reason.
	RejectOrder(ctx context.Context, orderID, reason string) error
}
