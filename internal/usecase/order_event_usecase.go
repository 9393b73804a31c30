package usecase

import (
	"context"

	"orderbell/internal/domain/entity"
)

// OrderEventUsecase defines the interface for order lifecycle event handling
type OrderEventUsecase interface {
	// HandleOrderCreated accepts a newly created order and notifies restaurant staff
	HandleOrderCreated(ctx context.Context, order *entity.Order) error

	// HandleOrderUpdated maps the order's upstream status, records tracking
	// metadata when needed and routes the resulting notifications
	HandleOrderUpdated(ctx context.Context, order *entity.Order) error

	// HandleOrderFulfilled triggers driver assignment for a fulfilled order
	HandleOrderFulfilled(ctx context.Context, order *entity.Order) error

	// AcceptOrder confirms an order with the given preparation time in minutes.
	// An empty preparationTime falls back to the default.
	AcceptOrder(ctx context.Context, orderID, preparationTime string) error

	// RejectOrder declines an order with the given reason
	RejectOrder(ctx context.Context, orderID, reason string) error
}
