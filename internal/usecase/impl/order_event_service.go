package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"orderbell/internal/domain/entity"
	"orderbell/internal/domain/service"
	"orderbell/internal/errors"
	"orderbell/internal/usecase"
)

const (
	// defaultPreparationMinutes is the preparation time recorded when the
	// restaurant accepts an order without picking one.
	defaultPreparationMinutes = "30"
)

type orderEventService struct {
	logger   *slog.Logger
	commerce service.CommerceGateway
	dispatch usecase.DispatchUsecase
	sink     service.DeliverySink
	now      func() time.Time
}

// NewOrderEventService creates a new order event service instance
func NewOrderEventService(
	logger *slog.Logger,
	commerce service.CommerceGateway,
	dispatch usecase.DispatchUsecase,
	sink service.DeliverySink,
) usecase.OrderEventUsecase {
	return &orderEventService{
		logger:   logger,
		commerce: commerce,
		dispatch: dispatch,
		sink:     sink,
		now:      time.Now,
	}
}

// HandleOrderCreated accepts a newly created order and notifies restaurant staff
func (s *orderEventService) HandleOrderCreated(ctx context.Context, order *entity.Order) error {
	s.logger.InfoContext(ctx, "new order received",
		slog.String("order_id", order.ID),
		slog.String("channel", order.ChannelSlug),
		slog.Float64("total", order.Total.Amount),
	)

	if err := s.commerce.AcceptOrder(ctx, order.ID, defaultPreparationMinutes); err != nil {
		return errors.Wrap(err, "accept order")
	}

	s.deliver(ctx, entity.NotificationIntent{
		Audience:    entity.AudienceRestaurant,
		Channel:     entity.ChannelDashboard,
		Message:     fmt.Sprintf("New order #%s received. %d items, total %.2f %s.", order.Number, len(order.Lines), order.Total.Amount, order.Total.Currency),
		DedupeKey:   order.ID + ":created",
		OrderID:     order.ID,
		OrderNumber: order.Number,
		Recipient:   order.ChannelSlug,
	})

	return nil
}

// HandleOrderUpdated maps the order's upstream status, records tracking
// metadata when needed and routes the resulting notifications
func (s *orderEventService) HandleOrderUpdated(ctx context.Context, order *entity.Order) error {
	status := MapStatus(order.Status, s.now())

	if status.RequiresLocationUpdate {
		eta := status.EstimatedArrival
		if err := s.commerce.RecordStatus(ctx, order.ID, status.Phase, status.Location, eta); err != nil {
			return errors.Wrap(err, "record delivery status")
		}
	}

	for _, intent := range RouteNotifications(order, status) {
		s.deliver(ctx, intent)
	}

	s.logger.InfoContext(ctx, "order status update processed",
		slog.String("order_id", order.ID),
		slog.String("status", order.Status.String()),
		slog.String("phase", status.Phase.String()),
	)

	return nil
}

// HandleOrderFulfilled triggers driver assignment for a fulfilled order
func (s *orderEventService) HandleOrderFulfilled(ctx context.Context, order *entity.Order) error {
	_, err := s.dispatch.Assign(ctx, order, order.ChannelSlug)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, usecase.ErrNotApplicable):
		s.logger.InfoContext(ctx, "pickup order, no delivery assignment needed",
			slog.String("order_id", order.ID))

		return nil
	case errors.Is(err, usecase.ErrNoDriverAvailable):
		s.logger.WarnContext(ctx, "no drivers available, restaurant notified",
			slog.String("order_id", order.ID))

		return nil
	case errors.Is(err, usecase.ErrAlreadyAssigned):
		s.logger.WarnContext(ctx, "order already has a driver, skipping",
			slog.String("order_id", order.ID))

		return nil
	default:
		return errors.Wrap(err, "assign delivery driver")
	}
}

// AcceptOrder confirms an order with the given preparation time in minutes
func (s *orderEventService) AcceptOrder(ctx context.Context, orderID, preparationTime string) error {
	if preparationTime == "" {
		preparationTime = defaultPreparationMinutes
	}

	if err := s.commerce.AcceptOrder(ctx, orderID, preparationTime); err != nil {
		return errors.Wrap(err, "accept order")
	}

	s.logger.InfoContext(ctx, "order accepted",
		slog.String("order_id", orderID),
		slog.String("preparation_time", preparationTime),
	)

	s.deliver(ctx, entity.NotificationIntent{
		Audience:  entity.AudienceRestaurant,
		Channel:   entity.ChannelDashboard,
		Message:   fmt.Sprintf("Order accepted. Kitchen preparation time: %s minutes.", preparationTime),
		DedupeKey: orderID + ":accepted",
		OrderID:   orderID,
	})

	return nil
}

// RejectOrder declines an order with the given reason
func (s *orderEventService) RejectOrder(ctx context.Context, orderID, reason string) error {
	if err := s.commerce.RejectOrder(ctx, orderID, reason); err != nil {
		return errors.Wrap(err, "reject order")
	}

	s.logger.InfoContext(ctx, "order rejected",
		slog.String("order_id", orderID),
		slog.String("reason", reason),
	)

	s.deliver(ctx, entity.NotificationIntent{
		Audience:  entity.AudienceRestaurant,
		Channel:   entity.ChannelDashboard,
		Message:   fmt.Sprintf("Order rejected: %s.", reason),
		DedupeKey: orderID + ":rejected",
		OrderID:   orderID,
	})

	return nil
}

func (s *orderEventService) deliver(ctx context.Context, intent entity.NotificationIntent) {
	if err := s.sink.Deliver(ctx, intent); err != nil {
		s.logger.WarnContext(ctx, "notification delivery failed",
			slog.String("order_id", intent.OrderID),
			slog.String("channel", intent.Channel.String()),
			slog.Any("error", err),
		)
	}
}
