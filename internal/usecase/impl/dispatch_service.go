package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"orderbell/internal/domain/entity"
	"orderbell/internal/domain/service"
	"orderbell/internal/errors"
	"orderbell/internal/usecase"
)

type dispatchService struct {
	logger    *slog.Logger
	commerce  service.CommerceGateway
	inventory service.DriverInventory
	routes    service.RouteService
	sink      service.DeliverySink

	mu       sync.Mutex
	assigned map[string]struct{}
}

// NewDispatchService creates a new dispatch service instance
func NewDispatchService(
	logger *slog.Logger,
	commerce service.CommerceGateway,
	inventory service.DriverInventory,
	routes service.RouteService,
	sink service.DeliverySink,
) usecase.DispatchUsecase {
	return &dispatchService{
		logger:    logger,
		commerce:  commerce,
		inventory: inventory,
		routes:    routes,
		sink:      sink,
		assigned:  make(map[string]struct{}),
	}
}

// Assign picks a driver for the order and records the assignment
func (s *dispatchService) Assign(ctx context.Context, order *entity.Order, scope string) (*entity.Assignment, error) {
	if !order.RequiresDelivery() {
		return nil, usecase.ErrNotApplicable
	}

	// Each order is routed through assignment once; a second call is a
	// caller bug, not a reassignment request. The order ID is reserved
	// before any collaborator call so a concurrent duplicate cannot slip
	// past the check while this one is still in flight. Attempts that
	// fail before the assignment mutation lands release the reservation.
	s.mu.Lock()
	if _, ok := s.assigned[order.ID]; ok {
		s.mu.Unlock()

		return nil, usecase.ErrAlreadyAssigned
	}
	s.assigned[order.ID] = struct{}{}
	s.mu.Unlock()

	candidates, err := s.inventory.FindCandidates(ctx, order, scope)
	if err != nil {
		s.release(order.ID)

		return nil, errors.Wrap(err, "find driver candidates")
	}

	// Candidates arrive pre-ranked; keep their order and take the first
	// one that is free.
	var driver *entity.Driver
	for i := range candidates {
		if candidates[i].Available {
			driver = &candidates[i]
			break
		}
	}
	if driver == nil {
		s.release(order.ID)
		s.deliver(ctx, entity.NotificationIntent{
			Audience:    entity.AudienceRestaurant,
			Channel:     entity.ChannelDashboard,
			Message:     fmt.Sprintf("No drivers available for order #%s. Dispatch has been notified.", order.Number),
			DedupeKey:   order.ID + ":driver_shortage",
			OrderID:     order.ID,
			OrderNumber: order.Number,
			Recipient:   order.ChannelSlug,
		})

		return nil, usecase.ErrNoDriverAvailable
	}

	route, err := s.routes.ComputeRoute(ctx, driver.CurrentLocation, order.ShippingAddress.String())
	if err != nil {
		s.release(order.ID)

		return nil, errors.Wrap(err, "compute delivery route")
	}

	if err := s.commerce.RecordAssignment(ctx, order.ID, driver.Name, driver.Phone, driver.VehicleInfo()); err != nil {
		s.release(order.ID)

		return nil, errors.Wrap(err, "record driver assignment")
	}

	// From here the assignment exists upstream; the reservation is kept
	// even when the follow-up status write fails, so a redelivered event
	// cannot assign the order a second time.
	if err := s.commerce.RecordStatus(ctx, order.ID, entity.PhaseDriverAssigned, driver.CurrentLocation, driver.EstimatedArrival); err != nil {
		return nil, errors.Wrap(err, "record driver_assigned status")
	}

	assignment := &entity.Assignment{
		OrderID:    order.ID,
		DriverID:   driver.ID,
		AssignedAt: time.Now(),
		Route:      route,
	}

	dedupeKey := order.ID + ":" + entity.PhaseDriverAssigned.String()
	s.deliver(ctx, entity.NotificationIntent{
		Audience:    entity.AudienceCustomer,
		Channel:     entity.ChannelPush,
		Message:     fmt.Sprintf("Your driver %s is on the way in a %s. Estimated arrival: %s.", driver.Name, driver.Vehicle.Type, etaText(driver.EstimatedArrival)),
		DedupeKey:   dedupeKey,
		OrderID:     order.ID,
		OrderNumber: order.Number,
		Recipient:   order.CustomerEmail,
	})
	s.deliver(ctx, entity.NotificationIntent{
		Audience:    entity.AudienceRestaurant,
		Channel:     entity.ChannelDashboard,
		Message:     fmt.Sprintf("Driver %s (%s) dispatched for order #%s pickup. Distance: %.1f km.", driver.Name, driver.Phone, order.Number, route.DistanceKm),
		DedupeKey:   dedupeKey,
		OrderID:     order.ID,
		OrderNumber: order.Number,
		Recipient:   order.ChannelSlug,
	})

	s.logger.InfoContext(ctx, "driver assigned",
		slog.String("order_id", order.ID),
		slog.String("driver_id", driver.ID),
		slog.Float64("distance_km", route.DistanceKm),
	)

	return assignment, nil
}

// release frees an order reservation after a failed attempt so a later
// event can try again.
func (s *dispatchService) release(orderID string) {
	s.mu.Lock()
	delete(s.assigned, orderID)
	s.mu.Unlock()
}

// deliver sends one intent best-effort; failures are logged and never
// fail the assignment.
func (s *dispatchService) deliver(ctx context.Context, intent entity.NotificationIntent) {
	if err := s.sink.Deliver(ctx, intent); err != nil {
		s.logger.WarnContext(ctx, "notification delivery failed",
			slog.String("order_id", intent.OrderID),
			slog.String("channel", intent.Channel.String()),
			slog.Any("error", err),
		)
	}
}
