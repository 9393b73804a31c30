package sink

import (
	"context"
	"time"

	deliverycontext "orderbell/internal/delivery/context"
	"orderbell/internal/domain/entity"
	"orderbell/internal/domain/service"
)

// dashboardSink publishes dashboard intents as queue events so dashboard
// clients receive them asynchronously.
type dashboardSink struct {
	publisher service.EventPublisher
}

// NewDashboardSink creates a delivery sink that publishes queue events
func NewDashboardSink(publisher service.EventPublisher) service.DeliverySink {
	return &dashboardSink{publisher: publisher}
}

// Deliver publishes the intent as a queue event
func (s *dashboardSink) Deliver(ctx context.Context, intent entity.NotificationIntent) error {
	event := &service.QueueEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Scope:      intent.Recipient,
		Kind:       "notification",
		Message:    intent.Message,
		DedupeKey:  intent.DedupeKey,
		OccurredAt: time.Now(),
	}
	if intent.OrderID != "" {
		event.OrderIDs = []string{intent.OrderID}
	}

	return s.publisher.PublishQueueEvent(ctx, event)
}
