package service

import (
	"context"
	"time"
)

// QueueEvent is a dashboard-facing event published when the order queue
// changes or a dashboard notification is routed.
type QueueEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing.
	Scope      string    `json:"scope"`                // Restaurant channel the event belongs to.
	Kind       string    `json:"kind"`                 // Event kind, e.g. "new_orders" or "notification".
	Message    string    `json:"message"`              // Human-facing message.
	OrderIDs   []string  `json:"order_ids,omitempty"`  // Orders the event refers to.
	DedupeKey  string    `json:"dedupe_key,omitempty"` // Client-side dedup handle.
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher publishes dashboard events to a message queue.
type EventPublisher interface {
	// PublishQueueEvent publishes a queue event for async consumption by
	// dashboard clients.
	PublishQueueEvent(ctx context.Context, event *QueueEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
