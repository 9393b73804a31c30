package service

import (
	"context"

	"orderbell/internal/domain/entity"
)

// DeliverySink delivers a notification intent through a concrete channel.
// Delivery is best-effort; the pipeline consumes no return value beyond
// the error used for logging.
type DeliverySink interface {
	Deliver(ctx context.Context, intent entity.NotificationIntent) error
}
