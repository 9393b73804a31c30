package impl

import (
	"fmt"
	"time"

	"orderbell/internal/domain/entity"
)

// statusRule describes how one upstream status projects into the
// restaurant domain.
type statusRule struct {
	displayLabel           string
	phase                  entity.DeliveryPhase
	requiresLocationUpdate bool
	location               string
	etaOffset              time.Duration
	hasETA                 bool
}

// statusTable is the single source of truth for phase semantics.
var statusTable = map[entity.UpstreamStatus]statusRule{
	entity.StatusDraft: {
		displayLabel: "Order Being Prepared",
		phase:        entity.PhasePreparing,
	},
	entity.StatusUnconfirmed: {
		displayLabel: "Order Received - Awaiting Confirmation",
		phase:        entity.PhasePending,
	},
	entity.StatusUnfulfilled: {
		displayLabel: "Order Confirmed - In Kitchen",
		phase:        entity.PhasePreparing,
		etaOffset:    30 * time.Minute,
		hasETA:       true,
	},
	entity.StatusPartiallyFulfilled: {
		displayLabel:           "Order Ready - Preparing for Delivery",
		phase:                  entity.PhaseReadyForPickup,
		requiresLocationUpdate: true,
		location:               "Restaurant - Ready for Pickup",
		etaOffset:              15 * time.Minute,
		hasETA:                 true,
	},
	entity.StatusFulfilled: {
		displayLabel:           "Order Delivered",
		phase:                  entity.PhaseDelivered,
		requiresLocationUpdate: true,
		location:               "Delivered to Customer",
		hasETA:                 true,
	},
	entity.StatusCanceled: {
		displayLabel: "Order Cancelled",
		phase:        entity.PhaseCancelled,
	},
	entity.StatusReturned: {
		displayLabel: "Order Returned",
		phase:        entity.PhaseReturned,
	},
}

// MapStatus projects an upstream order status into a domain status. It is
// total: unrecognized statuses map to PhaseUnknown rather than an error.
// The estimated arrival is computed relative to now at mapping time;
// everything else depends only on the input status.
func MapStatus(status entity.UpstreamStatus, now time.Time) entity.DomainStatus {
	rule, ok := statusTable[status]
	if !ok {
		return entity.DomainStatus{
			DisplayLabel: fmt.Sprintf("Order Status: %s", status),
			Phase:        entity.PhaseUnknown,
		}
	}

	domain := entity.DomainStatus{
		DisplayLabel:           rule.displayLabel,
		Phase:                  rule.phase,
		RequiresLocationUpdate: rule.requiresLocationUpdate,
		Location:               rule.location,
	}
	if rule.hasETA {
		eta := now.Add(rule.etaOffset)
		domain.EstimatedArrival = &eta
	}

	return domain
}
