package entity

import "time"

// DeliveryPhase is the restaurant-domain coarse status derived from an
// upstream order status.
type DeliveryPhase string

const (
	PhasePending        DeliveryPhase = "pending"
	PhasePreparing      DeliveryPhase = "preparing"
	PhaseReadyForPickup DeliveryPhase = "ready_for_pickup"
	PhaseDriverAssigned DeliveryPhase = "driver_assigned"
	PhaseDelivered      DeliveryPhase = "delivered"
	PhaseCancelled      DeliveryPhase = "cancelled"
	PhaseReturned       DeliveryPhase = "returned"
	PhaseUnknown        DeliveryPhase = "unknown"
)

// String returns the string representation of the DeliveryPhase.
func (p DeliveryPhase) String() string {
	return string(p)
}

// IsValid checks if the DeliveryPhase is a valid value.
func (p DeliveryPhase) IsValid() bool {
	switch p {
	case PhasePending, PhasePreparing, PhaseReadyForPickup, PhaseDriverAssigned,
		PhaseDelivered, PhaseCancelled, PhaseReturned, PhaseUnknown:
		return true
	default:
		return false
	}
}

// DomainStatus is the derived, non-persisted projection of an order's
// upstream status. Identical upstream status always yields an identical
// projection; only EstimatedArrival is relative to the mapping time.
type DomainStatus struct {
	DisplayLabel           string        `json:"display_label"`               // Human-facing status label.
	Phase                  DeliveryPhase `json:"phase"`                       // Coarse delivery phase.
	RequiresLocationUpdate bool          `json:"requires_location_update"`    // Whether tracking metadata must be written back.
	Location               string        `json:"location,omitempty"`          // Tracking location written back when required.
	EstimatedArrival       *time.Time    `json:"estimated_arrival,omitempty"` // ETA, when the phase defines one.
}
