package impl

import (
	"testing"
	"time"

	"orderbell/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapStatus_Table(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name                   string
		status                 entity.UpstreamStatus
		wantPhase              entity.DeliveryPhase
		wantLabel              string
		wantLocationUpdate     bool
		wantLocation           string
		wantETA                *time.Time
	}{
		{
			name:      "draft order is preparing with no ETA",
			status:    entity.StatusDraft,
			wantPhase: entity.PhasePreparing,
			wantLabel: "Order Being Prepared",
		},
		{
			name:      "unconfirmed order is pending",
			status:    entity.StatusUnconfirmed,
			wantPhase: entity.PhasePending,
			wantLabel: "Order Received - Awaiting Confirmation",
		},
		{
			name:      "unfulfilled order is preparing with thirty minute ETA",
			status:    entity.StatusUnfulfilled,
			wantPhase: entity.PhasePreparing,
			wantLabel: "Order Confirmed - In Kitchen",
			wantETA:   timePtr(now.Add(30 * time.Minute)),
		},
		{
			name:               "partially fulfilled order is ready for pickup",
			status:             entity.StatusPartiallyFulfilled,
			wantPhase:          entity.PhaseReadyForPickup,
			wantLabel:          "Order Ready - Preparing for Delivery",
			wantLocationUpdate: true,
			wantLocation:       "Restaurant - Ready for Pickup",
			wantETA:            timePtr(now.Add(15 * time.Minute)),
		},
		{
			name:               "fulfilled order is delivered now",
			status:             entity.StatusFulfilled,
			wantPhase:          entity.PhaseDelivered,
			wantLabel:          "Order Delivered",
			wantLocationUpdate: true,
			wantLocation:       "Delivered to Customer",
			wantETA:            timePtr(now),
		},
		{
			name:      "canceled order is cancelled",
			status:    entity.StatusCanceled,
			wantPhase: entity.PhaseCancelled,
			wantLabel: "Order Cancelled",
		},
		{
			name:      "returned order is returned",
			status:    entity.StatusReturned,
			wantPhase: entity.PhaseReturned,
			wantLabel: "Order Returned",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapStatus(tt.status, now)

			assert.Equal(t, tt.wantPhase, got.Phase)
			assert.Equal(t, tt.wantLabel, got.DisplayLabel)
			assert.Equal(t, tt.wantLocationUpdate, got.RequiresLocationUpdate)
			assert.Equal(t, tt.wantLocation, got.Location)
			if tt.wantETA == nil {
				assert.Nil(t, got.EstimatedArrival)
			} else {
				require.NotNil(t, got.EstimatedArrival)
				assert.Equal(t, *tt.wantETA, *got.EstimatedArrival)
			}
		})
	}
}

func TestMapStatus_UnrecognizedStatusIsTotal(t *testing.T) {
	now := time.Now()

	got := MapStatus("SOMETHING_ELSE", now)

	assert.Equal(t, entity.PhaseUnknown, got.Phase)
	assert.Equal(t, "Order Status: SOMETHING_ELSE", got.DisplayLabel)
	assert.False(t, got.RequiresLocationUpdate)
	assert.Nil(t, got.EstimatedArrival)
}

func TestMapStatus_Deterministic(t *testing.T) {
	now := time.Now()

	for _, status := range []entity.UpstreamStatus{
		entity.StatusDraft,
		entity.StatusUnconfirmed,
		entity.StatusUnfulfilled,
		entity.StatusPartiallyFulfilled,
		entity.StatusFulfilled,
		entity.StatusCanceled,
		entity.StatusReturned,
		"GARBAGE",
	} {
		first := MapStatus(status, now)
		second := MapStatus(status, now)

		assert.Equal(t, first, second, "status %s must map deterministically", status)
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
