package impl

import (
	"testing"
	"time"

	"orderbell/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() *entity.Order {
	return &entity.Order{
		ID:            "T3JkZXI6MTIz",
		Number:        "1042",
		Total:         entity.Money{Amount: 42.50, Currency: "USD"},
		CustomerEmail: "diner@example.com",
		ChannelSlug:   "downtown-bistro",
	}
}

func TestRouteNotifications_ReadyForPickup(t *testing.T) {
	order := testOrder()
	status := MapStatus(entity.StatusPartiallyFulfilled, time.Now())

	intents := RouteNotifications(order, status)

	require.Len(t, intents, 2)

	assert.Equal(t, entity.AudienceCustomer, intents[0].Audience)
	assert.Equal(t, entity.ChannelSMS, intents[0].Channel)
	assert.Contains(t, intents[0].Message, "#1042")
	assert.Equal(t, "diner@example.com", intents[0].Recipient)

	assert.Equal(t, entity.AudienceRestaurant, intents[1].Audience)
	assert.Equal(t, entity.ChannelDashboard, intents[1].Channel)
	assert.Contains(t, intents[1].Message, "Driver should be assigned")
	assert.Equal(t, "downtown-bistro", intents[1].Recipient)

	// Both intents share one dedupe key for the transition.
	assert.Equal(t, intents[0].DedupeKey, intents[1].DedupeKey)
}

func TestRouteNotifications_PendingProducesNothing(t *testing.T) {
	order := testOrder()
	status := MapStatus(entity.StatusUnconfirmed, time.Now())

	intents := RouteNotifications(order, status)

	assert.Empty(t, intents)
}

func TestRouteNotifications_PreparingIncludesETA(t *testing.T) {
	order := testOrder()
	now := time.Now()
	status := MapStatus(entity.StatusUnfulfilled, now)

	intents := RouteNotifications(order, status)

	require.Len(t, intents, 1)
	assert.Equal(t, entity.AudienceCustomer, intents[0].Audience)
	assert.Equal(t, entity.ChannelEmail, intents[0].Channel)
	assert.Contains(t, intents[0].Message, "#1042")
	assert.Contains(t, intents[0].Message, now.Add(30*time.Minute).Local().Format(time.Kitchen))
}

func TestRouteNotifications_PreparingWithoutETAFallsBack(t *testing.T) {
	order := testOrder()
	status := MapStatus(entity.StatusDraft, time.Now())

	intents := RouteNotifications(order, status)

	require.Len(t, intents, 1)
	assert.Contains(t, intents[0].Message, "30 minutes")
}

func TestRouteNotifications_Delivered(t *testing.T) {
	order := testOrder()
	status := MapStatus(entity.StatusFulfilled, time.Now())

	intents := RouteNotifications(order, status)

	require.Len(t, intents, 2)
	assert.Equal(t, entity.ChannelEmail, intents[0].Channel)
	assert.Contains(t, intents[0].Message, "has been delivered")
	assert.Equal(t, entity.ChannelDashboard, intents[1].Channel)
	assert.Contains(t, intents[1].Message, "successfully delivered")
}

func TestRouteNotifications_Cancelled(t *testing.T) {
	order := testOrder()
	status := MapStatus(entity.StatusCanceled, time.Now())

	intents := RouteNotifications(order, status)

	require.Len(t, intents, 1)
	assert.Equal(t, entity.AudienceCustomer, intents[0].Audience)
	assert.Equal(t, entity.ChannelEmail, intents[0].Channel)
	assert.Contains(t, intents[0].Message, "has been cancelled")
}

func TestRouteNotifications_SilentPhases(t *testing.T) {
	order := testOrder()

	for _, phase := range []entity.DeliveryPhase{
		entity.PhasePending,
		entity.PhaseDriverAssigned,
		entity.PhaseReturned,
		entity.PhaseUnknown,
	} {
		intents := RouteNotifications(order, entity.DomainStatus{Phase: phase})

		assert.Empty(t, intents, "phase %s must route no notifications", phase)
	}
}

func TestRouteNotifications_StatusTransitionScenario(t *testing.T) {
	order := testOrder()
	now := time.Now()

	// Order arrives unconfirmed: nothing goes out.
	pending := MapStatus(entity.StatusUnconfirmed, now)
	assert.Equal(t, entity.PhasePending, pending.Phase)
	assert.False(t, pending.RequiresLocationUpdate)
	assert.Empty(t, RouteNotifications(order, pending))

	// Restaurant confirms: one customer email with number and ETA.
	preparing := MapStatus(entity.StatusUnfulfilled, now)
	require.Equal(t, entity.PhasePreparing, preparing.Phase)
	require.NotNil(t, preparing.EstimatedArrival)

	intents := RouteNotifications(order, preparing)

	require.Len(t, intents, 1)
	assert.Equal(t, entity.AudienceCustomer, intents[0].Audience)
	assert.Equal(t, entity.ChannelEmail, intents[0].Channel)
	assert.Contains(t, intents[0].Message, "#1042")
	assert.Contains(t, intents[0].Message, preparing.EstimatedArrival.Local().Format(time.Kitchen))
}
