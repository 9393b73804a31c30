package routing

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"orderbell/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEstimator() *haversineEstimator {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewHaversineEstimator(&config.RoutingConfig{
		DefaultSpeedKmh: 25,
		RestaurantLat:   40.7505,
		RestaurantLng:   -73.9934,
	}, logger).(*haversineEstimator)
}

func TestHaversineEstimator_ComputeRoute(t *testing.T) {
	estimator := newTestEstimator()
	ctx := context.Background()

	route, err := estimator.ComputeRoute(ctx, "123 Main St, Downtown", "456 Elm St, Springfield, 62704")

	require.NoError(t, err)
	assert.Positive(t, route.DistanceKm)
	assert.Positive(t, route.Duration)
	require.Len(t, route.Waypoints, 3)
	assert.Equal(t, "Driver Current Location", route.Waypoints[0].Name)
	assert.Equal(t, "Restaurant Pickup", route.Waypoints[1].Name)
	assert.Equal(t, "Customer Delivery", route.Waypoints[2].Name)
}

func TestHaversineEstimator_SameInputsSameRoute(t *testing.T) {
	estimator := newTestEstimator()
	ctx := context.Background()

	first, err := estimator.ComputeRoute(ctx, "123 Main St", "456 Elm St")
	require.NoError(t, err)

	second, err := estimator.ComputeRoute(ctx, "123 Main St", "456 Elm St")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHaversineEstimator_PinpointStaysNearRestaurant(t *testing.T) {
	estimator := newTestEstimator()

	for _, location := range []string{"a", "somewhere far away", "789 Pine St, Uptown"} {
		pt := estimator.pinpoint(location)

		assert.InDelta(t, 40.7505, pt.Lat(), 0.031)
		assert.InDelta(t, -73.9934, pt.Lon(), 0.031)
	}
}
