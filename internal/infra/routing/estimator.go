// Package routing implements the RouteService boundary. A real routing
// service is consumed over HTTP when configured; otherwise a haversine
// estimator keeps dispatch working with approximate distances.
package routing

import (
	"context"
	"hash/fnv"
	"log/slog"
	"time"

	"orderbell/config"
	"orderbell/internal/domain/entity"
	"orderbell/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const defaultSpeedKmh = 25.0

// haversineEstimator approximates delivery routes as great-circle legs
// through the restaurant pickup point. Locations are free-form strings, so
// each is pinned to a deterministic point near the restaurant; the same
// address always yields the same route.
type haversineEstimator struct {
	speedKmh   float64
	restaurant orb.Point
	logger     *slog.Logger
}

// NewHaversineEstimator creates a route estimator from config.
func NewHaversineEstimator(cfg *config.RoutingConfig, logger *slog.Logger) service.RouteService {
	speed := cfg.DefaultSpeedKmh
	if speed <= 0 {
		speed = defaultSpeedKmh
	}

	return &haversineEstimator{
		speedKmh:   speed,
		restaurant: orb.Point{cfg.RestaurantLng, cfg.RestaurantLat},
		logger:     logger,
	}
}

// ComputeRoute estimates the driver-to-customer route through the
// restaurant.
func (e *haversineEstimator) ComputeRoute(ctx context.Context, origin, destination string) (entity.Route, error) {
	originPt := e.pinpoint(origin)
	destPt := e.pinpoint(destination)

	meters := geo.DistanceHaversine(originPt, e.restaurant) + geo.DistanceHaversine(e.restaurant, destPt)
	distanceKm := meters / 1000
	duration := time.Duration(distanceKm / e.speedKmh * float64(time.Hour))

	route := entity.Route{
		DistanceKm: distanceKm,
		Duration:   duration,
		Waypoints: []entity.Waypoint{
			{Lat: originPt.Lat(), Lng: originPt.Lon(), Name: "Driver Current Location"},
			{Lat: e.restaurant.Lat(), Lng: e.restaurant.Lon(), Name: "Restaurant Pickup"},
			{Lat: destPt.Lat(), Lng: destPt.Lon(), Name: "Customer Delivery"},
		},
	}

	e.logger.DebugContext(ctx, "route estimated",
		slog.Float64("distance_km", distanceKm),
		slog.Duration("duration", duration),
	)

	return route, nil
}

// pinpoint maps a free-form location string onto a stable point within a
// few kilometers of the restaurant.
func (e *haversineEstimator) pinpoint(location string) orb.Point {
	h := fnv.New64a()
	_, _ = h.Write([]byte(location))
	sum := h.Sum64()

	// Spread addresses over roughly +-0.03 degrees around the restaurant.
	latOffset := (float64(sum&0xFFFF)/0xFFFF - 0.5) * 0.06
	lngOffset := (float64((sum>>16)&0xFFFF)/0xFFFF - 0.5) * 0.06

	return orb.Point{e.restaurant.Lon() + lngOffset, e.restaurant.Lat() + latOffset}
}
