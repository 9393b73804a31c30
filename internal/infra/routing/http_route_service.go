package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"orderbell/internal/domain/entity"
	"orderbell/internal/domain/service"

	"github.com/pkg/errors"
)

// httpRouteService delegates route computation to an external routing
// service.
type httpRouteService struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPRouteService creates a route service backed by an HTTP endpoint.
func NewHTTPRouteService(endpoint string, logger *slog.Logger) service.RouteService {
	return &httpRouteService{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

type routeRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

type routeResponse struct {
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes float64 `json:"duration_minutes"`
	Waypoints       []struct {
		Lat  float64 `json:"lat"`
		Lng  float64 `json:"lng"`
		Name string  `json:"name"`
	} `json:"waypoints"`
}

// ComputeRoute asks the routing service for a route between two locations.
func (s *httpRouteService) ComputeRoute(ctx context.Context, origin, destination string) (entity.Route, error) {
	body, err := json.Marshal(routeRequest{Origin: origin, Destination: destination})
	if err != nil {
		return entity.Route{}, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return entity.Route{}, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return entity.Route{}, errors.Wrap(err, "query routing service")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return entity.Route{}, errors.Errorf("routing service returned status %d", resp.StatusCode)
	}

	var payload routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return entity.Route{}, errors.Wrap(err, "decode routing response")
	}

	route := entity.Route{
		DistanceKm: payload.DistanceKm,
		Duration:   time.Duration(payload.DurationMinutes * float64(time.Minute)),
	}
	for _, wp := range payload.Waypoints {
		route.Waypoints = append(route.Waypoints, entity.Waypoint{Lat: wp.Lat, Lng: wp.Lng, Name: wp.Name})
	}

	return route, nil
}
