package inventory

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

// httpInventory queries a driver dispatch service over HTTP. The service
// returns candidates pre-ranked; order is preserved.
type httpInventory struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPInventory creates a driver inventory backed by a dispatch service.
func NewHTTPInventory(endpoint string, logger *slog.Logger) service.DriverInventory {
	return &httpInventory{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

type candidateRequest struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	Scope       string `json:"scope"`
	Destination string `json:"destination"`
}

type candidateResponse struct {
	Drivers []driverPayload `json:"drivers"`
}

type driverPayload struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Phone               string     `json:"phone"`
	CurrentLocation     string     `json:"current_location"`
	VehicleType         string     `json:"vehicle_type"`
	VehiclePlate        string     `json:"vehicle_plate"`
	VehicleColor        string     `json:"vehicle_color"`
	Rating              float64    `json:"rating"`
	DeliveriesCompleted int        `json:"deliveries_completed"`
	Available           bool       `json:"available"`
	EstimatedArrival    *time.Time `json:"estimated_arrival"`
}

// FindCandidates asks the dispatch service for ranked candidates.
func (i *httpInventory) FindCandidates(ctx context.Context, order *entity.Order, scope string) ([]entity.Driver, error) {
	destination := ""
	if order.ShippingAddress != nil {
		destination = order.ShippingAddress.String()
	}

	body, err := json.Marshal(candidateRequest{
		OrderID:     order.ID,
		OrderNumber: order.Number,
		Scope:       scope,
		Destination: destination,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "query driver inventory")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("driver inventory returned status %d", resp.StatusCode)
	}

	var payload candidateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "decode driver inventory response")
	}

	drivers := make([]entity.Driver, 0, len(payload.Drivers))
	for _, d := range payload.Drivers {
		drivers = append(drivers, entity.Driver{
			ID:                  d.ID,
			Name:                d.Name,
			Phone:               d.Phone,
			CurrentLocation:     d.CurrentLocation,
			Vehicle:             entity.Vehicle{Type: d.VehicleType, Plate: d.VehiclePlate, Color: d.VehicleColor},
			Rating:              d.Rating,
			DeliveriesCompleted: d.DeliveriesCompleted,
			Available:           d.Available,
			EstimatedArrival:    d.EstimatedArrival,
		})
	}

	i.logger.DebugContext(ctx, "driver inventory queried",
		slog.String("scope", scope),
		slog.Int("candidates", len(drivers)),
	)

	return drivers, nil
}
