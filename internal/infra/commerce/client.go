// Package commerce implements the CommerceGateway against the commerce
// backend's GraphQL HTTP endpoint.
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"orderbell/config"
	"orderbell/internal/domain/entity"
	"orderbell/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// Client talks GraphQL over HTTP to the commerce backend.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a commerce gateway from config.
func NewClient(cfg *config.CommerceConfig, logger *slog.Logger) service.CommerceGateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		endpoint: cfg.Endpoint,
		token:    cfg.Token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type graphqlRequest struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// do executes one GraphQL operation and decodes the data payload into out.
// A bypassCache request carries a no-cache directive so the backend serves
// a fresh read.
func (c *Client) do(ctx context.Context, operation, query string, variables map[string]any, bypassCache bool, out any) error {
	body, err := json.Marshal(graphqlRequest{
		OperationName: operation,
		Query:         query,
		Variables:     variables,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if bypassCache {
		req.Header.Set("Cache-Control", "no-cache")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "execute %s", operation)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.Errorf("%s returned status %d: %s", operation, resp.StatusCode, payload)
	}

	var envelope graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return errors.Wrapf(err, "decode %s response", operation)
	}
	if len(envelope.Errors) > 0 {
		return errors.Errorf("%s failed: %s", operation, envelope.Errors[0].Message)
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return errors.Wrapf(err, "decode %s data", operation)
		}
	}

	c.logger.DebugContext(ctx, "graphql operation executed",
		slog.String("operation", operation))

	return nil
}

// FetchActiveOrders returns the current snapshot of active orders for a
// scope, most recent first.
func (c *Client) FetchActiveOrders(ctx context.Context, query service.OrderQuery) ([]entity.Order, error) {
	statuses := make([]string, 0, len(query.Statuses))
	for _, status := range query.Statuses {
		statuses = append(statuses, status.String())
	}

	var payload orderQueuePayload
	err := c.do(ctx, "RestaurantOrderQueue", restaurantOrderQueueQuery, map[string]any{
		"channel": query.Scope,
		"status":  statuses,
		"first":   query.PageSize,
	}, query.BypassCache, &payload)
	if err != nil {
		return nil, err
	}

	orders := make([]entity.Order, 0, len(payload.Orders.Edges))
	for _, edge := range payload.Orders.Edges {
		orders = append(orders, edge.Node.toEntity())
	}

	return orders, nil
}

// RecordStatus writes delivery tracking metadata for an order.
func (c *Client) RecordStatus(ctx context.Context, orderID string, phase entity.DeliveryPhase, location string, eta *time.Time) error {
	arrival := ""
	if eta != nil {
		arrival = eta.UTC().Format(time.RFC3339)
	}

	return c.do(ctx, "UpdateDeliveryStatus", updateDeliveryStatusMutation, map[string]any{
		"orderId":          orderID,
		"status":           phase.String(),
		"location":         location,
		"estimatedArrival": arrival,
	}, false, nil)
}

// RecordAssignment writes driver assignment metadata for an order.
func (c *Client) RecordAssignment(ctx context.Context, orderID, driverName, driverPhone, vehicleInfo string) error {
	return c.do(ctx, "AssignDeliveryDriver", assignDeliveryDriverMutation, map[string]any{
		"orderId":     orderID,
		"driverName":  driverName,
		"driverPhone": driverPhone,
		"vehicleInfo": vehicleInfo,
	}, false, nil)
}

// AcceptOrder marks an order accepted with the given preparation time.
func (c *Client) AcceptOrder(ctx context.Context, orderID, preparationTime string) error {
	return c.do(ctx, "AcceptRestaurantOrder", acceptRestaurantOrderMutation, map[string]any{
		"orderId":         orderID,
		"preparationTime": preparationTime,
	}, false, nil)
}

// RejectOrder marks an order rejected with the given reason.
func (c *Client) RejectOrder(ctx context.Context, orderID, reason string) error {
	return c.do(ctx, "RejectRestaurantOrder", rejectRestaurantOrderMutation, map[string]any{
		"orderId": orderID,
		"reason":  reason,
	}, false, nil)
}

type orderQueuePayload struct {
	Orders struct {
		Edges []struct {
			Node orderNode `json:"node"`
		} `json:"edges"`
	} `json:"orders"`
}

type moneyNode struct {
	Gross struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	} `json:"gross"`
}

type addressNode struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	StreetAddress1 string `json:"streetAddress1"`
	City           string `json:"city"`
	PostalCode     string `json:"postalCode"`
	Phone          string `json:"phone"`
}

type orderNode struct {
	ID                 string    `json:"id"`
	Number             string    `json:"number"`
	Status             string    `json:"status"`
	Created            time.Time `json:"created"`
	UserEmail          string    `json:"userEmail"`
	CustomerNote       string    `json:"customerNote"`
	ShippingMethodName string    `json:"shippingMethodName"`
	Total              moneyNode `json:"total"`
	BillingAddress     *addressNode `json:"billingAddress"`
	ShippingAddress    *addressNode `json:"shippingAddress"`
	Lines              []struct {
		ProductName string    `json:"productName"`
		VariantName string    `json:"variantName"`
		Quantity    int       `json:"quantity"`
		UnitPrice   moneyNode `json:"unitPrice"`
	} `json:"lines"`
	Metadata []struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	} `json:"metadata"`
	Channel struct {
		ID   string `json:"id"`
		Slug string `json:"slug"`
	} `json:"channel"`
}

func (n orderNode) toEntity() entity.Order {
	order := entity.Order{
		ID:                 n.ID,
		Number:             n.Number,
		Status:             entity.UpstreamStatus(n.Status),
		CreatedAt:          n.Created,
		CustomerEmail:      n.UserEmail,
		Note:               n.CustomerNote,
		ShippingMethodName: n.ShippingMethodName,
		ChannelID:          n.Channel.ID,
		ChannelSlug:        n.Channel.Slug,
		Total: entity.Money{
			Amount:   n.Total.Gross.Amount,
			Currency: n.Total.Gross.Currency,
		},
	}

	if n.BillingAddress != nil {
		order.CustomerName = fmt.Sprintf("%s %s", n.BillingAddress.FirstName, n.BillingAddress.LastName)
	}
	if n.ShippingAddress != nil {
		order.ShippingAddress = &entity.Address{
			Street:     n.ShippingAddress.StreetAddress1,
			City:       n.ShippingAddress.City,
			PostalCode: n.ShippingAddress.PostalCode,
			Phone:      n.ShippingAddress.Phone,
		}
	}

	for _, line := range n.Lines {
		order.Lines = append(order.Lines, entity.OrderLine{
			ProductName: line.ProductName,
			VariantName: line.VariantName,
			Quantity:    line.Quantity,
			UnitPrice: entity.Money{
				Amount:   line.UnitPrice.Gross.Amount,
				Currency: line.UnitPrice.Gross.Currency,
			},
		})
	}

	if len(n.Metadata) > 0 {
		order.Metadata = make(map[string]string, len(n.Metadata))
		for _, item := range n.Metadata {
			order.Metadata[item.Key] = item.Value
		}
	}

	return order
}
