// Package handler contains the HTTP handlers of the service.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	deliverycontext "orderbell/internal/delivery/context"
	"orderbell/internal/delivery/http/response"
	"orderbell/internal/domain/entity"
	"orderbell/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	OrderEventUC usecase.OrderEventUsecase
	Logger       *slog.Logger
}

// WebhookHandler handles inbound order lifecycle events from the commerce
// backend. The backend redelivers events answered with a non-2xx status,
// so every handler acknowledges 200 and reports failures in the body.
type WebhookHandler struct {
	orderEventUC usecase.OrderEventUsecase
	logger       *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	return &WebhookHandler{
		orderEventUC: params.OrderEventUC,
		logger:       params.Logger,
	}
}

// orderEventPayload is the webhook envelope carrying an order snapshot
type orderEventPayload struct {
	Order *entity.Order `json:"order"`
}

// OrderCreated handles the order-created event
func (h *WebhookHandler) OrderCreated(c echo.Context) error {
	return h.handle(c, "order-created", h.orderEventUC.HandleOrderCreated)
}

// OrderUpdated handles the order-updated event
func (h *WebhookHandler) OrderUpdated(c echo.Context) error {
	return h.handle(c, "order-updated", h.orderEventUC.HandleOrderUpdated)
}

// OrderFulfilled handles the order-fulfilled event
func (h *WebhookHandler) OrderFulfilled(c echo.Context) error {
	return h.handle(c, "order-fulfilled", h.orderEventUC.HandleOrderFulfilled)
}

func (h *WebhookHandler) handle(c echo.Context, event string, apply func(context.Context, *entity.Order) error) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	var payload orderEventPayload
	if err := c.Bind(&payload); err != nil {
		logger.WarnContext(ctx, "webhook payload could not be decoded",
			slog.String("event", event),
			slog.Any("error", err),
		)

		return response.Acknowledged(c, nil)
	}

	if payload.Order == nil {
		logger.WarnContext(ctx, "webhook carried no order, ignoring",
			slog.String("event", event),
		)

		return response.Acknowledged(c, nil)
	}

	if err := apply(ctx, payload.Order); err != nil {
		logger.ErrorContext(ctx, "order event processing failed",
			slog.String("event", event),
			slog.String("order_id", payload.Order.ID),
			slog.String("order_number", payload.Order.Number),
			slog.Any("error", err),
		)

		return response.Acknowledged(c, err)
	}

	return response.Acknowledged(c, nil)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
