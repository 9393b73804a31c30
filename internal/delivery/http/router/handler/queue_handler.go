package handler

import (
	"log/slog"
	"net/http"

	"orderbell/internal/delivery/http/response"
	"orderbell/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// QueueHandlerParams holds dependencies for QueueHandler, injected by Fx.
type QueueHandlerParams struct {
	fx.In

	QueueUC      usecase.QueueUsecase
	OrderEventUC usecase.OrderEventUsecase
	Logger       *slog.Logger
}

// QueueHandler exposes the order queue to the restaurant dashboard:
// listing active orders, managing the polling session, and the staff
// accept/reject decisions.
type QueueHandler struct {
	queueUC      usecase.QueueUsecase
	orderEventUC usecase.OrderEventUsecase
	logger       *slog.Logger
}

// NewQueueHandler is the constructor for QueueHandler
func NewQueueHandler(params QueueHandlerParams) *QueueHandler {
	return &QueueHandler{
		queueUC:      params.QueueUC,
		orderEventUC: params.OrderEventUC,
		logger:       params.Logger,
	}
}

// SetVisibilityRequest represents the request body for the visibility hint
type SetVisibilityRequest struct {
	Visible *bool `json:"visible" validate:"required"`
}

// AcceptOrderRequest represents the request body for accepting an order
type AcceptOrderRequest struct {
	PreparationTime string `json:"preparation_time"`
}

// RejectOrderRequest represents the request body for rejecting an order
type RejectOrderRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// ListOrders handles listing the scope's active orders
func (h *QueueHandler) ListOrders(c echo.Context) error {
	scope := c.Param("scope")
	forceRefresh := c.QueryParam("refresh") == "true"

	orders, err := h.queueUC.ListOrders(c.Request().Context(), scope, forceRefresh)
	if err != nil {
		h.logger.Error("failed to list active orders",
			slog.String("scope", scope),
			slog.Any("error", err),
		)

		return response.InternalServerError(c, "COMMERCE_ERROR", "Failed to fetch active orders")
	}

	return response.Success(c, http.StatusOK, orders, "Active orders retrieved successfully")
}

// EnablePolling handles starting a polling session for the scope
func (h *QueueHandler) EnablePolling(c echo.Context) error {
	scope := c.Param("scope")

	if err := h.queueUC.EnablePolling(c.Request().Context(), scope); err != nil {
		return response.InternalServerError(c, "POLLING_ERROR", "Failed to enable polling")
	}

	return response.Success(c, http.StatusOK, map[string]string{"scope": scope}, "Polling enabled")
}

// DisablePolling handles stopping the scope's polling session
func (h *QueueHandler) DisablePolling(c echo.Context) error {
	scope := c.Param("scope")
	h.queueUC.DisablePolling(scope)

	return response.Success(c, http.StatusOK, map[string]string{"scope": scope}, "Polling disabled")
}

// Refresh handles a manual cache-bypassing refresh of the scope's queue
func (h *QueueHandler) Refresh(c echo.Context) error {
	scope := c.Param("scope")

	if err := h.queueUC.Refresh(c.Request().Context(), scope); err != nil {
		return h.sessionError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"scope": scope}, "Refresh scheduled")
}

// FocusRegained handles the dashboard window coming back into focus
func (h *QueueHandler) FocusRegained(c echo.Context) error {
	scope := c.Param("scope")

	if err := h.queueUC.FocusRegained(c.Request().Context(), scope); err != nil {
		return h.sessionError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"scope": scope}, "Refresh scheduled")
}

// SetVisibility handles the dashboard visibility hint
func (h *QueueHandler) SetVisibility(c echo.Context) error {
	scope := c.Param("scope")

	var req SetVisibilityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visibility input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.queueUC.SetVisibility(scope, *req.Visible); err != nil {
		return h.sessionError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"scope": scope, "visible": *req.Visible}, "Visibility updated")
}

// Snapshot handles reporting the scope's polling session state
func (h *QueueHandler) Snapshot(c echo.Context) error {
	scope := c.Param("scope")

	snapshot, err := h.queueUC.Snapshot(scope)
	if err != nil {
		return h.sessionError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot, "Session state retrieved successfully")
}

// AcceptOrder handles the staff accept decision for an order
func (h *QueueHandler) AcceptOrder(c echo.Context) error {
	orderID := c.Param("id")
	if orderID == "" {
		return response.BadRequest(c, "INVALID_ID", "Missing order ID")
	}

	var req AcceptOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid accept input")
	}

	if err := h.orderEventUC.AcceptOrder(c.Request().Context(), orderID, req.PreparationTime); err != nil {
		h.logger.Error("failed to accept order",
			slog.String("order_id", orderID),
			slog.Any("error", err),
		)

		return response.InternalServerError(c, "COMMERCE_ERROR", "Failed to accept order")
	}

	return response.Success(c, http.StatusOK, map[string]string{"order_id": orderID}, "Order accepted")
}

// RejectOrder handles the staff reject decision for an order
func (h *QueueHandler) RejectOrder(c echo.Context) error {
	orderID := c.Param("id")
	if orderID == "" {
		return response.BadRequest(c, "INVALID_ID", "Missing order ID")
	}

	var req RejectOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reject input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.orderEventUC.RejectOrder(c.Request().Context(), orderID, req.Reason); err != nil {
		h.logger.Error("failed to reject order",
			slog.String("order_id", orderID),
			slog.Any("error", err),
		)

		return response.InternalServerError(c, "COMMERCE_ERROR", "Failed to reject order")
	}

	return response.Success(c, http.StatusOK, map[string]string{"order_id": orderID}, "Order rejected")
}

func (h *QueueHandler) sessionError(c echo.Context, err error) error {
	if errors.Is(err, usecase.ErrSessionNotFound) {
		return response.NotFound(c, "SESSION_NOT_FOUND", "No polling session for this scope")
	}

	return response.InternalServerError(c, "POLLING_ERROR", err.Error())
}
