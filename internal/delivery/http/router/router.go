// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"orderbell/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	WebhookHandler *handler.WebhookHandler
	QueueHandler   *handler.QueueHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	webhookHandler *handler.WebhookHandler
	queueHandler   *handler.QueueHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		webhookHandler: params.WebhookHandler,
		queueHandler:   params.QueueHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Order lifecycle events pushed by the commerce backend
	webhookGroup := e.Group("/webhooks")
	{
		webhookGroup.POST("/order-created", r.webhookHandler.OrderCreated)
		webhookGroup.POST("/order-updated", r.webhookHandler.OrderUpdated)
		webhookGroup.POST("/order-fulfilled", r.webhookHandler.OrderFulfilled)
	}

	// Order queue view, one polling session per restaurant scope
	queueGroup := e.Group("/queue/:scope")
	{
		queueGroup.GET("/orders", r.queueHandler.ListOrders)
		queueGroup.GET("/polling", r.queueHandler.Snapshot)
		queueGroup.POST("/polling", r.queueHandler.EnablePolling)
		queueGroup.DELETE("/polling", r.queueHandler.DisablePolling)
		queueGroup.POST("/refresh", r.queueHandler.Refresh)
		queueGroup.POST("/focus", r.queueHandler.FocusRegained)
		queueGroup.PUT("/visibility", r.queueHandler.SetVisibility)
	}

	// Staff decisions taken from the dashboard
	orderGroup := e.Group("/orders")
	{
		orderGroup.POST("/:id/accept", r.queueHandler.AcceptOrder)
		orderGroup.POST("/:id/reject", r.queueHandler.RejectOrder)
	}
}
