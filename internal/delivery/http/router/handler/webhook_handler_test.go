package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"orderbell/internal/delivery/http/validator"
	"orderbell/internal/domain/entity"
	mockUC "orderbell/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newWebhookHandler(orderEventUC *mockUC.MockOrderEventUsecase) *WebhookHandler {
	return NewWebhookHandler(WebhookHandlerParams{
		OrderEventUC: orderEventUC,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func postJSON(e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

const orderUpdatedBody = `{
	"order": {
		"id": "T3JkZXI6MTIz",
		"number": "1042",
		"status": "UNFULFILLED",
		"customer_email": "diner@example.com",
		"channel_slug": "downtown-bistro"
	}
}`

func TestWebhookHandler_OrderUpdatedInvokesUsecase(t *testing.T) {
	t.Parallel()

	orderEventUC := mockUC.NewMockOrderEventUsecase(t)
	orderEventUC.EXPECT().
		HandleOrderUpdated(mock.Anything, mock.AnythingOfType("*entity.Order")).
		Return(nil).
		Once()

	e := newTestEcho()
	c, rec := postJSON(e, "/webhooks/order-updated", orderUpdatedBody)

	err := newWebhookHandler(orderEventUC).OrderUpdated(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestWebhookHandler_OrderPayloadReachesUsecase(t *testing.T) {
	t.Parallel()

	var received *entity.Order
	orderEventUC := mockUC.NewMockOrderEventUsecase(t)
	orderEventUC.EXPECT().
		HandleOrderCreated(mock.Anything, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			received = order
		}).
		Return(nil).
		Once()

	e := newTestEcho()
	c, _ := postJSON(e, "/webhooks/order-created", orderUpdatedBody)

	require.NoError(t, newWebhookHandler(orderEventUC).OrderCreated(c))
	require.NotNil(t, received)
	assert.Equal(t, "T3JkZXI6MTIz", received.ID)
	assert.Equal(t, "1042", received.Number)
	assert.Equal(t, entity.StatusUnfulfilled, received.Status)
}

func TestWebhookHandler_MissingOrderIsAcknowledged(t *testing.T) {
	t.Parallel()

	// The usecase must not run for an empty envelope.
	orderEventUC := mockUC.NewMockOrderEventUsecase(t)

	e := newTestEcho()
	c, rec := postJSON(e, "/webhooks/order-updated", `{}`)

	err := newWebhookHandler(orderEventUC).OrderUpdated(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookHandler_MalformedBodyIsAcknowledged(t *testing.T) {
	t.Parallel()

	orderEventUC := mockUC.NewMockOrderEventUsecase(t)

	e := newTestEcho()
	c, rec := postJSON(e, "/webhooks/order-created", `{not json`)

	err := newWebhookHandler(orderEventUC).OrderCreated(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookHandler_PipelineFailureStillAnswers200(t *testing.T) {
	t.Parallel()

	orderEventUC := mockUC.NewMockOrderEventUsecase(t)
	orderEventUC.EXPECT().
		HandleOrderFulfilled(mock.Anything, mock.AnythingOfType("*entity.Order")).
		Return(errors.New("commerce backend unreachable")).
		Once()

	e := newTestEcho()
	c, rec := postJSON(e, "/webhooks/order-fulfilled", orderUpdatedBody)

	err := newWebhookHandler(orderEventUC).OrderFulfilled(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), "commerce backend unreachable")
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
