package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"orderbell/internal/domain/entity"
	mockUC "orderbell/internal/mocks/usecase"
	"orderbell/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type queueHandlerMocks struct {
	queueUC      *mockUC.MockQueueUsecase
	orderEventUC *mockUC.MockOrderEventUsecase
}

func newQueueHandler(t *testing.T) (*QueueHandler, queueHandlerMocks) {
	t.Helper()

	mocks := queueHandlerMocks{
		queueUC:      mockUC.NewMockQueueUsecase(t),
		orderEventUC: mockUC.NewMockOrderEventUsecase(t),
	}

	h := NewQueueHandler(QueueHandlerParams{
		QueueUC:      mocks.queueUC,
		OrderEventUC: mocks.orderEventUC,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, mocks
}

func scopedContext(e *echo.Echo, method, target, body, scope string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("scope")
	c.SetParamValues(scope)

	return c, rec
}

func TestQueueHandler_ListOrders(t *testing.T) {
	t.Parallel()

	h, mocks := newQueueHandler(t)
	mocks.queueUC.EXPECT().
		ListOrders(mock.Anything, "downtown-bistro", false).
		Return([]entity.Order{{ID: "T3JkZXI6MTIz", Number: "1042"}}, nil).
		Once()

	e := newTestEcho()
	c, rec := scopedContext(e, http.MethodGet, "/queue/downtown-bistro/orders", "", "downtown-bistro")

	require.NoError(t, h.ListOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"number":"1042"`)
}

func TestQueueHandler_ListOrdersForcesRefresh(t *testing.T) {
	t.Parallel()

	h, mocks := newQueueHandler(t)
	mocks.queueUC.EXPECT().
		ListOrders(mock.Anything, "downtown-bistro", true).
		Return(nil, nil).
		Once()

	e := newTestEcho()
	c, rec := scopedContext(e, http.MethodGet, "/queue/downtown-bistro/orders?refresh=true", "", "downtown-bistro")

	require.NoError(t, h.ListOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestQueueHandler_ListOrdersFailure(t *testing.T) {
	t.Parallel()

	h, mocks := newQueueHandler(t)
	mocks.queueUC.EXPECT().
		ListOrders(mock.Anything, "downtown-bistro", false).
		Return(nil, assert.AnError).
		Once()

	e := newTestEcho()
	c, rec := scopedContext(e, http.MethodGet, "/queue/downtown-bistro/orders", "", "downtown-bistro")

	require.NoError(t, h.ListOrders(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "COMMERCE_ERROR")
}

func TestQueueHandler_EnableAndDisablePolling(t *testing.T) {
	t.Parallel()

	h, mocks := newQueueHandler(t)
	mocks.queueUC.EXPECT().EnablePolling(mock.Anything, "downtown-bistro").Return(nil).Once()
	mocks.queueUC.EXPECT().DisablePolling("downtown-bistro").Once()

	e := newTestEcho()

	c, rec := scopedContext(e, http.MethodPost, "/queue/downtown-bistro/polling", "", "downtown-bistro")
	require.NoError(t, h.EnablePolling(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = scopedContext(e, http.MethodDelete, "/queue/downtown-bistro/polling", "", "downtown-bistro")
	require.NoError(t, h.DisablePolling(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestQueueHandler_RefreshWithoutSessionIs404(t *testing.T) {
	t.Parallel()

	h, mocks := newQueueHandler(t)
	mocks.queueUC.EXPECT().
		Refresh(mock.Anything, "downtown-bistro").
		Return(usecase.ErrSessionNotFound).
		Once()

	e := newTestEcho()
	c, rec := scopedContext(e, http.MethodPost, "/queue/downtown-bistro/refresh", "", "downtown-bistro")

	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESSION_NOT_FOUND")
}

func TestQueueHandler_SetVisibility(t *testing.T) {
	t.Parallel()

	h, mocks := newQueueHandler(t)
	mocks.queueUC.EXPECT().SetVisibility("downtown-bistro", false).Return(nil).Once()

	e := newTestEcho()
	c, rec := scopedContext(e, http.MethodPut, "/queue/downtown-bistro/visibility", `{"visible": false}`, "downtown-bistro")

	require.NoError(t, h.SetVisibility(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestQueueHandler_SetVisibilityRequiresFlag(t *testing.T) {
	t.Parallel()

	// Usecase must not run when the flag is absent.
	h, _ := newQueueHandler(t)

	e := newTestEcho()
	c, rec := scopedContext(e, http.MethodPut, "/queue/downtown-bistro/visibility", `{}`, "downtown-bistro")

	require.NoError(t, h.SetVisibility(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestQueueHandler_Snapshot(t *testing.T) {
	t.Parallel()

	h, mocks := newQueueHandler(t)
	mocks.queueUC.EXPECT().
		Snapshot("downtown-bistro").
		Return(&usecase.QueueSnapshot{
			Scope:        "downtown-bistro",
			Enabled:      true,
			Visible:      true,
			NextInterval: 15 * time.Second,
			KnownOrders:  3,
		}, nil).
		Once()

	e := newTestEcho()
	c, rec := scopedContext(e, http.MethodGet, "/queue/downtown-bistro/polling", "", "downtown-bistro")

	require.NoError(t, h.Snapshot(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"known_orders":3`)
}

func TestQueueHandler_AcceptOrder(t *testing.T) {
	t.Parallel()

	h, mocks := newQueueHandler(t)
	mocks.orderEventUC.EXPECT().
		AcceptOrder(mock.Anything, "T3JkZXI6MTIz", "45").
		Return(nil).
		Once()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/orders/T3JkZXI6MTIz/accept", strings.NewReader(`{"preparation_time": "45"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("T3JkZXI6MTIz")

	require.NoError(t, h.AcceptOrder(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestQueueHandler_RejectOrderRequiresReason(t *testing.T) {
	t.Parallel()

	h, _ := newQueueHandler(t)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/orders/T3JkZXI6MTIz/reject", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("T3JkZXI6MTIz")

	require.NoError(t, h.RejectOrder(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQueueHandler_RejectOrder(t *testing.T) {
	t.Parallel()

	h, mocks := newQueueHandler(t)
	mocks.orderEventUC.EXPECT().
		RejectOrder(mock.Anything, "T3JkZXI6MTIz", "Out of ingredients").
		Return(nil).
		Once()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/orders/T3JkZXI6MTIz/reject", strings.NewReader(`{"reason": "Out of ingredients"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("T3JkZXI6MTIz")

	require.NoError(t, h.RejectOrder(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
