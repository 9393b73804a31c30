package commerce

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"orderbell/config"
	"orderbell/internal/domain/entity"
	"orderbell/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) service.CommerceGateway {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewClient(&config.CommerceConfig{
		Endpoint: server.URL,
		Token:    "test-token",
	}, logger)
}

func TestClient_FetchActiveOrders(t *testing.T) {
	var gotRequest graphqlRequest
	var gotAuth, gotCacheControl string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotCacheControl = r.Header.Get("Cache-Control")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))

		_, _ = w.Write([]byte(`{
			"data": {
				"orders": {
					"edges": [
						{
							"node": {
								"id": "T3JkZXI6MQ==",
								"number": "1042",
								"status": "UNCONFIRMED",
								"created": "2025-06-01T12:00:00Z",
								"userEmail": "diner@example.com",
								"shippingMethodName": "Standard Delivery",
								"total": {"gross": {"amount": 42.5, "currency": "USD"}},
								"billingAddress": {"firstName": "Ada", "lastName": "Lovelace"},
								"shippingAddress": {"streetAddress1": "456 Elm St", "city": "Springfield", "postalCode": "62704"},
								"lines": [{"productName": "Pad Thai", "quantity": 2, "unitPrice": {"gross": {"amount": 12.5, "currency": "USD"}}}],
								"metadata": [{"key": "restaurant_status", "value": "accepted"}],
								"channel": {"id": "Q2hhbm5lbDox", "slug": "downtown-bistro"}
							}
						}
					]
				}
			}
		}`))
	})

	orders, err := client.FetchActiveOrders(context.Background(), service.OrderQuery{
		Scope:       "downtown-bistro",
		Statuses:    []entity.UpstreamStatus{entity.StatusUnconfirmed, entity.StatusUnfulfilled},
		PageSize:    20,
		BypassCache: true,
	})

	require.NoError(t, err)
	require.Len(t, orders, 1)

	order := orders[0]
	assert.Equal(t, "1042", order.Number)
	assert.Equal(t, entity.StatusUnconfirmed, order.Status)
	assert.Equal(t, "Ada Lovelace", order.CustomerName)
	assert.Equal(t, "diner@example.com", order.CustomerEmail)
	require.NotNil(t, order.ShippingAddress)
	assert.Equal(t, "456 Elm St, Springfield, 62704", order.ShippingAddress.String())
	require.Len(t, order.Lines, 1)
	assert.Equal(t, "Pad Thai", order.Lines[0].ProductName)
	assert.Equal(t, "accepted", order.Metadata["restaurant_status"])
	assert.Equal(t, "downtown-bistro", order.ChannelSlug)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "no-cache", gotCacheControl)
	assert.Equal(t, "RestaurantOrderQueue", gotRequest.OperationName)
	assert.Equal(t, "downtown-bistro", gotRequest.Variables["channel"])
	assert.Equal(t, float64(20), gotRequest.Variables["first"])
}

func TestClient_FetchActiveOrders_NoBypassOmitsCacheControl(t *testing.T) {
	var gotCacheControl string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotCacheControl = r.Header.Get("Cache-Control")
		_, _ = w.Write([]byte(`{"data": {"orders": {"edges": []}}}`))
	})

	_, err := client.FetchActiveOrders(context.Background(), service.OrderQuery{Scope: "downtown-bistro"})

	require.NoError(t, err)
	assert.Empty(t, gotCacheControl)
}

func TestClient_AcceptOrder(t *testing.T) {
	var gotRequest graphqlRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))
		_, _ = w.Write([]byte(`{"data": {"updateMetadata": {"item": {"metadata": []}, "errors": []}}}`))
	})

	err := client.AcceptOrder(context.Background(), "order-1", "30")

	require.NoError(t, err)
	assert.Equal(t, "AcceptRestaurantOrder", gotRequest.OperationName)
	assert.Equal(t, "30", gotRequest.Variables["preparationTime"])
}

func TestClient_GraphQLErrorsSurface(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors": [{"message": "order not found"}]}`))
	})

	err := client.RejectOrder(context.Background(), "order-1", "out of stock")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "order not found")
}

func TestClient_HTTPErrorSurfaces(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := client.AcceptOrder(context.Background(), "order-1", "30")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
