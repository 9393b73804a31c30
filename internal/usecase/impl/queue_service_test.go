package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"orderbell/internal/domain/entity"
	"orderbell/internal/domain/service"
	mockSvc "orderbell/internal/mocks/service"
	"orderbell/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testQueueSettings() QueueSettings {
	return QueueSettings{
		BaseInterval: 15 * time.Second,
		Statuses:     []entity.UpstreamStatus{entity.StatusUnconfirmed, entity.StatusUnfulfilled},
		PageSize:     20,
		SeenCapacity: 100,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func snapshotOrders(ids ...string) []entity.Order {
	orders := make([]entity.Order, 0, len(ids))
	for _, id := range ids {
		orders = append(orders, entity.Order{
			ID:     id,
			Number: "n-" + id,
			Total:  entity.Money{Amount: 10, Currency: "USD"},
		})
	}

	return orders
}

func TestPollSession_ApplyDetectsNewOrdersOnce(t *testing.T) {
	session := newPollSession(testLogger(), "downtown-bistro", mockSvc.NewMockCommerceGateway(t), mockSvc.NewMockDeliverySink(t), testQueueSettings())

	// S1: two orders, both new.
	first := session.apply(snapshotOrders("a", "b"))
	assert.Len(t, first, 2)

	// S2: the same two plus two arrivals; only the arrivals count.
	second := session.apply(snapshotOrders("a", "b", "c", "d"))
	require.Len(t, second, 2)
	assert.Equal(t, "c", second[0].ID)
	assert.Equal(t, "d", second[1].ID)

	// S3 == S2: nothing new.
	third := session.apply(snapshotOrders("a", "b", "c", "d"))
	assert.Empty(t, third)
}

func TestPollSession_ApplyAfterStopIsDiscarded(t *testing.T) {
	session := newPollSession(testLogger(), "downtown-bistro", mockSvc.NewMockCommerceGateway(t), mockSvc.NewMockDeliverySink(t), testQueueSettings())
	session.mu.Lock()
	session.stopped = true
	session.mu.Unlock()

	got := session.apply(snapshotOrders("a"))

	assert.Empty(t, got)
	assert.False(t, session.seen.Has("a"))
}

func TestPollSession_HiddenDoublesInterval(t *testing.T) {
	session := newPollSession(testLogger(), "downtown-bistro", mockSvc.NewMockCommerceGateway(t), mockSvc.NewMockDeliverySink(t), testQueueSettings())

	assert.Equal(t, 15*time.Second, session.interval())

	session.setVisible(false)
	assert.Equal(t, 30*time.Second, session.interval())

	// Becoming visible again restores the base cadence for the next tick.
	session.setVisible(true)
	assert.Equal(t, 15*time.Second, session.interval())
}

func TestPollSession_BecomingVisibleReschedulesNextTick(t *testing.T) {
	commerce := mockSvc.NewMockCommerceGateway(t)
	settings := testQueueSettings()
	settings.BaseInterval = 200 * time.Millisecond

	ticks := make(chan time.Time, 8)
	commerce.EXPECT().
		FetchActiveOrders(mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ service.OrderQuery) {
			select {
			case ticks <- time.Now():
			default:
			}
		}).
		Return(nil, nil)

	session := newPollSession(testLogger(), "downtown-bistro", commerce, mockSvc.NewMockDeliverySink(t), settings)
	session.setVisible(false)
	session.start(context.Background())
	defer session.stop()

	var first time.Time
	select {
	case first = <-ticks:
	case <-time.After(5 * time.Second):
		t.Fatal("hidden tick never arrived")
	}

	// The hidden cadence would schedule the next tick 400ms out; becoming
	// visible must re-arm the standing timer at the base cadence instead
	// of letting the stale schedule run out.
	session.setVisible(true)

	select {
	case second := <-ticks:
		assert.Less(t, second.Sub(first), 350*time.Millisecond)
	case <-time.After(5 * time.Second):
		t.Fatal("visible tick never arrived")
	}
}

func TestNewOrdersIntent_SingleOrder(t *testing.T) {
	orders := snapshotOrders("a")
	orders[0].Number = "1042"
	orders[0].Lines = []entity.OrderLine{{ProductName: "Pad Thai", Quantity: 1}}

	intent := newOrdersIntent("downtown-bistro", orders)

	assert.Equal(t, entity.AudienceRestaurant, intent.Audience)
	assert.Equal(t, entity.ChannelDashboard, intent.Channel)
	assert.Contains(t, intent.Message, "New Order #1042")
	assert.Equal(t, "order-a", intent.DedupeKey)
	assert.Equal(t, "downtown-bistro", intent.Recipient)
}

func TestNewOrdersIntent_AggregatesMultipleOrders(t *testing.T) {
	intent := newOrdersIntent("downtown-bistro", snapshotOrders("a", "b", "c"))

	assert.Contains(t, intent.Message, "3 New Orders")
	assert.Equal(t, "multiple-new-orders", intent.DedupeKey)
	assert.Empty(t, intent.OrderID)
}

func TestQueueService_RefreshForcesCacheBypass(t *testing.T) {
	commerce := mockSvc.NewMockCommerceGateway(t)
	sink := mockSvc.NewMockDeliverySink(t)
	settings := testQueueSettings()
	settings.BaseInterval = time.Hour // keep the standing timer out of the test

	queue := NewQueueService(testLogger(), commerce, sink, settings)
	ctx := context.Background()

	fetched := make(chan service.OrderQuery, 1)
	commerce.EXPECT().
		FetchActiveOrders(mock.Anything, mock.Anything).
		Run(func(_ context.Context, query service.OrderQuery) {
			fetched <- query
		}).
		Return(nil, nil)

	require.NoError(t, queue.EnablePolling(ctx, "downtown-bistro"))
	defer queue.DisablePolling("downtown-bistro")

	require.NoError(t, queue.Refresh(ctx, "downtown-bistro"))

	select {
	case query := <-fetched:
		assert.Equal(t, "downtown-bistro", query.Scope)
		assert.True(t, query.BypassCache)
		assert.Equal(t, 20, query.PageSize)
		assert.Equal(t, []entity.UpstreamStatus{entity.StatusUnconfirmed, entity.StatusUnfulfilled}, query.Statuses)
	case <-time.After(5 * time.Second):
		t.Fatal("forced refresh never fetched")
	}
}

func TestQueueService_TimerTickFetchesWithoutBypass(t *testing.T) {
	commerce := mockSvc.NewMockCommerceGateway(t)
	sink := mockSvc.NewMockDeliverySink(t)
	settings := testQueueSettings()
	settings.BaseInterval = 20 * time.Millisecond

	queue := NewQueueService(testLogger(), commerce, sink, settings)
	ctx := context.Background()

	fetched := make(chan service.OrderQuery, 16)
	commerce.EXPECT().
		FetchActiveOrders(mock.Anything, mock.Anything).
		Run(func(_ context.Context, query service.OrderQuery) {
			select {
			case fetched <- query:
			default:
			}
		}).
		Return(nil, nil)

	require.NoError(t, queue.EnablePolling(ctx, "downtown-bistro"))
	defer queue.DisablePolling("downtown-bistro")

	select {
	case query := <-fetched:
		assert.False(t, query.BypassCache)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduled tick never fetched")
	}
}

func TestQueueService_NewOrdersEmitSingleAggregatedIntent(t *testing.T) {
	commerce := mockSvc.NewMockCommerceGateway(t)
	sink := mockSvc.NewMockDeliverySink(t)
	settings := testQueueSettings()
	settings.BaseInterval = time.Hour

	queue := NewQueueService(testLogger(), commerce, sink, settings)
	ctx := context.Background()

	commerce.EXPECT().
		FetchActiveOrders(mock.Anything, mock.Anything).
		Return(snapshotOrders("a", "b"), nil)

	delivered := make(chan entity.NotificationIntent, 1)
	sink.EXPECT().
		Deliver(mock.Anything, mock.AnythingOfType("entity.NotificationIntent")).
		Run(func(_ context.Context, intent entity.NotificationIntent) {
			delivered <- intent
		}).
		Return(nil).
		Once()

	require.NoError(t, queue.EnablePolling(ctx, "downtown-bistro"))
	defer queue.DisablePolling("downtown-bistro")

	require.NoError(t, queue.Refresh(ctx, "downtown-bistro"))

	select {
	case intent := <-delivered:
		assert.Contains(t, intent.Message, "2 New Orders")
	case <-time.After(5 * time.Second):
		t.Fatal("aggregated intent never delivered")
	}
}

func TestQueueService_OperationsRequireSession(t *testing.T) {
	queue := NewQueueService(testLogger(), mockSvc.NewMockCommerceGateway(t), mockSvc.NewMockDeliverySink(t), testQueueSettings())
	ctx := context.Background()

	assert.ErrorIs(t, queue.Refresh(ctx, "nowhere"), usecase.ErrSessionNotFound)
	assert.ErrorIs(t, queue.FocusRegained(ctx, "nowhere"), usecase.ErrSessionNotFound)
	assert.ErrorIs(t, queue.SetVisibility("nowhere", false), usecase.ErrSessionNotFound)

	snapshot, err := queue.Snapshot("nowhere")
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	assert.Nil(t, snapshot)
}

func TestQueueService_SnapshotReportsSessionState(t *testing.T) {
	commerce := mockSvc.NewMockCommerceGateway(t)
	settings := testQueueSettings()
	settings.BaseInterval = time.Hour

	queue := NewQueueService(testLogger(), commerce, mockSvc.NewMockDeliverySink(t), settings)
	ctx := context.Background()

	require.NoError(t, queue.EnablePolling(ctx, "downtown-bistro"))
	defer queue.DisablePolling("downtown-bistro")

	require.NoError(t, queue.SetVisibility("downtown-bistro", false))

	snapshot, err := queue.Snapshot("downtown-bistro")

	require.NoError(t, err)
	assert.Equal(t, "downtown-bistro", snapshot.Scope)
	assert.True(t, snapshot.Enabled)
	assert.False(t, snapshot.Visible)
	assert.Equal(t, 2*time.Hour, snapshot.NextInterval)
	assert.Zero(t, snapshot.KnownOrders)
}

func TestQueueService_EnableReplacesExistingSession(t *testing.T) {
	commerce := mockSvc.NewMockCommerceGateway(t)
	settings := testQueueSettings()
	settings.BaseInterval = time.Hour

	queue := NewQueueService(testLogger(), commerce, mockSvc.NewMockDeliverySink(t), settings)
	ctx := context.Background()

	require.NoError(t, queue.EnablePolling(ctx, "downtown-bistro"))
	require.NoError(t, queue.EnablePolling(ctx, "downtown-bistro"))
	defer queue.DisablePolling("downtown-bistro")

	// The replacement session starts with a fresh seen set.
	snapshot, err := queue.Snapshot("downtown-bistro")
	require.NoError(t, err)
	assert.Zero(t, snapshot.KnownOrders)
}

func TestQueueService_DisableIsIdempotent(t *testing.T) {
	queue := NewQueueService(testLogger(), mockSvc.NewMockCommerceGateway(t), mockSvc.NewMockDeliverySink(t), testQueueSettings())

	queue.DisablePolling("downtown-bistro")
	queue.DisablePolling("downtown-bistro")
}

func TestQueueService_ScopesAreIndependent(t *testing.T) {
	commerce := mockSvc.NewMockCommerceGateway(t)
	settings := testQueueSettings()
	settings.BaseInterval = time.Hour

	queue := NewQueueService(testLogger(), commerce, mockSvc.NewMockDeliverySink(t), settings)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, queue.EnablePolling(ctx, fmt.Sprintf("restaurant-%d", i)))
	}
	defer func() {
		for i := 0; i < 3; i++ {
			queue.DisablePolling(fmt.Sprintf("restaurant-%d", i))
		}
	}()

	queue.DisablePolling("restaurant-1")

	_, err := queue.Snapshot("restaurant-1")
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)

	_, err = queue.Snapshot("restaurant-0")
	assert.NoError(t, err)

	_, err = queue.Snapshot("restaurant-2")
	assert.NoError(t, err)
}

func TestQueueService_ListOrdersWorksWithoutSession(t *testing.T) {
	commerce := mockSvc.NewMockCommerceGateway(t)

	queue := NewQueueService(testLogger(), commerce, mockSvc.NewMockDeliverySink(t), testQueueSettings())

	commerce.EXPECT().
		FetchActiveOrders(mock.Anything, service.OrderQuery{
			Scope:       "downtown-bistro",
			Statuses:    []entity.UpstreamStatus{entity.StatusUnconfirmed, entity.StatusUnfulfilled},
			PageSize:    20,
			BypassCache: true,
		}).
		Return(snapshotOrders("order-1", "order-2"), nil).
		Once()

	orders, err := queue.ListOrders(context.Background(), "downtown-bistro", true)

	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
