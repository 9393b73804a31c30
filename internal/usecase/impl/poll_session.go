package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"orderbell/internal/domain/entity"
	"orderbell/internal/domain/service"
)

// pollSession owns the polling loop for one restaurant scope. Exactly one
// session exists per scope at a time; the queue service tears down the old
// one before starting a new one.
type pollSession struct {
	logger   *slog.Logger
	scope    string
	commerce service.CommerceGateway
	sink     service.DeliverySink
	settings QueueSettings

	cancel     context.CancelFunc
	done       chan struct{}
	refresh    chan struct{}
	visibility chan struct{}

	mu           sync.Mutex
	seen         *seenOrderSet
	visible      bool
	stopped      bool
	lastPolledAt time.Time
}

func newPollSession(
	logger *slog.Logger,
	scope string,
	commerce service.CommerceGateway,
	sink service.DeliverySink,
	settings QueueSettings,
) *pollSession {
	return &pollSession{
		logger:   logger,
		scope:    scope,
		commerce: commerce,
		sink:     sink,
		settings: settings,
		done:       make(chan struct{}),
		refresh:    make(chan struct{}, 1),
		visibility: make(chan struct{}, 1),
		seen:     newSeenOrderSet(settings.SeenCapacity),
		visible:  true,
	}
}

// start launches the polling loop. The session detaches from the caller's
// context; stop is the only way to end it.
func (p *pollSession) start(ctx context.Context) {
	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	p.cancel = cancel
	go p.run(loopCtx)
}

// stop cancels the loop. An in-flight fetch may still complete, but its
// result is discarded at apply time.
func (p *pollSession) stop() {
	p.mu.Lock()
	p.stopped = true
	p.mu.Unlock()

	p.cancel()
	<-p.done
}

func (p *pollSession) run(ctx context.Context) {
	defer close(p.done)

	timer := time.NewTimer(p.interval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			p.poll(ctx, false)
			timer.Reset(p.interval())
		case <-p.refresh:
			// A forced refresh is additive; the standing timer keeps
			// its own schedule.
			p.poll(ctx, true)
		case <-p.visibility:
			// A visibility change re-arms the standing timer at the new
			// cadence without firing a tick of its own.
			timer.Reset(p.interval())
		}
	}
}

// forceRefresh requests an immediate forced fetch. A refresh already
// pending makes this a no-op.
func (p *pollSession) forceRefresh() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

// setVisible adjusts the cadence for the next scheduled tick and nudges
// the loop to re-arm its timer, so an already scheduled tick does not run
// out at the old cadence. Becoming visible does not force an immediate
// fetch.
func (p *pollSession) setVisible(visible bool) {
	p.mu.Lock()
	p.visible = visible
	p.mu.Unlock()

	select {
	case p.visibility <- struct{}{}:
	default:
	}
}

// interval returns the cadence for the next tick. Hidden sessions poll at
// twice the base interval.
func (p *pollSession) interval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.visible {
		return 2 * p.settings.BaseInterval
	}

	return p.settings.BaseInterval
}

// poll fetches the active-orders snapshot and applies it against the seen
// set. Fetch failures are logged; the loop keeps its cadence.
func (p *pollSession) poll(ctx context.Context, bypassCache bool) {
	orders, err := p.commerce.FetchActiveOrders(ctx, service.OrderQuery{
		Scope:       p.scope,
		Statuses:    p.settings.Statuses,
		PageSize:    p.settings.PageSize,
		BypassCache: bypassCache,
	})
	if err != nil {
		p.logger.WarnContext(ctx, "order snapshot fetch failed",
			slog.String("scope", p.scope),
			slog.Any("error", err),
		)

		return
	}

	newOrders := p.apply(orders)
	if len(newOrders) == 0 {
		return
	}

	intent := newOrdersIntent(p.scope, newOrders)
	if err := p.sink.Deliver(ctx, intent); err != nil {
		p.logger.WarnContext(ctx, "new order notification failed",
			slog.String("scope", p.scope),
			slog.Any("error", err),
		)
	}

	p.logger.InfoContext(ctx, "new orders detected",
		slog.String("scope", p.scope),
		slog.Int("count", len(newOrders)),
	)
}

// apply diffs a snapshot against the seen set under the session lock and
// returns the orders not seen before. Snapshots arriving after stop are
// discarded.
func (p *pollSession) apply(orders []entity.Order) []entity.Order {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return nil
	}

	var newOrders []entity.Order
	for _, order := range orders {
		if !p.seen.Has(order.ID) {
			newOrders = append(newOrders, order)
		}
	}
	for _, order := range newOrders {
		p.seen.Add(order.ID)
	}
	p.lastPolledAt = time.Now()

	return newOrders
}

// snapshot reports the session state for the queue API.
func (p *pollSession) snapshot() (visible bool, interval time.Duration, known int, lastPolledAt time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()

	interval = p.settings.BaseInterval
	if !p.visible {
		interval = 2 * p.settings.BaseInterval
	}

	return p.visible, interval, p.seen.Len(), p.lastPolledAt
}

// newOrdersIntent builds the single dashboard intent for a tick: one order
// gets its own message, several get an aggregated one.
func newOrdersIntent(scope string, newOrders []entity.Order) entity.NotificationIntent {
	if len(newOrders) == 1 {
		order := newOrders[0]

		return entity.NotificationIntent{
			Audience:    entity.AudienceRestaurant,
			Channel:     entity.ChannelDashboard,
			Message:     fmt.Sprintf("New Order #%s: %.2f %s, %d items", order.Number, order.Total.Amount, order.Total.Currency, len(order.Lines)),
			DedupeKey:   "order-" + order.ID,
			OrderID:     order.ID,
			OrderNumber: order.Number,
			Recipient:   scope,
		}
	}

	return entity.NotificationIntent{
		Audience:  entity.AudienceRestaurant,
		Channel:   entity.ChannelDashboard,
		Message:   fmt.Sprintf("%d New Orders! You have %d new orders waiting for confirmation.", len(newOrders), len(newOrders)),
		DedupeKey: "multiple-new-orders",
		Recipient: scope,
	}
}
