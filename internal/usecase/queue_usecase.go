package usecase

import (
	"context"
	"errors"
	"time"

	"orderbell/internal/domain/entity"
)

// ErrSessionNotFound is returned when an operation targets a scope with no
// active polling session
var ErrSessionNotFound = errors.New("no polling session for scope")

// QueueSnapshot reports the state of one polling session
type QueueSnapshot struct {
	Scope        string        `json:"scope"`
	Enabled      bool          `json:"enabled"`
	Visible      bool          `json:"visible"`
	NextInterval time.Duration `json:"next_interval"`
	KnownOrders  int           `json:"known_orders"`
	LastPolledAt time.Time     `json:"last_polled_at"`
}

// QueueUsecase defines the interface for order queue polling sessions
type QueueUsecase interface {
	// EnablePolling starts a polling session for the scope. An existing
	// session for the same scope is torn down first.
	EnablePolling(ctx context.Context, scope string) error

	// DisablePolling stops the session for the scope if one exists
	DisablePolling(scope string)

	// Refresh forces an immediate fetch for the scope, bypassing any
	// backend-side cache. The session's timer keeps its schedule.
	Refresh(ctx context.Context, scope string) error

	// FocusRegained is called when an operator screen comes back into
	// focus; it behaves like Refresh
	FocusRegained(ctx context.Context, scope string) error

	// SetVisibility marks the scope's session visible or hidden. Hidden
	// sessions poll at twice the base interval.
	SetVisibility(scope string, visible bool) error

	// Snapshot returns the current state of the scope's session
	Snapshot(scope string) (*QueueSnapshot, error)

	// ListOrders fetches the scope's active orders on demand. It works
	// without a polling session and never feeds the seen-order set.
	ListOrders(ctx context.Context, scope string, forceRefresh bool) ([]entity.Order, error)
}
