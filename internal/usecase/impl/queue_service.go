package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"orderbell/internal/domain/entity"
	"orderbell/internal/domain/service"
	"orderbell/internal/usecase"
)

// QueueSettings carries the polling knobs for every session.
type QueueSettings struct {
	BaseInterval time.Duration
	Statuses     []entity.UpstreamStatus
	PageSize     int
	SeenCapacity int
}

type queueService struct {
	logger   *slog.Logger
	commerce service.CommerceGateway
	sink     service.DeliverySink
	settings QueueSettings

	mu       sync.Mutex
	sessions map[string]*pollSession
}

// NewQueueService creates a new queue service instance
func NewQueueService(
	logger *slog.Logger,
	commerce service.CommerceGateway,
	sink service.DeliverySink,
	settings QueueSettings,
) usecase.QueueUsecase {
	return &queueService{
		logger:   logger,
		commerce: commerce,
		sink:     sink,
		settings: settings,
		sessions: make(map[string]*pollSession),
	}
}

// EnablePolling starts a polling session for the scope, tearing down any
// existing one first so a scope never has two live sessions.
func (s *queueService) EnablePolling(ctx context.Context, scope string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.sessions[scope]; ok {
		existing.stop()
	}

	session := newPollSession(s.logger, scope, s.commerce, s.sink, s.settings)
	session.start(ctx)
	s.sessions[scope] = session

	s.logger.InfoContext(ctx, "polling enabled",
		slog.String("scope", scope),
		slog.Duration("interval", s.settings.BaseInterval),
	)

	return nil
}

// DisablePolling stops the session for the scope if one exists
func (s *queueService) DisablePolling(scope string) {
	s.mu.Lock()
	session, ok := s.sessions[scope]
	if ok {
		delete(s.sessions, scope)
	}
	s.mu.Unlock()

	if ok {
		session.stop()
		s.logger.Info("polling disabled", slog.String("scope", scope))
	}
}

// Refresh forces an immediate fetch for the scope, bypassing any
// backend-side cache
func (s *queueService) Refresh(ctx context.Context, scope string) error {
	session, err := s.session(scope)
	if err != nil {
		return err
	}

	session.forceRefresh()

	return nil
}

// FocusRegained behaves like Refresh
func (s *queueService) FocusRegained(ctx context.Context, scope string) error {
	return s.Refresh(ctx, scope)
}

// SetVisibility marks the scope's session visible or hidden
func (s *queueService) SetVisibility(scope string, visible bool) error {
	session, err := s.session(scope)
	if err != nil {
		return err
	}

	session.setVisible(visible)

	return nil
}

// Snapshot returns the current state of the scope's session
func (s *queueService) Snapshot(scope string) (*usecase.QueueSnapshot, error) {
	session, err := s.session(scope)
	if err != nil {
		return nil, err
	}

	visible, interval, known, lastPolledAt := session.snapshot()

	return &usecase.QueueSnapshot{
		Scope:        scope,
		Enabled:      true,
		Visible:      visible,
		NextInterval: interval,
		KnownOrders:  known,
		LastPolledAt: lastPolledAt,
	}, nil
}

// ListOrders fetches the scope's active orders on demand
func (s *queueService) ListOrders(ctx context.Context, scope string, forceRefresh bool) ([]entity.Order, error) {
	return s.commerce.FetchActiveOrders(ctx, service.OrderQuery{
		Scope:       scope,
		Statuses:    s.settings.Statuses,
		PageSize:    s.settings.PageSize,
		BypassCache: forceRefresh,
	})
}

func (s *queueService) session(scope string) (*pollSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[scope]
	if !ok {
		return nil, usecase.ErrSessionNotFound
	}

	return session, nil
}
