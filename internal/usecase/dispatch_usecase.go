package usecase

import (
	"context"
	"errors"

	"orderbell/internal/domain/entity"
)

var (
	// ErrNotApplicable is returned for pickup orders that need no driver
	ErrNotApplicable = errors.New("order does not require delivery")

	// ErrNoDriverAvailable is returned when every candidate driver is busy
	ErrNoDriverAvailable = errors.New("no drivers available")

	// ErrAlreadyAssigned is returned when the order already has a driver
	ErrAlreadyAssigned = errors.New("order already has an assigned driver")
)

// DispatchUsecase defines the interface for driver assignment
type DispatchUsecase interface {
	// Assign picks a driver for the order and records the assignment.
	// It returns ErrNotApplicable for orders that need no driver,
	// ErrNoDriverAvailable when every candidate is busy and
	// ErrAlreadyAssigned when the order already has a driver.
	Assign(ctx context.Context, order *entity.Order, scope string) (*entity.Assignment, error)
}
