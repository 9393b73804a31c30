package service

import (
	"context"

	"orderbell/internal/domain/entity"
)

// DriverInventory is the boundary to the external driver pool. Candidates
// come back pre-ranked by the inventory (proximity, rating, suitability);
// callers apply no further sorting.
type DriverInventory interface {
	FindCandidates(ctx context.Context, order *entity.Order, scope string) ([]entity.Driver, error)
}
