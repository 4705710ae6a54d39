package ports

import (
	"context"

	"freight/internal/core/domain/model/departure"
	"freight/internal/core/domain/model/kernel"
)

// DepartureRepository defines the persistence contract for departure
// aggregates, including the ordered carrier assignment history.
type DepartureRepository interface {
	// Add persists a new departure aggregate.
	Add(ctx context.Context, aggregate *departure.Departure) error

	// Update persists changes to an existing departure. The write is guarded
	// by the aggregate's version: when the stored version has moved past it,
	// Update fails with a ConflictError and nothing is written.
	Update(ctx context.Context, aggregate *departure.Departure) error

	// Get retrieves a departure by id with its full carrier history.
	Get(ctx context.Context, id kernel.UUID) (*departure.Departure, error)

	// GetAllInDepartedStatus retrieves departures currently in transit.
	// Used by the tracking refresh job.
	GetAllInDepartedStatus(ctx context.Context) ([]*departure.Departure, error)
}
