package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// The departure back-reference lives here; the departure's package list is
// always a reverse lookup through this repository.
type ParcelRepository interface {
	// Add persists a new parcel aggregate.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by id.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// FindByTrackingCode resolves a scanned code to a parcel, matching the own
	// tracking code or the supplier code case-insensitively. Returns an
	// ObjectNotFoundError when no parcel matches; it never creates one.
	FindByTrackingCode(ctx context.Context, code string) (*parcel.Parcel, error)

	// GetAllUnassignedMatching retrieves the unassigned parcels whose corridor
	// and transport equal the given triple. This is the auto-assign candidate
	// pool.
	GetAllUnassignedMatching(
		ctx context.Context,
		route kernel.Route,
		transport kernel.TransportMode,
	) ([]*parcel.Parcel, error)

	// GetAllByDeparture retrieves the parcels assigned to a departure.
	GetAllByDeparture(ctx context.Context, departureID kernel.UUID) ([]*parcel.Parcel, error)

	// CountByDeparture counts the parcels assigned to a departure.
	CountByDeparture(ctx context.Context, departureID kernel.UUID) (int, error)
}
