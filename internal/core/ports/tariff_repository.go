package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/tariff"
)

// TariffRepository is the read-mostly rate catalog. Rates are configured by
// an administrator and consumed by the receive flow.
type TariffRepository interface {
	// Add persists a new tariff entry.
	Add(ctx context.Context, aggregate *tariff.Tariff) error

	// Find resolves the rate for a corridor, transport mode and package type.
	// Returns a NoTariffConfiguredError when no rate is configured; callers
	// surface it as a blocking configuration error, not a not-found.
	Find(
		ctx context.Context,
		route kernel.Route,
		transport kernel.TransportMode,
		packageType string,
	) (*tariff.Tariff, error)
}
