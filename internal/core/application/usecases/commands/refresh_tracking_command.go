package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrRefreshTrackingCommandIsNotConstructed = errors.New(
		"RefreshTrackingCommand must be created via NewRefreshTrackingCommand constructor",
	)
)

// RefreshTrackingCommand pulls the carrier tracking feed for a departure and
// advances the matching parcels' statuses.
type RefreshTrackingCommand struct { //nolint:recvcheck //using for validation
	departureID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRefreshTrackingCommand creates a command to refresh a departure's tracking.
func NewRefreshTrackingCommand(departureID kernel.UUID) (RefreshTrackingCommand, error) {
	if err := departureID.Validate(); err != nil {
		return RefreshTrackingCommand{}, err
	}

	return RefreshTrackingCommand{
		departureID: departureID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RefreshTrackingCommand) Validate() error {
	return c.guard.Validate(ErrRefreshTrackingCommandIsNotConstructed)
}

// DepartureID returns the departure to refresh.
func (c RefreshTrackingCommand) DepartureID() kernel.UUID {
	return c.departureID
}
