package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrMarkArrivedCommandIsNotConstructed = errors.New(
		"MarkArrivedCommand must be created via NewMarkArrivedCommand constructor",
	)
)

// MarkArrivedCommand transitions a departed departure to arrived and moves
// its parcels forward to the arrived status.
type MarkArrivedCommand struct { //nolint:recvcheck //using for validation
	departureID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkArrivedCommand creates a command to mark a departure as arrived.
func NewMarkArrivedCommand(departureID kernel.UUID) (MarkArrivedCommand, error) {
	if err := departureID.Validate(); err != nil {
		return MarkArrivedCommand{}, err
	}

	return MarkArrivedCommand{
		departureID: departureID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkArrivedCommand) Validate() error {
	return c.guard.Validate(ErrMarkArrivedCommandIsNotConstructed)
}

// DepartureID returns the departure to transition.
func (c MarkArrivedCommand) DepartureID() kernel.UUID {
	return c.departureID
}
