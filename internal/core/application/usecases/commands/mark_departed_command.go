package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrMarkDepartedCommandIsNotConstructed = errors.New(
		"MarkDepartedCommand must be created via NewMarkDepartedCommand constructor",
	)
)

// MarkDepartedCommand transitions a scheduled departure to departed, stamping
// the actual departure time. Rejected while no parcel is assigned.
type MarkDepartedCommand struct { //nolint:recvcheck //using for validation
	departureID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDepartedCommand creates a command to mark a departure as departed.
func NewMarkDepartedCommand(departureID kernel.UUID) (MarkDepartedCommand, error) {
	if err := departureID.Validate(); err != nil {
		return MarkDepartedCommand{}, err
	}

	return MarkDepartedCommand{
		departureID: departureID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDepartedCommand) Validate() error {
	return c.guard.Validate(ErrMarkDepartedCommandIsNotConstructed)
}

// DepartureID returns the departure to transition.
func (c MarkDepartedCommand) DepartureID() kernel.UUID {
	return c.departureID
}
