package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrRemoveParcelCommandIsNotConstructed = errors.New(
		"RemoveParcelCommand must be created via NewRemoveParcelCommand constructor",
	)
)

// RemoveParcelCommand takes a parcel off a departure, returning it to the
// unassigned pool. The parcel's own lifecycle status is untouched.
type RemoveParcelCommand struct { //nolint:recvcheck //using for validation
	departureID kernel.UUID
	parcelID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveParcelCommand creates a command to unassign a parcel.
func NewRemoveParcelCommand(departureID, parcelID kernel.UUID) (RemoveParcelCommand, error) {
	if err := errors.Join(departureID.Validate(), parcelID.Validate()); err != nil {
		return RemoveParcelCommand{}, err
	}

	return RemoveParcelCommand{
		departureID: departureID,
		parcelID:    parcelID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveParcelCommand) Validate() error {
	return c.guard.Validate(ErrRemoveParcelCommandIsNotConstructed)
}

// DepartureID returns the departure the parcel is removed from.
func (c RemoveParcelCommand) DepartureID() kernel.UUID {
	return c.departureID
}

// ParcelID returns the parcel to unassign.
func (c RemoveParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}
