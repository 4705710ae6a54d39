package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrAssignParcelsCommandIsNotConstructed = errors.New(
		"AssignParcelsCommand must be created via NewAssignParcelsCommand constructor",
	)
)

// AssignParcelsCommand manually assigns a batch of parcels to a departure.
// Every parcel must be eligible: unassigned (or already on this departure)
// and matching the departure's route corridor and transport exactly.
type AssignParcelsCommand struct { //nolint:recvcheck //using for validation
	departureID kernel.UUID
	parcelIDs   []kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignParcelsCommand creates a command to assign parcels to a departure.
func NewAssignParcelsCommand(departureID kernel.UUID, parcelIDs []kernel.UUID) (AssignParcelsCommand, error) {
	if err := departureID.Validate(); err != nil {
		return AssignParcelsCommand{}, err
	}
	if len(parcelIDs) == 0 {
		return AssignParcelsCommand{}, errs.NewValueIsRequiredError("parcelIDs")
	}
	for _, id := range parcelIDs {
		if err := id.Validate(); err != nil {
			return AssignParcelsCommand{}, err
		}
	}

	return AssignParcelsCommand{
		departureID: departureID,
		parcelIDs:   parcelIDs,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignParcelsCommand) Validate() error {
	return c.guard.Validate(ErrAssignParcelsCommandIsNotConstructed)
}

// DepartureID returns the departure receiving the parcels.
func (c AssignParcelsCommand) DepartureID() kernel.UUID {
	return c.departureID
}

// ParcelIDs returns the parcels to assign.
func (c AssignParcelsCommand) ParcelIDs() []kernel.UUID {
	return c.parcelIDs
}
