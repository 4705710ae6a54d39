package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrCancelDepartureCommandIsNotConstructed = errors.New(
		"CancelDepartureCommand must be created via NewCancelDepartureCommand constructor",
	)
)

// CancelDepartureCommand cancels a scheduled departure. The acknowledged
// parcel count is the number of assigned parcels the operator confirmed
// seeing; it must match the actual count or the cancellation is rejected.
type CancelDepartureCommand struct { //nolint:recvcheck //using for validation
	departureID         kernel.UUID
	acknowledgedParcels int

	guard guard.ConstructorGuard
}

// NewCancelDepartureCommand creates a command to cancel a departure.
func NewCancelDepartureCommand(departureID kernel.UUID, acknowledgedParcels int) (CancelDepartureCommand, error) {
	if err := departureID.Validate(); err != nil {
		return CancelDepartureCommand{}, err
	}
	if acknowledgedParcels < 0 {
		return CancelDepartureCommand{}, errs.NewValueIsOutOfRangeError(
			"acknowledgedParcels", acknowledgedParcels, 0, nil,
		)
	}

	return CancelDepartureCommand{
		departureID:         departureID,
		acknowledgedParcels: acknowledgedParcels,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelDepartureCommand) Validate() error {
	return c.guard.Validate(ErrCancelDepartureCommandIsNotConstructed)
}

// DepartureID returns the departure to cancel.
func (c CancelDepartureCommand) DepartureID() kernel.UUID {
	return c.departureID
}

// AcknowledgedParcels returns the assigned parcel count the operator confirmed.
func (c CancelDepartureCommand) AcknowledgedParcels() int {
	return c.acknowledgedParcels
}
