package commands

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrReceiveParcelCommandIsNotConstructed = errors.New(
		"ReceiveParcelCommand must be created via NewReceiveParcelCommand constructor",
	)
)

// ReceiveParcelCommand records the warehouse measurements for a pending
// parcel. Pricing happens in the handler, from the configured tariff rate.
type ReceiveParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	weightKg float64
	volumeM3 float64
	quantity int

	guard guard.ConstructorGuard
}

// NewReceiveParcelCommand creates a command to receive a parcel at the
// origin warehouse.
func NewReceiveParcelCommand(
	parcelID kernel.UUID,
	weightKg, volumeM3 float64,
	quantity int,
) (ReceiveParcelCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return ReceiveParcelCommand{}, err
	}
	if weightKg < 0 {
		return ReceiveParcelCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"weightKg", fmt.Errorf("%f is negative", weightKg),
		)
	}
	if volumeM3 < 0 {
		return ReceiveParcelCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"volumeM3", fmt.Errorf("%f is negative", volumeM3),
		)
	}
	if quantity < 0 {
		return ReceiveParcelCommand{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 0, nil)
	}

	return ReceiveParcelCommand{
		parcelID: parcelID,
		weightKg: weightKg,
		volumeM3: volumeM3,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveParcelCommand) Validate() error {
	return c.guard.Validate(ErrReceiveParcelCommandIsNotConstructed)
}

// ParcelID returns the parcel being received.
func (c ReceiveParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// WeightKg returns the measured weight.
func (c ReceiveParcelCommand) WeightKg() float64 {
	return c.weightKg
}

// VolumeM3 returns the measured volume.
func (c ReceiveParcelCommand) VolumeM3() float64 {
	return c.volumeM3
}

// Quantity returns the counted item quantity.
func (c ReceiveParcelCommand) Quantity() int {
	return c.quantity
}
