package commands

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrRecordPaymentCommandIsNotConstructed = errors.New(
		"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
	)
)

// RecordPaymentCommand registers a client payment against a parcel's billed
// amount. Partial payments accumulate; overpaying is rejected by the domain.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	amount   float64

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment.
func NewRecordPaymentCommand(parcelID kernel.UUID, amount float64) (RecordPaymentCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return RecordPaymentCommand{}, err
	}
	if amount <= 0 {
		return RecordPaymentCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"payment amount", fmt.Errorf("%f is not greater than 0", amount),
		)
	}

	return RecordPaymentCommand{
		parcelID: parcelID,
		amount:   amount,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// ParcelID returns the parcel being paid for.
func (c RecordPaymentCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Amount returns the payment amount.
func (c RecordPaymentCommand) Amount() float64 {
	return c.amount
}
