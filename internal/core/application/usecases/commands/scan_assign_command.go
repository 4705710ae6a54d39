package commands

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrScanAssignCommandIsNotConstructed = errors.New(
		"ScanAssignCommand must be created via NewScanAssignCommand constructor",
	)
)

// ScanAssignCommand assigns a parcel to a departure by a scanned code. The
// code matches either the parcel's own tracking code or the supplier's,
// case-insensitively.
type ScanAssignCommand struct { //nolint:recvcheck //using for validation
	departureID kernel.UUID
	code        string

	guard guard.ConstructorGuard
}

// NewScanAssignCommand creates a command to assign a parcel by scanned code.
func NewScanAssignCommand(departureID kernel.UUID, code string) (ScanAssignCommand, error) {
	if err := departureID.Validate(); err != nil {
		return ScanAssignCommand{}, err
	}
	if strings.TrimSpace(code) == "" {
		return ScanAssignCommand{}, errs.NewValueIsRequiredError("code")
	}

	return ScanAssignCommand{
		departureID: departureID,
		code:        strings.TrimSpace(code),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ScanAssignCommand) Validate() error {
	return c.guard.Validate(ErrScanAssignCommandIsNotConstructed)
}

// DepartureID returns the departure receiving the parcel.
func (c ScanAssignCommand) DepartureID() kernel.UUID {
	return c.departureID
}

// Code returns the scanned tracking code.
func (c ScanAssignCommand) Code() string {
	return c.code
}
