package commands

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrAssignCarrierCommandIsNotConstructed = errors.New(
		"AssignCarrierCommand must be created via NewAssignCarrierCommand constructor",
	)
)

// AssignCarrierCommand binds a carrier leg to a departure. Assigning over an
// open leg closes it as superseded, keeping at most one open leg at a time.
type AssignCarrierCommand struct { //nolint:recvcheck //using for validation
	departureID  kernel.UUID
	carrier      string
	trackingCode string
	isFinalLeg   bool
	notify       bool
	notifyTarget string

	guard guard.ConstructorGuard
}

// NewAssignCarrierCommand creates a command to assign a carrier leg. When
// notify is set the clients are notified after the assignment, through the
// given target channel.
func NewAssignCarrierCommand(
	departureID kernel.UUID,
	carrier string,
	trackingCode string,
	isFinalLeg bool,
	notify bool,
	notifyTarget string,
) (AssignCarrierCommand, error) {
	if err := departureID.Validate(); err != nil {
		return AssignCarrierCommand{}, err
	}
	if strings.TrimSpace(carrier) == "" {
		return AssignCarrierCommand{}, errs.NewValueIsRequiredError("carrier")
	}
	if strings.TrimSpace(trackingCode) == "" {
		return AssignCarrierCommand{}, errs.NewValueIsRequiredError("trackingCode")
	}
	if notify && strings.TrimSpace(notifyTarget) == "" {
		return AssignCarrierCommand{}, errs.NewValueIsRequiredError("notifyTarget")
	}

	return AssignCarrierCommand{
		departureID:  departureID,
		carrier:      carrier,
		trackingCode: trackingCode,
		isFinalLeg:   isFinalLeg,
		notify:       notify,
		notifyTarget: notifyTarget,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCarrierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCarrierCommandIsNotConstructed)
}

// DepartureID returns the departure receiving the carrier leg.
func (c AssignCarrierCommand) DepartureID() kernel.UUID {
	return c.departureID
}

// Carrier returns the carrier name.
func (c AssignCarrierCommand) Carrier() string {
	return c.carrier
}

// TrackingCode returns the carrier-level tracking code for the leg.
func (c AssignCarrierCommand) TrackingCode() string {
	return c.trackingCode
}

// IsFinalLeg reports whether this leg delivers to the destination.
func (c AssignCarrierCommand) IsFinalLeg() bool {
	return c.isFinalLeg
}

// Notify reports whether clients should be notified after assignment.
func (c AssignCarrierCommand) Notify() bool {
	return c.notify
}

// NotifyTarget returns the notification channel used when Notify is set.
func (c AssignCarrierCommand) NotifyTarget() string {
	return c.notifyTarget
}
