package commands

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrNotifyClientsCommandIsNotConstructed = errors.New(
		"NotifyClientsCommand must be created via NewNotifyClientsCommand constructor",
	)
)

// NotifyClientsCommand pushes a departure update to the clients owning its
// parcels through the configured notification channel.
type NotifyClientsCommand struct { //nolint:recvcheck //using for validation
	departureID kernel.UUID
	target      string

	guard guard.ConstructorGuard
}

// NewNotifyClientsCommand creates a command to notify a departure's clients.
func NewNotifyClientsCommand(departureID kernel.UUID, target string) (NotifyClientsCommand, error) {
	if err := departureID.Validate(); err != nil {
		return NotifyClientsCommand{}, err
	}
	if strings.TrimSpace(target) == "" {
		return NotifyClientsCommand{}, errs.NewValueIsRequiredError("target")
	}

	return NotifyClientsCommand{
		departureID: departureID,
		target:      target,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c NotifyClientsCommand) Validate() error {
	return c.guard.Validate(ErrNotifyClientsCommandIsNotConstructed)
}

// DepartureID returns the departure whose clients are notified.
func (c NotifyClientsCommand) DepartureID() kernel.UUID {
	return c.departureID
}

// Target returns the notification channel.
func (c NotifyClientsCommand) Target() string {
	return c.target
}
