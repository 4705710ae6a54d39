package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrUpdateDepartureCommandIsNotConstructed = errors.New(
		"UpdateDepartureCommand must be created via NewUpdateDepartureCommand constructor",
	)
)

// UpdateDepartureCommand edits a scheduled departure in place. The expected
// version is the optimistic concurrency token the caller last saw; a stale
// token means another session changed the departure and the edit is rejected.
type UpdateDepartureCommand struct { //nolint:recvcheck //using for validation
	departureID     kernel.UUID
	route           kernel.Route
	transport       kernel.TransportMode
	scheduledAt     time.Time
	durationDays    int
	notes           string
	expectedVersion int

	guard guard.ConstructorGuard
}

// NewUpdateDepartureCommand creates a command to edit a departure's schedule,
// route, transport, duration and notes.
func NewUpdateDepartureCommand(
	departureID kernel.UUID,
	route kernel.Route,
	transport kernel.TransportMode,
	scheduledAt time.Time,
	durationDays int,
	notes string,
	expectedVersion int,
) (UpdateDepartureCommand, error) {
	cmd := UpdateDepartureCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDepartureID(departureID),
		cmd.setRoute(route),
		cmd.setTransport(transport),
		cmd.setScheduledAt(scheduledAt),
		cmd.setDurationDays(durationDays),
		cmd.setExpectedVersion(expectedVersion),
	); err != nil {
		return UpdateDepartureCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDepartureCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDepartureCommandIsNotConstructed)
}

// DepartureID returns the departure being edited.
func (c UpdateDepartureCommand) DepartureID() kernel.UUID {
	return c.departureID
}

// Route returns the new route.
func (c UpdateDepartureCommand) Route() kernel.Route {
	return c.route
}

// Transport returns the new transport mode.
func (c UpdateDepartureCommand) Transport() kernel.TransportMode {
	return c.transport
}

// ScheduledAt returns the new scheduled date.
func (c UpdateDepartureCommand) ScheduledAt() time.Time {
	return c.scheduledAt
}

// DurationDays returns the new estimated duration.
func (c UpdateDepartureCommand) DurationDays() int {
	return c.durationDays
}

// Notes returns the new notes.
func (c UpdateDepartureCommand) Notes() string {
	return c.notes
}

// ExpectedVersion returns the concurrency token the caller last saw.
func (c UpdateDepartureCommand) ExpectedVersion() int {
	return c.expectedVersion
}

func (c *UpdateDepartureCommand) setDepartureID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.departureID = id
	return nil
}

func (c *UpdateDepartureCommand) setRoute(route kernel.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	c.route = route
	return nil
}

func (c *UpdateDepartureCommand) setTransport(transport kernel.TransportMode) error {
	if err := transport.Validate(); err != nil {
		return err
	}
	c.transport = transport
	return nil
}

func (c *UpdateDepartureCommand) setScheduledAt(scheduledAt time.Time) error {
	if scheduledAt.IsZero() {
		return errs.NewValueIsRequiredError("scheduled departure date")
	}
	c.scheduledAt = scheduledAt
	return nil
}

func (c *UpdateDepartureCommand) setDurationDays(durationDays int) error {
	if durationDays <= 0 {
		return errs.NewValueIsInvalidError("estimated duration")
	}
	c.durationDays = durationDays
	return nil
}

func (c *UpdateDepartureCommand) setExpectedVersion(version int) error {
	if version <= 0 {
		return errs.NewVersionIsInvalidError("expected version")
	}
	c.expectedVersion = version
	return nil
}
