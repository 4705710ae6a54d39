package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateDepartureCommandIsNotConstructed = errors.New(
		"CreateDepartureCommand must be created via NewCreateDepartureCommand constructor",
	)
)

// CreateDepartureCommand represents a request to schedule a new consolidated
// shipment. When auto-assign is requested the handler sweeps all currently
// unassigned parcels matching the exact route and transport and binds them to
// the new departure in the same transaction.
//
// Example:
//
//	route, _ := kernel.NewRoute("CN", "Guangzhou", "CM")
//	cmd, err := NewCreateDepartureCommand(
//	    kernel.NewUUID(), route, kernel.TransportAirExpress,
//	    time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 10, "easter batch", true, true,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid departure data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	fmt.Printf("departure created, %d parcels auto-assigned", result.AssignedCount)
type CreateDepartureCommand struct { //nolint:recvcheck //using for validation
	departureID   kernel.UUID
	route         kernel.Route
	transport     kernel.TransportMode
	scheduledAt   time.Time
	durationDays  int
	notes         string
	notifyClients bool
	autoAssign    bool

	guard guard.ConstructorGuard
}

// NewCreateDepartureCommand creates a command to schedule a departure.
// Route, transport and scheduled date are required; duration must be positive.
func NewCreateDepartureCommand(
	departureID kernel.UUID,
	route kernel.Route,
	transport kernel.TransportMode,
	scheduledAt time.Time,
	durationDays int,
	notes string,
	notifyClients bool,
	autoAssign bool,
) (CreateDepartureCommand, error) {
	cmd := CreateDepartureCommand{
		notes:         notes,
		notifyClients: notifyClients,
		autoAssign:    autoAssign,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDepartureID(departureID),
		cmd.setRoute(route),
		cmd.setTransport(transport),
		cmd.setScheduledAt(scheduledAt),
		cmd.setDurationDays(durationDays),
	); err != nil {
		return CreateDepartureCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDepartureCommand) Validate() error {
	return c.guard.Validate(ErrCreateDepartureCommandIsNotConstructed)
}

// DepartureID returns the identifier for the new departure.
func (c CreateDepartureCommand) DepartureID() kernel.UUID {
	return c.departureID
}

// Route returns the shipping route.
func (c CreateDepartureCommand) Route() kernel.Route {
	return c.route
}

// Transport returns the transport mode.
func (c CreateDepartureCommand) Transport() kernel.TransportMode {
	return c.transport
}

// ScheduledAt returns the planned departure date.
func (c CreateDepartureCommand) ScheduledAt() time.Time {
	return c.scheduledAt
}

// DurationDays returns the estimated transit duration.
func (c CreateDepartureCommand) DurationDays() int {
	return c.durationDays
}

// Notes returns the operator's notes.
func (c CreateDepartureCommand) Notes() string {
	return c.notes
}

// NotifyClients reports whether clients should be notified about this departure.
func (c CreateDepartureCommand) NotifyClients() bool {
	return c.notifyClients
}

// AutoAssign reports whether matching unassigned parcels should be swept in.
func (c CreateDepartureCommand) AutoAssign() bool {
	return c.autoAssign
}

func (c *CreateDepartureCommand) setDepartureID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.departureID = id
	return nil
}

func (c *CreateDepartureCommand) setRoute(route kernel.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	c.route = route
	return nil
}

func (c *CreateDepartureCommand) setTransport(transport kernel.TransportMode) error {
	if err := transport.Validate(); err != nil {
		return err
	}
	c.transport = transport
	return nil
}

func (c *CreateDepartureCommand) setScheduledAt(scheduledAt time.Time) error {
	if scheduledAt.IsZero() {
		return errs.NewValueIsRequiredError("scheduled departure date")
	}
	c.scheduledAt = scheduledAt
	return nil
}

func (c *CreateDepartureCommand) setDurationDays(durationDays int) error {
	if durationDays <= 0 {
		return errs.NewValueIsInvalidError("estimated duration")
	}
	c.durationDays = durationDays
	return nil
}
