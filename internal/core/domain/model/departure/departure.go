package departure

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

var (
	// ErrDepartureIsNotConstructed is returned when a Departure instance was not
	// created through NewDeparture or RestoreDeparture.
	ErrDepartureIsNotConstructed = errors.New("Departure must be created via NewDeparture constructor")

	// ErrNoParcelsAssigned rejects marking a departure as departed while no
	// parcel is assigned to it.
	ErrNoParcelsAssigned = errs.NewValueIsInvalidErrorWithCause(
		"departure",
		errors.New("cannot depart without assigned parcels"),
	)
)

// Departure is the aggregate root for a consolidated shipment: many client
// parcels grouped on one route and transport mode, moved through a fixed
// lifecycle and handed between carriers leg by leg.
//
// Invariants:
//   - the status machine is monotonic (see Status)
//   - at most one carrier leg is open, and it is the most recent
//   - route and transport edits are rejected once parcels are assigned
//   - a departure with assigned parcels is never removed without the caller
//     acknowledging the exact parcel count
//
// Parcels reference the departure, not the other way around: the package list
// is a reverse lookup owned by the parcel store, so no state is duplicated
// here. Operations that depend on the assigned count (MarkDeparted, Cancel)
// receive it from the caller, which reads it inside the same transaction.
type Departure struct {
	id            kernel.UUID
	route         kernel.Route
	transport     kernel.TransportMode
	scheduledAt   time.Time
	durationDays  int
	notes         string
	notifyClients bool

	status     Status
	departedAt *time.Time
	notified   bool
	notifiedAt *time.Time

	carrierHistory []CarrierAssignment

	// version is the optimistic concurrency token; the repository refuses a
	// write when the stored version has moved past it.
	version int

	isConstructed bool
}

// NewDeparture creates a departure in Scheduled status.
func NewDeparture(
	id kernel.UUID,
	route kernel.Route,
	transport kernel.TransportMode,
	scheduledAt time.Time,
	durationDays int,
	notes string,
	notifyClients bool,
) (*Departure, error) {
	d := &Departure{
		status:        StatusScheduled,
		notes:         notes,
		notifyClients: notifyClients,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setRoute(route),
		d.setTransport(transport),
		d.setScheduledAt(scheduledAt),
		d.setDurationDays(durationDays),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDeparture reconstructs a departure from persistence. The carrier
// history must be supplied in assignment order.
func RestoreDeparture(
	id kernel.UUID,
	route kernel.Route,
	transport kernel.TransportMode,
	scheduledAt time.Time,
	durationDays int,
	notes string,
	notifyClients bool,
	status Status,
	departedAt *time.Time,
	notified bool,
	notifiedAt *time.Time,
	carrierHistory []CarrierAssignment,
	version int,
) (*Departure, error) {
	if err := errors.Join(id.Validate(), route.Validate(), transport.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if version <= 0 {
		return nil, errs.NewVersionIsInvalidError("departure version")
	}

	return &Departure{
		id:             id,
		route:          route,
		transport:      transport,
		scheduledAt:    scheduledAt,
		durationDays:   durationDays,
		notes:          notes,
		notifyClients:  notifyClients,
		status:         status,
		departedAt:     departedAt,
		notified:       notified,
		notifiedAt:     notifiedAt,
		carrierHistory: carrierHistory,
		version:        version,
		isConstructed:  true,
	}, nil
}

// Validate ensures the instance was created through a constructor.
func (d *Departure) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDepartureIsNotConstructed
	}
	return nil
}

// IsEqual compares two departures by identity.
func (d *Departure) IsEqual(other *Departure) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the departure's unique identifier.
func (d *Departure) ID() kernel.UUID {
	return d.id
}

// Route returns the shipping route.
func (d *Departure) Route() kernel.Route {
	return d.route
}

// Transport returns the transport mode.
func (d *Departure) Transport() kernel.TransportMode {
	return d.transport
}

// ScheduledAt returns the planned departure date.
func (d *Departure) ScheduledAt() time.Time {
	return d.scheduledAt
}

// DurationDays returns the estimated transit duration in days.
func (d *Departure) DurationDays() int {
	return d.durationDays
}

// Notes returns the operator's free-text notes.
func (d *Departure) Notes() string {
	return d.notes
}

// NotifyClients reports whether clients should be notified about this departure.
func (d *Departure) NotifyClients() bool {
	return d.notifyClients
}

// Status returns the current lifecycle status.
func (d *Departure) Status() Status {
	return d.status
}

// DepartedAt returns the actual departure timestamp, nil while scheduled.
// Once set it is authoritative over ScheduledAt for duration math.
func (d *Departure) DepartedAt() *time.Time {
	return d.departedAt
}

// Notified reports whether clients have been notified.
func (d *Departure) Notified() bool {
	return d.notified
}

// NotifiedAt returns when clients were notified, nil if never.
func (d *Departure) NotifiedAt() *time.Time {
	return d.notifiedAt
}

// Version returns the optimistic concurrency token.
func (d *Departure) Version() int {
	return d.version
}

// Update mutates route, transport, schedule, duration and notes in place.
// Permitted only while Scheduled. Route corridor or transport changes are
// rejected once parcels are assigned, so existing assignments can never stop
// matching the departure they belong to.
func (d *Departure) Update(
	route kernel.Route,
	transport kernel.TransportMode,
	scheduledAt time.Time,
	durationDays int,
	notes string,
	assignedParcels int,
) error {
	if d.status != StatusScheduled {
		return errs.NewConflictError(
			"departure",
			fmt.Sprintf("cannot edit a departure in status %s", d.status),
		)
	}

	routeChanged := !route.MatchesCorridor(d.route)
	transportChanged := transport != d.transport
	if assignedParcels > 0 && (routeChanged || transportChanged) {
		return errs.NewConflictError(
			"departure",
			fmt.Sprintf("cannot change route or transport with %d assigned parcels", assignedParcels),
		)
	}

	if err := errors.Join(
		d.setRoute(route),
		d.setTransport(transport),
		d.setScheduledAt(scheduledAt),
		d.setDurationDays(durationDays),
	); err != nil {
		return err
	}

	d.notes = notes
	return nil
}

// MarkDeparted transitions the departure to Departed and stamps the actual
// departure time. At least one parcel must be assigned; the count is read by
// the caller within the same transaction.
func (d *Departure) MarkDeparted(assignedParcels int, now time.Time) error {
	if assignedParcels <= 0 {
		return ErrNoParcelsAssigned
	}

	newStatus, err := d.status.Depart()
	if err != nil {
		return err
	}

	d.status = newStatus
	t := now
	d.departedAt = &t
	return nil
}

// MarkArrived transitions the departure to Arrived.
func (d *Departure) MarkArrived() error {
	newStatus, err := d.status.Arrive()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Cancel transitions the departure to Cancelled. When parcels are assigned the
// caller must acknowledge the exact count; a mismatch means the operator saw a
// stale number and the cancellation is rejected.
func (d *Departure) Cancel(assignedParcels, acknowledgedParcels int) error {
	if assignedParcels > 0 && acknowledgedParcels != assignedParcels {
		return errs.NewConflictError(
			"departure",
			fmt.Sprintf("%d assigned parcels, %d acknowledged", assignedParcels, acknowledgedParcels),
		)
	}

	newStatus, err := d.status.Cancel()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// MarkNotified records a successful client notification. Independent of the
// lifecycle status.
func (d *Departure) MarkNotified(now time.Time) {
	d.notified = true
	t := now
	d.notifiedAt = &t
}

// AssignCarrier closes the currently open carrier leg, if any, and opens a new
// one. A carrier may be pre-assigned while Scheduled or swapped while
// Departed; terminal states reject the operation. The departure status itself
// never changes here.
func (d *Departure) AssignCarrier(carrier, trackingCode string, isFinalLeg bool, now time.Time) error {
	if d.status != StatusScheduled && d.status != StatusDeparted {
		return errs.NewConflictError(
			"departure",
			fmt.Sprintf("cannot assign a carrier in status %s", d.status),
		)
	}

	leg, err := NewCarrierAssignment(carrier, trackingCode, isFinalLeg, now)
	if err != nil {
		return err
	}

	if open := d.openLegIndex(); open >= 0 {
		d.carrierHistory[open].close(now, CarrierStatusSuperseded)
	}

	d.carrierHistory = append(d.carrierHistory, leg)
	return nil
}

// CurrentCarrier returns the open carrier leg, or nil when the departure has
// no active carrier.
func (d *Departure) CurrentCarrier() *CarrierAssignment {
	if open := d.openLegIndex(); open >= 0 {
		leg := d.carrierHistory[open]
		return &leg
	}
	return nil
}

// CarrierHistory returns all carrier legs in assignment order. The returned
// slice is a copy.
func (d *Departure) CarrierHistory() []CarrierAssignment {
	history := make([]CarrierAssignment, len(d.carrierHistory))
	copy(history, d.carrierHistory)
	return history
}

// DaysRemaining computes the estimated days left in transit, floored at zero.
// Zero means arrival is imminent; the value is never negative. The actual
// departure time takes precedence over the scheduled date once known.
func (d *Departure) DaysRemaining(now time.Time) int {
	start := d.scheduledAt
	if d.departedAt != nil {
		start = *d.departedAt
	}

	elapsed := int(now.Sub(start).Hours() / 24)
	remaining := d.durationDays - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (d *Departure) openLegIndex() int {
	// scan from the tail: the open leg, when present, is the newest
	for i := len(d.carrierHistory) - 1; i >= 0; i-- {
		if d.carrierHistory[i].IsOpen() {
			return i
		}
	}
	return -1
}

func (d *Departure) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Departure) setRoute(route kernel.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	d.route = route
	return nil
}

func (d *Departure) setTransport(transport kernel.TransportMode) error {
	if err := transport.Validate(); err != nil {
		return err
	}
	d.transport = transport
	return nil
}

func (d *Departure) setScheduledAt(scheduledAt time.Time) error {
	if scheduledAt.IsZero() {
		return errs.NewValueIsRequiredError("scheduled departure date")
	}
	d.scheduledAt = scheduledAt
	return nil
}

func (d *Departure) setDurationDays(durationDays int) error {
	if durationDays <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"estimated duration",
			fmt.Errorf("%d is not greater than 0", durationDays),
		)
	}
	d.durationDays = durationDays
	return nil
}
