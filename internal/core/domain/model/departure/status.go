package departure

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status represents the lifecycle state of a departure. The machine is strictly
// monotonic: a departure never returns to an earlier state, and Arrived and
// Cancelled are terminal.
//
// State transitions:
//
//	Scheduled ──> Departed ──> Arrived
//	    │
//	    └──> Cancelled
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusScheduled is the initial state: the departure is planned and
	// accepting parcel assignments, edits and soft deletion.
	StatusScheduled

	// StatusDeparted means the shipment has physically left. Carrier legs may
	// still change; route and schedule may not.
	StatusDeparted

	// StatusArrived is the terminal happy-path state.
	StatusArrived

	// StatusCancelled is terminal and reachable only from Scheduled.
	StatusCancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusScheduled: "scheduled",
		StatusDeparted:  "departed",
		StatusArrived:   "arrived",
		StatusCancelled: "cancelled",
	}
}

func validStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded
	return map[Status]string{
		StatusScheduled: "scheduled",
		StatusDeparted:  "departed",
		StatusArrived:   "arrived",
		StatusCancelled: "cancelled",
	}
}

// StatusFromString parses the persisted representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range validStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"departure status",
		fmt.Errorf("%q is not a valid departure status", s),
	)
}

// String implements fmt.Stringer; safe on any value.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects values outside the closed enum.
func (s Status) Validate() error {
	if _, ok := validStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"departure status",
			fmt.Errorf("%d is not a valid departure status", s),
		)
	}
	return nil
}

// IsTerminal reports whether no further transition exists from s.
func (s Status) IsTerminal() bool {
	return s == StatusArrived || s == StatusCancelled
}

// Depart transitions Scheduled to Departed.
func (s Status) Depart() (Status, error) {
	if s != StatusScheduled {
		return 0, errs.NewConflictError(
			"departure status",
			fmt.Sprintf("cannot depart from status %s", s),
		)
	}
	return StatusDeparted, nil
}

// Arrive transitions Departed to Arrived.
func (s Status) Arrive() (Status, error) {
	if s != StatusDeparted {
		return 0, errs.NewConflictError(
			"departure status",
			fmt.Sprintf("cannot arrive from status %s", s),
		)
	}
	return StatusArrived, nil
}

// Cancel transitions Scheduled to Cancelled. Once a shipment has departed it
// can no longer be cancelled, only completed.
func (s Status) Cancel() (Status, error) {
	if s != StatusScheduled {
		return 0, errs.NewConflictError(
			"departure status",
			fmt.Sprintf("cannot cancel from status %s", s),
		)
	}
	return StatusCancelled, nil
}
