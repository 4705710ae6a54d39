package parcel

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status is the parcel's own lifecycle, progressing independently of the
// departure it may be assigned to. Assignment and unassignment never touch it.
//
//	Pending -> Received -> InTransit -> Customs -> Arrived -> Delivered
//
// Progression is strictly forward, one step at a time.
type Status int

const (
	// StatusUnknown catches uninitialized values.
	StatusUnknown Status = iota

	// StatusPending: registered at intake, not yet measured at the warehouse.
	StatusPending

	// StatusReceived: measured and priced at the origin warehouse.
	StatusReceived

	// StatusInTransit: travelling with the departure.
	StatusInTransit

	// StatusCustoms: held in customs clearance.
	StatusCustoms

	// StatusArrived: at the destination warehouse.
	StatusArrived

	// StatusDelivered: handed to the client. Terminal.
	StatusDelivered
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusReceived:  "received",
		StatusInTransit: "in_transit",
		StatusCustoms:   "customs",
		StatusArrived:   "arrived",
		StatusDelivered: "delivered",
	}
}

func validStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded
	return map[Status]string{
		StatusPending:   "pending",
		StatusReceived:  "received",
		StatusInTransit: "in_transit",
		StatusCustoms:   "customs",
		StatusArrived:   "arrived",
		StatusDelivered: "delivered",
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
		"parcel status",
		fmt.Errorf("%q is not a valid parcel status", s),
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
			"parcel status",
			fmt.Errorf("%d is not a valid parcel status", s),
		)
	}
	return nil
}

// Next returns the status following s in the fixed progression.
// Delivered has no successor.
func (s Status) Next() (Status, error) {
	switch s {
	case StatusPending:
		return StatusReceived, nil
	case StatusReceived:
		return StatusInTransit, nil
	case StatusInTransit:
		return StatusCustoms, nil
	case StatusCustoms:
		return StatusArrived, nil
	case StatusArrived:
		return StatusDelivered, nil
	default:
		return 0, errs.NewConflictError(
			"parcel status",
			fmt.Sprintf("no transition from status %s", s),
		)
	}
}
