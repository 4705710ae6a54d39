package departure

import (
	"time"

	"freight/internal/pkg/errs"
)

// CarrierStatusSuperseded is the final status stamped on a carrier leg when a
// new carrier is assigned over it.
const CarrierStatusSuperseded = "superseded"

// CarrierAssignment is one leg of a departure's journey: a carrier holding the
// shipment over a time range. The open leg (no To date) is the current one;
// the invariant maintained by the aggregate is that at most one leg is open
// and it is always the most recently assigned.
type CarrierAssignment struct {
	carrier      string
	trackingCode string
	isFinalLeg   bool
	from         time.Time
	to           *time.Time
	finalStatus  string
}

// NewCarrierAssignment opens a new carrier leg starting at from.
func NewCarrierAssignment(carrier, trackingCode string, isFinalLeg bool, from time.Time) (CarrierAssignment, error) {
	if carrier == "" {
		return CarrierAssignment{}, errs.NewValueIsRequiredError("carrier name")
	}
	if trackingCode == "" {
		return CarrierAssignment{}, errs.NewValueIsRequiredError("carrier tracking code")
	}

	return CarrierAssignment{
		carrier:      carrier,
		trackingCode: trackingCode,
		isFinalLeg:   isFinalLeg,
		from:         from,
	}, nil
}

// RestoreCarrierAssignment reconstructs a leg from persistence without
// re-running construction rules.
func RestoreCarrierAssignment(
	carrier, trackingCode string,
	isFinalLeg bool,
	from time.Time,
	to *time.Time,
	finalStatus string,
) CarrierAssignment {
	return CarrierAssignment{
		carrier:      carrier,
		trackingCode: trackingCode,
		isFinalLeg:   isFinalLeg,
		from:         from,
		to:           to,
		finalStatus:  finalStatus,
	}
}

// Carrier returns the carrier name for this leg.
func (c CarrierAssignment) Carrier() string {
	return c.carrier
}

// TrackingCode returns the carrier-issued tracking code for this leg.
func (c CarrierAssignment) TrackingCode() string {
	return c.trackingCode
}

// IsFinalLeg reports whether this leg was marked as the last before delivery.
func (c CarrierAssignment) IsFinalLeg() bool {
	return c.isFinalLeg
}

// From returns the start of the leg.
func (c CarrierAssignment) From() time.Time {
	return c.from
}

// To returns the end of the leg, or nil while the leg is open.
func (c CarrierAssignment) To() *time.Time {
	return c.to
}

// FinalStatus returns the terminal status stamped when the leg was closed,
// empty while open.
func (c CarrierAssignment) FinalStatus() string {
	return c.finalStatus
}

// IsOpen reports whether the leg has not been closed yet.
func (c CarrierAssignment) IsOpen() bool {
	return c.to == nil
}

// close stamps the end of the leg. Only the aggregate calls this, when a new
// carrier supersedes the current one.
func (c *CarrierAssignment) close(at time.Time, finalStatus string) {
	t := at
	c.to = &t
	c.finalStatus = finalStatus
}
