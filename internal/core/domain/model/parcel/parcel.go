package parcel

import (
	"errors"
	"fmt"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
// through NewParcel or RestoreParcel.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

// Parcel is a client package moving through the freight pipeline. It is
// independently owned by the parcel store; when grouped into a departure it
// carries a back-reference to it, and the departure's package list is realized
// as a reverse lookup over this reference.
//
// Invariants:
//   - an assigned parcel's route corridor and transport always equal its
//     departure's; AssignTo enforces this at assignment time
//   - assignment and unassignment are idempotent and never touch the parcel's
//     own status
//   - the status progresses forward only
type Parcel struct {
	id                   kernel.UUID
	trackingCode         string
	supplierTrackingCode string
	clientRef            string
	description          string
	route                kernel.Route
	transport            kernel.TransportMode
	packageType          string
	billingUnit          BillingUnit

	weightKg float64
	volumeM3 float64
	quantity int

	amount     float64
	paidAmount float64

	status      Status
	departureID *kernel.UUID

	isConstructed bool
}

// NewParcel registers a parcel at intake, in Pending status with no
// measurements and no departure.
func NewParcel(
	id kernel.UUID,
	trackingCode string,
	supplierTrackingCode string,
	clientRef string,
	description string,
	route kernel.Route,
	transport kernel.TransportMode,
	packageType string,
	billingUnit BillingUnit,
) (*Parcel, error) {
	p := &Parcel{
		supplierTrackingCode: supplierTrackingCode,
		description:          description,
		status:               StatusPending,
		isConstructed:        true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingCode(trackingCode),
		p.setClientRef(clientRef),
		p.setRoute(route),
		p.setTransport(transport),
		p.setPackageType(packageType),
		p.setBillingUnit(billingUnit),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence.
func RestoreParcel(
	id kernel.UUID,
	trackingCode string,
	supplierTrackingCode string,
	clientRef string,
	description string,
	route kernel.Route,
	transport kernel.TransportMode,
	packageType string,
	billingUnit BillingUnit,
	weightKg, volumeM3 float64,
	quantity int,
	amount, paidAmount float64,
	status Status,
	departureID *kernel.UUID,
) (*Parcel, error) {
	if err := errors.Join(
		id.Validate(), route.Validate(), transport.Validate(), billingUnit.Validate(), status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Parcel{
		id:                   id,
		trackingCode:         trackingCode,
		supplierTrackingCode: supplierTrackingCode,
		clientRef:            clientRef,
		description:          description,
		route:                route,
		transport:            transport,
		packageType:          packageType,
		billingUnit:          billingUnit,
		weightKg:             weightKg,
		volumeM3:             volumeM3,
		quantity:             quantity,
		amount:               amount,
		paidAmount:           paidAmount,
		status:               status,
		departureID:          departureID,
		isConstructed:        true,
	}, nil
}

// Validate ensures the instance was created through a constructor.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by identity.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingCode returns the human tracking code issued at intake.
func (p *Parcel) TrackingCode() string {
	return p.trackingCode
}

// SupplierTrackingCode returns the external supplier code, empty if none.
func (p *Parcel) SupplierTrackingCode() string {
	return p.supplierTrackingCode
}

// ClientRef returns the owning client's reference.
func (p *Parcel) ClientRef() string {
	return p.clientRef
}

// Description returns the free-text contents description.
func (p *Parcel) Description() string {
	return p.description
}

// Route returns the parcel's shipping route.
func (p *Parcel) Route() kernel.Route {
	return p.route
}

// Transport returns the transport mode the parcel travels by.
func (p *Parcel) Transport() kernel.TransportMode {
	return p.transport
}

// PackageType returns the pricing category of the parcel.
func (p *Parcel) PackageType() string {
	return p.packageType
}

// BillingUnit returns which measured value is authoritative for pricing.
func (p *Parcel) BillingUnit() BillingUnit {
	return p.billingUnit
}

// WeightKg returns the measured weight.
func (p *Parcel) WeightKg() float64 {
	return p.weightKg
}

// VolumeM3 returns the measured volume.
func (p *Parcel) VolumeM3() float64 {
	return p.volumeM3
}

// Quantity returns the measured piece count.
func (p *Parcel) Quantity() int {
	return p.quantity
}

// Amount returns the computed billing amount.
func (p *Parcel) Amount() float64 {
	return p.amount
}

// PaidAmount returns the amount paid so far.
func (p *Parcel) PaidAmount() float64 {
	return p.paidAmount
}

// Status returns the parcel's own lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// Departure returns the assigned departure's ID, nil while unassigned.
func (p *Parcel) Departure() *kernel.UUID {
	return p.departureID
}

// IsAssigned reports whether the parcel belongs to a departure.
func (p *Parcel) IsAssigned() bool {
	return p.departureID != nil
}

// MatchesCode reports whether a scanned code resolves to this parcel, matching
// either the own tracking code or the supplier code, case-insensitively.
func (p *Parcel) MatchesCode(code string) bool {
	if code == "" {
		return false
	}
	if strings.EqualFold(p.trackingCode, code) {
		return true
	}
	return p.supplierTrackingCode != "" && strings.EqualFold(p.supplierTrackingCode, code)
}

// AssignTo binds the parcel to a departure. Eligibility requires the parcel to
// be unassigned and its corridor and transport to exactly equal the
// departure's. Assigning to the same departure twice is a no-op; a different
// departure or a mismatched route is a conflict, never a silent success.
func (p *Parcel) AssignTo(
	departureID kernel.UUID,
	departureRoute kernel.Route,
	departureTransport kernel.TransportMode,
) error {
	if err := departureID.Validate(); err != nil {
		return err
	}

	if p.departureID != nil {
		if p.departureID.IsEqual(departureID) {
			return nil
		}
		return errs.NewConflictError(
			"parcel",
			fmt.Sprintf("parcel %s is already assigned to another departure", p.trackingCode),
		)
	}

	if !p.route.MatchesCorridor(departureRoute) || p.transport != departureTransport {
		return errs.NewConflictError(
			"parcel",
			fmt.Sprintf(
				"parcel %s (%s, %s) does not match departure route %s (%s)",
				p.trackingCode, p.route.Corridor(), p.transport,
				departureRoute.Corridor(), departureTransport,
			),
		)
	}

	id := departureID
	p.departureID = &id
	return nil
}

// Unassign removes the departure reference. Unassigning an unassigned parcel
// is a no-op; unassigning from a departure the parcel does not belong to is a
// conflict.
func (p *Parcel) Unassign(departureID kernel.UUID) error {
	if p.departureID == nil {
		return nil
	}
	if !p.departureID.IsEqual(departureID) {
		return errs.NewConflictError(
			"parcel",
			fmt.Sprintf("parcel %s is assigned to a different departure", p.trackingCode),
		)
	}

	p.departureID = nil
	return nil
}

// Receive records the warehouse measurements and prices the parcel using the
// tariff rate over the authoritative billing unit. Moves Pending to Received.
func (p *Parcel) Receive(weightKg, volumeM3 float64, quantity int, rate float64) error {
	if p.status != StatusPending {
		return errs.NewConflictError(
			"parcel",
			fmt.Sprintf("cannot receive a parcel in status %s", p.status),
		)
	}
	if rate <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"tariff rate",
			fmt.Errorf("%f is not greater than 0", rate),
		)
	}

	var billable float64
	switch p.billingUnit {
	case BillingByWeight:
		billable = weightKg
	case BillingByVolume:
		billable = volumeM3
	case BillingByQuantity:
		billable = float64(quantity)
	default:
		return errs.NewValueIsInvalidError("billing unit")
	}
	if billable <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"measured value",
			fmt.Errorf("billable %s must be greater than 0", p.billingUnit),
		)
	}

	p.weightKg = weightKg
	p.volumeM3 = volumeM3
	p.quantity = quantity
	p.amount = billable * rate
	p.status = StatusReceived
	return nil
}

// AdvanceTo moves the status forward to target. Equal status is a no-op so
// repeated tracking refreshes converge; moving backwards is a conflict.
func (p *Parcel) AdvanceTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == p.status {
		return nil
	}
	if target < p.status {
		return errs.NewConflictError(
			"parcel status",
			fmt.Sprintf("cannot move back from %s to %s", p.status, target),
		)
	}

	p.status = target
	return nil
}

// RecordPayment adds a client payment against the billed amount.
func (p *Parcel) RecordPayment(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment amount",
			fmt.Errorf("%f is not greater than 0", amount),
		)
	}
	if p.paidAmount+amount > p.amount {
		return errs.NewConflictError(
			"payment amount",
			fmt.Sprintf("payment of %.2f exceeds outstanding balance %.2f", amount, p.amount-p.paidAmount),
		)
	}

	p.paidAmount += amount
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("tracking code")
	}
	p.trackingCode = code
	return nil
}

func (p *Parcel) setClientRef(clientRef string) error {
	if clientRef == "" {
		return errs.NewValueIsRequiredError("client reference")
	}
	p.clientRef = clientRef
	return nil
}

func (p *Parcel) setRoute(route kernel.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	p.route = route
	return nil
}

func (p *Parcel) setTransport(transport kernel.TransportMode) error {
	if err := transport.Validate(); err != nil {
		return err
	}
	p.transport = transport
	return nil
}

func (p *Parcel) setPackageType(packageType string) error {
	if packageType == "" {
		return errs.NewValueIsRequiredError("package type")
	}
	p.packageType = packageType
	return nil
}

func (p *Parcel) setBillingUnit(unit BillingUnit) error {
	if err := unit.Validate(); err != nil {
		return err
	}
	p.billingUnit = unit
	return nil
}
