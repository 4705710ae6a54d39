package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
)

// CreateParcelCommand registers a parcel at intake, before it reaches the
// origin warehouse. Measurements and pricing come later, at receive time.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID             kernel.UUID
	trackingCode         string
	supplierTrackingCode string
	clientRef            string
	description          string
	route                kernel.Route
	transport            kernel.TransportMode
	packageType          string
	billingUnit          parcel.BillingUnit

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a parcel.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	trackingCode string,
	supplierTrackingCode string,
	clientRef string,
	description string,
	route kernel.Route,
	transport kernel.TransportMode,
	packageType string,
	billingUnit parcel.BillingUnit,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		supplierTrackingCode: supplierTrackingCode,
		description:          description,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setTrackingCode(trackingCode),
		cmd.setClientRef(clientRef),
		cmd.setRoute(route),
		cmd.setTransport(transport),
		cmd.setPackageType(packageType),
		cmd.setBillingUnit(billingUnit),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// TrackingCode returns the internal tracking code.
func (c CreateParcelCommand) TrackingCode() string {
	return c.trackingCode
}

// SupplierTrackingCode returns the supplier's code, possibly empty.
func (c CreateParcelCommand) SupplierTrackingCode() string {
	return c.supplierTrackingCode
}

// ClientRef returns the owning client reference.
func (c CreateParcelCommand) ClientRef() string {
	return c.clientRef
}

// Description returns the free-form contents description.
func (c CreateParcelCommand) Description() string {
	return c.description
}

// Route returns the parcel's route.
func (c CreateParcelCommand) Route() kernel.Route {
	return c.route
}

// Transport returns the parcel's transport mode.
func (c CreateParcelCommand) Transport() kernel.TransportMode {
	return c.transport
}

// PackageType returns the tariff package type.
func (c CreateParcelCommand) PackageType() string {
	return c.packageType
}

// BillingUnit returns the authoritative billing unit.
func (c CreateParcelCommand) BillingUnit() parcel.BillingUnit {
	return c.billingUnit
}

func (c *CreateParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

func (c *CreateParcelCommand) setTrackingCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("trackingCode")
	}
	c.trackingCode = code
	return nil
}

func (c *CreateParcelCommand) setClientRef(clientRef string) error {
	if clientRef == "" {
		return errs.NewValueIsRequiredError("clientRef")
	}
	c.clientRef = clientRef
	return nil
}

func (c *CreateParcelCommand) setRoute(route kernel.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	c.route = route
	return nil
}

func (c *CreateParcelCommand) setTransport(transport kernel.TransportMode) error {
	if err := transport.Validate(); err != nil {
		return err
	}
	c.transport = transport
	return nil
}

func (c *CreateParcelCommand) setPackageType(packageType string) error {
	if packageType == "" {
		return errs.NewValueIsRequiredError("packageType")
	}
	c.packageType = packageType
	return nil
}

func (c *CreateParcelCommand) setBillingUnit(unit parcel.BillingUnit) error {
	if err := unit.Validate(); err != nil {
		return err
	}
	c.billingUnit = unit
	return nil
}
