// Package tariff contains the read-only rate catalog entry: the price per
// billing unit for a (route corridor, transport mode, package type)
// combination. A missing tariff is a configuration error that blocks
// pricing-dependent operations such as receiving a parcel.
package tariff

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/pkg/errs"
)

// ErrTariffIsNotConstructed is returned when a Tariff instance was not created
// through NewTariff.
var ErrTariffIsNotConstructed = errors.New("Tariff must be created via NewTariff constructor")

// Tariff is one rate catalog entry. Consumed read-only by the receive flow.
type Tariff struct {
	id          kernel.UUID
	route       kernel.Route
	transport   kernel.TransportMode
	packageType string
	billingUnit parcel.BillingUnit
	rate        float64

	isConstructed bool
}

// NewTariff creates a validated tariff entry.
func NewTariff(
	id kernel.UUID,
	route kernel.Route,
	transport kernel.TransportMode,
	packageType string,
	billingUnit parcel.BillingUnit,
	rate float64,
) (*Tariff, error) {
	if err := errors.Join(id.Validate(), route.Validate(), transport.Validate(), billingUnit.Validate()); err != nil {
		return nil, err
	}
	if packageType == "" {
		return nil, errs.NewValueIsRequiredError("package type")
	}
	if rate <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"tariff rate",
			fmt.Errorf("%f is not greater than 0", rate),
		)
	}

	return &Tariff{
		id:            id,
		route:         route,
		transport:     transport,
		packageType:   packageType,
		billingUnit:   billingUnit,
		rate:          rate,
		isConstructed: true,
	}, nil
}

// Validate ensures the instance was created through the constructor.
func (t *Tariff) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTariffIsNotConstructed
	}
	return nil
}

// ID returns the tariff's unique identifier.
func (t *Tariff) ID() kernel.UUID {
	return t.id
}

// Route returns the corridor this rate applies to.
func (t *Tariff) Route() kernel.Route {
	return t.route
}

// Transport returns the transport mode this rate applies to.
func (t *Tariff) Transport() kernel.TransportMode {
	return t.transport
}

// PackageType returns the pricing category this rate applies to.
func (t *Tariff) PackageType() string {
	return t.packageType
}

// BillingUnit returns the unit the rate is expressed per.
func (t *Tariff) BillingUnit() parcel.BillingUnit {
	return t.billingUnit
}

// Rate returns the price per billing unit.
func (t *Tariff) Rate() float64 {
	return t.rate
}

// AppliesTo reports whether this tariff prices the given parcel attributes.
func (t *Tariff) AppliesTo(route kernel.Route, transport kernel.TransportMode, packageType string) bool {
	return t.route.MatchesCorridor(route) && t.transport == transport && t.packageType == packageType
}
