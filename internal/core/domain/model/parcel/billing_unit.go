package parcel

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// BillingUnit names the one measured value that is authoritative for pricing
// a parcel: weight in kilograms, volume in cubic meters, or piece count.
type BillingUnit int

const (
	// BillingUnknown catches uninitialized values.
	BillingUnknown BillingUnit = iota

	// BillingByWeight prices per kilogram.
	BillingByWeight

	// BillingByVolume prices per cubic meter.
	BillingByVolume

	// BillingByQuantity prices per piece.
	BillingByQuantity
)

func billingUnitStrings() map[BillingUnit]string {
	return map[BillingUnit]string{
		BillingByWeight:   "weight",
		BillingByVolume:   "volume",
		BillingByQuantity: "quantity",
	}
}

// BillingUnitFromString parses the wire representation of a billing unit.
func BillingUnitFromString(s string) (BillingUnit, error) {
	for unit, str := range billingUnitStrings() {
		if str == s {
			return unit, nil
		}
	}
	return BillingUnknown, errs.NewValueIsInvalidErrorWithCause(
		"billing unit",
		fmt.Errorf("%q is not a valid billing unit", s),
	)
}

// String returns the wire representation, or "unknown" for invalid values.
func (u BillingUnit) String() string {
	if s, ok := billingUnitStrings()[u]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects values outside the closed enum.
func (u BillingUnit) Validate() error {
	if _, ok := billingUnitStrings()[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"billing unit",
			fmt.Errorf("%d is not a valid billing unit", u),
		)
	}
	return nil
}
