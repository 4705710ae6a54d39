package expense

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Category is the fixed enum of cost buckets a departure expense falls into.
type Category int

const (
	// CategoryUnknown catches uninitialized values.
	CategoryUnknown Category = iota

	// CategoryFreight is the main carriage cost.
	CategoryFreight

	// CategoryCustoms covers duties and clearance fees.
	CategoryCustoms

	// CategoryTransport covers local haulage on either end.
	CategoryTransport

	// CategoryHandling covers loading, unloading and repacking.
	CategoryHandling

	// CategoryStorage covers warehousing.
	CategoryStorage

	// CategoryInsurance covers cargo insurance premiums.
	CategoryInsurance

	// CategoryOther is everything else.
	CategoryOther
)

func categoryStrings() map[Category]string {
	return map[Category]string{
		CategoryFreight:   "freight",
		CategoryCustoms:   "customs",
		CategoryTransport: "transport",
		CategoryHandling:  "handling",
		CategoryStorage:   "storage",
		CategoryInsurance: "insurance",
		CategoryOther:     "other",
	}
}

// CategoryFromString parses the wire representation of a category.
func CategoryFromString(s string) (Category, error) {
	for category, str := range categoryStrings() {
		if str == s {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"expense category",
		fmt.Errorf("%q is not a valid expense category", s),
	)
}

// String returns the wire representation, or "unknown" for invalid values.
func (c Category) String() string {
	if s, ok := categoryStrings()[c]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects values outside the closed enum.
func (c Category) Validate() error {
	if _, ok := categoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"expense category",
			fmt.Errorf("%d is not a valid expense category", c),
		)
	}
	return nil
}
