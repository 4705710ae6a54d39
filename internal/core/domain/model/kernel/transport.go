package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// TransportMode is the closed enum of shipping modes a departure or parcel
// travels by. The matching rule between parcels and departures requires exact
// equality on this value, so no free-form transport strings exist anywhere in
// the model.
type TransportMode int

const (
	// TransportUnknown catches uninitialized values.
	TransportUnknown TransportMode = iota

	// TransportSea is consolidated sea freight.
	TransportSea

	// TransportAirNormal is standard air freight.
	TransportAirNormal

	// TransportAirExpress is expedited air freight.
	TransportAirExpress
)

func transportStrings() map[TransportMode]string {
	return map[TransportMode]string{
		TransportSea:        "sea",
		TransportAirNormal:  "air_normal",
		TransportAirExpress: "air_express",
	}
}

// TransportModeFromString parses the wire representation of a transport mode.
// Returns a validation error for anything outside the closed enum.
func TransportModeFromString(s string) (TransportMode, error) {
	for mode, str := range transportStrings() {
		if str == s {
			return mode, nil
		}
	}
	return TransportUnknown, errs.NewValueIsInvalidErrorWithCause(
		"transport mode",
		fmt.Errorf("%q is not a valid transport mode", s),
	)
}

// String returns the wire representation, or "unknown" for invalid values.
func (m TransportMode) String() string {
	if s, ok := transportStrings()[m]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects values outside the closed enum.
func (m TransportMode) Validate() error {
	if _, ok := transportStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"transport mode",
			fmt.Errorf("%d is not a valid transport mode", m),
		)
	}
	return nil
}
