package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrRouteIsNotConstructed is returned when a Route was not created through
// NewRoute.
var ErrRouteIsNotConstructed = errs.NewValueIsRequiredError("Route must be created via NewRoute")

// Route is the origin/destination value object shared by departures and
// parcels. Matching between the two is defined as exact equality of the
// country pair; the origin city is descriptive and excluded from the
// predicate, mirroring how consolidation warehouses work (several pickup
// cities feed one corridor).
type Route struct {
	originCountry      string
	originCity         string
	destinationCountry string

	guard guard.ConstructorGuard
}

// NewRoute creates a validated route. Origin country, origin city and
// destination country are all required.
func NewRoute(originCountry, originCity, destinationCountry string) (Route, error) {
	if originCountry == "" {
		return Route{}, errs.NewValueIsRequiredError("origin country")
	}
	if originCity == "" {
		return Route{}, errs.NewValueIsRequiredError("origin city")
	}
	if destinationCountry == "" {
		return Route{}, errs.NewValueIsRequiredError("destination country")
	}

	return Route{
		originCountry:      originCountry,
		originCity:         originCity,
		destinationCountry: destinationCountry,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the route was created through NewRoute.
func (r Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// OriginCountry returns the origin country code.
func (r Route) OriginCountry() string {
	return r.originCountry
}

// OriginCity returns the pickup city within the origin country.
func (r Route) OriginCity() string {
	return r.originCity
}

// DestinationCountry returns the destination country code.
func (r Route) DestinationCountry() string {
	return r.destinationCountry
}

// Corridor renders the route as "origin -> destination" for error messages
// and logs.
func (r Route) Corridor() string {
	return fmt.Sprintf("%s/%s -> %s", r.originCountry, r.originCity, r.destinationCountry)
}

// MatchesCorridor reports whether two routes cover the same origin and
// destination countries. This is the equality the assignment predicate uses.
func (r Route) MatchesCorridor(other Route) bool {
	return r.originCountry == other.originCountry &&
		r.destinationCountry == other.destinationCountry
}

// IsEqual reports full value equality, including the origin city.
func (r Route) IsEqual(other Route) bool {
	return r.MatchesCorridor(other) && r.originCity == other.originCity
}
