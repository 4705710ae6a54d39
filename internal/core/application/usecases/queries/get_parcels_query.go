package queries

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrGetParcelsQueryIsNotConstructed = errors.New(
		"GetParcelsQuery must be created via one of the NewGet*ParcelsQuery constructors",
	)
)

type parcelFilter int

const (
	filterAll parcelFilter = iota
	filterUnassigned
	filterByDeparture
	filterByCorridor
	filterByTrackingCode
)

// GetParcelsQuery reads parcels through one of the supported filters:
// everything, unassigned only, belonging to a departure, matching a route and
// transport corridor, or carrying a tracking code.
type GetParcelsQuery struct {
	filter       parcelFilter
	departureID  kernel.UUID
	route        kernel.Route
	transport    kernel.TransportMode
	trackingCode string

	guard guard.ConstructorGuard
}

// NewGetAllParcelsQuery creates an unfiltered parcel listing query.
func NewGetAllParcelsQuery() GetParcelsQuery {
	return GetParcelsQuery{filter: filterAll, guard: guard.NewConstructorGuard()}
}

// NewGetUnassignedParcelsQuery creates a query for parcels not yet on any
// departure.
func NewGetUnassignedParcelsQuery() GetParcelsQuery {
	return GetParcelsQuery{filter: filterUnassigned, guard: guard.NewConstructorGuard()}
}

// NewGetParcelsByDepartureQuery creates a query for the parcels assigned to
// one departure.
func NewGetParcelsByDepartureQuery(departureID kernel.UUID) (GetParcelsQuery, error) {
	if err := departureID.Validate(); err != nil {
		return GetParcelsQuery{}, err
	}

	return GetParcelsQuery{
		filter:      filterByDeparture,
		departureID: departureID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// NewGetParcelsByCorridorQuery creates a query for parcels on a route and
// transport, regardless of assignment. The origin city does not narrow the
// corridor.
func NewGetParcelsByCorridorQuery(route kernel.Route, transport kernel.TransportMode) (GetParcelsQuery, error) {
	if err := route.Validate(); err != nil {
		return GetParcelsQuery{}, err
	}
	if err := transport.Validate(); err != nil {
		return GetParcelsQuery{}, err
	}

	return GetParcelsQuery{
		filter:    filterByCorridor,
		route:     route,
		transport: transport,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewFindParcelByTrackingQuery creates a query matching the parcel by its
// tracking code or supplier tracking code, case-insensitively.
func NewFindParcelByTrackingQuery(code string) (GetParcelsQuery, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return GetParcelsQuery{}, errs.NewValueIsRequiredError("code")
	}

	return GetParcelsQuery{
		filter:       filterByTrackingCode,
		trackingCode: code,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetParcelsQuery) Validate() error {
	if err := q.guard.Validate(ErrGetParcelsQueryIsNotConstructed); err != nil {
		return err
	}
	if q.filter < filterAll || q.filter > filterByTrackingCode {
		return errs.NewValueIsInvalidError("parcel filter")
	}
	return nil
}

// TrackingCode returns the normalized code of a tracking lookup, empty for
// other filters.
func (q GetParcelsQuery) TrackingCode() string {
	return q.trackingCode
}

// GetParcelsQueryResponse is one parcel row in a listing.
type GetParcelsQueryResponse struct {
	ID                   kernel.UUID
	TrackingCode         string
	SupplierTrackingCode string
	ClientRef            string
	Description          string
	OriginCountry        string
	OriginCity           string
	DestinationCountry   string
	Transport            string
	PackageType          string
	BillingUnit          string
	WeightKg             float64
	VolumeM3             float64
	Quantity             int
	Amount               float64
	PaidAmount           float64
	Status               string
	DepartureID          *kernel.UUID
}
