// Package queries contains the read side of the back-office: raw SQL over
// the authoritative store, returning flat read models. Derived figures
// (parcel counts, revenue, margin) are computed here, never stored.
package queries

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrGetDeparturesQueryIsNotConstructed = errors.New(
		"GetDeparturesQuery must be created via NewGetDeparturesQuery constructor",
	)
)

// DepartureScope selects which slice of the departure board a listing shows.
type DepartureScope string

const (
	// ScopeUpcoming lists scheduled departures, soonest first.
	ScopeUpcoming DepartureScope = "upcoming"

	// ScopeDeparted lists departures in transit, most recent first.
	ScopeDeparted DepartureScope = "departed"

	// ScopeArrived lists completed departures, most recent first.
	ScopeArrived DepartureScope = "arrived"

	// ScopeCancelled lists cancelled departures, most recent first.
	ScopeCancelled DepartureScope = "cancelled"

	// ScopeAll lists everything, most recent first.
	ScopeAll DepartureScope = "all"
)

// Validate rejects scopes outside the closed set.
func (s DepartureScope) Validate() error {
	switch s {
	case ScopeUpcoming, ScopeDeparted, ScopeArrived, ScopeCancelled, ScopeAll:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"scope",
			fmt.Errorf("%q is not a valid departure scope", string(s)),
		)
	}
}

// GetDeparturesQuery lists the departure board for one scope.
type GetDeparturesQuery struct {
	scope DepartureScope

	guard guard.ConstructorGuard
}

// NewGetDeparturesQuery creates a query for the departure board.
func NewGetDeparturesQuery(scope DepartureScope) (GetDeparturesQuery, error) {
	if err := scope.Validate(); err != nil {
		return GetDeparturesQuery{}, err
	}

	return GetDeparturesQuery{scope: scope, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeparturesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeparturesQueryIsNotConstructed)
}

// Scope returns the requested board slice.
func (q GetDeparturesQuery) Scope() DepartureScope {
	return q.scope
}

// GetDeparturesQueryResponse is one departure board row. Count, weight and
// revenue are derived from the assigned parcels at read time.
type GetDeparturesQueryResponse struct {
	ID                 kernel.UUID
	OriginCountry      string
	OriginCity         string
	DestinationCountry string
	Transport          string
	ScheduledAt        time.Time
	DurationDays       int
	Status             string
	DepartedAt         *time.Time
	Notified           bool

	ParcelCount   int
	TotalWeightKg float64
	TotalRevenue  float64

	// DaysRemaining counts down to the estimated arrival, floored at zero.
	// Only meaningful for departed rows.
	DaysRemaining int
}
