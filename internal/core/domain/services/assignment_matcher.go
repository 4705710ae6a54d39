package services

import (
	"freight/internal/core/domain/model/departure"
	"freight/internal/core/domain/model/parcel"
)

// AssignmentMatcher is the domain service owning the rule that binds parcels
// to departures. Intake and assignment both go through this predicate, so the
// two flows can never diverge on what "matching" means.
//
// The rule: a parcel is eligible for a departure if and only if it has no
// departure reference and its (origin country, destination country, transport
// mode) triple exactly equals the departure's. No partial or fuzzy matching.
type AssignmentMatcher struct{}

// NewAssignmentMatcher creates the matcher service.
func NewAssignmentMatcher() AssignmentMatcher {
	return AssignmentMatcher{}
}

// Matches reports whether the parcel is eligible for the departure.
func (m AssignmentMatcher) Matches(p *parcel.Parcel, d *departure.Departure) bool {
	if p == nil || d == nil || p.IsAssigned() {
		return false
	}
	return p.Route().MatchesCorridor(d.Route()) && p.Transport() == d.Transport()
}

// AssignAll binds every eligible parcel from candidates to the departure and
// returns the number assigned. Ineligible parcels are skipped, not failed:
// auto-assignment is a best-effort sweep over the unassigned pool.
func (m AssignmentMatcher) AssignAll(d *departure.Departure, candidates []*parcel.Parcel) (int, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}

	assigned := 0
	for _, p := range candidates {
		if !m.Matches(p, d) {
			continue
		}
		if err := p.AssignTo(d.ID(), d.Route(), d.Transport()); err != nil {
			return assigned, err
		}
		assigned++
	}

	return assigned, nil
}
