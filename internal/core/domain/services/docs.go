// Package services contains stateless domain services: logic that spans
// aggregates and therefore belongs to neither.
//
// AssignmentMatcher owns the single matching rule binding parcels to
// departures. Profitability holds the margin and period-window math used by
// the reporting queries; keeping it here lets the division-by-zero and
// boundary rules be tested without a database.
package services
