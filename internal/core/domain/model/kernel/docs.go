// Package kernel contains the shared value objects of the domain model:
// UUID identifiers, the closed TransportMode enum and the Route value object
// describing an origin/destination pair. Both the departure and parcel
// aggregates are defined in terms of these types, which keeps the assignment
// predicate (exact route plus transport equality) a simple value comparison.
//
// All kernel types are immutable value objects. Zero values are invalid and
// must be created through the provided constructor functions.
package kernel
