// Package departure contains the Departure aggregate root: a consolidated
// shipment grouping many parcels on one route and transport mode.
//
// The aggregate owns two pieces of state with real invariants:
//
//   - the lifecycle status machine (scheduled -> departed -> arrived, with
//     cancelled reachable only from scheduled and both end states terminal)
//   - the ordered carrier assignment history, where at most one leg is open
//     at any time and assigning a new carrier closes the previous leg
//
// Parcel membership is deliberately not stored here; parcels hold the
// back-reference and the package list is a reverse lookup. See the parcel
// package and the assignment matcher domain service.
package departure
