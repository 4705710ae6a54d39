// Package parcel contains the Parcel aggregate root: a single client package
// from intake through delivery.
//
// A parcel's lifecycle is its own and never moves because of departure
// transitions. The only departure-related state on a parcel is the nullable
// back-reference set and cleared by the assignment operations, which are
// idempotent and enforce the matching rule (exact route corridor plus
// transport equality) at assignment time.
package parcel
