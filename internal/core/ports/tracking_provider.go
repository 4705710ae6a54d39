package ports

import (
	"context"
)

// TrackingUpdate is one parcel-level status report from a carrier's tracking
// feed, keyed by the parcel's tracking code.
type TrackingUpdate struct {
	ParcelTrackingCode string
	Status             string
}

// TrackingProvider is the external carrier-tracking collaborator. It reports
// live statuses for the parcels travelling under a carrier tracking code;
// storing the structural carrier history stays with the departure aggregate.
//
// Network failures surface as TransientError. The caller decides whether to
// retry; this layer never retries silently.
type TrackingProvider interface {
	// FetchUpdates queries the carrier feed for the given carrier tracking
	// code and returns per-parcel status updates.
	FetchUpdates(ctx context.Context, carrier, trackingCode string) ([]TrackingUpdate, error)
}
