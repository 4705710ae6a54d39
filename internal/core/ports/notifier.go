package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
)

// Notifier is the external client-notification collaborator. Delivery is
// best-effort: a failure surfaces as a TransientError and the notified flag
// stays unset, so the operator can retry.
type Notifier interface {
	// NotifyDeparture pushes a departure update to the clients owning its
	// parcels. target selects the notification channel (e.g. "sms", "email").
	NotifyDeparture(ctx context.Context, departureID kernel.UUID, target string) error
}
