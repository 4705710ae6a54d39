package commands

import (
	"context"

	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// RefreshTrackingCommandHandler pulls the carrier feed for a departure's open
// carrier leg and applies the reported statuses to the matching parcels.
// Unknown tracking codes and unknown statuses in the feed are skipped, not
// failed: the feed is external data and one bad row must not block the rest.
type RefreshTrackingCommandHandler struct {
	uowFactory UoWFactory
	provider   ports.TrackingProvider
}

// NewRefreshTrackingCommandHandler creates a handler for tracking refresh.
func NewRefreshTrackingCommandHandler(
	uowFactory UoWFactory,
	provider ports.TrackingProvider,
) (RefreshTrackingCommandHandler, error) {
	if provider == nil {
		return RefreshTrackingCommandHandler{}, errs.NewValueIsRequiredError("provider")
	}

	return RefreshTrackingCommandHandler{uowFactory: uowFactory, provider: provider}, nil
}

// Handle fetches the feed and advances parcel statuses. Returns the number of
// parcels whose status actually moved forward.
func (h *RefreshTrackingCommandHandler) Handle(ctx context.Context, cmd RefreshTrackingCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DepartureRepository().Get(ctx, cmd.DepartureID())
	if err != nil {
		return 0, err
	}

	leg := d.CurrentCarrier()
	if leg == nil {
		return 0, errs.NewConflictError(
			"departure",
			"no open carrier leg to refresh tracking from",
		)
	}

	updates, err := h.provider.FetchUpdates(ctx, leg.Carrier(), leg.TrackingCode())
	if err != nil {
		return 0, err
	}

	parcelRepo := uow.ParcelRepository()

	onBoard, err := parcelRepo.GetAllByDeparture(ctx, d.ID())
	if err != nil {
		return 0, err
	}

	byCode := make(map[string]*parcel.Parcel, len(onBoard))
	for _, p := range onBoard {
		byCode[p.TrackingCode()] = p
	}

	updated := 0
	for _, u := range updates {
		p, ok := byCode[u.ParcelTrackingCode]
		if !ok {
			continue
		}

		target, statusErr := parcel.StatusFromString(u.Status)
		if statusErr != nil {
			continue
		}
		if target <= p.Status() {
			continue
		}

		if err = p.AdvanceTo(target); err != nil {
			return 0, err
		}
		if err = parcelRepo.Update(ctx, p); err != nil {
			return 0, err
		}
		updated++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return updated, nil
}
