package commands

import (
	"context"
	"time"
)

// MarkDepartedCommandHandler transitions a scheduled departure to departed.
// The transition is rejected while the departure has no assigned parcels.
type MarkDepartedCommandHandler struct {
	uowFactory UoWFactory
}

// NewMarkDepartedCommandHandler creates a handler for marking departures departed.
func NewMarkDepartedCommandHandler(uowFactory UoWFactory) MarkDepartedCommandHandler {
	return MarkDepartedCommandHandler{uowFactory: uowFactory}
}

// Handle processes the transition within a transaction.
func (h *MarkDepartedCommandHandler) Handle(ctx context.Context, cmd MarkDepartedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DepartureRepository().Get(ctx, cmd.DepartureID())
	if err != nil {
		return err
	}

	assigned, err := uow.ParcelRepository().CountByDeparture(ctx, d.ID())
	if err != nil {
		return err
	}

	if err = d.MarkDeparted(assigned, time.Now()); err != nil {
		return err
	}

	if err = uow.DepartureRepository().Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
