package commands

import (
	"context"
)

// CancelDepartureCommandHandler cancels a scheduled departure after the
// operator acknowledged the exact number of assigned parcels. Assigned
// parcels return to the unassigned pool; their own lifecycle is untouched.
type CancelDepartureCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelDepartureCommandHandler creates a handler for departure cancellation.
func NewCancelDepartureCommandHandler(uowFactory UoWFactory) CancelDepartureCommandHandler {
	return CancelDepartureCommandHandler{uowFactory: uowFactory}
}

// Handle processes the cancellation within a transaction.
func (h *CancelDepartureCommandHandler) Handle(ctx context.Context, cmd CancelDepartureCommand) error {
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

	parcelRepo := uow.ParcelRepository()

	assigned, err := parcelRepo.CountByDeparture(ctx, d.ID())
	if err != nil {
		return err
	}

	if err = d.Cancel(assigned, cmd.AcknowledgedParcels()); err != nil {
		return err
	}

	onBoard, err := parcelRepo.GetAllByDeparture(ctx, d.ID())
	if err != nil {
		return err
	}

	for _, p := range onBoard {
		if err = p.Unassign(d.ID()); err != nil {
			return err
		}
		if err = parcelRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	if err = uow.DepartureRepository().Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
