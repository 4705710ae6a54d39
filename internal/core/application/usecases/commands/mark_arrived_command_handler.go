package commands

import (
	"context"

	"freight/internal/core/domain/model/parcel"
)

// MarkArrivedCommandHandler transitions a departed departure to arrived and
// advances every parcel on board to the arrived status.
type MarkArrivedCommandHandler struct {
	uowFactory UoWFactory
}

// NewMarkArrivedCommandHandler creates a handler for marking departures arrived.
func NewMarkArrivedCommandHandler(uowFactory UoWFactory) MarkArrivedCommandHandler {
	return MarkArrivedCommandHandler{uowFactory: uowFactory}
}

// Handle processes the transition within a transaction.
func (h *MarkArrivedCommandHandler) Handle(ctx context.Context, cmd MarkArrivedCommand) error {
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

	if err = d.MarkArrived(); err != nil {
		return err
	}

	if err = uow.DepartureRepository().Update(ctx, d); err != nil {
		return err
	}

	parcelRepo := uow.ParcelRepository()

	onBoard, err := parcelRepo.GetAllByDeparture(ctx, d.ID())
	if err != nil {
		return err
	}

	for _, p := range onBoard {
		if p.Status() >= parcel.StatusArrived {
			continue
		}
		if err = p.AdvanceTo(parcel.StatusArrived); err != nil {
			return err
		}
		if err = parcelRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
