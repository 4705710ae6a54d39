package commands

import (
	"context"
)

// RemoveParcelCommandHandler unassigns a parcel from its departure.
type RemoveParcelCommandHandler struct {
	uowFactory UoWFactory
}

// NewRemoveParcelCommandHandler creates a handler for parcel removal.
func NewRemoveParcelCommandHandler(uowFactory UoWFactory) RemoveParcelCommandHandler {
	return RemoveParcelCommandHandler{uowFactory: uowFactory}
}

// Handle processes the removal within a transaction.
func (h *RemoveParcelCommandHandler) Handle(ctx context.Context, cmd RemoveParcelCommand) error {
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

	p, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = p.Unassign(cmd.DepartureID()); err != nil {
		return err
	}

	if err = uow.ParcelRepository().Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
