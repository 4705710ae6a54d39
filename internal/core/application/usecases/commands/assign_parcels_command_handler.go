package commands

import (
	"context"
	"fmt"

	"freight/internal/pkg/errs"
)

// AssignParcelsCommandHandler assigns a batch of parcels to a departure.
// The batch is all-or-nothing: one ineligible parcel rejects the whole
// command, so the operator never ends up with a partially-applied selection.
type AssignParcelsCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignParcelsCommandHandler creates a handler for manual parcel assignment.
func NewAssignParcelsCommandHandler(uowFactory UoWFactory) AssignParcelsCommandHandler {
	return AssignParcelsCommandHandler{uowFactory: uowFactory}
}

// Handle assigns every parcel in the batch within one transaction.
func (h *AssignParcelsCommandHandler) Handle(ctx context.Context, cmd AssignParcelsCommand) error {
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

	if d.Status().IsTerminal() {
		return errs.NewConflictError(
			"departure",
			fmt.Sprintf("cannot assign parcels to a departure in status %s", d.Status()),
		)
	}

	parcelRepo := uow.ParcelRepository()

	for _, parcelID := range cmd.ParcelIDs() {
		p, getErr := parcelRepo.Get(ctx, parcelID)
		if getErr != nil {
			return getErr
		}

		if err = p.AssignTo(d.ID(), d.Route(), d.Transport()); err != nil {
			return err
		}

		if err = parcelRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
