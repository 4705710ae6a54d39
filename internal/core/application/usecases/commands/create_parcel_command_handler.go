package commands

import (
	"context"

	"freight/internal/core/domain/model/parcel"
)

// CreateParcelCommandHandler registers a parcel at intake.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel intake.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{uowFactory: uowFactory}
}

// Handle registers the parcel and returns the created aggregate.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newParcel, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.TrackingCode(),
		cmd.SupplierTrackingCode(),
		cmd.ClientRef(),
		cmd.Description(),
		cmd.Route(),
		cmd.Transport(),
		cmd.PackageType(),
		cmd.BillingUnit(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newParcel, nil
}
