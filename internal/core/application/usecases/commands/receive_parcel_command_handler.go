package commands

import (
	"context"

	"freight/internal/core/domain/model/parcel"
)

// ReceiveParcelCommandHandler prices and receives a pending parcel. The rate
// comes from the tariff catalog; a missing tariff blocks the receive with a
// configuration error rather than pricing the parcel at zero.
type ReceiveParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewReceiveParcelCommandHandler creates a handler for warehouse receive.
func NewReceiveParcelCommandHandler(uowFactory ParcelUoWFactory) ReceiveParcelCommandHandler {
	return ReceiveParcelCommandHandler{uowFactory: uowFactory}
}

// Handle measures and prices the parcel, returning the updated aggregate.
func (h *ReceiveParcelCommandHandler) Handle(ctx context.Context, cmd ReceiveParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	rate, err := uow.TariffRepository().Find(ctx, p.Route(), p.Transport(), p.PackageType())
	if err != nil {
		return nil, err
	}

	if err = p.Receive(cmd.WeightKg(), cmd.VolumeM3(), cmd.Quantity(), rate.Rate()); err != nil {
		return nil, err
	}

	if err = uow.ParcelRepository().Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
