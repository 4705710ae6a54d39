package commands

import (
	"context"

	"freight/internal/core/domain/model/parcel"
)

// RecordPaymentCommandHandler applies a client payment to a parcel.
type RecordPaymentCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
func NewRecordPaymentCommandHandler(uowFactory ParcelUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{uowFactory: uowFactory}
}

// Handle records the payment and returns the updated aggregate.
func (h *RecordPaymentCommandHandler) Handle(
	ctx context.Context,
	cmd RecordPaymentCommand,
) (*parcel.Parcel, error) {
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

	if err = p.RecordPayment(cmd.Amount()); err != nil {
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
