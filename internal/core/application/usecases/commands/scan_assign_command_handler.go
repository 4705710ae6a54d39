package commands

import (
	"context"

	"freight/internal/core/domain/model/parcel"
)

// ScanAssignCommandHandler resolves a scanned code to a parcel and assigns it
// to the departure. An unknown code surfaces ObjectNotFoundError while an
// ineligible parcel surfaces ConflictError, so the scanning UI can tell
// "no such parcel" apart from "wrong departure for this parcel".
type ScanAssignCommandHandler struct {
	uowFactory UoWFactory
}

// NewScanAssignCommandHandler creates a handler for scan-based assignment.
func NewScanAssignCommandHandler(uowFactory UoWFactory) ScanAssignCommandHandler {
	return ScanAssignCommandHandler{uowFactory: uowFactory}
}

// Handle resolves the code and assigns the parcel, returning it on success.
func (h *ScanAssignCommandHandler) Handle(ctx context.Context, cmd ScanAssignCommand) (*parcel.Parcel, error) {
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

	d, err := uow.DepartureRepository().Get(ctx, cmd.DepartureID())
	if err != nil {
		return nil, err
	}

	p, err := uow.ParcelRepository().FindByTrackingCode(ctx, cmd.Code())
	if err != nil {
		return nil, err
	}

	if err = p.AssignTo(d.ID(), d.Route(), d.Transport()); err != nil {
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
