package commands

import (
	"context"
	"fmt"

	"freight/internal/pkg/errs"
)

// UpdateDepartureCommandHandler edits a scheduled departure. Route and
// transport changes are rejected once parcels are assigned, so assignments
// can never silently stop matching; the stored version guards against a
// concurrent session overwriting the edit.
type UpdateDepartureCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateDepartureCommandHandler creates a handler for departure edits.
func NewUpdateDepartureCommandHandler(uowFactory UoWFactory) UpdateDepartureCommandHandler {
	return UpdateDepartureCommandHandler{uowFactory: uowFactory}
}

// Handle processes the edit within a transaction.
func (h *UpdateDepartureCommandHandler) Handle(ctx context.Context, cmd UpdateDepartureCommand) error {
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

	if d.Version() != cmd.ExpectedVersion() {
		return errs.NewConflictError(
			"departure version",
			fmt.Sprintf("expected version %d, current is %d", cmd.ExpectedVersion(), d.Version()),
		)
	}

	assigned, err := uow.ParcelRepository().CountByDeparture(ctx, d.ID())
	if err != nil {
		return err
	}

	if err = d.Update(
		cmd.Route(), cmd.Transport(), cmd.ScheduledAt(), cmd.DurationDays(), cmd.Notes(), assigned,
	); err != nil {
		return err
	}

	if err = uow.DepartureRepository().Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
