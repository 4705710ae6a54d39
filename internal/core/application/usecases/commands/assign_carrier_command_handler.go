package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// AssignCarrierCommandHandler records a carrier leg on a departure and
// optionally notifies the clients. The assignment commits before the
// notification runs, so a failing notifier never loses the carrier change.
// A successful delivery stamps the notified flag the same way an explicit
// notify-clients request does.
type AssignCarrierCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewAssignCarrierCommandHandler creates a handler for carrier assignment.
func NewAssignCarrierCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
) (AssignCarrierCommandHandler, error) {
	if notifier == nil {
		return AssignCarrierCommandHandler{}, errs.NewValueIsRequiredError("notifier")
	}

	return AssignCarrierCommandHandler{uowFactory: uowFactory, notifier: notifier}, nil
}

// Handle assigns the carrier leg, then notifies clients when requested.
func (h *AssignCarrierCommandHandler) Handle(ctx context.Context, cmd AssignCarrierCommand) error {
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

	if err = d.AssignCarrier(cmd.Carrier(), cmd.TrackingCode(), cmd.IsFinalLeg(), time.Now()); err != nil {
		return err
	}

	if err = uow.DepartureRepository().Update(ctx, d); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if !cmd.Notify() {
		return nil
	}

	if err = h.notifier.NotifyDeparture(ctx, d.ID(), cmd.NotifyTarget()); err != nil {
		return err
	}

	return h.stampNotified(ctx, d.ID())
}

// stampNotified records a successful delivery in a follow-up transaction.
// The assignment has already committed, so the departure is re-read at its
// new version.
func (h *AssignCarrierCommandHandler) stampNotified(ctx context.Context, departureID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DepartureRepository().Get(ctx, departureID)
	if err != nil {
		return err
	}

	d.MarkNotified(time.Now())

	if err = uow.DepartureRepository().Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
