package commands

import (
	"context"
	"time"

	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// NotifyClientsCommandHandler notifies the clients of a departure through the
// external notification collaborator. The notified flag is only stamped after
// a successful delivery, so a transient failure leaves the departure eligible
// for a retry.
type NotifyClientsCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewNotifyClientsCommandHandler creates a handler for client notification.
func NewNotifyClientsCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
) (NotifyClientsCommandHandler, error) {
	if notifier == nil {
		return NotifyClientsCommandHandler{}, errs.NewValueIsRequiredError("notifier")
	}

	return NotifyClientsCommandHandler{uowFactory: uowFactory, notifier: notifier}, nil
}

// Handle delivers the notification and stamps the departure on success.
func (h *NotifyClientsCommandHandler) Handle(ctx context.Context, cmd NotifyClientsCommand) error {
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

	if err = h.notifier.NotifyDeparture(ctx, d.ID(), cmd.Target()); err != nil {
		return err
	}

	d.MarkNotified(time.Now())

	if err = uow.DepartureRepository().Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
