package commands

import (
	"context"
)

// DeleteExpenseCommandHandler removes an expense ledger entry.
type DeleteExpenseCommandHandler struct {
	uowFactory ExpenseUoWFactory
}

// NewDeleteExpenseCommandHandler creates a handler for expense deletion.
func NewDeleteExpenseCommandHandler(uowFactory ExpenseUoWFactory) DeleteExpenseCommandHandler {
	return DeleteExpenseCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the entry within a transaction.
func (h *DeleteExpenseCommandHandler) Handle(ctx context.Context, cmd DeleteExpenseCommand) error {
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

	if err := uow.ExpenseRepository().Delete(ctx, cmd.ExpenseID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
