package commands

import (
	"context"

	"freight/internal/core/domain/model/expense"
)

// AddExpenseCommandHandler records a cost entry against a departure. The
// departure is loaded first so a typo'd id surfaces as not-found instead of
// an orphaned ledger row.
type AddExpenseCommandHandler struct {
	uowFactory ExpenseUoWFactory
}

// NewAddExpenseCommandHandler creates a handler for expense recording.
func NewAddExpenseCommandHandler(uowFactory ExpenseUoWFactory) AddExpenseCommandHandler {
	return AddExpenseCommandHandler{uowFactory: uowFactory}
}

// Handle records the expense within a transaction.
func (h *AddExpenseCommandHandler) Handle(ctx context.Context, cmd AddExpenseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newExpense, err := expense.NewExpense(
		cmd.ExpenseID(),
		cmd.DepartureID(),
		cmd.Category(),
		cmd.Description(),
		cmd.Amount(),
		cmd.Date(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.DepartureRepository().Get(ctx, cmd.DepartureID()); err != nil {
		return err
	}

	if err = uow.ExpenseRepository().Add(ctx, newExpense); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
