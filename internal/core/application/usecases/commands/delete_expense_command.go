package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrDeleteExpenseCommandIsNotConstructed = errors.New(
		"DeleteExpenseCommand must be created via NewDeleteExpenseCommand constructor",
	)
)

// DeleteExpenseCommand removes a ledger entry. The ledger is append/delete
// only; a correction is a delete followed by a fresh entry.
type DeleteExpenseCommand struct { //nolint:recvcheck //using for validation
	expenseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteExpenseCommand creates a command to delete an expense entry.
func NewDeleteExpenseCommand(expenseID kernel.UUID) (DeleteExpenseCommand, error) {
	if err := expenseID.Validate(); err != nil {
		return DeleteExpenseCommand{}, err
	}

	return DeleteExpenseCommand{
		expenseID: expenseID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteExpenseCommand) Validate() error {
	return c.guard.Validate(ErrDeleteExpenseCommandIsNotConstructed)
}

// ExpenseID returns the entry to delete.
func (c DeleteExpenseCommand) ExpenseID() kernel.UUID {
	return c.expenseID
}
