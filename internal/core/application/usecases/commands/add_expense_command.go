package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/expense"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrAddExpenseCommandIsNotConstructed = errors.New(
		"AddExpenseCommand must be created via NewAddExpenseCommand constructor",
	)
)

// AddExpenseCommand appends a cost entry to a departure's expense ledger.
type AddExpenseCommand struct { //nolint:recvcheck //using for validation
	expenseID   kernel.UUID
	departureID kernel.UUID
	category    expense.Category
	description string
	amount      float64
	date        time.Time

	guard guard.ConstructorGuard
}

// NewAddExpenseCommand creates a command to record an expense. Field
// validation is the Expense constructor's job; the command only carries the
// values into the handler.
func NewAddExpenseCommand(
	expenseID kernel.UUID,
	departureID kernel.UUID,
	category expense.Category,
	description string,
	amount float64,
	date time.Time,
) (AddExpenseCommand, error) {
	if err := errors.Join(expenseID.Validate(), departureID.Validate()); err != nil {
		return AddExpenseCommand{}, err
	}

	return AddExpenseCommand{
		expenseID:   expenseID,
		departureID: departureID,
		category:    category,
		description: description,
		amount:      amount,
		date:        date,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddExpenseCommand) Validate() error {
	return c.guard.Validate(ErrAddExpenseCommandIsNotConstructed)
}

// ExpenseID returns the identifier of the new entry.
func (c AddExpenseCommand) ExpenseID() kernel.UUID {
	return c.expenseID
}

// DepartureID returns the departure the cost belongs to.
func (c AddExpenseCommand) DepartureID() kernel.UUID {
	return c.departureID
}

// Category returns the expense category.
func (c AddExpenseCommand) Category() expense.Category {
	return c.category
}

// Description returns the expense description.
func (c AddExpenseCommand) Description() string {
	return c.description
}

// Amount returns the expense amount.
func (c AddExpenseCommand) Amount() float64 {
	return c.amount
}

// Date returns the expense date.
func (c AddExpenseCommand) Date() time.Time {
	return c.date
}
