// Package expense contains the Expense aggregate: a single cost entry scoped
// to exactly one departure. Expenses are append-only; an edit is modeled as
// delete plus recreate, so an entry never mutates after creation.
package expense

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// ErrExpenseIsNotConstructed is returned when an Expense instance was not
// created through NewExpense or RestoreExpense.
var ErrExpenseIsNotConstructed = errors.New("Expense must be created via NewExpense constructor")

// Expense is one cost entry against a departure, used by margin reporting.
type Expense struct {
	id          kernel.UUID
	departureID kernel.UUID
	category    Category
	description string
	amount      float64
	date        time.Time

	isConstructed bool
}

// NewExpense creates a validated expense entry. Amount must be positive and
// the description non-empty.
func NewExpense(
	id kernel.UUID,
	departureID kernel.UUID,
	category Category,
	description string,
	amount float64,
	date time.Time,
) (*Expense, error) {
	e := &Expense{isConstructed: true}

	if err := errors.Join(
		e.setID(id),
		e.setDepartureID(departureID),
		e.setCategory(category),
		e.setDescription(description),
		e.setAmount(amount),
		e.setDate(date),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreExpense reconstructs an expense from persistence.
func RestoreExpense(
	id kernel.UUID,
	departureID kernel.UUID,
	category Category,
	description string,
	amount float64,
	date time.Time,
) (*Expense, error) {
	return NewExpense(id, departureID, category, description, amount, date)
}

// Validate ensures the instance was created through a constructor.
func (e *Expense) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrExpenseIsNotConstructed
	}
	return nil
}

// ID returns the expense's unique identifier.
func (e *Expense) ID() kernel.UUID {
	return e.id
}

// DepartureID returns the departure this expense is scoped to.
func (e *Expense) DepartureID() kernel.UUID {
	return e.departureID
}

// Category returns the cost bucket.
func (e *Expense) Category() Category {
	return e.category
}

// Description returns the operator's description of the cost.
func (e *Expense) Description() string {
	return e.description
}

// Amount returns the cost amount.
func (e *Expense) Amount() float64 {
	return e.amount
}

// Date returns the date the cost was incurred.
func (e *Expense) Date() time.Time {
	return e.date
}

func (e *Expense) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Expense) setDepartureID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("departure id", err)
	}
	e.departureID = id
	return nil
}

func (e *Expense) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	e.category = category
	return nil
}

func (e *Expense) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("expense description")
	}
	e.description = description
	return nil
}

func (e *Expense) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"expense amount",
			fmt.Errorf("%f is not greater than 0", amount),
		)
	}
	e.amount = amount
	return nil
}

func (e *Expense) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("expense date")
	}
	e.date = date
	return nil
}
