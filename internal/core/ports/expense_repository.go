package ports

import (
	"context"

	"freight/internal/core/domain/model/expense"
	"freight/internal/core/domain/model/kernel"
)

// ExpenseRepository defines the persistence contract for expense entries.
// Entries are append-only: there is no Update, an edit is delete plus
// recreate.
type ExpenseRepository interface {
	// Add persists a new expense entry.
	Add(ctx context.Context, aggregate *expense.Expense) error

	// Delete removes an expense by id. No cascading effects.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllByDeparture retrieves all expenses scoped to a departure,
	// ordered by date.
	GetAllByDeparture(ctx context.Context, departureID kernel.UUID) ([]*expense.Expense, error)
}
