package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over all aggregate
// repositories. Client code manages the transaction lifecycle explicitly:
// Begin, then repository operations, then Commit or Rollback.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	Rollback(ctx context.Context) error

	// DepartureRepository returns a repository bound to the current transaction.
	DepartureRepository() DepartureRepository

	// ParcelRepository returns a repository bound to the current transaction.
	ParcelRepository() ParcelRepository

	// ExpenseRepository returns a repository bound to the current transaction.
	ExpenseRepository() ExpenseRepository

	// TariffRepository returns a repository bound to the current transaction.
	TariffRepository() TariffRepository
}
