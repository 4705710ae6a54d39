// Package commands contains the write-side operations of the back-office.
// Every operation follows the same shape: a guarded command constructor that
// validates its input locally, and a handler that opens a unit of work, loads
// the aggregates, applies domain methods and commits. Validation errors never
// reach the persistence layer.
package commands

import (
	"context"

	"freight/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Narrow interfaces declare exactly which repositories a handler touches.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DepartureRepoFactory provides the departure repository within a transaction.
	DepartureRepoFactory interface {
		DepartureRepository() ports.DepartureRepository
	}

	// ParcelRepoFactory provides the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// ExpenseRepoFactory provides the expense repository within a transaction.
	ExpenseRepoFactory interface {
		ExpenseRepository() ports.ExpenseRepository
	}

	// TariffRepoFactory provides the tariff repository within a transaction.
	TariffRepoFactory interface {
		TariffRepository() ports.TariffRepository
	}

	// ParcelUoW manages transactions for parcel-only operations (intake,
	// receive), which also read the tariff catalog.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
		TariffRepoFactory
	}

	// ParcelUoWFactory creates parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// ExpenseUoW manages transactions for the expense ledger, which verifies
	// the owning departure exists.
	ExpenseUoW interface {
		TxManager
		DepartureRepoFactory
		ExpenseRepoFactory
	}

	// ExpenseUoWFactory creates expense unit of work instances.
	ExpenseUoWFactory interface {
		Create() ExpenseUoW
	}

	// UoW manages transactions spanning departures and parcels: the lifecycle
	// and assignment operations.
	UoW interface {
		TxManager
		DepartureRepoFactory
		ParcelRepoFactory
	}

	// UoWFactory creates unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
