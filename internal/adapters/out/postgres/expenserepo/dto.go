// Package expenserepo persists departure expense entries.
package expenserepo

import (
	"time"

	"freight/internal/core/domain/model/expense"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ExpenseDTO is the database shape of one ledger entry.
type ExpenseDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DepartureID uuid.UUID `gorm:"type:uuid;index"`
	Category    int
	Description string
	Amount      float64
	Date        time.Time
}

// TableName overrides GORM's default naming to use "expenses".
func (ExpenseDTO) TableName() string {
	return "expenses"
}

func fromDomain(e *expense.Expense) ExpenseDTO {
	return ExpenseDTO{
		ID:          e.ID().Bytes(),
		DepartureID: e.DepartureID().Bytes(),
		Category:    int(e.Category()),
		Description: e.Description(),
		Amount:      e.Amount(),
		Date:        e.Date(),
	}
}

func toDomain(dto ExpenseDTO) (*expense.Expense, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	departureID, err := kernel.UUIDFromBytes(dto.DepartureID[:])
	if err != nil {
		return nil, err
	}

	return expense.RestoreExpense(
		id,
		departureID,
		expense.Category(dto.Category),
		dto.Description,
		dto.Amount,
		dto.Date,
	)
}
