package expenserepo

import (
	"context"

	"freight/internal/core/domain/model/expense"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormExpenseRepository implements ExpenseRepository using GORM. The ledger
// is append/delete only; there is no update path.
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GORM expense repository.
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// Add saves a new expense entry.
func (r *GormExpenseRepository) Add(ctx context.Context, aggregate *expense.Expense) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Delete removes an expense entry by ID.
func (r *GormExpenseRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ExpenseDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("expense", id.String())
	}

	return nil
}

// GetAllByDeparture retrieves a departure's expenses ordered by date.
func (r *GormExpenseRepository) GetAllByDeparture(
	ctx context.Context,
	departureID kernel.UUID,
) ([]*expense.Expense, error) {
	if err := departureID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ExpenseDTO
	err := r.db.WithContext(ctx).
		Where("departure_id = ?", departureID.Bytes()).
		Order("date").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	expenses := make([]*expense.Expense, 0, len(dtos))
	for _, dto := range dtos {
		e, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		expenses = append(expenses, e)
	}

	return expenses, nil
}
