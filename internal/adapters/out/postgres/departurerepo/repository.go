package departurerepo

import (
	"context"
	"errors"
	"fmt"

	"freight/internal/core/domain/model/departure"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDepartureRepository implements DepartureRepository using GORM.
type GormDepartureRepository struct {
	db *gorm.DB
}

// NewGormDepartureRepository creates a new GORM departure repository.
func NewGormDepartureRepository(db *gorm.DB) *GormDepartureRepository {
	return &GormDepartureRepository{db: db}
}

// Add saves a new departure with its carrier history.
func (r *GormDepartureRepository) Add(ctx context.Context, aggregate *departure.Departure) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes the departure guarded by its version: the row is only touched
// when the stored version still equals the aggregate's, and the write bumps
// it. A lost race surfaces as a ConflictError with nothing written. The
// carrier history is replaced wholesale; it is small and append-mostly.
func (r *GormDepartureRepository) Update(ctx context.Context, aggregate *departure.Departure) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&DepartureDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select(
			"route_origin_country", "route_origin_city", "route_destination_country",
			"transport", "scheduled_at", "duration_days", "notes", "notify_clients",
			"status", "departed_at", "notified", "notified_at", "version",
		).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError(
			"departure version",
			fmt.Sprintf("departure %s was modified concurrently", aggregate.ID()),
		)
	}

	if err := r.db.WithContext(ctx).
		Where("departure_id = ?", dto.ID).
		Delete(&CarrierDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Carriers) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&dto.Carriers).Error
}

// Get retrieves a departure by ID with its carrier history in assignment
// order.
func (r *GormDepartureRepository) Get(ctx context.Context, id kernel.UUID) (*departure.Departure, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DepartureDTO
	err := r.db.WithContext(ctx).
		Preload("Carriers", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("departure", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInDepartedStatus retrieves all departures currently in transit.
func (r *GormDepartureRepository) GetAllInDepartedStatus(ctx context.Context) ([]*departure.Departure, error) {
	var dtos []DepartureDTO
	err := r.db.WithContext(ctx).
		Preload("Carriers", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Find(&dtos, "status = ?", int(departure.StatusDeparted)).Error
	if err != nil {
		return nil, err
	}

	departures := make([]*departure.Departure, 0, len(dtos))
	for _, dto := range dtos {
		d, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		departures = append(departures, d)
	}

	return departures, nil
}
