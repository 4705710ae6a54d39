package parcelrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db *gorm.DB
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB) *GormParcelRepository {
	return &GormParcelRepository{db: db}
}

// Add saves a new parcel to the database.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing parcel. Save writes every column, so clearing the
// departure reference on unassign is persisted too.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("parcel", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByTrackingCode resolves a scanned code against the parcel's own code or
// the supplier's, case-insensitively.
func (r *GormParcelRepository) FindByTrackingCode(ctx context.Context, code string) (*parcel.Parcel, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto ParcelDTO
	err := r.db.WithContext(ctx).
		Where("LOWER(tracking_code) = LOWER(?) OR (supplier_tracking_code <> '' AND LOWER(supplier_tracking_code) = LOWER(?))",
			code, code).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel tracking code", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllUnassignedMatching retrieves the auto-assign candidate pool: parcels
// with no departure whose corridor and transport equal the given pair. The
// origin city is deliberately not part of the predicate.
func (r *GormParcelRepository) GetAllUnassignedMatching(
	ctx context.Context,
	route kernel.Route,
	transport kernel.TransportMode,
) ([]*parcel.Parcel, error) {
	if err := errors.Join(route.Validate(), transport.Validate()); err != nil {
		return nil, err
	}

	var dtos []ParcelDTO
	err := r.db.WithContext(ctx).
		Where("departure_id IS NULL AND route_origin_country = ? AND route_destination_country = ? AND transport = ?",
			route.OriginCountry(), route.DestinationCountry(), int(transport)).
		Order("tracking_code").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllByDeparture retrieves the parcels assigned to a departure.
func (r *GormParcelRepository) GetAllByDeparture(
	ctx context.Context,
	departureID kernel.UUID,
) ([]*parcel.Parcel, error) {
	if err := departureID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ParcelDTO
	err := r.db.WithContext(ctx).
		Where("departure_id = ?", departureID.Bytes()).
		Order("tracking_code").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// CountByDeparture counts the parcels assigned to a departure.
func (r *GormParcelRepository) CountByDeparture(ctx context.Context, departureID kernel.UUID) (int, error) {
	if err := departureID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("departure_id = ?", departureID.Bytes()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

func toDomainAll(dtos []ParcelDTO) ([]*parcel.Parcel, error) {
	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}
	return parcels, nil
}
