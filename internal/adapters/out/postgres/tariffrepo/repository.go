package tariffrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/tariff"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTariffRepository implements TariffRepository using GORM.
type GormTariffRepository struct {
	db *gorm.DB
}

// NewGormTariffRepository creates a new GORM tariff repository.
func NewGormTariffRepository(db *gorm.DB) *GormTariffRepository {
	return &GormTariffRepository{db: db}
}

// Add saves a new tariff entry.
func (r *GormTariffRepository) Add(ctx context.Context, aggregate *tariff.Tariff) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Find resolves the rate for a corridor, transport and package type. A miss
// is a configuration error, not a plain not-found: a parcel cannot be priced
// until an administrator configures the rate.
func (r *GormTariffRepository) Find(
	ctx context.Context,
	route kernel.Route,
	transport kernel.TransportMode,
	packageType string,
) (*tariff.Tariff, error) {
	if err := errors.Join(route.Validate(), transport.Validate()); err != nil {
		return nil, err
	}
	if packageType == "" {
		return nil, errs.NewValueIsRequiredError("packageType")
	}

	var dto TariffDTO
	err := r.db.WithContext(ctx).
		Where("route_origin_country = ? AND route_destination_country = ? AND transport = ? AND package_type = ?",
			route.OriginCountry(), route.DestinationCountry(), int(transport), packageType).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNoTariffConfiguredError(route.Corridor(), transport.String(), packageType)
		}
		return nil, err
	}

	return toDomain(dto)
}
