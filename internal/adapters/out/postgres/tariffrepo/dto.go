// Package tariffrepo persists the rate catalog.
package tariffrepo

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/domain/model/tariff"

	"github.com/google/uuid"
)

// TariffDTO is the database shape of one rate catalog entry.
type TariffDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Route       RouteDTO  `gorm:"embedded;embeddedPrefix:route_"`
	Transport   int
	PackageType string
	BillingUnit int
	Rate        float64
}

// TableName overrides GORM's default naming to use "tariffs".
func (TariffDTO) TableName() string {
	return "tariffs"
}

// RouteDTO is the embedded origin/destination triple.
type RouteDTO struct {
	OriginCountry      string
	OriginCity         string
	DestinationCountry string
}

func fromDomain(t *tariff.Tariff) TariffDTO {
	return TariffDTO{
		ID: t.ID().Bytes(),
		Route: RouteDTO{
			OriginCountry:      t.Route().OriginCountry(),
			OriginCity:         t.Route().OriginCity(),
			DestinationCountry: t.Route().DestinationCountry(),
		},
		Transport:   int(t.Transport()),
		PackageType: t.PackageType(),
		BillingUnit: int(t.BillingUnit()),
		Rate:        t.Rate(),
	}
}

func toDomain(dto TariffDTO) (*tariff.Tariff, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	route, err := kernel.NewRoute(dto.Route.OriginCountry, dto.Route.OriginCity, dto.Route.DestinationCountry)
	if err != nil {
		return nil, err
	}

	return tariff.NewTariff(
		id,
		route,
		kernel.TransportMode(dto.Transport),
		dto.PackageType,
		parcel.BillingUnit(dto.BillingUnit),
		dto.Rate,
	)
}
