// Package parcelrepo persists the parcel aggregate and maps between domain
// and database representations.
package parcelrepo

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO is the database shape of a parcel aggregate. The departure
// back-reference realizes departure package lists as a reverse lookup.
type ParcelDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingCode         string    `gorm:"uniqueIndex"`
	SupplierTrackingCode string    `gorm:"index"`
	ClientRef            string    `gorm:"index"`
	Description          string
	Route                RouteDTO `gorm:"embedded;embeddedPrefix:route_"`
	Transport            int
	PackageType          string
	BillingUnit          int
	WeightKg             float64
	VolumeM3             float64
	Quantity             int
	Amount               float64
	PaidAmount           float64
	Status               int        `gorm:"index"`
	DepartureID          *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName overrides GORM's default naming to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// RouteDTO is the embedded origin/destination triple.
type RouteDTO struct {
	OriginCountry      string
	OriginCity         string
	DestinationCountry string
}

func fromDomain(p *parcel.Parcel) ParcelDTO {
	var departureID *uuid.UUID
	if id := p.Departure(); id != nil {
		raw := id.Bytes()
		departureID = &raw
	}

	return ParcelDTO{
		ID:                   p.ID().Bytes(),
		TrackingCode:         p.TrackingCode(),
		SupplierTrackingCode: p.SupplierTrackingCode(),
		ClientRef:            p.ClientRef(),
		Description:          p.Description(),
		Route: RouteDTO{
			OriginCountry:      p.Route().OriginCountry(),
			OriginCity:         p.Route().OriginCity(),
			DestinationCountry: p.Route().DestinationCountry(),
		},
		Transport:   int(p.Transport()),
		PackageType: p.PackageType(),
		BillingUnit: int(p.BillingUnit()),
		WeightKg:    p.WeightKg(),
		VolumeM3:    p.VolumeM3(),
		Quantity:    p.Quantity(),
		Amount:      p.Amount(),
		PaidAmount:  p.PaidAmount(),
		Status:      int(p.Status()),
		DepartureID: departureID,
	}
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	route, err := kernel.NewRoute(dto.Route.OriginCountry, dto.Route.OriginCity, dto.Route.DestinationCountry)
	if err != nil {
		return nil, err
	}

	var departureID *kernel.UUID
	if dto.DepartureID != nil {
		dID, depErr := kernel.UUIDFromBytes((*dto.DepartureID)[:])
		if depErr != nil {
			return nil, depErr
		}
		departureID = &dID
	}

	return parcel.RestoreParcel(
		id,
		dto.TrackingCode,
		dto.SupplierTrackingCode,
		dto.ClientRef,
		dto.Description,
		route,
		kernel.TransportMode(dto.Transport),
		dto.PackageType,
		parcel.BillingUnit(dto.BillingUnit),
		dto.WeightKg,
		dto.VolumeM3,
		dto.Quantity,
		dto.Amount,
		dto.PaidAmount,
		parcel.Status(dto.Status),
		departureID,
	)
}
