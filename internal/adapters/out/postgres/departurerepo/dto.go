// Package departurerepo persists the departure aggregate, including its
// ordered carrier assignment history, and maps between domain and database
// representations.
package departurerepo

import (
	"time"

	"freight/internal/core/domain/model/departure"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DepartureDTO is the database shape of a departure aggregate. The version
// column is the optimistic concurrency token checked on every update.
type DepartureDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Route         RouteDTO  `gorm:"embedded;embeddedPrefix:route_"`
	Transport     int
	ScheduledAt   time.Time
	DurationDays  int
	Notes         string
	NotifyClients bool
	Status        int `gorm:"index"`
	DepartedAt    *time.Time
	Notified      bool
	NotifiedAt    *time.Time
	Version       int

	Carriers []CarrierDTO `gorm:"foreignKey:DepartureID;references:ID"`
}

// TableName overrides GORM's default naming to use "departures".
func (DepartureDTO) TableName() string {
	return "departures"
}

// RouteDTO is the embedded origin/destination triple.
type RouteDTO struct {
	OriginCountry      string
	OriginCity         string
	DestinationCountry string
}

// CarrierDTO is one carrier leg row. Seq preserves assignment order.
type CarrierDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	DepartureID  uuid.UUID `gorm:"type:uuid;index"`
	Seq          int
	Carrier      string
	TrackingCode string
	IsFinalLeg   bool
	FromAt       time.Time
	ToAt         *time.Time
	FinalStatus  string
}

// TableName overrides GORM's default naming to use "departure_carriers".
func (CarrierDTO) TableName() string {
	return "departure_carriers"
}

func fromDomain(d *departure.Departure) DepartureDTO {
	history := d.CarrierHistory()
	carriers := make([]CarrierDTO, 0, len(history))
	for i, leg := range history {
		carriers = append(carriers, CarrierDTO{
			DepartureID:  d.ID().Bytes(),
			Seq:          i,
			Carrier:      leg.Carrier(),
			TrackingCode: leg.TrackingCode(),
			IsFinalLeg:   leg.IsFinalLeg(),
			FromAt:       leg.From(),
			ToAt:         leg.To(),
			FinalStatus:  leg.FinalStatus(),
		})
	}

	return DepartureDTO{
		ID: d.ID().Bytes(),
		Route: RouteDTO{
			OriginCountry:      d.Route().OriginCountry(),
			OriginCity:         d.Route().OriginCity(),
			DestinationCountry: d.Route().DestinationCountry(),
		},
		Transport:     int(d.Transport()),
		ScheduledAt:   d.ScheduledAt(),
		DurationDays:  d.DurationDays(),
		Notes:         d.Notes(),
		NotifyClients: d.NotifyClients(),
		Status:        int(d.Status()),
		DepartedAt:    d.DepartedAt(),
		Notified:      d.Notified(),
		NotifiedAt:    d.NotifiedAt(),
		Version:       d.Version(),
		Carriers:      carriers,
	}
}

func toDomain(dto DepartureDTO) (*departure.Departure, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	route, err := kernel.NewRoute(dto.Route.OriginCountry, dto.Route.OriginCity, dto.Route.DestinationCountry)
	if err != nil {
		return nil, err
	}

	history := make([]departure.CarrierAssignment, 0, len(dto.Carriers))
	for _, leg := range dto.Carriers {
		history = append(history, departure.RestoreCarrierAssignment(
			leg.Carrier,
			leg.TrackingCode,
			leg.IsFinalLeg,
			leg.FromAt,
			leg.ToAt,
			leg.FinalStatus,
		))
	}

	return departure.RestoreDeparture(
		id,
		route,
		kernel.TransportMode(dto.Transport),
		dto.ScheduledAt,
		dto.DurationDays,
		dto.Notes,
		dto.NotifyClients,
		departure.Status(dto.Status),
		dto.DepartedAt,
		dto.Notified,
		dto.NotifiedAt,
		history,
		dto.Version,
	)
}
