package queries

import (
	"context"
	"time"

	"freight/internal/core/domain/model/departure"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeparturesQueryHandler reads the departure board with derived parcel
// totals in one LEFT JOIN, so an empty departure still shows up with zeros.
type GetDeparturesQueryHandler struct {
	db *gorm.DB
}

// NewGetDeparturesQueryHandler creates a handler for departure board queries.
func NewGetDeparturesQueryHandler(db *gorm.DB) GetDeparturesQueryHandler {
	return GetDeparturesQueryHandler{db: db}
}

// Handle executes the board query. Upcoming departures sort soonest first;
// every other scope sorts most recent first.
func (h GetDeparturesQueryHandler) Handle(
	ctx context.Context,
	query GetDeparturesQuery,
) ([]GetDeparturesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := ""
	var args []any
	switch query.Scope() {
	case ScopeUpcoming:
		where = "WHERE d.status = ?"
		args = append(args, int(departure.StatusScheduled))
	case ScopeDeparted:
		where = "WHERE d.status = ?"
		args = append(args, int(departure.StatusDeparted))
	case ScopeArrived:
		where = "WHERE d.status = ?"
		args = append(args, int(departure.StatusArrived))
	case ScopeCancelled:
		where = "WHERE d.status = ?"
		args = append(args, int(departure.StatusCancelled))
	case ScopeAll:
	}

	order := "ORDER BY d.scheduled_at DESC"
	if query.Scope() == ScopeUpcoming {
		order = "ORDER BY d.scheduled_at ASC"
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.route_origin_country,
			d.route_origin_city,
			d.route_destination_country,
			d.transport,
			d.scheduled_at,
			d.duration_days,
			d.status,
			d.departed_at,
			d.notified,
			COUNT(p.id),
			COALESCE(SUM(p.weight_kg), 0),
			COALESCE(SUM(p.amount), 0)
		FROM departures d
		LEFT JOIN parcels p ON p.departure_id = d.id
		`+where+`
		GROUP BY d.id
		`+order, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := time.Now()
	departures := make([]GetDeparturesQueryResponse, 0)

	for rows.Next() {
		var resp GetDeparturesQueryResponse
		var id uuid.UUID
		var transport, status int

		err = rows.Scan(
			&id,
			&resp.OriginCountry,
			&resp.OriginCity,
			&resp.DestinationCountry,
			&transport,
			&resp.ScheduledAt,
			&resp.DurationDays,
			&status,
			&resp.DepartedAt,
			&resp.Notified,
			&resp.ParcelCount,
			&resp.TotalWeightKg,
			&resp.TotalRevenue,
		)
		if err != nil {
			return nil, err
		}

		departureID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = departureID
		resp.Transport = kernel.TransportMode(transport).String()
		resp.Status = departure.Status(status).String()

		if departure.Status(status) == departure.StatusDeparted {
			resp.DaysRemaining = daysRemaining(resp.ScheduledAt, resp.DepartedAt, resp.DurationDays, now)
		}

		departures = append(departures, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return departures, nil
}

// daysRemaining counts whole days until the estimated arrival, preferring the
// actual departure time over the schedule and never going negative.
func daysRemaining(scheduledAt time.Time, departedAt *time.Time, durationDays int, now time.Time) int {
	base := scheduledAt
	if departedAt != nil {
		base = *departedAt
	}

	elapsed := int(now.Sub(base).Hours() / 24)
	remaining := durationDays - elapsed
	if remaining < 0 {
		return 0
	}

	return remaining
}
