package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"freight/internal/core/domain/model/departure"
	"freight/internal/core/domain/model/expense"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDepartureDetailsQueryHandler reads one departure together with its
// financial picture and carrier history.
type GetDepartureDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetDepartureDetailsQueryHandler creates a handler for departure detail queries.
func NewGetDepartureDetailsQueryHandler(db *gorm.DB) GetDepartureDetailsQueryHandler {
	return GetDepartureDetailsQueryHandler{db: db}
}

// Handle executes the detail query. Revenue is the sum of parcel amounts on
// the departure; the margin is computed from revenue and the expense total
// and stays nil when there is no revenue yet.
func (h GetDepartureDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetDepartureDetailsQuery,
) (*GetDepartureDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	departureID := query.DepartureID().Bytes()

	var resp GetDepartureDetailsQueryResponse
	var id uuid.UUID
	var transport, status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.route_origin_country,
			d.route_origin_city,
			d.route_destination_country,
			d.transport,
			d.scheduled_at,
			d.duration_days,
			d.notes,
			d.notify_clients,
			d.status,
			d.departed_at,
			d.notified,
			d.notified_at,
			d.version,
			COUNT(p.id),
			COALESCE(SUM(p.weight_kg), 0),
			COALESCE(SUM(p.amount), 0)
		FROM departures d
		LEFT JOIN parcels p ON p.departure_id = d.id
		WHERE d.id = ?
		GROUP BY d.id`, departureID).Row()

	err := row.Scan(
		&id,
		&resp.OriginCountry,
		&resp.OriginCity,
		&resp.DestinationCountry,
		&transport,
		&resp.ScheduledAt,
		&resp.DurationDays,
		&resp.Notes,
		&resp.NotifyClients,
		&status,
		&resp.DepartedAt,
		&resp.Notified,
		&resp.NotifiedAt,
		&resp.Version,
		&resp.ParcelCount,
		&resp.TotalWeightKg,
		&resp.Revenue,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("departure", query.DepartureID().String())
	}
	if err != nil {
		return nil, err
	}

	resp.ID = query.DepartureID()
	resp.Transport = kernel.TransportMode(transport).String()
	resp.Status = departure.Status(status).String()

	if departure.Status(status) == departure.StatusDeparted {
		resp.DaysRemaining = daysRemaining(resp.ScheduledAt, resp.DepartedAt, resp.DurationDays, time.Now())
	}

	resp.Expenses, err = h.readExpenses(ctx, departureID)
	if err != nil {
		return nil, err
	}
	for _, line := range resp.Expenses {
		resp.ExpenseTotal += line.Amount
	}

	report := services.ComputeMargin(resp.Revenue, resp.ExpenseTotal)
	resp.Gain = report.Gain
	resp.MarginPercent = report.MarginPercent

	resp.Carriers, err = h.readCarriers(ctx, departureID)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (h GetDepartureDetailsQueryHandler) readExpenses(
	ctx context.Context,
	departureID uuid.UUID,
) ([]ExpenseLine, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, category, description, amount, date
		FROM expenses
		WHERE departure_id = ?
		ORDER BY date ASC`, departureID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := make([]ExpenseLine, 0)
	for rows.Next() {
		var line ExpenseLine
		var id uuid.UUID
		var category int

		err = rows.Scan(&id, &category, &line.Description, &line.Amount, &line.Date)
		if err != nil {
			return nil, err
		}

		expenseID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		line.ID = expenseID
		line.Category = expense.Category(category).String()

		expenses = append(expenses, line)
	}

	return expenses, rows.Err()
}

// readCarriers returns carrier legs in assignment order, so the open leg, if
// any, comes last.
func (h GetDepartureDetailsQueryHandler) readCarriers(
	ctx context.Context,
	departureID uuid.UUID,
) ([]CarrierLine, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT carrier, tracking_code, is_final_leg, from_at, to_at, final_status
		FROM departure_carriers
		WHERE departure_id = ?
		ORDER BY seq ASC`, departureID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	carriers := make([]CarrierLine, 0)
	for rows.Next() {
		var line CarrierLine

		err = rows.Scan(
			&line.Carrier,
			&line.TrackingCode,
			&line.IsFinalLeg,
			&line.From,
			&line.To,
			&line.FinalStatus,
		)
		if err != nil {
			return nil, err
		}

		carriers = append(carriers, line)
	}

	return carriers, rows.Err()
}
