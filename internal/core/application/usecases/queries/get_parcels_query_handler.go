package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelsQueryHandler reads parcel listings for the intake board and the
// departure detail view.
type GetParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelsQueryHandler creates a handler for parcel listing queries.
func NewGetParcelsQueryHandler(db *gorm.DB) GetParcelsQueryHandler {
	return GetParcelsQueryHandler{db: db}
}

// Handle executes the listing query for the filter baked into it.
func (h GetParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetParcelsQuery,
) ([]GetParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := ""
	var args []any
	switch query.filter {
	case filterAll:
	case filterUnassigned:
		where = "WHERE departure_id IS NULL"
	case filterByDeparture:
		where = "WHERE departure_id = ?"
		args = append(args, query.departureID.Bytes())
	case filterByCorridor:
		where = "WHERE route_origin_country = ? AND route_destination_country = ? AND transport = ?"
		args = append(args,
			query.route.OriginCountry(),
			query.route.DestinationCountry(),
			int(query.transport),
		)
	case filterByTrackingCode:
		where = "WHERE LOWER(tracking_code) = LOWER(?) OR" +
			" (supplier_tracking_code <> '' AND LOWER(supplier_tracking_code) = LOWER(?))"
		args = append(args, query.trackingCode, query.trackingCode)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_code,
			supplier_tracking_code,
			client_ref,
			description,
			route_origin_country,
			route_origin_city,
			route_destination_country,
			transport,
			package_type,
			billing_unit,
			weight_kg,
			volume_m3,
			quantity,
			amount,
			paid_amount,
			status,
			departure_id
		FROM parcels
		`+where+`
		ORDER BY tracking_code ASC`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parcels := make([]GetParcelsQueryResponse, 0)

	for rows.Next() {
		var resp GetParcelsQueryResponse
		var id uuid.UUID
		var departureID *uuid.UUID
		var transport, billingUnit, status int

		err = rows.Scan(
			&id,
			&resp.TrackingCode,
			&resp.SupplierTrackingCode,
			&resp.ClientRef,
			&resp.Description,
			&resp.OriginCountry,
			&resp.OriginCity,
			&resp.DestinationCountry,
			&transport,
			&resp.PackageType,
			&billingUnit,
			&resp.WeightKg,
			&resp.VolumeM3,
			&resp.Quantity,
			&resp.Amount,
			&resp.PaidAmount,
			&status,
			&departureID,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = parcelID
		resp.Transport = kernel.TransportMode(transport).String()
		resp.BillingUnit = parcel.BillingUnit(billingUnit).String()
		resp.Status = parcel.Status(status).String()

		if departureID != nil {
			dID, depErr := kernel.UUIDFromBytes((*departureID)[:])
			if depErr != nil {
				return nil, depErr
			}
			resp.DepartureID = &dID
		}

		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
