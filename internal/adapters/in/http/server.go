// Package http exposes the back-office API over Echo. Routes delegate to
// command and query handlers; the only logic living here is request parsing,
// error mapping and stats cache invalidation after successful mutations.
package http

import (
	"context"
	"net/http"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/expense"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// CommandHandlers groups every command handler the server dispatches to.
type CommandHandlers struct {
	CreateDeparture commands.CreateDepartureCommandHandler
	UpdateDeparture commands.UpdateDepartureCommandHandler
	MarkDeparted    commands.MarkDepartedCommandHandler
	MarkArrived     commands.MarkArrivedCommandHandler
	CancelDeparture commands.CancelDepartureCommandHandler
	NotifyClients   commands.NotifyClientsCommandHandler
	AssignCarrier   commands.AssignCarrierCommandHandler
	RefreshTracking commands.RefreshTrackingCommandHandler
	AssignParcels   commands.AssignParcelsCommandHandler
	RemoveParcel    commands.RemoveParcelCommandHandler
	ScanAssign      commands.ScanAssignCommandHandler
	CreateParcel    commands.CreateParcelCommandHandler
	ReceiveParcel   commands.ReceiveParcelCommandHandler
	RecordPayment   commands.RecordPaymentCommandHandler
	AddExpense      commands.AddExpenseCommandHandler
	DeleteExpense   commands.DeleteExpenseCommandHandler
}

// QueryHandlers groups every query handler the server dispatches to.
type QueryHandlers struct {
	Departures       queries.GetDeparturesQueryHandler
	DepartureDetails queries.GetDepartureDetailsQueryHandler
	Parcels          queries.GetParcelsQueryHandler
	PeriodStats      queries.GetPeriodStatsQueryHandler
}

// Server wires the HTTP surface to the application layer.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	cache    ports.QueryCache
	loc      *time.Location
}

// NewServer creates the HTTP server. cache may be nil when stats caching is
// disabled.
func NewServer(cmds CommandHandlers, qrys QueryHandlers, cache ports.QueryCache, loc *time.Location) *Server {
	if loc == nil {
		loc = time.UTC
	}

	return &Server{
		commands: cmds,
		queries:  qrys,
		cache:    cache,
		loc:      loc,
	}
}

// RegisterRoutes mounts every route under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/departures", s.GetDepartures)
	api.POST("/departures", s.CreateDeparture)
	api.GET("/departures/:departureId", s.GetDepartureDetails)
	api.PUT("/departures/:departureId", s.UpdateDeparture)
	api.DELETE("/departures/:departureId", s.CancelDeparture)
	api.POST("/departures/:departureId/depart", s.MarkDeparted)
	api.POST("/departures/:departureId/arrive", s.MarkArrived)
	api.POST("/departures/:departureId/notify", s.NotifyClients)
	api.POST("/departures/:departureId/carrier", s.AssignCarrier)
	api.GET("/departures/:departureId/carriers", s.GetCarrierHistory)
	api.POST("/departures/:departureId/tracking/refresh", s.RefreshTracking)
	api.POST("/departures/:departureId/parcels", s.AssignParcels)
	api.DELETE("/departures/:departureId/parcels/:parcelId", s.RemoveParcel)
	api.POST("/departures/:departureId/scan", s.ScanAssign)
	api.GET("/departures/:departureId/expenses", s.GetExpenses)
	api.POST("/departures/:departureId/expenses", s.AddExpense)
	api.DELETE("/departures/:departureId/expenses/:expenseId", s.DeleteExpense)
	api.GET("/parcels", s.GetParcels)
	api.POST("/parcels", s.CreateParcel)
	api.GET("/parcels/track/:code", s.FindParcelByTracking)
	api.POST("/parcels/:parcelId/receive", s.ReceiveParcel)
	api.POST("/parcels/:parcelId/payments", s.RecordPayment)
	api.GET("/stats", s.GetPeriodStats)
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// GetDepartures handles GET /api/v1/departures?scope=upcoming|departed|arrived|cancelled|all.
func (s *Server) GetDepartures(ctx echo.Context) error {
	scope := queries.DepartureScope(ctx.QueryParam("scope"))
	if scope == "" {
		scope = queries.ScopeAll
	}

	query, err := queries.NewGetDeparturesQuery(scope)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.queries.Departures.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Departure, len(rows))
	for i, row := range rows {
		response[i] = Departure{
			ID:                 row.ID.String(),
			OriginCountry:      row.OriginCountry,
			OriginCity:         row.OriginCity,
			DestinationCountry: row.DestinationCountry,
			Transport:          row.Transport,
			ScheduledAt:        row.ScheduledAt,
			DurationDays:       row.DurationDays,
			Status:             row.Status,
			DepartedAt:         row.DepartedAt,
			Notified:           row.Notified,
			ParcelCount:        row.ParcelCount,
			TotalWeightKg:      row.TotalWeightKg,
			TotalRevenue:       row.TotalRevenue,
			DaysRemaining:      row.DaysRemaining,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDeparture handles POST /api/v1/departures.
func (s *Server) CreateDeparture(ctx echo.Context) error {
	var req CreateDepartureRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	route, err := kernel.NewRoute(req.OriginCountry, req.OriginCity, req.DestinationCountry)
	if err != nil {
		return respondError(ctx, err)
	}

	transport, err := kernel.TransportModeFromString(req.Transport)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateDepartureCommand(
		kernel.NewUUID(),
		route,
		transport,
		req.ScheduledAt,
		req.DurationDays,
		req.Notes,
		req.NotifyClients,
		req.AutoAssign,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.commands.CreateDeparture.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	s.invalidateStatsForDate(ctx.Request().Context(), req.ScheduledAt)

	return ctx.JSON(http.StatusCreated, CreateDepartureResponse{
		ID:            result.Departure.ID().String(),
		AssignedCount: result.AssignedCount,
	})
}

// GetDepartureDetails handles GET /api/v1/departures/:departureId.
func (s *Server) GetDepartureDetails(ctx echo.Context) error {
	departureID, err := pathUUID(ctx, "departureId")
	if err != nil {
		return respondError(ctx, err)
	}

	details, err := s.departureDetails(ctx.Request().Context(), departureID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDetailsContract(details))
}

// UpdateDeparture handles PUT /api/v1/departures/:departureId.
func (s *Server) UpdateDeparture(ctx echo.Context) error {
	departureID, err := pathUUID(ctx, "departureId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateDepartureRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	route, err := kernel.NewRoute(req.OriginCountry, req.OriginCity, req.DestinationCountry)
	if err != nil {
		return respondError(ctx, err)
	}

	transport, err := kernel.TransportModeFromString(req.Transport)
	if err != nil {
		return respondError(ctx, err)
	}

	// Capture the pre-edit schedule so the window it lived in gets
	// invalidated when the edit moves the departure out of it.
	var previousScheduledAt *time.Time
	if before, detailsErr := s.departureDetails(ctx.Request().Context(), departureID); detailsErr == nil {
		previousScheduledAt = &before.ScheduledAt
	}

	cmd, err := commands.NewUpdateDepartureCommand(
		departureID,
		route,
		transport,
		req.ScheduledAt,
		req.DurationDays,
		req.Notes,
		req.ExpectedVersion,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.UpdateDeparture.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	s.invalidateStatsForDate(ctx.Request().Context(), req.ScheduledAt)
	if previousScheduledAt != nil {
		s.invalidateStatsForDate(ctx.Request().Context(), *previousScheduledAt)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelDeparture handles DELETE /api/v1/departures/:departureId.
// The acknowledgedParcels query parameter confirms how many assigned parcels
// the operator accepts to release back to the unassigned pool.
func (s *Server) CancelDeparture(ctx echo.Context) error {
	departureID, err := pathUUID(ctx, "departureId")
	if err != nil {
		return respondError(ctx, err)
	}

	acknowledged := 0
	if raw := ctx.QueryParam("acknowledgedParcels"); raw != "" {
		if err = echo.QueryParamsBinder(ctx).Int("acknowledgedParcels", &acknowledged).BindError(); err != nil {
			return badRequest(ctx, "acknowledgedParcels must be an integer")
		}
	}

	cmd, err := commands.NewCancelDepartureCommand(departureID, acknowledged)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.CancelDeparture.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	s.invalidateStats(ctx.Request().Context(), departureID)

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDeparted handles POST /api/v1/departures/:departureId/depart.
func (s *Server) MarkDeparted(ctx echo.Context) error {
	departureID, err := pathUUID(ctx, "departureId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkDepartedCommand(departureID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.MarkDeparted.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkArrived handles POST /api/v1/departures/:departureId/arrive.
func (s *Server) MarkArrived(ctx echo.Context) error {
	departureID, err := pathUUID(ctx, "departureId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkArrivedCommand(departureID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.MarkArrived.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// NotifyClients handles POST /api/v1/departures/:departureId/notify.
func (s *Server) NotifyClients(ctx echo.Context) error {
	departureID, err := pathUUID(ctx, "departureId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req NotifyRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewNotifyClientsCommand(departureID, req.Target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.NotifyClients.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignCarrier handles POST /api/v1/departures/:departureId/carrier.
func (s *Server) AssignCarrier(ctx echo.Context) error {
	departureID, err := pathUUID(ctx, "departureId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req AssignCarrierRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAssignCarrierCommand(
		departureID,
		req.Carrier,
		req.TrackingCode,
		req.IsFinalLeg,
		req.Notify,
		req.NotifyTarget,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.AssignCarrier.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCarrierHistory handles GET /api/v1/departures/:departureId/carriers.
// Legs come back in assignment order, the open leg last.
func (s *Server) GetCarrierHistory(ctx echo.Context) error {
	departureID, err := pathUUID(ctx, "departureId")
	if err != nil {
		return respondError(ctx, err)
	}

	details, err := s.departureDetails(ctx.Request().Context(), departureID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCarrierContracts(details.Carriers))
}

// RefreshTracking handles POST /api/v1/departures/:departureId/tracking/refresh.
func (s *Server) RefreshTracking(ctx echo.Context) error {
	departureID, err := pathUUID(ctx, "departureId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRefreshTrackingCommand(departureID)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.commands.RefreshTracking.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RefreshTrackingResponse{Updated: updated})
}

// AssignParcels handles POST /api/v1/departures/:departureId/parcels.
func (s *Server) AssignParcels(ctx echo.Context) error {
	departureID, err := pathUUID(ctx, "departureId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req AssignParcelsRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	parcelIDs := make([]kernel.UUID, 0, len(req.ParcelIDs))
	for _, raw := range req.ParcelIDs {
		parcelID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		parcelIDs = append(parcelIDs, parcelID)
	}

	cmd, err := commands.NewAssignParcelsCommand(departureID, parcelIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.AssignParcels.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	s.invalidateStats(ctx.Request().Context(), departureID)

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveParcel handles DELETE /api/v1/departures/:departureId/parcels/:parcelId.
func (s *Server) RemoveParcel(ctx echo.Context) error {
	departureID, err := pathUUID(ctx, "departureId")
	if err != nil {
		return respondError(ctx, err)
	}

	parcelID, err := pathUUID(ctx, "parcelId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveParcelCommand(departureID, parcelID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.RemoveParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	s.invalidateStats(ctx.Request().Context(), departureID)

	return ctx.NoContent(http.StatusNoContent)
}

// ScanAssign handles POST /api/v1/departures/:departureId/scan.
func (s *Server) ScanAssign(ctx echo.Context) error {
	departureID, err := pathUUID(ctx, "departureId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req ScanAssignRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewScanAssignCommand(departureID, req.Code)
	if err != nil {
		return respondError(ctx, err)
	}

	assigned, err := s.commands.ScanAssign.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	s.invalidateStats(ctx.Request().Context(), departureID)

	return ctx.JSON(http.StatusOK, toAssignedParcelContract(assigned))
}

// GetExpenses handles GET /api/v1/departures/:departureId/expenses.
func (s *Server) GetExpenses(ctx echo.Context) error {
	departureID, err := pathUUID(ctx, "departureId")
	if err != nil {
		return respondError(ctx, err)
	}

	details, err := s.departureDetails(ctx.Request().Context(), departureID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toExpenseContracts(details.Expenses))
}

// AddExpense handles POST /api/v1/departures/:departureId/expenses.
func (s *Server) AddExpense(ctx echo.Context) error {
	departureID, err := pathUUID(ctx, "departureId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req AddExpenseRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	category, err := expense.CategoryFromString(req.Category)
	if err != nil {
		return respondError(ctx, err)
	}

	expenseID := kernel.NewUUID()
	cmd, err := commands.NewAddExpenseCommand(
		expenseID,
		departureID,
		category,
		req.Description,
		req.Amount,
		req.Date,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.AddExpense.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	s.invalidateStats(ctx.Request().Context(), departureID)

	return ctx.JSON(http.StatusCreated, map[string]string{"id": expenseID.String()})
}

// DeleteExpense handles DELETE /api/v1/departures/:departureId/expenses/:expenseId.
func (s *Server) DeleteExpense(ctx echo.Context) error {
	departureID, err := pathUUID(ctx, "departureId")
	if err != nil {
		return respondError(ctx, err)
	}

	expenseID, err := pathUUID(ctx, "expenseId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteExpenseCommand(expenseID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.DeleteExpense.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	s.invalidateStats(ctx.Request().Context(), departureID)

	return ctx.NoContent(http.StatusNoContent)
}

// GetParcels handles GET /api/v1/parcels. Supported filters: unassigned=true,
// departureId, or originCountry+destinationCountry+transport.
func (s *Server) GetParcels(ctx echo.Context) error {
	query, err := s.parcelsQueryFromParams(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.queries.Parcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Parcel, len(rows))
	for i, row := range rows {
		response[i] = toParcelContract(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) parcelsQueryFromParams(ctx echo.Context) (queries.GetParcelsQuery, error) {
	if ctx.QueryParam("unassigned") == "true" {
		return queries.NewGetUnassignedParcelsQuery(), nil
	}

	if raw := ctx.QueryParam("departureId"); raw != "" {
		departureID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return queries.GetParcelsQuery{}, err
		}
		return queries.NewGetParcelsByDepartureQuery(departureID)
	}

	if ctx.QueryParam("originCountry") != "" {
		route, err := kernel.NewRoute(
			ctx.QueryParam("originCountry"),
			ctx.QueryParam("originCity"),
			ctx.QueryParam("destinationCountry"),
		)
		if err != nil {
			return queries.GetParcelsQuery{}, err
		}

		transport, err := kernel.TransportModeFromString(ctx.QueryParam("transport"))
		if err != nil {
			return queries.GetParcelsQuery{}, err
		}

		return queries.NewGetParcelsByCorridorQuery(route, transport)
	}

	return queries.NewGetAllParcelsQuery(), nil
}

// CreateParcel handles POST /api/v1/parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var req CreateParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	route, err := kernel.NewRoute(req.OriginCountry, req.OriginCity, req.DestinationCountry)
	if err != nil {
		return respondError(ctx, err)
	}

	transport, err := kernel.TransportModeFromString(req.Transport)
	if err != nil {
		return respondError(ctx, err)
	}

	billingUnit, err := parcel.BillingUnitFromString(req.BillingUnit)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(),
		req.TrackingCode,
		req.SupplierTrackingCode,
		req.ClientRef,
		req.Description,
		route,
		transport,
		req.PackageType,
		billingUnit,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.commands.CreateParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toAssignedParcelContract(created))
}

// FindParcelByTracking handles GET /api/v1/parcels/track/:code. The code
// matches the parcel's own tracking code or the supplier's.
func (s *Server) FindParcelByTracking(ctx echo.Context) error {
	query, err := queries.NewFindParcelByTrackingQuery(ctx.Param("code"))
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.queries.Parcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	if len(rows) == 0 {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "no parcel carries tracking code " + ctx.Param("code"),
		})
	}

	return ctx.JSON(http.StatusOK, toParcelContract(rows[0]))
}

// ReceiveParcel handles POST /api/v1/parcels/:parcelId/receive.
func (s *Server) ReceiveParcel(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx, "parcelId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req ReceiveParcelRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewReceiveParcelCommand(parcelID, req.WeightKg, req.VolumeM3, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	received, err := s.commands.ReceiveParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	if departureID := received.Departure(); departureID != nil {
		s.invalidateStats(ctx.Request().Context(), *departureID)
	}

	return ctx.JSON(http.StatusOK, toAssignedParcelContract(received))
}

// RecordPayment handles POST /api/v1/parcels/:parcelId/payments.
func (s *Server) RecordPayment(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx, "parcelId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req RecordPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRecordPaymentCommand(parcelID, req.Amount)
	if err != nil {
		return respondError(ctx, err)
	}

	paid, err := s.commands.RecordPayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAssignedParcelContract(paid))
}

// GetPeriodStats handles GET /api/v1/stats?period=&year=&month=.
func (s *Server) GetPeriodStats(ctx echo.Context) error {
	period, err := services.PeriodFromString(ctx.QueryParam("period"))
	if err != nil {
		return respondError(ctx, err)
	}

	var year, month int
	if err = echo.QueryParamsBinder(ctx).
		MustInt("year", &year).
		MustInt("month", &month).
		BindError(); err != nil {
		return badRequest(ctx, "year and month are required integers")
	}

	query, err := queries.NewGetPeriodStatsQuery(period, year, time.Month(month))
	if err != nil {
		return respondError(ctx, err)
	}

	stats, err := s.queries.PeriodStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toStatsContract(stats))
}

func (s *Server) departureDetails(
	ctx context.Context,
	departureID kernel.UUID,
) (*queries.GetDepartureDetailsQueryResponse, error) {
	query, err := queries.NewGetDepartureDetailsQuery(departureID)
	if err != nil {
		return nil, err
	}

	return s.queries.DepartureDetails.Handle(ctx, query)
}

// invalidateStats drops the stats windows containing the departure's
// scheduled date. Best effort: a failed invalidation leaves the short TTL as
// the staleness bound.
func (s *Server) invalidateStats(ctx context.Context, departureID kernel.UUID) {
	if s.cache == nil {
		return
	}

	details, err := s.departureDetails(ctx, departureID)
	if err != nil {
		return
	}

	s.invalidateStatsForDate(ctx, details.ScheduledAt)
}

func (s *Server) invalidateStatsForDate(ctx context.Context, date time.Time) {
	if s.cache == nil {
		return
	}

	_ = s.cache.Invalidate(ctx, queries.PeriodStatsKeysContaining(date, s.loc)...)
}

func toDetailsContract(d *queries.GetDepartureDetailsQueryResponse) DepartureDetails {
	return DepartureDetails{
		Departure: Departure{
			ID:                 d.ID.String(),
			OriginCountry:      d.OriginCountry,
			OriginCity:         d.OriginCity,
			DestinationCountry: d.DestinationCountry,
			Transport:          d.Transport,
			ScheduledAt:        d.ScheduledAt,
			DurationDays:       d.DurationDays,
			Status:             d.Status,
			DepartedAt:         d.DepartedAt,
			Notified:           d.Notified,
			ParcelCount:        d.ParcelCount,
			TotalWeightKg:      d.TotalWeightKg,
			TotalRevenue:       d.Revenue,
			DaysRemaining:      d.DaysRemaining,
		},
		Notes:         d.Notes,
		NotifyClients: d.NotifyClients,
		NotifiedAt:    d.NotifiedAt,
		Version:       d.Version,
		Revenue:       d.Revenue,
		ExpenseTotal:  d.ExpenseTotal,
		Gain:          d.Gain,
		MarginPercent: d.MarginPercent,
		Expenses:      toExpenseContracts(d.Expenses),
		Carriers:      toCarrierContracts(d.Carriers),
	}
}

func toExpenseContracts(lines []queries.ExpenseLine) []Expense {
	out := make([]Expense, len(lines))
	for i, line := range lines {
		out[i] = Expense{
			ID:          line.ID.String(),
			Category:    line.Category,
			Description: line.Description,
			Amount:      line.Amount,
			Date:        line.Date,
		}
	}
	return out
}

func toCarrierContracts(lines []queries.CarrierLine) []CarrierLeg {
	out := make([]CarrierLeg, len(lines))
	for i, line := range lines {
		out[i] = CarrierLeg{
			Carrier:      line.Carrier,
			TrackingCode: line.TrackingCode,
			IsFinalLeg:   line.IsFinalLeg,
			From:         line.From,
			To:           line.To,
			FinalStatus:  line.FinalStatus,
		}
	}
	return out
}

func toAssignedParcelContract(p *parcel.Parcel) Parcel {
	out := Parcel{
		ID:                   p.ID().String(),
		TrackingCode:         p.TrackingCode(),
		SupplierTrackingCode: p.SupplierTrackingCode(),
		ClientRef:            p.ClientRef(),
		Description:          p.Description(),
		OriginCountry:        p.Route().OriginCountry(),
		OriginCity:           p.Route().OriginCity(),
		DestinationCountry:   p.Route().DestinationCountry(),
		Transport:            p.Transport().String(),
		PackageType:          p.PackageType(),
		BillingUnit:          p.BillingUnit().String(),
		WeightKg:             p.WeightKg(),
		VolumeM3:             p.VolumeM3(),
		Quantity:             p.Quantity(),
		Amount:               p.Amount(),
		PaidAmount:           p.PaidAmount(),
		Status:               p.Status().String(),
	}
	if departureID := p.Departure(); departureID != nil {
		id := departureID.String()
		out.DepartureID = &id
	}
	return out
}

func toStatsContract(stats *queries.GetPeriodStatsQueryResponse) PeriodStats {
	out := PeriodStats{
		Period:         stats.Period,
		WindowStart:    stats.WindowStart,
		WindowEnd:      stats.WindowEnd,
		DepartureCount: stats.DepartureCount,
		Revenue:        stats.Revenue,
		Expenses:       stats.Expenses,
		Gain:           stats.Gain,
		MarginPercent:  stats.MarginPercent,
	}

	switch stats.Trend.Kind {
	case services.TrendNew:
		out.Trend = Trend{Kind: "new"}
	case services.TrendPercent:
		percent := stats.Trend.Percent
		out.Trend = Trend{Kind: "percent", Percent: &percent}
	default:
		out.Trend = Trend{Kind: "undefined"}
	}

	return out
}
