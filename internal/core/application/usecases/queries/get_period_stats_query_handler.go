package queries

import (
	"context"
	"encoding/json"
	"time"

	"freight/internal/core/domain/services"
	"freight/internal/core/ports"

	"gorm.io/gorm"
)

// statsCacheTTL bounds staleness when an invalidation is missed.
const statsCacheTTL = 5 * time.Minute

// GetPeriodStatsQueryHandler reads period financial summaries through a
// read-through cache. The database stays authoritative: a cache failure is
// treated as a miss, and a failed cache write never fails the query.
type GetPeriodStatsQueryHandler struct {
	db    *gorm.DB
	cache ports.QueryCache
	loc   *time.Location
}

// NewGetPeriodStatsQueryHandler creates a handler for period stats queries.
// Windows are computed in loc; pass time.UTC unless the back office runs in a
// fixed local zone.
func NewGetPeriodStatsQueryHandler(db *gorm.DB, cache ports.QueryCache, loc *time.Location) GetPeriodStatsQueryHandler {
	if loc == nil {
		loc = time.UTC
	}
	return GetPeriodStatsQueryHandler{db: db, cache: cache, loc: loc}
}

// Handle executes the period stats query.
func (h GetPeriodStatsQueryHandler) Handle(
	ctx context.Context,
	query GetPeriodStatsQuery,
) (*GetPeriodStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	start, end, err := services.PeriodWindow(query.Period(), query.Year(), query.Month(), h.loc)
	if err != nil {
		return nil, err
	}

	key := PeriodStatsCacheKey(query.Period(), start)
	if cached := h.readCached(ctx, key); cached != nil {
		return cached, nil
	}

	resp := GetPeriodStatsQueryResponse{
		Period:      query.Period().String(),
		WindowStart: start,
		WindowEnd:   end,
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(d.id),
			COALESCE(SUM(rev.amount), 0),
			COALESCE(SUM(exp.amount), 0)
		FROM departures d
		LEFT JOIN (
			SELECT departure_id, SUM(amount) AS amount
			FROM parcels
			WHERE departure_id IS NOT NULL
			GROUP BY departure_id
		) rev ON rev.departure_id = d.id
		LEFT JOIN (
			SELECT departure_id, SUM(amount) AS amount
			FROM expenses
			GROUP BY departure_id
		) exp ON exp.departure_id = d.id
		WHERE d.scheduled_at BETWEEN ? AND ?`, start, end).Row()

	err = row.Scan(&resp.DepartureCount, &resp.Revenue, &resp.Expenses)
	if err != nil {
		return nil, err
	}

	report := services.ComputeMargin(resp.Revenue, resp.Expenses)
	resp.Gain = report.Gain
	resp.MarginPercent = report.MarginPercent

	resp.Trend, err = h.monthlyTrend(ctx, query.Year(), query.Month())
	if err != nil {
		return nil, err
	}

	h.writeCached(ctx, key, &resp)

	return &resp, nil
}

// monthlyTrend compares the anchor month's revenue with the month before it.
func (h GetPeriodStatsQueryHandler) monthlyTrend(
	ctx context.Context,
	year int,
	month time.Month,
) (services.Trend, error) {
	current, err := h.monthRevenue(ctx, year, month)
	if err != nil {
		return services.Trend{}, err
	}

	priorAnchor := time.Date(year, month, 1, 0, 0, 0, 0, h.loc).AddDate(0, -1, 0)
	prior, err := h.monthRevenue(ctx, priorAnchor.Year(), priorAnchor.Month())
	if err != nil {
		return services.Trend{}, err
	}

	return services.MonthlyTrend(prior, current), nil
}

func (h GetPeriodStatsQueryHandler) monthRevenue(ctx context.Context, year int, month time.Month) (float64, error) {
	start, end, err := services.PeriodWindow(services.PeriodMonth, year, month, h.loc)
	if err != nil {
		return 0, err
	}

	var revenue float64
	row := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(p.amount), 0)
		FROM parcels p
		JOIN departures d ON d.id = p.departure_id
		WHERE d.scheduled_at BETWEEN ? AND ?`, start, end).Row()

	err = row.Scan(&revenue)
	if err != nil {
		return 0, err
	}

	return revenue, nil
}

func (h GetPeriodStatsQueryHandler) readCached(ctx context.Context, key string) *GetPeriodStatsQueryResponse {
	if h.cache == nil {
		return nil
	}

	payload, found, err := h.cache.Get(ctx, key)
	if err != nil || !found {
		return nil
	}

	var resp GetPeriodStatsQueryResponse
	if err = json.Unmarshal(payload, &resp); err != nil {
		return nil
	}

	return &resp
}

func (h GetPeriodStatsQueryHandler) writeCached(ctx context.Context, key string, resp *GetPeriodStatsQueryResponse) {
	if h.cache == nil {
		return
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}

	_ = h.cache.Set(ctx, key, payload, statsCacheTTL)
}
