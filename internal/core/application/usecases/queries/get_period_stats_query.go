package queries

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrGetPeriodStatsQueryIsNotConstructed = errors.New(
		"GetPeriodStatsQuery must be created via NewGetPeriodStatsQuery constructor",
	)
)

// GetPeriodStatsQuery reads the financial summary for a reporting window
// anchored at a year and month.
type GetPeriodStatsQuery struct {
	period services.Period
	year   int
	month  time.Month

	guard guard.ConstructorGuard
}

// NewGetPeriodStatsQuery creates a period stats query.
func NewGetPeriodStatsQuery(period services.Period, year int, month time.Month) (GetPeriodStatsQuery, error) {
	if err := period.Validate(); err != nil {
		return GetPeriodStatsQuery{}, err
	}
	if year <= 0 {
		return GetPeriodStatsQuery{}, errs.NewValueIsInvalidError("year")
	}
	if month < time.January || month > time.December {
		return GetPeriodStatsQuery{}, errs.NewValueIsOutOfRangeError("month", int(month), 1, 12)
	}

	return GetPeriodStatsQuery{
		period: period,
		year:   year,
		month:  month,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPeriodStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetPeriodStatsQueryIsNotConstructed)
}

// Period returns the reporting window granularity.
func (q GetPeriodStatsQuery) Period() services.Period {
	return q.period
}

// Year returns the anchor year.
func (q GetPeriodStatsQuery) Year() int {
	return q.year
}

// Month returns the anchor month.
func (q GetPeriodStatsQuery) Month() time.Month {
	return q.month
}

// GetPeriodStatsQueryResponse is the financial summary of one reporting
// window. MarginPercent is the ratio of summed gain to summed revenue for the
// whole window, not an average of per-departure margins, and is nil when the
// window had no revenue. Trend compares the anchor month's revenue to the
// month before it.
type GetPeriodStatsQueryResponse struct {
	Period      string
	WindowStart time.Time
	WindowEnd   time.Time

	DepartureCount int
	Revenue        float64
	Expenses       float64
	Gain           float64
	MarginPercent  *float64

	Trend services.Trend
}

// PeriodStatsCacheKey is the canonical cache key for a reporting window.
// Keying on the computed window start collapses aliases: every anchor month
// of a quarter or year maps to the same key.
func PeriodStatsCacheKey(period services.Period, windowStart time.Time) string {
	return fmt.Sprintf("stats:%s:%s", period, windowStart.Format("2006-01-02"))
}

// PeriodStatsKeysContaining returns the cache keys of every reporting window
// that contains the given date. Mutating handlers invalidate these after a
// successful write touching a departure scheduled at that date.
func PeriodStatsKeysContaining(date time.Time, loc *time.Location) []string {
	date = date.In(loc)
	periods := []services.Period{
		services.PeriodWeek,
		services.PeriodMonth,
		services.PeriodQuarter,
		services.PeriodYear,
	}

	keys := make([]string, 0, len(periods)+1)
	for _, period := range periods {
		start, _, err := services.PeriodWindow(period, date.Year(), date.Month(), loc)
		if err != nil {
			continue
		}
		keys = append(keys, PeriodStatsCacheKey(period, start))
	}

	// The week window is anchored at the first of the month, so a date late in
	// the month can fall outside it while still belonging to a week that the
	// following month anchors.
	next := date.AddDate(0, 1, 0)
	if start, end, err := services.PeriodWindow(services.PeriodWeek, next.Year(), next.Month(), loc); err == nil {
		if !date.Before(start) && !date.After(end) {
			keys = append(keys, PeriodStatsCacheKey(services.PeriodWeek, start))
		}
	}

	return keys
}
