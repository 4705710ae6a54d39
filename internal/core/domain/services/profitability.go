package services

import (
	"fmt"
	"time"

	"freight/internal/pkg/errs"
)

// Period is the reporting window granularity, anchored at a reference
// year and month.
type Period int

const (
	// PeriodUnknown catches uninitialized values.
	PeriodUnknown Period = iota

	// PeriodWeek is the Monday-to-Sunday week containing the first day of the
	// reference month.
	PeriodWeek

	// PeriodMonth is the reference month.
	PeriodMonth

	// PeriodQuarter is the calendar quarter containing the reference month.
	PeriodQuarter

	// PeriodYear is the reference year.
	PeriodYear
)

func periodStrings() map[Period]string {
	return map[Period]string{
		PeriodWeek:    "week",
		PeriodMonth:   "month",
		PeriodQuarter: "quarter",
		PeriodYear:    "year",
	}
}

// PeriodFromString parses the wire representation of a period.
func PeriodFromString(s string) (Period, error) {
	for period, str := range periodStrings() {
		if str == s {
			return period, nil
		}
	}
	return PeriodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"period",
		fmt.Errorf("%q is not a valid period", s),
	)
}

// String returns the wire representation, or "unknown" for invalid values.
func (p Period) String() string {
	if s, ok := periodStrings()[p]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects values outside the closed enum.
func (p Period) Validate() error {
	if _, ok := periodStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"period",
			fmt.Errorf("%d is not a valid period", p),
		)
	}
	return nil
}

// PeriodWindow computes the inclusive [start, end] window for a period
// anchored at the reference year and month. Both boundaries are normalized to
// start respectively end of day, so a departure scheduled exactly on either
// boundary is included.
func PeriodWindow(p Period, year int, month time.Month, loc *time.Location) (time.Time, time.Time, error) {
	if err := p.Validate(); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if month < time.January || month > time.December {
		return time.Time{}, time.Time{}, errs.NewValueIsOutOfRangeError("month", int(month), 1, 12)
	}

	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, loc)

	var start, end time.Time
	switch p {
	case PeriodWeek:
		weekday := int(firstOfMonth.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday closes the week
		}
		start = firstOfMonth.AddDate(0, 0, -(weekday - 1))
		end = start.AddDate(0, 0, 6)
	case PeriodMonth:
		start = firstOfMonth
		end = firstOfMonth.AddDate(0, 1, -1)
	case PeriodQuarter:
		quarterStart := time.Month((int(month)-1)/3*3 + 1)
		start = time.Date(year, quarterStart, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 3, -1)
	case PeriodYear:
		start = time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		end = time.Date(year, time.December, 31, 0, 0, 0, 0, loc)
	}

	return startOfDay(start), endOfDay(end), nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// MarginReport is the profitability of a departure or a period.
type MarginReport struct {
	Revenue  float64
	Expenses float64
	Gain     float64

	// MarginPercent is nil when revenue is zero: the margin is undefined and
	// renders as an em-dash, never NaN or Infinity.
	MarginPercent *float64
}

// ComputeMargin derives gain and margin from revenue and total expenses.
func ComputeMargin(revenue, expenses float64) MarginReport {
	report := MarginReport{
		Revenue:  revenue,
		Expenses: expenses,
		Gain:     revenue - expenses,
	}

	if revenue > 0 {
		margin := report.Gain / revenue * 100
		report.MarginPercent = &margin
	}

	return report
}

// TrendKind classifies a month-over-month revenue comparison.
type TrendKind int

const (
	// TrendUndefined: both months had zero revenue; renders as an em-dash.
	TrendUndefined TrendKind = iota

	// TrendNew: prior month had zero revenue, current is positive.
	TrendNew

	// TrendPercent: a regular percentage change.
	TrendPercent
)

// Trend is the month-over-month revenue movement.
type Trend struct {
	Kind    TrendKind
	Percent float64
}

// MonthlyTrend compares consecutive months of revenue. A zero prior month
// never produces a division: the result is "new" when current revenue exists
// and undefined otherwise.
func MonthlyTrend(prior, current float64) Trend {
	if prior == 0 {
		if current > 0 {
			return Trend{Kind: TrendNew}
		}
		return Trend{Kind: TrendUndefined}
	}

	return Trend{
		Kind:    TrendPercent,
		Percent: (current - prior) / prior * 100,
	}
}
