package dateutil

import (
	"time"
)

// ReformEffectiveDate is the first day the 2026 tax reform act applies to PAYE.
var ReformEffectiveDate = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// PayPeriod is a monthly payroll period, inclusive of both ends
type PayPeriod struct {
	Start time.Time
	End   time.Time
}

// MonthPeriod returns the calendar-month pay period containing date
func MonthPeriod(date time.Time) PayPeriod {
	start := BeginningOfMonth(date)
	return PayPeriod{Start: start, End: EndOfMonth(date)}
}

// Label renders the period as "January 2026"
func (p PayPeriod) Label() string {
	return p.Start.Format("January 2006")
}

// UnderReform reports whether the 2026 act is in force for the whole period
func (p PayPeriod) UnderReform() bool {
	return !p.Start.Before(ReformEffectiveDate)
}

// BeginningOfMonth returns midnight on the first day of date's month
func BeginningOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last instant of date's month
func EndOfMonth(date time.Time) time.Time {
	return BeginningOfMonth(date).AddDate(0, 1, 0).Add(-time.Nanosecond)
}
