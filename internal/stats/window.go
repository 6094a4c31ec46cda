// Package stats resolves reporting windows and fetches the period
// aggregates: a scalar total+count summary and a per-category breakdown.
package stats

import (
	"fmt"
	"time"
)

// Named periods accepted by PeriodWindow.
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// periodDays maps a named period to its day span, today included.
var periodDays = map[string]int{
	PeriodWeek:  7,
	PeriodMonth: 30,
	PeriodYear:  365,
}

// startOfDay returns local midnight of t's day.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay returns the last second of t's day.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// PeriodWindow resolves a named period into an absolute window anchored
// to local midnight and end-of-day. "week" is the last 7 days including
// today, "month" the last 30, "year" the last 365.
func PeriodWindow(period string, now time.Time) (time.Time, time.Time, error) {
	days, ok := periodDays[period]
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("unknown period %q", period)
	}
	start := startOfDay(now.AddDate(0, 0, -(days - 1)))
	return start, endOfDay(now), nil
}

// DayWindow returns today's window: local midnight to end of day.
func DayWindow(now time.Time) (time.Time, time.Time) {
	return startOfDay(now), endOfDay(now)
}

// RangeWindow resolves two user-entered dates (YYYY-MM-DD) into a
// window spanning the first day's midnight to the last day's end.
func RangeWindow(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02", startDate, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q", startDate)
	}
	end, err := time.ParseInLocation("2006-01-02", endDate, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q", endDate)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date before start date")
	}
	return start, endOfDay(end), nil
}
