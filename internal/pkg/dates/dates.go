// Package dates holds calendar-date helpers shared by the leave and timesheet
// services. All dates are day-precision time.Time values normalized to
// midnight UTC; no timezone component is carried.
package dates

import "time"

// Normalize truncates t to a calendar date at midnight UTC.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysInclusive counts calendar days in [start, end], both ends included.
// Returns 0 when end precedes start.
func DaysInclusive(start, end time.Time) int {
	start, end = Normalize(start), Normalize(end)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// MonthBounds returns the first and last calendar day of the given month.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// IsWeekend reports whether d falls on the UAE weekend (Friday or Saturday).
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Friday || wd == time.Saturday
}

// WeekendDays counts Friday/Saturday days in [start, end] inclusive.
func WeekendDays(start, end time.Time) int {
	count := 0
	for d := Normalize(start); !d.After(Normalize(end)); d = d.AddDate(0, 0, 1) {
		if IsWeekend(d) {
			count++
		}
	}
	return count
}

// OverlapDays counts the days shared by the inclusive ranges [aStart, aEnd]
// and [bStart, bEnd].
func OverlapDays(aStart, aEnd, bStart, bEnd time.Time) int {
	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	return DaysInclusive(start, end)
}

// Contains reports whether d lies within the inclusive range [start, end].
func Contains(start, end, d time.Time) bool {
	d = Normalize(d)
	return !d.Before(Normalize(start)) && !d.After(Normalize(end))
}
