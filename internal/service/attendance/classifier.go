package attendance

import (
	"time"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// UAE labor-law-derived policy constants (Federal Decree-Law 33/2021).
const (
	standardDailyHours    = 8
	maxDailyWorkHours     = 10 // Art. 17 cap incl. overtime
	maxDailyOvertimeHours = 2  // Art. 19 daily overtime cap

	workStartHour = 9
	workEndHour   = 18 // 8 working hours + 1h break
	graceMinutes  = 15

	nightStartHour   = 22 // Art. 19(2) night window begins 22:00
	breakHours       = 1
	minHoursForBreak = 6
)

var (
	overtimeRegularRate = decimal.NewFromFloat(1.25) // Art. 19(1)
	overtimePremiumRate = decimal.NewFromFloat(1.5)  // Art. 19(2)/20, night and holiday

	foodAllowancePerDay = decimal.NewFromInt(30)
)

// siteLocations are the locations that qualify for the daily food allowance.
var siteLocations = map[string]bool{
	attendance.LocationKEZAD:   true,
	attendance.LocationSafario: true,
	attendance.LocationSites:   true,
}

// Policy is the per-employee compensation context applied during
// classification. It is supplied by the caller; the engine does not own
// payroll data.
type Policy struct {
	OvertimePolicy attendance.OvertimeType
	HourlyRate     decimal.Decimal
	IsHoliday      bool
}

// Classify recomputes every engine-owned field of the record from its clock
// times and the given policy. The capture fields are read, never written.
// Records with no clock times classify as absent with zeroed figures.
func Classify(rec attendance.Record, policy Policy) attendance.Record {
	rec.OvertimeType = policy.OvertimePolicy
	rec.RegularHours = decimal.Zero
	rec.OvertimeHours = decimal.Zero
	rec.IsNightOvertime = false
	rec.IsHolidayOvertime = false
	rec.OvertimeAmount = decimal.Zero
	rec.OffsetHoursEarned = decimal.Zero
	rec.FoodAllowanceEligible = false
	rec.FoodAllowanceAmount = decimal.Zero
	rec.IsLate = false
	rec.LateMinutes = 0
	rec.IsEarlyDeparture = false
	rec.EarlyDepartureMinutes = 0
	rec.ExceedsDailyLimit = false
	rec.ExceedsOvertimeLimit = false

	if rec.ClockIn == nil || rec.ClockOut == nil {
		rec.Status = attendance.StatusAbsent
		return rec
	}

	worked := workedHours(*rec.ClockIn, *rec.ClockOut)
	if worked.IsNegative() {
		worked = decimal.Zero
	}

	if policy.IsHoliday {
		// All holiday work is overtime.
		rec.OvertimeHours = worked
		rec.IsHolidayOvertime = worked.IsPositive()
	} else {
		standard := decimal.NewFromInt(standardDailyHours)
		if worked.GreaterThan(standard) {
			rec.RegularHours = standard
			rec.OvertimeHours = worked.Sub(standard)
		} else {
			rec.RegularHours = worked
		}
	}

	if rec.OvertimeHours.IsPositive() && endsInNightWindow(*rec.ClockOut) {
		rec.IsNightOvertime = true
	}

	switch policy.OvertimePolicy {
	case attendance.OvertimePaid:
		rate := overtimeRegularRate
		if rec.IsNightOvertime || rec.IsHolidayOvertime {
			rate = overtimePremiumRate
		}
		rec.OvertimeAmount = rec.OvertimeHours.Mul(policy.HourlyRate).Mul(rate).Round(2)
	case attendance.OvertimeOffset:
		rec.OffsetHoursEarned = rec.OvertimeHours
	}

	rec.IsLate, rec.LateMinutes = lateness(*rec.ClockIn)
	rec.IsEarlyDeparture, rec.EarlyDepartureMinutes = earlyDeparture(*rec.ClockOut, policy.IsHoliday)

	rec.ExceedsDailyLimit = worked.GreaterThan(decimal.NewFromInt(maxDailyWorkHours))
	rec.ExceedsOvertimeLimit = rec.OvertimeHours.GreaterThan(decimal.NewFromInt(maxDailyOvertimeHours))

	if rec.WorkLocation != nil && siteLocations[*rec.WorkLocation] {
		rec.FoodAllowanceEligible = true
		rec.FoodAllowanceAmount = foodAllowancePerDay
	}

	if rec.IsLate {
		rec.Status = attendance.StatusLate
	} else {
		rec.Status = attendance.StatusPresent
	}

	return rec
}

// workedHours is the clocked span minus the unpaid break, rounded to two
// fractional digits.
func workedHours(clockIn, clockOut time.Time) decimal.Decimal {
	span := clockOut.Sub(clockIn).Hours()
	hours := decimal.NewFromFloat(span).Round(2)
	if hours.GreaterThanOrEqual(decimal.NewFromInt(minHoursForBreak)) {
		hours = hours.Sub(decimal.NewFromInt(breakHours))
	}
	return hours
}

func lateness(clockIn time.Time) (bool, int) {
	start := time.Date(clockIn.Year(), clockIn.Month(), clockIn.Day(), workStartHour, 0, 0, 0, clockIn.Location())
	if !clockIn.After(start.Add(graceMinutes * time.Minute)) {
		return false, 0
	}
	return true, int(clockIn.Sub(start).Minutes())
}

func earlyDeparture(clockOut time.Time, isHoliday bool) (bool, int) {
	if isHoliday {
		return false, 0
	}
	end := time.Date(clockOut.Year(), clockOut.Month(), clockOut.Day(), workEndHour, 0, 0, 0, clockOut.Location())
	if !clockOut.Before(end) {
		return false, 0
	}
	return true, int(end.Sub(clockOut).Minutes())
}

func endsInNightWindow(clockOut time.Time) bool {
	return clockOut.Hour() >= nightStartHour || clockOut.Hour() < 4
}
