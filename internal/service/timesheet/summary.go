package timesheet

import (
	"fmt"
	"strings"
	"time"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/attendance"
	"github.com/baynunah-hr/hr-backend-go/internal/domain/leave"
	"github.com/baynunah-hr/hr-backend-go/internal/domain/timesheet"
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/dates"
)

// buildSummary folds a month of attendance records and approved leave into a
// timesheet aggregate. Pure: same inputs always produce the same output, as
// payroll reproducibility requires. Status and approval stamps are not set
// here.
func buildSummary(
	employeeID string,
	year, month int,
	records []attendance.Record,
	leaves []leave.Request,
	periodStart, periodEnd time.Time,
) timesheet.Timesheet {
	ts := timesheet.Timesheet{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
	}

	ts.TotalWorkingDays = dates.DaysInclusive(periodStart, periodEnd) - dates.WeekendDays(periodStart, periodEnd)

	var complianceNotes []string

	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent, attendance.StatusLate:
			ts.TotalPresentDays++
		case attendance.StatusAbsent:
			ts.TotalAbsentDays++
		}

		if rec.IsLate {
			ts.TotalLateArrivals++
		}
		if rec.IsEarlyDeparture {
			ts.TotalEarlyDepartures++
		}

		ts.TotalRegularHours = ts.TotalRegularHours.Add(rec.RegularHours)
		ts.TotalOvertimeHours = ts.TotalOvertimeHours.Add(rec.OvertimeHours)
		if rec.IsNightOvertime {
			ts.TotalNightOvertimeHours = ts.TotalNightOvertimeHours.Add(rec.OvertimeHours)
		}
		if rec.IsHolidayOvertime {
			ts.TotalHolidayOvertimeHours = ts.TotalHolidayOvertimeHours.Add(rec.OvertimeHours)
		}
		ts.TotalOvertimeAmount = ts.TotalOvertimeAmount.Add(rec.OvertimeAmount)
		ts.OffsetHoursEarned = ts.OffsetHoursEarned.Add(rec.OffsetHoursEarned)

		if rec.WorkLocation != nil {
			tallyLocation(&ts, *rec.WorkLocation)
		}

		if rec.FoodAllowanceEligible {
			ts.FoodAllowanceDays++
			ts.FoodAllowanceTotal = ts.FoodAllowanceTotal.Add(rec.FoodAllowanceAmount)
		}

		if note := complianceNote(rec); note != "" {
			complianceNotes = append(complianceNotes, note)
		}
	}

	if len(complianceNotes) > 0 {
		ts.HasComplianceIssues = true
		joined := strings.Join(complianceNotes, "; ")
		ts.ComplianceNotes = &joined
	}

	// Approved leave overlapping the period contributes its full charged
	// total; holidays are not subtracted on this path either.
	for _, lr := range leaves {
		ts.TotalLeaveDays = ts.TotalLeaveDays.Add(lr.TotalDays)
	}

	return ts
}

func tallyLocation(ts *timesheet.Timesheet, location string) {
	switch location {
	case attendance.LocationHeadOffice:
		ts.DaysAtHeadOffice++
	case attendance.LocationKEZAD:
		ts.DaysAtKEZAD++
	case attendance.LocationSafario:
		ts.DaysAtSafario++
	case attendance.LocationSites:
		ts.DaysAtSites++
	case attendance.LocationMeeting:
		ts.DaysAtMeeting++
	case attendance.LocationEvent:
		ts.DaysAtEvent++
	case attendance.LocationWorkFromHome:
		ts.TotalWFHDays++
	}
}

func complianceNote(rec attendance.Record) string {
	day := rec.Date.Format("2006-01-02")
	switch {
	case rec.ExceedsDailyLimit && rec.ExceedsOvertimeLimit:
		return fmt.Sprintf("%s: exceeded 10h daily work limit and 2h overtime cap", day)
	case rec.ExceedsDailyLimit:
		return fmt.Sprintf("%s: exceeded 10h daily work limit", day)
	case rec.ExceedsOvertimeLimit:
		return fmt.Sprintf("%s: exceeded 2h daily overtime cap", day)
	}
	return ""
}
