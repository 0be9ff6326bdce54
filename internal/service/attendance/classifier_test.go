package attendance

import (
	"testing"
	"time"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func clockedRecord(in, out string) attendance.Record {
	rec := attendance.Record{
		EmployeeID: "emp-1",
		Date:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	}
	if in != "" {
		t := mustClock(in)
		rec.ClockIn = &t
	}
	if out != "" {
		t := mustClock(out)
		rec.ClockOut = &t
	}
	return rec
}

func mustClock(hhmm string) time.Time {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		panic(err)
	}
	return time.Date(2026, 3, 2, t.Hour(), t.Minute(), 0, 0, time.UTC)
}

func TestClassify_StandardDay(t *testing.T) {
	rec := Classify(clockedRecord("09:00", "18:00"), Policy{OvertimePolicy: attendance.OvertimeNone})

	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.True(t, rec.RegularHours.Equal(decimal.NewFromInt(8)), "span minus 1h break")
	assert.True(t, rec.OvertimeHours.IsZero())
	assert.False(t, rec.IsLate)
	assert.False(t, rec.IsEarlyDeparture)
	assert.False(t, rec.ExceedsDailyLimit)
}

func TestClassify_NoClocks(t *testing.T) {
	rec := Classify(clockedRecord("", ""), Policy{})

	assert.Equal(t, attendance.StatusAbsent, rec.Status)
	assert.True(t, rec.RegularHours.IsZero())
	assert.True(t, rec.OvertimeHours.IsZero())
}

func TestClassify_MissingClockOut(t *testing.T) {
	rec := Classify(clockedRecord("09:00", ""), Policy{})
	assert.Equal(t, attendance.StatusAbsent, rec.Status)
}

func TestClassify_ShortDayKeepsFullSpan(t *testing.T) {
	// Under 6 worked hours no break is deducted.
	rec := Classify(clockedRecord("09:00", "13:00"), Policy{})

	assert.True(t, rec.RegularHours.Equal(decimal.NewFromInt(4)))
	assert.True(t, rec.IsEarlyDeparture)
	assert.Equal(t, 300, rec.EarlyDepartureMinutes)
}

func TestClassify_Overtime(t *testing.T) {
	rec := Classify(clockedRecord("09:00", "20:00"), Policy{OvertimePolicy: attendance.OvertimeNone})

	assert.True(t, rec.RegularHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, rec.OvertimeHours.Equal(decimal.NewFromInt(2)))
	assert.False(t, rec.IsNightOvertime)
	assert.False(t, rec.ExceedsDailyLimit, "10h worked is at the cap, not over it")
	assert.False(t, rec.ExceedsOvertimeLimit)
}

func TestClassify_ExceedsCaps(t *testing.T) {
	rec := Classify(clockedRecord("08:00", "21:30"), Policy{})

	// 13.5h span minus break is 12.5h worked, 4.5h overtime.
	assert.True(t, rec.OvertimeHours.Equal(decimal.NewFromFloat(4.5)))
	assert.True(t, rec.ExceedsDailyLimit)
	assert.True(t, rec.ExceedsOvertimeLimit)
}

func TestClassify_PaidOvertimeRegularRate(t *testing.T) {
	rec := Classify(clockedRecord("09:00", "20:00"), Policy{
		OvertimePolicy: attendance.OvertimePaid,
		HourlyRate:     decimal.NewFromInt(50),
	})

	// 2h at 1.25 times 50.
	assert.True(t, rec.OvertimeAmount.Equal(decimal.NewFromInt(125)), "got %s", rec.OvertimeAmount)
	assert.True(t, rec.OffsetHoursEarned.IsZero())
}

func TestClassify_PaidNightOvertimePremiumRate(t *testing.T) {
	rec := Classify(clockedRecord("09:00", "23:00"), Policy{
		OvertimePolicy: attendance.OvertimePaid,
		HourlyRate:     decimal.NewFromInt(50),
	})

	// 14h span minus break is 13h worked, 5h overtime ending past 22:00.
	assert.True(t, rec.IsNightOvertime)
	assert.True(t, rec.OvertimeAmount.Equal(decimal.NewFromInt(375)), "5h at 1.5 times 50, got %s", rec.OvertimeAmount)
}

func TestClassify_OffsetPolicyAccruesHours(t *testing.T) {
	rec := Classify(clockedRecord("09:00", "20:00"), Policy{OvertimePolicy: attendance.OvertimeOffset})

	assert.True(t, rec.OffsetHoursEarned.Equal(decimal.NewFromInt(2)))
	assert.True(t, rec.OvertimeAmount.IsZero())
}

func TestClassify_HolidayAllOvertime(t *testing.T) {
	rec := Classify(clockedRecord("09:00", "18:00"), Policy{
		OvertimePolicy: attendance.OvertimePaid,
		HourlyRate:     decimal.NewFromInt(50),
		IsHoliday:      true,
	})

	assert.True(t, rec.RegularHours.IsZero())
	assert.True(t, rec.OvertimeHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, rec.IsHolidayOvertime)
	assert.True(t, rec.OvertimeAmount.Equal(decimal.NewFromInt(600)), "8h at 1.5 times 50, got %s", rec.OvertimeAmount)
	assert.False(t, rec.IsEarlyDeparture, "no schedule applies on a holiday")
}

func TestClassify_LatenessGrace(t *testing.T) {
	rec := Classify(clockedRecord("09:15", "18:00"), Policy{})
	assert.False(t, rec.IsLate, "arrival at the grace boundary is on time")
	assert.Equal(t, attendance.StatusPresent, rec.Status)

	rec = Classify(clockedRecord("09:16", "18:00"), Policy{})
	assert.True(t, rec.IsLate)
	assert.Equal(t, 16, rec.LateMinutes, "counted from 09:00, not from the grace boundary")
	assert.Equal(t, attendance.StatusLate, rec.Status)
}

func TestClassify_FoodAllowance(t *testing.T) {
	for _, location := range []string{attendance.LocationKEZAD, attendance.LocationSafario, attendance.LocationSites} {
		rec := clockedRecord("09:00", "18:00")
		rec.WorkLocation = &location
		classified := Classify(rec, Policy{})

		assert.True(t, classified.FoodAllowanceEligible, location)
		assert.True(t, classified.FoodAllowanceAmount.Equal(decimal.NewFromInt(30)), location)
	}

	office := attendance.LocationHeadOffice
	rec := clockedRecord("09:00", "18:00")
	rec.WorkLocation = &office
	classified := Classify(rec, Policy{})
	assert.False(t, classified.FoodAllowanceEligible)
	assert.True(t, classified.FoodAllowanceAmount.IsZero())
}

func TestClassify_ResetsStaleFields(t *testing.T) {
	rec := clockedRecord("09:00", "18:00")
	rec.OvertimeHours = decimal.NewFromInt(5)
	rec.OvertimeAmount = decimal.NewFromInt(999)
	rec.IsNightOvertime = true
	rec.ExceedsDailyLimit = true

	classified := Classify(rec, Policy{OvertimePolicy: attendance.OvertimeNone})

	assert.True(t, classified.OvertimeHours.IsZero())
	assert.True(t, classified.OvertimeAmount.IsZero())
	assert.False(t, classified.IsNightOvertime)
	assert.False(t, classified.ExceedsDailyLimit)
}
