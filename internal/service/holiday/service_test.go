package holiday

import (
	"testing"
	"time"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/holiday"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func span(name string, start, end time.Time) holiday.Holiday {
	return holiday.Holiday{
		Name:      name,
		StartDate: start,
		EndDate:   end,
		Year:      start.Year(),
		Type:      holiday.TypeUAEOfficial,
		IsPaid:    true,
		IsActive:  true,
	}
}

func TestCountWorkingDays_NoHolidays(t *testing.T) {
	// Sun 2026-03-08 through Thu 2026-03-12: five working days.
	assert.Equal(t, 5, CountWorkingDays(date(2026, 3, 8), date(2026, 3, 12), nil))

	// A full week loses Friday and Saturday.
	assert.Equal(t, 5, CountWorkingDays(date(2026, 3, 8), date(2026, 3, 14), nil))
}

func TestCountWorkingDays_SubtractsHolidays(t *testing.T) {
	holidays := []holiday.Holiday{
		span("National Day", date(2026, 3, 10), date(2026, 3, 10)),
	}
	assert.Equal(t, 4, CountWorkingDays(date(2026, 3, 8), date(2026, 3, 12), holidays))
}

func TestCountWorkingDays_MultiDaySpanClipped(t *testing.T) {
	// Eid break Wed 2026-03-18 through Sun 2026-03-22; query only covers the
	// first two days of the break.
	holidays := []holiday.Holiday{
		span("Eid Al Fitr", date(2026, 3, 18), date(2026, 3, 22)),
	}

	// Sun 15 .. Thu 19: Wed 18 and Thu 19 fall inside the break.
	assert.Equal(t, 3, CountWorkingDays(date(2026, 3, 15), date(2026, 3, 19), holidays))
}

func TestCountWorkingDays_HolidayOnWeekendNotDoubleCounted(t *testing.T) {
	// The break covers Fri 20 and Sat 21; those days were never working days,
	// so the holiday must not subtract them twice.
	holidays := []holiday.Holiday{
		span("Eid Al Fitr", date(2026, 3, 18), date(2026, 3, 22)),
	}

	// Full week Sun 15 .. Sat 21: working days are Sun-Thu (5) minus the
	// Wed/Thu holiday days = 3.
	assert.Equal(t, 3, CountWorkingDays(date(2026, 3, 15), date(2026, 3, 21), holidays))
}

func TestCountWorkingDays_FullyCoveredRangeIsZero(t *testing.T) {
	holidays := []holiday.Holiday{
		span("Eid Al Adha", date(2026, 5, 26), date(2026, 5, 29)),
	}
	assert.Equal(t, 0, CountWorkingDays(date(2026, 5, 26), date(2026, 5, 29), holidays))
}
