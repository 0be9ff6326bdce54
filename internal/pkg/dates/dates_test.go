package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysInclusive(t *testing.T) {
	assert.Equal(t, 1, DaysInclusive(date(2026, 3, 5), date(2026, 3, 5)))
	assert.Equal(t, 5, DaysInclusive(date(2026, 3, 1), date(2026, 3, 5)))
	assert.Equal(t, 0, DaysInclusive(date(2026, 3, 5), date(2026, 3, 4)))
}

func TestDaysInclusive_NormalizesClockTime(t *testing.T) {
	start := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC)
	end := time.Date(2026, 3, 3, 0, 15, 0, 0, time.UTC)
	assert.Equal(t, 3, DaysInclusive(start, end))
}

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(2026, time.February)
	assert.Equal(t, date(2026, 2, 1), first)
	assert.Equal(t, date(2026, 2, 28), last)

	first, last = MonthBounds(2024, time.February)
	assert.Equal(t, date(2024, 2, 1), first)
	assert.Equal(t, date(2024, 2, 29), last)
}

func TestIsWeekend_FridaySaturday(t *testing.T) {
	assert.True(t, IsWeekend(date(2026, 3, 6)))  // Friday
	assert.True(t, IsWeekend(date(2026, 3, 7)))  // Saturday
	assert.False(t, IsWeekend(date(2026, 3, 8))) // Sunday is a working day
	assert.False(t, IsWeekend(date(2026, 3, 9))) // Monday
}

func TestWeekendDays(t *testing.T) {
	// March 2026 has four Fridays and four Saturdays.
	assert.Equal(t, 8, WeekendDays(date(2026, 3, 1), date(2026, 3, 31)))
	assert.Equal(t, 0, WeekendDays(date(2026, 3, 8), date(2026, 3, 12)))
}

func TestOverlapDays_ClipsToRange(t *testing.T) {
	// Holiday spans the month boundary; only the in-range part counts.
	assert.Equal(t, 2, OverlapDays(date(2026, 3, 1), date(2026, 3, 31), date(2026, 2, 27), date(2026, 3, 2)))
	assert.Equal(t, 0, OverlapDays(date(2026, 3, 1), date(2026, 3, 31), date(2026, 4, 1), date(2026, 4, 3)))
	assert.Equal(t, 3, OverlapDays(date(2026, 3, 1), date(2026, 3, 31), date(2026, 3, 10), date(2026, 3, 12)))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains(date(2026, 3, 1), date(2026, 3, 3), date(2026, 3, 1)))
	assert.True(t, Contains(date(2026, 3, 1), date(2026, 3, 3), date(2026, 3, 3)))
	assert.False(t, Contains(date(2026, 3, 1), date(2026, 3, 3), date(2026, 3, 4)))
}
