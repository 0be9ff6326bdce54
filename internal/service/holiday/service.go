package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/holiday"
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/dates"
)

type Service struct {
	holidays holiday.Repository
}

func NewService(holidays holiday.Repository) *Service {
	return &Service{holidays: holidays}
}

func (s *Service) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.Holiday, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to parse end date: %w", err)
	}
	startDate, endDate = dates.Normalize(startDate), dates.Normalize(endDate)
	if endDate.Before(startDate) {
		return holiday.Holiday{}, holiday.ErrInvalidDateRange
	}

	holidayType := holiday.HolidayType(req.HolidayType)
	if !holidayType.Valid() {
		return holiday.Holiday{}, holiday.ErrInvalidHolidayType
	}

	return s.holidays.Create(ctx, holiday.Holiday{
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
		Year:      startDate.Year(),
		Type:      holidayType,
		IsPaid:    req.IsPaid,
	})
}

func (s *Service) GetHoliday(ctx context.Context, id string) (holiday.Holiday, error) {
	return s.holidays.GetByID(ctx, id)
}

func (s *Service) ListByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	return s.holidays.ListByYear(ctx, year)
}

func (s *Service) HolidaysInRange(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	start, end = dates.Normalize(start), dates.Normalize(end)
	if end.Before(start) {
		return nil, holiday.ErrInvalidDateRange
	}
	return s.holidays.ListInRange(ctx, start, end)
}

// IsHoliday reports whether the date falls inside any active holiday span,
// returning the holiday when it does.
func (s *Service) IsHoliday(ctx context.Context, date time.Time) (bool, *holiday.Holiday, error) {
	h, err := s.holidays.FindByDate(ctx, dates.Normalize(date))
	if err != nil {
		return false, nil, err
	}
	return h != nil, h, nil
}

// WorkingDays counts calendar days in [start, end] that are neither a UAE
// weekend day nor covered by an active holiday. Holiday spans are clipped to
// the queried range; a holiday day that is also a weekend day is counted once.
func (s *Service) WorkingDays(ctx context.Context, start, end time.Time) (int, error) {
	start, end = dates.Normalize(start), dates.Normalize(end)
	if end.Before(start) {
		return 0, holiday.ErrInvalidDateRange
	}

	holidays, err := s.holidays.ListInRange(ctx, start, end)
	if err != nil {
		return 0, err
	}

	return CountWorkingDays(start, end, holidays), nil
}

// CountWorkingDays is the pure counting core behind WorkingDays.
func CountWorkingDays(start, end time.Time, holidays []holiday.Holiday) int {
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if dates.IsWeekend(d) {
			continue
		}
		if coveredByHoliday(d, holidays) {
			continue
		}
		count++
	}
	return count
}

func coveredByHoliday(d time.Time, holidays []holiday.Holiday) bool {
	for _, h := range holidays {
		if dates.Contains(h.StartDate, h.EndDate, d) {
			return true
		}
	}
	return false
}

func (s *Service) UpdateHoliday(ctx context.Context, h holiday.Holiday) error {
	if h.EndDate.Before(h.StartDate) {
		return holiday.ErrInvalidDateRange
	}
	if !h.Type.Valid() {
		return holiday.ErrInvalidHolidayType
	}
	return s.holidays.Update(ctx, h)
}

func (s *Service) DeactivateHoliday(ctx context.Context, id string) error {
	return s.holidays.Deactivate(ctx, id)
}
