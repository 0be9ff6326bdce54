package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/attendance"
	"github.com/baynunah-hr/hr-backend-go/internal/domain/holiday"
	"github.com/baynunah-hr/hr-backend-go/internal/domain/timesheet"
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/database"
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/dates"
)

type Service struct {
	tx         database.Transactor
	records    attendance.Repository
	holidays   holiday.Repository
	timesheets timesheet.Repository
}

func NewService(
	tx database.Transactor,
	records attendance.Repository,
	holidays holiday.Repository,
	timesheets timesheet.Repository,
) *Service {
	return &Service{
		tx:         tx,
		records:    records,
		holidays:   holidays,
		timesheets: timesheets,
	}
}

func (s *Service) ListForPeriod(ctx context.Context, employeeID string, year, month int) ([]attendance.Record, error) {
	start, end := dates.MonthBounds(year, time.Month(month))
	return s.records.ListForPeriod(ctx, employeeID, start, end)
}

// ClassifyPeriod recomputes the classification fields for every record in the
// employee's month. Refused once the owning timesheet has been submitted:
// classified figures are frozen from that point.
func (s *Service) ClassifyPeriod(ctx context.Context, req attendance.ClassifyRequest) ([]attendance.Record, error) {
	start, end := dates.MonthBounds(req.Year, time.Month(req.Month))

	var classified []attendance.Record
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		ts, err := s.timesheets.GetByKey(ctx, req.EmployeeID, req.Year, req.Month)
		if err != nil {
			return err
		}
		if ts != nil && !ts.Status.Regenerable() {
			return attendance.ErrRecordFrozen
		}

		records, err := s.records.ListForPeriod(ctx, req.EmployeeID, start, end)
		if err != nil {
			return fmt.Errorf("failed to list attendance records: %w", err)
		}

		holidays, err := s.holidays.ListInRange(ctx, start, end)
		if err != nil {
			return fmt.Errorf("failed to list holidays: %w", err)
		}

		classified = make([]attendance.Record, 0, len(records))
		for _, rec := range records {
			policy := Policy{
				OvertimePolicy: attendance.OvertimeType(req.OvertimePolicy),
				HourlyRate:     req.HourlyRate,
				IsHoliday:      dateIsHoliday(rec.Date, holidays),
			}

			updated := Classify(rec, policy)
			if err := s.records.UpdateClassification(ctx, updated); err != nil {
				return err
			}
			classified = append(classified, updated)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return classified, nil
}

func dateIsHoliday(d time.Time, holidays []holiday.Holiday) bool {
	for _, h := range holidays {
		if dates.Contains(h.StartDate, h.EndDate, d) {
			return true
		}
	}
	return false
}
