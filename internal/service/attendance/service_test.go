package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/attendance"
	"github.com/baynunah-hr/hr-backend-go/internal/domain/holiday"
	"github.com/baynunah-hr/hr-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct{}

func (fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeRecordRepo struct {
	records []attendance.Record
}

func (f *fakeRecordRepo) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeRecordRepo) GetByEmployeeDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	for _, r := range f.records {
		if r.EmployeeID == employeeID && r.Date.Equal(date) {
			found := r
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeRecordRepo) ListForPeriod(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, r := range f.records {
		if r.EmployeeID == employeeID && !r.Date.Before(start) && !r.Date.After(end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) UpdateClassification(ctx context.Context, rec attendance.Record) error {
	for i, r := range f.records {
		if r.ID == rec.ID {
			f.records[i] = rec
			return nil
		}
	}
	return attendance.ErrRecordNotFound
}

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	return h, nil
}

func (f *fakeHolidayRepo) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	return holiday.Holiday{}, holiday.ErrHolidayNotFound
}

func (f *fakeHolidayRepo) ListInRange(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if !h.StartDate.After(end) && !h.EndDate.Before(start) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) ListByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	return nil, nil
}

func (f *fakeHolidayRepo) FindByDate(ctx context.Context, date time.Time) (*holiday.Holiday, error) {
	return nil, nil
}

func (f *fakeHolidayRepo) Update(ctx context.Context, h holiday.Holiday) error { return nil }

func (f *fakeHolidayRepo) Deactivate(ctx context.Context, id string) error { return nil }

type fakeTimesheetRepo struct {
	byKey map[string]timesheet.Timesheet
}

func tsKey(employeeID string, year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01") + "/" + employeeID
}

func (f *fakeTimesheetRepo) GetByID(ctx context.Context, id string) (timesheet.Timesheet, error) {
	return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
}

func (f *fakeTimesheetRepo) GetByKey(ctx context.Context, employeeID string, year, month int) (*timesheet.Timesheet, error) {
	ts, ok := f.byKey[tsKey(employeeID, year, month)]
	if !ok {
		return nil, nil
	}
	return &ts, nil
}

func (f *fakeTimesheetRepo) ListByEmployee(ctx context.Context, employeeID string, year int) ([]timesheet.Timesheet, error) {
	return nil, nil
}

func (f *fakeTimesheetRepo) Upsert(ctx context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	return ts, nil
}

func (f *fakeTimesheetRepo) UpdateWorkflow(ctx context.Context, ts timesheet.Timesheet) error {
	return nil
}

func periodRecord(id string, d int, in, out string) attendance.Record {
	rec := attendance.Record{
		ID:         id,
		EmployeeID: "emp-1",
		Date:       time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC),
	}
	if in != "" {
		clockIn := time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
		h, _ := time.Parse("15:04", in)
		clockIn = clockIn.Add(time.Duration(h.Hour())*time.Hour + time.Duration(h.Minute())*time.Minute)
		rec.ClockIn = &clockIn
	}
	if out != "" {
		clockOut := time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
		h, _ := time.Parse("15:04", out)
		clockOut = clockOut.Add(time.Duration(h.Hour())*time.Hour + time.Duration(h.Minute())*time.Minute)
		rec.ClockOut = &clockOut
	}
	return rec
}

func TestClassifyPeriod_AppliesHolidayCalendar(t *testing.T) {
	records := &fakeRecordRepo{records: []attendance.Record{
		periodRecord("rec-1", 2, "09:00", "18:00"),
		periodRecord("rec-2", 10, "09:00", "18:00"),
	}}
	holidays := &fakeHolidayRepo{holidays: []holiday.Holiday{{
		Name:      "Eid al-Fitr",
		StartDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	}}}
	service := NewService(fakeTx{}, records, holidays, &fakeTimesheetRepo{})

	classified, err := service.ClassifyPeriod(context.Background(), attendance.ClassifyRequest{
		EmployeeID:     "emp-1",
		Year:           2026,
		Month:          3,
		OvertimePolicy: string(attendance.OvertimePaid),
		HourlyRate:     decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	require.Len(t, classified, 2)

	regular, eidDay := classified[0], classified[1]
	assert.True(t, regular.RegularHours.Equal(decimal.NewFromInt(8)))
	assert.False(t, regular.IsHolidayOvertime)

	assert.True(t, eidDay.RegularHours.IsZero())
	assert.True(t, eidDay.IsHolidayOvertime)
	assert.True(t, eidDay.OvertimeHours.Equal(decimal.NewFromInt(8)))

	// Classifications were persisted.
	stored, err := records.GetByID(context.Background(), "rec-2")
	require.NoError(t, err)
	assert.True(t, stored.IsHolidayOvertime)
}

func TestClassifyPeriod_FrozenBySubmittedTimesheet(t *testing.T) {
	records := &fakeRecordRepo{records: []attendance.Record{
		periodRecord("rec-1", 2, "09:00", "18:00"),
	}}
	timesheets := &fakeTimesheetRepo{byKey: map[string]timesheet.Timesheet{
		tsKey("emp-1", 2026, 3): {EmployeeID: "emp-1", Year: 2026, Month: 3, Status: timesheet.StatusSubmitted},
	}}
	service := NewService(fakeTx{}, records, &fakeHolidayRepo{}, timesheets)

	_, err := service.ClassifyPeriod(context.Background(), attendance.ClassifyRequest{
		EmployeeID: "emp-1", Year: 2026, Month: 3, OvertimePolicy: "none",
	})
	assert.ErrorIs(t, err, attendance.ErrRecordFrozen)
}

func TestClassifyPeriod_DraftTimesheetAllowsReclassification(t *testing.T) {
	records := &fakeRecordRepo{records: []attendance.Record{
		periodRecord("rec-1", 2, "09:00", "18:00"),
	}}
	timesheets := &fakeTimesheetRepo{byKey: map[string]timesheet.Timesheet{
		tsKey("emp-1", 2026, 3): {EmployeeID: "emp-1", Year: 2026, Month: 3, Status: timesheet.StatusDraft},
	}}
	service := NewService(fakeTx{}, records, &fakeHolidayRepo{}, timesheets)

	classified, err := service.ClassifyPeriod(context.Background(), attendance.ClassifyRequest{
		EmployeeID: "emp-1", Year: 2026, Month: 3, OvertimePolicy: "none",
	})
	require.NoError(t, err)
	assert.Len(t, classified, 1)
}
