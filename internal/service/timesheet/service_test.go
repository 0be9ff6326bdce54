package timesheet

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/attendance"
	"github.com/baynunah-hr/hr-backend-go/internal/domain/employee"
	"github.com/baynunah-hr/hr-backend-go/internal/domain/leave"
	"github.com/baynunah-hr/hr-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeTx struct{}

func (fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimesheetRepo struct {
	timesheets map[string]timesheet.Timesheet
	nextID     int
}

func newFakeTimesheetRepo() *fakeTimesheetRepo {
	return &fakeTimesheetRepo{timesheets: make(map[string]timesheet.Timesheet)}
}

func (f *fakeTimesheetRepo) GetByID(ctx context.Context, id string) (timesheet.Timesheet, error) {
	ts, ok := f.timesheets[id]
	if !ok {
		return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
	}
	return ts, nil
}

func (f *fakeTimesheetRepo) GetByKey(ctx context.Context, employeeID string, year, month int) (*timesheet.Timesheet, error) {
	for _, ts := range f.timesheets {
		if ts.EmployeeID == employeeID && ts.Year == year && ts.Month == month {
			found := ts
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeTimesheetRepo) ListByEmployee(ctx context.Context, employeeID string, year int) ([]timesheet.Timesheet, error) {
	var out []timesheet.Timesheet
	for _, ts := range f.timesheets {
		if ts.EmployeeID == employeeID && ts.Year == year {
			out = append(out, ts)
		}
	}
	return out, nil
}

func (f *fakeTimesheetRepo) Upsert(ctx context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	existing, err := f.GetByKey(ctx, ts.EmployeeID, ts.Year, ts.Month)
	if err != nil {
		return timesheet.Timesheet{}, err
	}
	if existing != nil {
		// Aggregate fields are rewritten; workflow state survives.
		ts.ID = existing.ID
		ts.Status = existing.Status
		ts.SubmittedAt = existing.SubmittedAt
		ts.CreatedAt = existing.CreatedAt
		f.timesheets[ts.ID] = ts
		return ts, nil
	}
	f.nextID++
	ts.ID = fmt.Sprintf("ts-%d", f.nextID)
	ts.CreatedAt = time.Now()
	f.timesheets[ts.ID] = ts
	return ts, nil
}

func (f *fakeTimesheetRepo) UpdateWorkflow(ctx context.Context, ts timesheet.Timesheet) error {
	if _, ok := f.timesheets[ts.ID]; !ok {
		return timesheet.ErrTimesheetNotFound
	}
	f.timesheets[ts.ID] = ts
	return nil
}

type fakeAttendanceRepo struct {
	records []attendance.Record
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	for _, r := range f.records {
		if r.EmployeeID == employeeID && r.Date.Equal(date) {
			found := r
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) ListForPeriod(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, r := range f.records {
		if r.EmployeeID == employeeID && !r.Date.Before(start) && !r.Date.After(end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) UpdateClassification(ctx context.Context, rec attendance.Record) error {
	for i, r := range f.records {
		if r.ID == rec.ID {
			f.records[i] = rec
			return nil
		}
	}
	return attendance.ErrRecordNotFound
}

type fakeLeaveRepo struct {
	approved []leave.Request
}

func (f *fakeLeaveRepo) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	return request, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.Request, error) {
	return leave.Request{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID string, year int) ([]leave.Request, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) FindOverlapping(ctx context.Context, employeeID string, start, end time.Time, excludeID string) (*leave.Request, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) ListApprovedInRange(ctx context.Context, employeeID string, start, end time.Time) ([]leave.Request, error) {
	var out []leave.Request
	for _, r := range f.approved {
		if r.EmployeeID == employeeID && !r.StartDate.After(end) && !r.EndDate.Before(start) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListApprovedEndedBefore(ctx context.Context, cutoff time.Time) ([]leave.Request, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) UpdateDecision(ctx context.Context, request leave.Request) error { return nil }

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.Status) error {
	return nil
}

func (f *fakeLeaveRepo) MarkManagerNotified(ctx context.Context, id string, at time.Time) error {
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	managers  map[string]string
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetManager(ctx context.Context, employeeID string) (*employee.Employee, error) {
	managerID, ok := f.managers[employeeID]
	if !ok {
		return nil, nil
	}
	manager, ok := f.employees[managerID]
	if !ok {
		return nil, nil
	}
	return &manager, nil
}

func (f *fakeEmployeeRepo) Lock(ctx context.Context, id string) error {
	if _, ok := f.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

type fakeNotifier struct {
	changed []timesheet.Timesheet
}

func (f *fakeNotifier) TimesheetChanged(ctx context.Context, ts timesheet.Timesheet) {
	f.changed = append(f.changed, ts)
}

// --- fixture ---

type fixture struct {
	service    *Service
	timesheets *fakeTimesheetRepo
	records    *fakeAttendanceRepo
	leaves     *fakeLeaveRepo
	notifier   *fakeNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	employees := &fakeEmployeeRepo{
		employees: map[string]employee.Employee{
			"emp-1": {ID: "emp-1", Name: "Aisha Al Mansoori", Role: employee.RoleEmployee},
			"mgr-1": {ID: "mgr-1", Name: "Omar Haddad", Role: employee.RoleManager},
			"mgr-2": {ID: "mgr-2", Name: "Lina Farouk", Role: employee.RoleManager},
			"hr-1":  {ID: "hr-1", Name: "Salem Al Ameri", Role: employee.RoleHR},
		},
		managers: map[string]string{"emp-1": "mgr-1"},
	}

	timesheets := newFakeTimesheetRepo()
	records := &fakeAttendanceRepo{}
	leaves := &fakeLeaveRepo{}
	notifier := &fakeNotifier{}

	return &fixture{
		service:    NewService(fakeTx{}, timesheets, records, leaves, employees, notifier),
		timesheets: timesheets,
		records:    records,
		leaves:     leaves,
		notifier:   notifier,
	}
}

func (f *fixture) generate(t *testing.T) timesheet.Timesheet {
	t.Helper()
	ts, err := f.service.Generate(context.Background(), timesheet.GenerateRequest{
		EmployeeID: "emp-1", Year: 2026, Month: 3,
	})
	require.NoError(t, err)
	return ts
}

// --- tests ---

func TestGenerate_BuildsDraft(t *testing.T) {
	f := newFixture(t)
	f.records.records = []attendance.Record{
		{ID: "rec-1", EmployeeID: "emp-1", Date: day(2), Status: attendance.StatusPresent, RegularHours: decimal.NewFromInt(8)},
		{ID: "rec-2", EmployeeID: "emp-1", Date: day(3), Status: attendance.StatusAbsent},
	}
	f.leaves.approved = []leave.Request{{
		EmployeeID: "emp-1",
		Status:     leave.StatusApproved,
		StartDate:  day(9),
		EndDate:    day(13),
		TotalDays:  decimal.NewFromInt(5),
	}}

	ts := f.generate(t)

	assert.Equal(t, timesheet.StatusDraft, ts.Status)
	assert.Equal(t, 1, ts.TotalPresentDays)
	assert.Equal(t, 1, ts.TotalAbsentDays)
	assert.True(t, ts.TotalLeaveDays.Equal(decimal.NewFromInt(5)))
	assert.NotEmpty(t, ts.ID)
}

func TestGenerate_UnknownEmployee(t *testing.T) {
	f := newFixture(t)
	_, err := f.service.Generate(context.Background(), timesheet.GenerateRequest{
		EmployeeID: "ghost", Year: 2026, Month: 3,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGenerate_RegenerationReplacesDraftTotals(t *testing.T) {
	f := newFixture(t)
	first := f.generate(t)
	assert.Equal(t, 0, first.TotalPresentDays)

	f.records.records = []attendance.Record{
		{ID: "rec-1", EmployeeID: "emp-1", Date: day(2), Status: attendance.StatusPresent, RegularHours: decimal.NewFromInt(8)},
	}

	second := f.generate(t)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, second.TotalPresentDays)
}

func TestGenerate_FrozenAfterSubmit(t *testing.T) {
	f := newFixture(t)
	ts := f.generate(t)
	_, err := f.service.Submit(context.Background(), timesheet.WorkflowRequest{TimesheetID: ts.ID}, "emp-1")
	require.NoError(t, err)

	f.records.records = []attendance.Record{
		{ID: "rec-1", EmployeeID: "emp-1", Date: day(2), Status: attendance.StatusPresent},
	}

	regenerated := f.generate(t)
	// The submitted timesheet comes back untouched.
	assert.Equal(t, timesheet.StatusSubmitted, regenerated.Status)
	assert.Equal(t, 0, regenerated.TotalPresentDays)
}

func TestSubmit_OwnerOnly(t *testing.T) {
	f := newFixture(t)
	ts := f.generate(t)

	_, err := f.service.Submit(context.Background(), timesheet.WorkflowRequest{TimesheetID: ts.ID}, "mgr-1")
	assert.ErrorIs(t, err, timesheet.ErrNotAuthorized)

	submitted, err := f.service.Submit(context.Background(), timesheet.WorkflowRequest{TimesheetID: ts.ID}, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusSubmitted, submitted.Status)
	assert.NotNil(t, submitted.SubmittedAt)
	assert.Len(t, f.notifier.changed, 1)
}

func TestManagerApprove_LineManagerOnly(t *testing.T) {
	f := newFixture(t)
	ts := f.generate(t)
	_, err := f.service.Submit(context.Background(), timesheet.WorkflowRequest{TimesheetID: ts.ID}, "emp-1")
	require.NoError(t, err)

	// A manager who is not the employee's line manager is refused.
	_, err = f.service.ManagerApprove(context.Background(), timesheet.WorkflowRequest{TimesheetID: ts.ID}, "mgr-2")
	assert.ErrorIs(t, err, timesheet.ErrNotAuthorized)

	approved, err := f.service.ManagerApprove(context.Background(), timesheet.WorkflowRequest{TimesheetID: ts.ID}, "mgr-1")
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusManagerApproved, approved.Status)
	require.NotNil(t, approved.ManagerApprovedBy)
	assert.Equal(t, "mgr-1", *approved.ManagerApprovedBy)
}

func TestManagerApprove_HROverride(t *testing.T) {
	f := newFixture(t)
	ts := f.generate(t)
	_, err := f.service.Submit(context.Background(), timesheet.WorkflowRequest{TimesheetID: ts.ID}, "emp-1")
	require.NoError(t, err)

	_, err = f.service.ManagerApprove(context.Background(), timesheet.WorkflowRequest{TimesheetID: ts.ID}, "hr-1")
	assert.NoError(t, err)
}

func TestHRApprove_RequiresHR(t *testing.T) {
	f := newFixture(t)
	ts := f.generate(t)
	_, err := f.service.Submit(context.Background(), timesheet.WorkflowRequest{TimesheetID: ts.ID}, "emp-1")
	require.NoError(t, err)
	_, err = f.service.ManagerApprove(context.Background(), timesheet.WorkflowRequest{TimesheetID: ts.ID}, "mgr-1")
	require.NoError(t, err)

	_, err = f.service.HRApprove(context.Background(), timesheet.WorkflowRequest{TimesheetID: ts.ID}, "mgr-1")
	assert.ErrorIs(t, err, timesheet.ErrNotAuthorized)

	approved, err := f.service.HRApprove(context.Background(), timesheet.WorkflowRequest{TimesheetID: ts.ID}, "hr-1")
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusHRApproved, approved.Status)
}

func TestWorkflow_SkippingStagesFails(t *testing.T) {
	f := newFixture(t)
	ts := f.generate(t)

	// Draft cannot be manager-approved or HR-approved directly.
	_, err := f.service.ManagerApprove(context.Background(), timesheet.WorkflowRequest{TimesheetID: ts.ID}, "mgr-1")
	assert.ErrorIs(t, err, timesheet.ErrInvalidStateTransition)

	_, err = f.service.HRApprove(context.Background(), timesheet.WorkflowRequest{TimesheetID: ts.ID}, "hr-1")
	assert.ErrorIs(t, err, timesheet.ErrInvalidStateTransition)
}

func TestReject_ThenResubmit(t *testing.T) {
	f := newFixture(t)
	ts := f.generate(t)
	_, err := f.service.Submit(context.Background(), timesheet.WorkflowRequest{TimesheetID: ts.ID}, "emp-1")
	require.NoError(t, err)

	rejected, err := f.service.Reject(context.Background(), timesheet.RejectRequest{
		TimesheetID: ts.ID, Reason: "missing site days",
	}, "mgr-1")
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "missing site days", *rejected.RejectionReason)

	// Rejected timesheets are regenerable and resubmittable; resubmission
	// clears the rejection stamps.
	resubmitted, err := f.service.Submit(context.Background(), timesheet.WorkflowRequest{TimesheetID: ts.ID}, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusSubmitted, resubmitted.Status)
	assert.Nil(t, resubmitted.RejectedBy)
	assert.Nil(t, resubmitted.RejectionReason)
}

func TestExport_HROnlyAndStampsReference(t *testing.T) {
	f := newFixture(t)
	ts := f.generate(t)
	_, err := f.service.Submit(context.Background(), timesheet.WorkflowRequest{TimesheetID: ts.ID}, "emp-1")
	require.NoError(t, err)
	_, err = f.service.ManagerApprove(context.Background(), timesheet.WorkflowRequest{TimesheetID: ts.ID}, "mgr-1")
	require.NoError(t, err)
	_, err = f.service.HRApprove(context.Background(), timesheet.WorkflowRequest{TimesheetID: ts.ID}, "hr-1")
	require.NoError(t, err)

	_, err = f.service.Export(context.Background(), ts.ID, "mgr-1")
	assert.ErrorIs(t, err, timesheet.ErrNotAuthorized)

	exported, err := f.service.Export(context.Background(), ts.ID, "hr-1")
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusExported, exported.Status)
	require.NotNil(t, exported.PayrollReference)
	assert.Contains(t, *exported.PayrollReference, "PAY-202603-")
	assert.NotNil(t, exported.ExportedAt)

	// Exported is terminal.
	_, err = f.service.Export(context.Background(), ts.ID, "hr-1")
	assert.ErrorIs(t, err, timesheet.ErrInvalidStateTransition)
}
