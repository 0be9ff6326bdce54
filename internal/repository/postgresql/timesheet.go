package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/timesheet"
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.Repository {
	return &timesheetRepositoryImpl{db: db}
}

const timesheetColumns = `
	ts.id, ts.employee_id, ts.year, ts.month,
	ts.total_working_days, ts.total_present_days, ts.total_absent_days,
	ts.total_leave_days, ts.total_wfh_days,
	ts.total_late_arrivals, ts.total_early_departures,
	ts.total_regular_hours, ts.total_overtime_hours,
	ts.total_night_overtime_hours, ts.total_holiday_overtime_hours,
	ts.total_overtime_amount,
	ts.offset_hours_earned, ts.offset_hours_used,
	ts.days_at_head_office, ts.days_at_kezad, ts.days_at_safario,
	ts.days_at_sites, ts.days_at_meeting, ts.days_at_event,
	ts.food_allowance_days, ts.food_allowance_total,
	ts.has_compliance_issues, ts.compliance_notes,
	ts.status,
	ts.submitted_at, ts.employee_notes,
	ts.manager_approved_by, ts.manager_approved_at, ts.manager_notes,
	ts.hr_approved_by, ts.hr_approved_at, ts.hr_notes,
	ts.rejected_by, ts.rejected_at, ts.rejection_reason,
	ts.exported_at, ts.payroll_reference,
	ts.created_at, ts.updated_at
`

func scanTimesheet(row pgx.Row) (timesheet.Timesheet, error) {
	var t timesheet.Timesheet
	err := row.Scan(
		&t.ID, &t.EmployeeID, &t.Year, &t.Month,
		&t.TotalWorkingDays, &t.TotalPresentDays, &t.TotalAbsentDays,
		&t.TotalLeaveDays, &t.TotalWFHDays,
		&t.TotalLateArrivals, &t.TotalEarlyDepartures,
		&t.TotalRegularHours, &t.TotalOvertimeHours,
		&t.TotalNightOvertimeHours, &t.TotalHolidayOvertimeHours,
		&t.TotalOvertimeAmount,
		&t.OffsetHoursEarned, &t.OffsetHoursUsed,
		&t.DaysAtHeadOffice, &t.DaysAtKEZAD, &t.DaysAtSafario,
		&t.DaysAtSites, &t.DaysAtMeeting, &t.DaysAtEvent,
		&t.FoodAllowanceDays, &t.FoodAllowanceTotal,
		&t.HasComplianceIssues, &t.ComplianceNotes,
		&t.Status,
		&t.SubmittedAt, &t.EmployeeNotes,
		&t.ManagerApprovedBy, &t.ManagerApprovedAt, &t.ManagerNotes,
		&t.HRApprovedBy, &t.HRApprovedAt, &t.HRNotes,
		&t.RejectedBy, &t.RejectedAt, &t.RejectionReason,
		&t.ExportedAt, &t.PayrollReference,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *timesheetRepositoryImpl) GetByID(ctx context.Context, id string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanTimesheet(q.QueryRow(ctx, `SELECT `+timesheetColumns+` FROM timesheets ts WHERE ts.id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, err
	}
	return t, nil
}

func (r *timesheetRepositoryImpl) GetByKey(ctx context.Context, employeeID string, year, month int) (*timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanTimesheet(q.QueryRow(ctx, `
		SELECT `+timesheetColumns+`
		FROM timesheets ts
		WHERE ts.employee_id = $1 AND ts.year = $2 AND ts.month = $3
	`, employeeID, year, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *timesheetRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, year int) ([]timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheets ts
		WHERE ts.employee_id = $1 AND ts.year = $2
		ORDER BY ts.month
	`

	rows, err := q.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sheets []timesheet.Timesheet
	for rows.Next() {
		t, err := scanTimesheet(rows)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return sheets, nil
}

func (r *timesheetRepositoryImpl) Upsert(ctx context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheets (
			id, employee_id, year, month,
			total_working_days, total_present_days, total_absent_days,
			total_leave_days, total_wfh_days,
			total_late_arrivals, total_early_departures,
			total_regular_hours, total_overtime_hours,
			total_night_overtime_hours, total_holiday_overtime_hours,
			total_overtime_amount,
			offset_hours_earned, offset_hours_used,
			days_at_head_office, days_at_kezad, days_at_safario,
			days_at_sites, days_at_meeting, days_at_event,
			food_allowance_days, food_allowance_total,
			has_compliance_issues, compliance_notes,
			status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3,
			$4, $5, $6,
			$7, $8,
			$9, $10,
			$11, $12,
			$13, $14,
			$15,
			$16, $17,
			$18, $19, $20,
			$21, $22, $23,
			$24, $25,
			$26, $27,
			$28, NOW(), NOW()
		)
		ON CONFLICT (employee_id, year, month) DO UPDATE
		SET total_working_days = EXCLUDED.total_working_days,
		    total_present_days = EXCLUDED.total_present_days,
		    total_absent_days = EXCLUDED.total_absent_days,
		    total_leave_days = EXCLUDED.total_leave_days,
		    total_wfh_days = EXCLUDED.total_wfh_days,
		    total_late_arrivals = EXCLUDED.total_late_arrivals,
		    total_early_departures = EXCLUDED.total_early_departures,
		    total_regular_hours = EXCLUDED.total_regular_hours,
		    total_overtime_hours = EXCLUDED.total_overtime_hours,
		    total_night_overtime_hours = EXCLUDED.total_night_overtime_hours,
		    total_holiday_overtime_hours = EXCLUDED.total_holiday_overtime_hours,
		    total_overtime_amount = EXCLUDED.total_overtime_amount,
		    offset_hours_earned = EXCLUDED.offset_hours_earned,
		    offset_hours_used = EXCLUDED.offset_hours_used,
		    days_at_head_office = EXCLUDED.days_at_head_office,
		    days_at_kezad = EXCLUDED.days_at_kezad,
		    days_at_safario = EXCLUDED.days_at_safario,
		    days_at_sites = EXCLUDED.days_at_sites,
		    days_at_meeting = EXCLUDED.days_at_meeting,
		    days_at_event = EXCLUDED.days_at_event,
		    food_allowance_days = EXCLUDED.food_allowance_days,
		    food_allowance_total = EXCLUDED.food_allowance_total,
		    has_compliance_issues = EXCLUDED.has_compliance_issues,
		    compliance_notes = EXCLUDED.compliance_notes,
		    updated_at = NOW()
		RETURNING ` + timesheetColumnsBare

	stored, err := scanTimesheet(q.QueryRow(ctx, query,
		ts.EmployeeID, ts.Year, ts.Month,
		ts.TotalWorkingDays, ts.TotalPresentDays, ts.TotalAbsentDays,
		ts.TotalLeaveDays, ts.TotalWFHDays,
		ts.TotalLateArrivals, ts.TotalEarlyDepartures,
		ts.TotalRegularHours, ts.TotalOvertimeHours,
		ts.TotalNightOvertimeHours, ts.TotalHolidayOvertimeHours,
		ts.TotalOvertimeAmount,
		ts.OffsetHoursEarned, ts.OffsetHoursUsed,
		ts.DaysAtHeadOffice, ts.DaysAtKEZAD, ts.DaysAtSafario,
		ts.DaysAtSites, ts.DaysAtMeeting, ts.DaysAtEvent,
		ts.FoodAllowanceDays, ts.FoodAllowanceTotal,
		ts.HasComplianceIssues, ts.ComplianceNotes,
		ts.Status,
	))
	if err != nil {
		return timesheet.Timesheet{}, fmt.Errorf("failed to upsert timesheet: %w", err)
	}
	return stored, nil
}

// timesheetColumnsBare is timesheetColumns without the table alias, for
// RETURNING clauses.
const timesheetColumnsBare = `
	id, employee_id, year, month,
	total_working_days, total_present_days, total_absent_days,
	total_leave_days, total_wfh_days,
	total_late_arrivals, total_early_departures,
	total_regular_hours, total_overtime_hours,
	total_night_overtime_hours, total_holiday_overtime_hours,
	total_overtime_amount,
	offset_hours_earned, offset_hours_used,
	days_at_head_office, days_at_kezad, days_at_safario,
	days_at_sites, days_at_meeting, days_at_event,
	food_allowance_days, food_allowance_total,
	has_compliance_issues, compliance_notes,
	status,
	submitted_at, employee_notes,
	manager_approved_by, manager_approved_at, manager_notes,
	hr_approved_by, hr_approved_at, hr_notes,
	rejected_by, rejected_at, rejection_reason,
	exported_at, payroll_reference,
	created_at, updated_at
`

func (r *timesheetRepositoryImpl) UpdateWorkflow(ctx context.Context, ts timesheet.Timesheet) error {
	q := GetQuerier(ctx, r.db)

	var updatedID string
	err := q.QueryRow(ctx, `
		UPDATE timesheets
		SET status = $1,
		    submitted_at = $2, employee_notes = $3,
		    manager_approved_by = $4, manager_approved_at = $5, manager_notes = $6,
		    hr_approved_by = $7, hr_approved_at = $8, hr_notes = $9,
		    rejected_by = $10, rejected_at = $11, rejection_reason = $12,
		    exported_at = $13, payroll_reference = $14,
		    updated_at = NOW()
		WHERE id = $15
		RETURNING id
	`,
		ts.Status,
		ts.SubmittedAt, ts.EmployeeNotes,
		ts.ManagerApprovedBy, ts.ManagerApprovedAt, ts.ManagerNotes,
		ts.HRApprovedBy, ts.HRApprovedAt, ts.HRNotes,
		ts.RejectedBy, ts.RejectedAt, ts.RejectionReason,
		ts.ExportedAt, ts.PayrollReference,
		ts.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.ErrTimesheetNotFound
		}
		return fmt.Errorf("failed to update timesheet workflow %s: %w", ts.ID, err)
	}
	return nil
}
