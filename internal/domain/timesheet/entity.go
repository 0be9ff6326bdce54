package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft           Status = "draft"
	StatusSubmitted       Status = "submitted"
	StatusManagerApproved Status = "manager_approved"
	StatusHRApproved      Status = "hr_approved"
	StatusRejected        Status = "rejected"
	StatusExported        Status = "exported"
)

// CanTransition encodes the approval workflow:
// draft -> submitted -> manager_approved -> hr_approved -> exported,
// with submitted/manager_approved rejectable. Rejected timesheets may be
// resubmitted after regeneration.
func (s Status) CanTransition(to Status) bool {
	switch s {
	case StatusDraft, StatusRejected:
		return to == StatusSubmitted
	case StatusSubmitted:
		return to == StatusManagerApproved || to == StatusRejected
	case StatusManagerApproved:
		return to == StatusHRApproved || to == StatusRejected
	case StatusHRApproved:
		return to == StatusExported
	}
	return false
}

// Regenerable reports whether the aggregator may overwrite the timesheet.
func (s Status) Regenerable() bool {
	return s == StatusDraft || s == StatusRejected
}

// Timesheet is the monthly aggregate record for one employee, unique per
// (employee_id, year, month). All totals are recomputed as a whole by the
// aggregator; individual fields are never patched.
type Timesheet struct {
	ID         string
	EmployeeID string
	Year       int
	Month      int

	TotalWorkingDays     int
	TotalPresentDays     int
	TotalAbsentDays      int
	TotalLeaveDays       decimal.Decimal
	TotalWFHDays         int
	TotalLateArrivals    int
	TotalEarlyDepartures int

	TotalRegularHours         decimal.Decimal
	TotalOvertimeHours        decimal.Decimal
	TotalNightOvertimeHours   decimal.Decimal
	TotalHolidayOvertimeHours decimal.Decimal
	TotalOvertimeAmount       decimal.Decimal

	OffsetHoursEarned decimal.Decimal
	OffsetHoursUsed   decimal.Decimal

	DaysAtHeadOffice int
	DaysAtKEZAD      int
	DaysAtSafario    int
	DaysAtSites      int
	DaysAtMeeting    int
	DaysAtEvent      int

	FoodAllowanceDays  int
	FoodAllowanceTotal decimal.Decimal

	HasComplianceIssues bool
	ComplianceNotes     *string

	Status Status

	SubmittedAt   *time.Time
	EmployeeNotes *string

	ManagerApprovedBy *string
	ManagerApprovedAt *time.Time
	ManagerNotes      *string

	HRApprovedBy *string
	HRApprovedAt *time.Time
	HRNotes      *string

	RejectedBy      *string
	RejectedAt      *time.Time
	RejectionReason *string

	ExportedAt       *time.Time
	PayrollReference *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
