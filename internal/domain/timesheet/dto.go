package timesheet

import "github.com/baynunah-hr/hr-backend-go/internal/pkg/validator"

type GenerateRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

func (r GenerateRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Employee ID is required"})
	}
	if r.Year < 2000 || r.Year > 2200 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "Year is out of range"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "Month must be 1-12"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkflowRequest struct {
	TimesheetID string  `json:"timesheet_id"`
	Notes       *string `json:"notes,omitempty"`
}

func (r WorkflowRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.TimesheetID) {
		errs = append(errs, validator.ValidationError{Field: "timesheet_id", Message: "Timesheet ID is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectRequest struct {
	TimesheetID string `json:"timesheet_id"`
	Reason      string `json:"reason"`
}

func (r RejectRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.TimesheetID) {
		errs = append(errs, validator.ValidationError{Field: "timesheet_id", Message: "Timesheet ID is required"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "Rejection reason is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
