package attendance

import (
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ClassifyRequest carries the compensation policy inputs the engine does not
// own: the employee's overtime policy and hourly rate come from the payroll
// collaborator.
type ClassifyRequest struct {
	EmployeeID     string          `json:"employee_id"`
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	OvertimePolicy string          `json:"overtime_policy"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"`
}

func (r ClassifyRequest) Validate() error {
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
	switch OvertimeType(r.OvertimePolicy) {
	case OvertimeNone, OvertimePaid, OvertimeOffset:
	default:
		errs = append(errs, validator.ValidationError{Field: "overtime_policy", Message: "Must be none, paid or offset"})
	}
	if r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "Hourly rate must not be negative"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
