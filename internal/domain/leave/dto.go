package leave

import (
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRequestRequest struct {
	EmployeeID  string  `json:"employee_id"`
	LeaveType   string  `json:"leave_type"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	IsHalfDay   bool    `json:"is_half_day"`
	HalfDayType *string `json:"half_day_type,omitempty"`
	Reason      *string `json:"reason,omitempty"`
	DocumentURL *string `json:"document_url,omitempty"`
}

func (r CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Employee ID is required"})
	}
	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "Leave type is required"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Start date must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must be YYYY-MM-DD"})
	}
	if r.IsHalfDay && r.HalfDayType != nil {
		if ht := HalfDayType(*r.HalfDayType); ht != HalfDayFirstHalf && ht != HalfDaySecondHalf {
			errs = append(errs, validator.ValidationError{Field: "half_day_type", Message: "Must be first_half or second_half"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecisionRequest struct {
	RequestID string  `json:"request_id"`
	Reason    *string `json:"reason,omitempty"`
}

func (r DecisionRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{Field: "request_id", Message: "Request ID is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SeedBalanceRequest struct {
	EmployeeID     string          `json:"employee_id"`
	Year           int             `json:"year"`
	LeaveType      string          `json:"leave_type"`
	Entitlement    decimal.Decimal `json:"entitlement"`
	CarriedForward decimal.Decimal `json:"carried_forward"`
}

func (r SeedBalanceRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Employee ID is required"})
	}
	if r.Year < 2000 || r.Year > 2200 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "Year is out of range"})
	}
	if !Type(r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "Unknown leave type"})
	}
	if r.Entitlement.IsNegative() || r.CarriedForward.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "entitlement", Message: "Quantities must not be negative"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdjustBalanceRequest struct {
	EmployeeID string          `json:"employee_id"`
	Year       int             `json:"year"`
	LeaveType  string          `json:"leave_type"`
	Delta      decimal.Decimal `json:"delta"`
	Reason     string          `json:"reason"`
}

func (r AdjustBalanceRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Employee ID is required"})
	}
	if !Type(r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "Unknown leave type"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "Adjustment reason is required"})
	}
	if r.Delta.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "delta", Message: "Delta must not be zero"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BalanceResponse exposes a ledger row with the derived available figure.
type BalanceResponse struct {
	EmployeeID     string          `json:"employee_id"`
	Year           int             `json:"year"`
	LeaveType      Type            `json:"leave_type"`
	Entitlement    decimal.Decimal `json:"entitlement"`
	CarriedForward decimal.Decimal `json:"carried_forward"`
	Used           decimal.Decimal `json:"used"`
	Pending        decimal.Decimal `json:"pending"`
	Adjustment     decimal.Decimal `json:"adjustment"`
	OffsetDaysUsed decimal.Decimal `json:"offset_days_used"`
	Available      decimal.Decimal `json:"available"`
}

func NewBalanceResponse(b Balance) BalanceResponse {
	return BalanceResponse{
		EmployeeID:     b.EmployeeID,
		Year:           b.Year,
		LeaveType:      b.Type,
		Entitlement:    b.Entitlement,
		CarriedForward: b.CarriedForward,
		Used:           b.Used,
		Pending:        b.Pending,
		Adjustment:     b.Adjustment,
		OffsetDaysUsed: b.OffsetDaysUsed,
		Available:      b.Available(),
	}
}
