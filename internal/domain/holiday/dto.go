package holiday

import "github.com/baynunah-hr/hr-backend-go/internal/pkg/validator"

type CreateHolidayRequest struct {
	Name        string `json:"name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	HolidayType string `json:"holiday_type"`
	IsPaid      bool   `json:"is_paid"`
}

func (r CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name is required"})
	}
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Start date must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must be YYYY-MM-DD"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must be on or after start date"})
	}
	if !HolidayType(r.HolidayType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "holiday_type", Message: "Must be uae_official, company or optional"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
