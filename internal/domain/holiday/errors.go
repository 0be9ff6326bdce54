package holiday

import "errors"

var (
	ErrHolidayNotFound    = errors.New("Public holiday not found")
	ErrInvalidHolidayType = errors.New("Invalid holiday type")
	ErrInvalidDateRange   = errors.New("End date must be on or after start date")
)
