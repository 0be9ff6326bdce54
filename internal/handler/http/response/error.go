package response

import (
	"errors"
	"net/http"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/attendance"
	"github.com/baynunah-hr/hr-backend-go/internal/domain/employee"
	"github.com/baynunah-hr/hr-backend-go/internal/domain/geofence"
	"github.com/baynunah-hr/hr-backend-go/internal/domain/holiday"
	"github.com/baynunah-hr/hr-backend-go/internal/domain/leave"
	"github.com/baynunah-hr/hr-backend-go/internal/domain/timesheet"
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Conflict errors that carry data
	var overlapErr *leave.OverlapError
	if errors.As(err, &overlapErr) {
		Conflict(w, "Overlapping leave request exists", map[string]string{
			"conflicting_request_id": overlapErr.ConflictingID,
		})
		return
	}
	var balanceErr *leave.InsufficientBalanceError
	if errors.As(err, &balanceErr) {
		BadRequest(w, "Insufficient leave balance", map[string]string{
			"available": balanceErr.Available.StringFixed(2),
			"requested": balanceErr.Requested.StringFixed(2),
		})
		return
	}

	switch {
	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrInvalidLeaveType):
		BadRequest(w, "Invalid leave type", nil)
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must be on or after start date", nil)
	case errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, "Overlapping leave request exists", nil)
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrInvalidStateTransition):
		Conflict(w, "Leave request already processed", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Public holiday not found")
	case errors.Is(err, holiday.ErrInvalidHolidayType):
		BadRequest(w, "Invalid holiday type", nil)
	case errors.Is(err, holiday.ErrInvalidDateRange):
		BadRequest(w, "End date must be on or after start date", nil)

	// Geofence domain errors
	case errors.Is(err, geofence.ErrGeofenceNotFound):
		NotFound(w, "Geofence not found")
	case errors.Is(err, geofence.ErrGeofenceNameExists):
		Conflict(w, "Geofence name already exists", nil)
	case errors.Is(err, geofence.ErrInvalidCoordinates):
		BadRequest(w, "Invalid GPS coordinates", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrRecordFrozen):
		Conflict(w, "Attendance records frozen by submitted timesheet", nil)
	case errors.Is(err, attendance.ErrMissingClock):
		BadRequest(w, "Attendance record has no clock times", nil)

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet not found")
	case errors.Is(err, timesheet.ErrInvalidStateTransition):
		Conflict(w, "Invalid timesheet state transition", nil)
	case errors.Is(err, timesheet.ErrNotAuthorized):
		Forbidden(w, "Not authorized for this transition")
	case errors.Is(err, timesheet.ErrInvalidPeriod):
		BadRequest(w, "Invalid timesheet period", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
