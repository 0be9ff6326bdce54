package timesheet

import "errors"

var (
	ErrTimesheetNotFound      = errors.New("Timesheet not found")
	ErrInvalidStateTransition = errors.New("Invalid timesheet state transition")
	ErrNotAuthorized          = errors.New("Actor not authorized for this transition")
	ErrInvalidPeriod          = errors.New("Invalid timesheet period")
)
