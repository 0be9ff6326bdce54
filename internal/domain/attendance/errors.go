package attendance

import "errors"

var (
	ErrRecordNotFound = errors.New("Attendance record not found")
	ErrRecordFrozen   = errors.New("Attendance record frozen by submitted timesheet")
	ErrMissingClock   = errors.New("Attendance record has no clock times")
)
