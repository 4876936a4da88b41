package worktime

import "errors"

var (
	ErrInvalidInterval     = errors.New("attendance interval is zero or negative after break subtraction")
	ErrMissingCalendarData = errors.New("holiday calendar data missing for date")
	ErrAttendanceNotFound  = errors.New("attendance record not found")
)
