package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyPunchedIn   = errors.New("already punched in for today")
	ErrNotPunchedIn       = errors.New("no open attendance session for today")
	ErrSessionClosed      = errors.New("attendance session already closed")
)
