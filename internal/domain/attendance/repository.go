package attendance

import "context"

type AttendanceRepository interface {
	Create(ctx context.Context, att *Attendance) error
	GetByID(ctx context.Context, id string) (Attendance, error)
	// GetByEmployeeAndDate returns the record for one employee on one
	// calendar day, or ErrAttendanceNotFound.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (Attendance, error)
	Update(ctx context.Context, att *Attendance) error
	// List returns records matching the filter, newest date first, with
	// employee names joined in.
	List(ctx context.Context, filter ListFilter) ([]Attendance, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
}
