package breaks

import "context"

type BreakRepository interface {
	Create(ctx context.Context, b *Break) error
	GetByID(ctx context.Context, id string) (Break, error)
	// GetOpenByEmployee returns the employee's currently open break, or
	// ErrBreakNotFound if none is open.
	GetOpenByEmployee(ctx context.Context, employeeID string) (Break, error)
	// ListByAttendance returns all breaks on one attendance record, oldest
	// first.
	ListByAttendance(ctx context.Context, attendanceID string) ([]Break, error)
	// List returns breaks across employees, newest first, with the
	// employee name resolved.
	List(ctx context.Context, filter ListFilter) ([]Break, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
	Update(ctx context.Context, b *Break) error
}
