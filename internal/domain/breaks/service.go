package breaks

import "context"

type BreakService interface {
	// Start opens a break of the given type on today's attendance session.
	// Fails if the employee is not punched in or already has an open break.
	Start(ctx context.Context, req StartBreakRequest) (Break, error)

	// End closes the employee's open break and records its duration in
	// floored whole minutes.
	End(ctx context.Context) (Break, error)

	// Today returns today's breaks plus the open one, if any.
	Today(ctx context.Context) (DayBreaksResponse, error)

	// TeamList returns breaks across employees. Manager or Admin only.
	TeamList(ctx context.Context, filter ListFilter) ([]Break, int, error)
}
