package attendance

import "context"

type AttendanceService interface {
	// PunchIn opens today's session for the authenticated employee. The
	// geofence is evaluated against the office settings at this moment and
	// the result stored with the record. Fails if a session already exists
	// for today.
	PunchIn(ctx context.Context, req PunchRequest) (PunchResponse, error)

	// PunchOut closes today's open session, computing working minutes from
	// the punch-in timestamp. Fails if there is no open session.
	PunchOut(ctx context.Context, req PunchOutRequest) (PunchResponse, error)

	// UpdateWorkLog replaces the work log on today's session. Only allowed
	// while the session is still open.
	UpdateWorkLog(ctx context.Context, req UpdateWorkLogRequest) (Attendance, error)

	// Today returns the authenticated employee's record for today, if any.
	Today(ctx context.Context) (Attendance, error)

	// History returns the authenticated employee's own records.
	History(ctx context.Context, filter ListFilter) ([]Attendance, int, error)

	// TeamList returns records across employees. Manager or Admin only.
	TeamList(ctx context.Context, filter ListFilter) ([]Attendance, int, error)
}
