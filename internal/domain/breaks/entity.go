package breaks

import "time"

type BreakType string

const (
	BreakLunch  BreakType = "lunch"
	BreakShort1 BreakType = "short1"
	BreakShort2 BreakType = "short2"
)

// ValidType reports whether t is one of the known break types.
func ValidType(t string) bool {
	switch BreakType(t) {
	case BreakLunch, BreakShort1, BreakShort2:
		return true
	}
	return false
}

// Break is one timed pause inside a working day. At most one break per
// employee may be open at a time, across all types.
type Break struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employee_id"`
	EmployeeName    *string    `json:"employee_name,omitempty"`
	AttendanceID    string     `json:"attendance_id"`
	Type            BreakType  `json:"type"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at"`
	DurationMinutes int        `json:"duration_minutes"`
	CreatedAt       time.Time  `json:"created_at"`
}

// IsOpen reports whether the break has not been ended yet.
func (b *Break) IsOpen() bool {
	return b.EndedAt == nil
}
