package attendance

import (
	"fmt"
	"time"
)

// Attendance is one employee's record for one calendar day. Punch-in and
// punch-out each carry a snapshot of the geofence evaluation taken at the
// moment of the punch; later changes to the office location do not rewrite
// history.
type Attendance struct {
	ID                string     `json:"id"`
	EmployeeID        string     `json:"employee_id"`
	Date              string     `json:"date"`
	PunchIn           *time.Time `json:"punch_in"`
	PunchOut          *time.Time `json:"punch_out"`
	WorkingMinutes    int        `json:"working_minutes"`
	PunchInLatitude   *float64   `json:"punch_in_latitude"`
	PunchInLongitude  *float64   `json:"punch_in_longitude"`
	PunchInDistanceM  *float64   `json:"punch_in_distance_m"`
	PunchInInOffice   *bool      `json:"punch_in_in_office"`
	PunchOutLatitude  *float64   `json:"punch_out_latitude"`
	PunchOutLongitude *float64   `json:"punch_out_longitude"`
	PunchOutDistanceM *float64   `json:"punch_out_distance_m"`
	PunchOutInOffice  *bool      `json:"punch_out_in_office"`
	WorkLog           *string    `json:"work_log"`
	Mood              *string    `json:"mood"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	// EmployeeName is populated on joined reads for team views and exports.
	EmployeeName *string `json:"employee_name,omitempty"`
}

// IsOpen reports whether the record has a punch-in but no punch-out yet.
func (a *Attendance) IsOpen() bool {
	return a.PunchIn != nil && a.PunchOut == nil
}

// ElapsedMinutes returns whole minutes between in and out, floored.
// Never negative.
func ElapsedMinutes(in time.Time, out time.Time) int {
	if out.Before(in) {
		return 0
	}
	return int(out.Sub(in).Minutes())
}

// FormatMinutes renders a minute count as "8h 30m".
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
