package attendance

import (
	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/validator"
)

// PunchRequest carries the optional device coordinates for a punch.
// A punch with no coordinates still proceeds; location fields stay null.
// Mood is only read on punch-in and defaults to neutral when omitted.
type PunchRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Mood      *string  `json:"mood"`
}

var validMoods = []string{"happy", "energetic", "neutral", "tired", "stressed"}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Mood != nil && !validator.IsInSlice(*r.Mood, validMoods) {
		errs = append(errs, validator.ValidationError{
			Field:   "mood",
			Message: "mood must be one of: happy, energetic, neutral, tired, stressed",
		})
	}

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude must be provided together",
		})
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PunchOutRequest optionally attaches a work log alongside the closing
// coordinates.
type PunchOutRequest struct {
	PunchRequest
	WorkLog *string `json:"work_log"`
}

// UpdateWorkLogRequest replaces the work log on today's open session.
type UpdateWorkLogRequest struct {
	WorkLog string `json:"work_log"`
}

func (r *UpdateWorkLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkLog) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_log",
			Message: "work_log is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows attendance queries for history and team views.
type ListFilter struct {
	EmployeeID string
	DateFrom   string
	DateTo     string
	Limit      int
	Offset     int
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.DateFrom != "" && !validator.IsValidDate(f.DateFrom) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_from",
			Message: "date_from must be in YYYY-MM-DD format",
		})
	}

	if f.DateTo != "" && !validator.IsValidDate(f.DateTo) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PunchResponse is returned for both punch-in and punch-out; the geofence
// fields reflect the evaluation done for this punch, not the stored record
// as a whole.
type PunchResponse struct {
	Attendance Attendance `json:"attendance"`
	DistanceM  *float64   `json:"distance_m"`
	InOffice   *bool      `json:"in_office"`
	OfficeName string     `json:"office_name"`
}
