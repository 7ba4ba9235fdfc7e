package settings

import (
	"time"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/validator"
)

type UpdateSettingsRequest struct {
	OfficeName      string  `json:"office_name"`
	OfficeLatitude  float64 `json:"office_latitude"`
	OfficeLongitude float64 `json:"office_longitude"`
	RadiusMeters    float64 `json:"radius_meters"`
	WorkdayStart    string  `json:"workday_start"`
	WorkdayEnd      string  `json:"workday_end"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OfficeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_name",
			Message: "office_name is required",
		})
	}

	if !validator.IsValidLatitude(r.OfficeLatitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_latitude",
			Message: "office_latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.OfficeLongitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_longitude",
			Message: "office_longitude must be between -180 and 180",
		})
	}

	if r.RadiusMeters <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "radius_meters",
			Message: "radius_meters must be greater than zero",
		})
	}

	if _, err := time.Parse("15:04", r.WorkdayStart); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "workday_start",
			Message: "workday_start must be in HH:MM format",
		})
	}

	if _, err := time.Parse("15:04", r.WorkdayEnd); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "workday_end",
			Message: "workday_end must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
