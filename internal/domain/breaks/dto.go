package breaks

import (
	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/validator"
)

type StartBreakRequest struct {
	Type string `json:"type"`
}

func (r *StartBreakRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidType(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: lunch, short1, short2",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows break queries for the team view.
type ListFilter struct {
	EmployeeID string
	Date       string
	Limit      int
	Offset     int
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != "" && !validator.IsValidDate(f.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DayBreaksResponse summarizes today's breaks for the punch clock view.
type DayBreaksResponse struct {
	Breaks       []Break `json:"breaks"`
	OpenBreak    *Break  `json:"open_break"`
	TotalMinutes int     `json:"total_minutes"`
}
