package announcement

import (
	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/validator"
)

type CreateAnnouncementRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Kind  string `json:"kind"`
}

func (r *CreateAnnouncementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	}

	if !ValidKind(r.Kind) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: info, urgent, success",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
