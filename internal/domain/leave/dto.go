package leave

import (
	"time"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/validator"
)

// ApplyLeaveRequest files a new application. ApproverID names the person
// the applicant wants to rule on it; eligibility is checked in the service
// against both roles.
type ApplyLeaveRequest struct {
	Type           string  `json:"type"`
	DateFrom       string  `json:"date_from"`
	DateTo         string  `json:"date_to"`
	IsHalfDay      bool    `json:"is_half_day"`
	HalfDaySession *string `json:"half_day_session"`
	Reason         string  `json:"reason"`
	ApproverID     string  `json:"approver_id"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidLeaveType(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: casual, sick, earned, unpaid",
		})
	}

	if !validator.IsValidDate(r.DateFrom) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_from",
			Message: "date_from must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidDate(r.DateTo) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to must be in YYYY-MM-DD format",
		})
	}

	if validator.IsValidDate(r.DateFrom) && validator.IsValidDate(r.DateTo) {
		from, _ := time.Parse("2006-01-02", r.DateFrom)
		to, _ := time.Parse("2006-01-02", r.DateTo)
		if to.Before(from) {
			errs = append(errs, validator.ValidationError{
				Field:   "date_to",
				Message: "date_to must not be before date_from",
			})
		}
		if r.IsHalfDay && !from.Equal(to) {
			errs = append(errs, validator.ValidationError{
				Field:   "is_half_day",
				Message: "half-day leave must start and end on the same date",
			})
		}
	}

	if r.IsHalfDay {
		if r.HalfDaySession == nil ||
			(*r.HalfDaySession != string(SessionFirst) && *r.HalfDaySession != string(SessionSecond)) {
			errs = append(errs, validator.ValidationError{
				Field:   "half_day_session",
				Message: "half_day_session must be first or second",
			})
		}
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if validator.IsEmpty(r.ApproverID) {
		errs = append(errs, validator.ValidationError{
			Field:   "approver_id",
			Message: "approver_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DecideLeaveRequest carries the ruling. Response is the approver's
// free-text note; it is mandatory on rejection.
type DecideLeaveRequest struct {
	Status   string  `json:"status"`
	Response *string `json:"response"`
}

func (r *DecideLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be approved or rejected",
		})
	}

	if r.Status == string(StatusRejected) && (r.Response == nil || validator.IsEmpty(*r.Response)) {
		errs = append(errs, validator.ValidationError{
			Field:   "response",
			Message: "response is required when rejecting",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CancelLeaveRequest struct {
	Reason string `json:"reason"`
}

func (r *CancelLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows leave queries.
type ListFilter struct {
	EmployeeID string
	Status     string
	Limit      int
	Offset     int
}
