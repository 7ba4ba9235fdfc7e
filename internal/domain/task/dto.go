package task

import (
	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/validator"
)

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	AssigneeID  string  `json:"assignee_id"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.AssigneeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "assignee_id",
			Message: "assignee_id is required",
		})
	}

	if !ValidPriority(r.Priority) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be one of: normal, urgent",
		})
	}

	if r.DueDate != nil && !validator.IsValidDate(*r.DueDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "due_date",
			Message: "due_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateTaskRequest replaces the editable fields of a task. Assignment and
// status move through their own operations.
type UpdateTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"`
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if !ValidPriority(r.Priority) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be one of: normal, urgent",
		})
	}

	if r.DueDate != nil && !validator.IsValidDate(*r.DueDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "due_date",
			Message: "due_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: pending, processing, completed",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddCommentRequest struct {
	Body string `json:"body"`
}

func (r *AddCommentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows task queries. AssigneeID and AssignerID filter to
// tasks touching one employee; Status filters by current status.
type ListFilter struct {
	AssigneeID string
	AssignerID string
	Status     string
	Limit      int
	Offset     int
}
