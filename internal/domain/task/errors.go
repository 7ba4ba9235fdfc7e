package task

import "errors"

// Task domain errors
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrNotTaskParticipant = errors.New("not the assignee or assigner of this task")
	ErrAssignNotPermitted = errors.New("cannot assign tasks to this role")
)
