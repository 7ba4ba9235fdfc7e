package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveNotFound         = errors.New("leave application not found")
	ErrInvalidTransition     = errors.New("leave status transition not allowed")
	ErrNotLeaveOwner         = errors.New("leave belongs to another employee")
	ErrCannotApproveOwn      = errors.New("cannot decide your own leave application")
	ErrApproverNotPermitted  = errors.New("chosen approver is not eligible for this application")
	ErrNotDesignatedApprover = errors.New("only the designated approver or an admin can rule on this application")
)
