package response

import (
	"errors"
	"net/http"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/announcement"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/attendance"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/auth"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/breaks"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/employee"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/leave"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/notification"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/report"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/task"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")
	case errors.Is(err, auth.ErrGoogleNotLinked):
		NotFound(w, "No account registered for this Google email")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrPhoneExists):
		Conflict(w, "Phone number already registered")
	case errors.Is(err, employee.ErrAccountInactive):
		Forbidden(w, "Account has been deactivated")
	case errors.Is(err, employee.ErrCannotDeleteSelf):
		BadRequest(w, "Cannot delete your own account", nil)
	case errors.Is(err, employee.ErrNotPermitted):
		Forbidden(w, "Not permitted for this role")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyPunchedIn):
		Conflict(w, "Already punched in for today")
	case errors.Is(err, attendance.ErrNotPunchedIn):
		Conflict(w, "No open attendance session for today")
	case errors.Is(err, attendance.ErrSessionClosed):
		Conflict(w, "Attendance session already closed")

	// Break domain errors
	case errors.Is(err, breaks.ErrBreakNotFound):
		NotFound(w, "Break not found")
	case errors.Is(err, breaks.ErrBreakAlreadyOpen):
		Conflict(w, "Another break is already in progress")
	case errors.Is(err, breaks.ErrBreakAlreadyEnded):
		Conflict(w, "Break has already ended")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave application not found")
	case errors.Is(err, leave.ErrInvalidTransition):
		Conflict(w, "Leave status transition not allowed")
	case errors.Is(err, leave.ErrNotLeaveOwner):
		Forbidden(w, "Leave belongs to another employee")
	case errors.Is(err, leave.ErrCannotApproveOwn):
		Forbidden(w, "Cannot decide your own leave application")
	case errors.Is(err, leave.ErrApproverNotPermitted):
		Forbidden(w, "Chosen approver is not eligible for this application")
	case errors.Is(err, leave.ErrNotDesignatedApprover):
		Forbidden(w, "Only the designated approver or an admin can rule on this application")

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrCommentNotFound):
		NotFound(w, "Comment not found")
	case errors.Is(err, task.ErrNotTaskParticipant):
		Forbidden(w, "Not the assignee or assigner of this task")
	case errors.Is(err, task.ErrAssignNotPermitted):
		Forbidden(w, "Cannot assign tasks to this role")

	// Announcement domain errors
	case errors.Is(err, announcement.ErrAnnouncementNotFound):
		NotFound(w, "Announcement not found")
	case errors.Is(err, announcement.ErrNotAnnouncementOwner):
		Forbidden(w, "Announcement belongs to another author")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrNotRecipient):
		Forbidden(w, "Notification belongs to another recipient")

	// Report domain errors
	case errors.Is(err, report.ErrNothingToExport):
		NotFound(w, "No attendance records in the selected range")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
