package leave

import (
	"context"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/employee"
)

type LeaveService interface {
	// Apply files a new leave application in pending status. The chosen
	// approver must be active, must not be the applicant, and must hold a
	// role eligible to decide for the applicant's role. Only that approver
	// is notified.
	Apply(ctx context.Context, req ApplyLeaveRequest) (Leave, error)

	// Approvers lists the active employees the caller may designate on a
	// new application.
	Approvers(ctx context.Context) ([]employee.Employee, error)

	// Decide approves or rejects a pending application. Only the
	// designated approver or an Admin may rule; nobody decides their own
	// application.
	Decide(ctx context.Context, leaveID string, req DecideLeaveRequest) (Leave, error)

	// RequestCancellation moves the caller's own pending or approved
	// application to cancel_requested and notifies the designated
	// approver.
	RequestCancellation(ctx context.Context, leaveID string, req CancelLeaveRequest) (Leave, error)

	// ResolveCancellation confirms (cancelled) or denies a cancel request,
	// restoring the prior status on denial. Same permission rule as
	// Decide.
	ResolveCancellation(ctx context.Context, leaveID string, confirm bool) (Leave, error)

	// Mine lists the caller's own applications.
	Mine(ctx context.Context, filter ListFilter) ([]Leave, int, error)

	// TeamList lists applications across employees. Manager or Admin only.
	TeamList(ctx context.Context, filter ListFilter) ([]Leave, int, error)
}
