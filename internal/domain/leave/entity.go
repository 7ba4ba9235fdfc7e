package leave

import "time"

type Status string

const (
	StatusPending         Status = "pending"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
	StatusCancelRequested Status = "cancel_requested"
	StatusCancelled       Status = "cancelled"
)

type LeaveType string

const (
	TypeCasual LeaveType = "casual"
	TypeSick   LeaveType = "sick"
	TypeEarned LeaveType = "earned"
	TypeUnpaid LeaveType = "unpaid"
)

func ValidLeaveType(t string) bool {
	switch LeaveType(t) {
	case TypeCasual, TypeSick, TypeEarned, TypeUnpaid:
		return true
	}
	return false
}

type HalfDaySession string

const (
	SessionFirst  HalfDaySession = "first"
	SessionSecond HalfDaySession = "second"
)

// Leave is one leave application with its review trail. The approver is
// chosen by the applicant at submission time and stays attached to the
// application; only that person or an Admin may rule on it later.
type Leave struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     string          `json:"employee_name"`
	Type             LeaveType       `json:"type"`
	DateFrom         string          `json:"date_from"`
	DateTo           string          `json:"date_to"`
	IsHalfDay        bool            `json:"is_half_day"`
	HalfDaySession   *HalfDaySession `json:"half_day_session"`
	Days             float64         `json:"days"`
	Reason           string          `json:"reason"`
	Status           Status          `json:"status"`
	ApproverID       string          `json:"approver_id"`
	ApproverName     string          `json:"approver_name"`
	ApproverResponse *string         `json:"approver_response"`
	CancelReason     *string         `json:"cancel_reason"`
	DecidedAt        *time.Time      `json:"decided_at"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Duration computes the day count of an application. A half-day request is
// always 0.5; otherwise the count is inclusive of both endpoints. Invalid
// ranges (to before from) count as zero.
func Duration(from time.Time, to time.Time, isHalfDay bool) float64 {
	if isHalfDay {
		return 0.5
	}
	if to.Before(from) {
		return 0
	}
	return float64(to.Sub(from).Hours()/24) + 1
}

// CanTransition reports whether a leave may move from its current status
// to the target. Pending applications get decided or cancel-requested;
// approved ones may still be cancel-requested. A cancel request resolves
// to cancelled, or its denial restores the prior state (approved, or
// pending for an undecided application). Rejection is never reachable
// from cancel_requested.
func CanTransition(from Status, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusApproved || to == StatusRejected || to == StatusCancelRequested
	case StatusApproved:
		return to == StatusCancelRequested
	case StatusCancelRequested:
		return to == StatusCancelled || to == StatusApproved || to == StatusPending
	}
	return false
}
