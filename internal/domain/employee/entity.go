package employee

import "time"

type Role string

const (
	RoleEmployee Role = "Employee" // Regular team member
	RoleManager  Role = "Manager"  // Can approve leave and assign tasks
	RoleAdmin    Role = "Admin"    // Full access, manages settings and accounts
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Employee struct {
	ID           string
	Name         string
	Email        string
	Phone        *string
	Role         Role
	Status       Status
	PasswordHash *string
	Designation  *string
	JoiningDate  *time.Time
	Bio          *string
	AvatarURL    *string

	// Presence status shown on the team dashboard, e.g. "Deep Work" + an emoji.
	StatusText  *string
	StatusEmoji *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin checks if the employee has the Admin role
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// IsManager checks if the employee is a manager or admin
func (e *Employee) IsManager() bool {
	return e.Role == RoleManager || e.Role == RoleAdmin
}

// IsActive checks if the account may sign in
func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleEmployee, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// CanApproveFor reports whether an employee with role candidate is an eligible
// leave approver for a requester with the given role. Employees route to
// Managers or Admins; Managers route only to Admins.
func CanApproveFor(requester, candidate Role) bool {
	switch requester {
	case RoleManager:
		return candidate == RoleAdmin
	default:
		return candidate == RoleManager || candidate == RoleAdmin
	}
}

// CanAssignTaskTo reports whether an assigner role may assign work to an
// assignee role. Admins assign to Managers and Employees; Managers assign to
// Employees only.
func CanAssignTaskTo(assigner, assignee Role) bool {
	switch assigner {
	case RoleAdmin:
		return assignee == RoleManager || assignee == RoleEmployee
	case RoleManager:
		return assignee == RoleEmployee
	}
	return false
}
