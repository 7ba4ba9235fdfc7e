package employee

import "context"

// EmployeeService defines business logic for employee account management
type EmployeeService interface {
	// List returns all employees (any authenticated caller; the team roster
	// is visible to everyone in the original product)
	List(ctx context.Context) ([]EmployeeResponse, error)

	// Get retrieves a single employee by ID
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// UpdateProfile updates profile fields; permitted for self or an Admin
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (EmployeeResponse, error)

	// UpdateStatus flips an account active/inactive (Admin only)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) error

	// ChangePassword sets a new password; permitted for self or an Admin
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error

	// Delete hard-deletes an account (Admin only, not self)
	Delete(ctx context.Context, id string) error
}
