package employee

import "context"

// EmployeeRepository defines data access methods for employee accounts.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	GetByPhone(ctx context.Context, phone string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Count(ctx context.Context) (int64, error)
	UpdateProfile(ctx context.Context, emp Employee) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	Delete(ctx context.Context, id string) error
}
