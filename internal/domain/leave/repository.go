package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, l *Leave) error
	GetByID(ctx context.Context, id string) (Leave, error)
	Update(ctx context.Context, l *Leave) error
	// List returns applications matching the filter, newest first.
	List(ctx context.Context, filter ListFilter) ([]Leave, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
}
