package task

import "context"

type TaskRepository interface {
	Create(ctx context.Context, t *Task) error
	GetByID(ctx context.Context, id string) (Task, error)
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, id string) error
	// List returns tasks matching the filter, newest first.
	List(ctx context.Context, filter ListFilter) ([]Task, error)
	Count(ctx context.Context, filter ListFilter) (int, error)

	CreateComment(ctx context.Context, c *Comment) error
	// ListComments returns a task's comments, oldest first.
	ListComments(ctx context.Context, taskID string) ([]Comment, error)
}
