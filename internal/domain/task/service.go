package task

import "context"

type TaskService interface {
	// Create assigns a new task. Admins assign to Managers and Employees,
	// Managers to Employees only. The assignee is notified.
	Create(ctx context.Context, req CreateTaskRequest) (Task, error)

	// Get returns one task visible to the caller.
	Get(ctx context.Context, taskID string) (Task, error)

	// Update edits the task's title, description, priority, and due date.
	// Only the assigner or an Admin may edit.
	Update(ctx context.Context, taskID string, req UpdateTaskRequest) (Task, error)

	// UpdateStatus sets the task status. Only the assignee or assigner may
	// change it. When someone other than the assigner completes a task,
	// the assigner is notified.
	UpdateStatus(ctx context.Context, taskID string, req UpdateStatusRequest) (Task, error)

	// Delete removes a task. Assigner or Admin only.
	Delete(ctx context.Context, taskID string) error

	// List returns tasks for the caller: their own assignments plus, for
	// Managers and Admins, the tasks they assigned.
	List(ctx context.Context, filter ListFilter) ([]Task, int, error)

	// AddComment appends to the task's thread and notifies the other
	// participant.
	AddComment(ctx context.Context, taskID string, req AddCommentRequest) (Comment, error)

	// ListComments returns a task's thread, oldest first.
	ListComments(ctx context.Context, taskID string) ([]Comment, error)
}
