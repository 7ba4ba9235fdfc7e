package task

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
)

func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusCompleted:
		return true
	}
	return false
}

type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityUrgent Priority = "urgent"
)

func ValidPriority(p string) bool {
	switch Priority(p) {
	case PriorityNormal, PriorityUrgent:
		return true
	}
	return false
}

// Task is a unit of assigned work. Any status may be set directly; the
// flow pending -> processing -> completed is a convention, not a rule.
// CompletedAt is set when the status becomes completed and cleared when
// it leaves completed.
type Task struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	AssigneeID   string     `json:"assignee_id"`
	AssigneeName string     `json:"assignee_name"`
	AssignerID   string     `json:"assigner_id"`
	AssignerName string     `json:"assigner_name"`
	Priority     Priority   `json:"priority"`
	Status       Status     `json:"status"`
	DueDate      *string    `json:"due_date"`
	CompletedAt  *time.Time `json:"completed_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Comment is one entry on a task's discussion thread.
type Comment struct {
	ID         string    `json:"id"`
	TaskID     string    `json:"task_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}
