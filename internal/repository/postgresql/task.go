package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/task"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type taskRepository struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `t.id, t.title, t.description, t.assignee_id, ae.name,
	   t.assigner_id, ar.name, t.priority, t.status, t.due_date, t.completed_at,
	   t.created_at, t.updated_at`

const taskJoins = `
	FROM tasks t
	JOIN employees ae ON ae.id = t.assignee_id
	JOIN employees ar ON ar.id = t.assigner_id`

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.AssigneeID, &t.AssigneeName,
		&t.AssignerID, &t.AssignerName, &t.Priority, &t.Status, &t.DueDate, &t.CompletedAt,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// Create implements task.TaskRepository.
func (r *taskRepository) Create(ctx context.Context, t *task.Task) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (
			id, title, description, assignee_id, assigner_id,
			priority, status, due_date
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		t.ID, t.Title, t.Description, t.AssigneeID, t.AssignerID,
		t.Priority, t.Status, t.DueDate,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// GetByID implements task.TaskRepository.
func (r *taskRepository) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taskColumns + taskJoins + ` WHERE t.id = $1`

	t, err := scanTask(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	return t, nil
}

// Update implements task.TaskRepository.
func (r *taskRepository) Update(ctx context.Context, t *task.Task) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET title = $2, description = $3, priority = $4, status = $5,
			due_date = $6, completed_at = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		t.ID, t.Title, t.Description, t.Priority, t.Status,
		t.DueDate, t.CompletedAt,
	).Scan(&t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.ErrTaskNotFound
		}
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

// Delete implements task.TaskRepository.
func (r *taskRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	ct, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

func taskFilterClauses(filter task.ListFilter) (string, []interface{}) {
	clauses := make([]string, 0, 3)
	args := make([]interface{}, 0, 3)

	// Assignee and assigner filters together mean "touching either side",
	// matching the caller's own task list.
	if filter.AssigneeID != "" && filter.AssignerID != "" {
		args = append(args, filter.AssigneeID)
		assigneePos := len(args)
		args = append(args, filter.AssignerID)
		clauses = append(clauses, fmt.Sprintf("(t.assignee_id = $%d OR t.assigner_id = $%d)", assigneePos, len(args)))
	} else if filter.AssigneeID != "" {
		args = append(args, filter.AssigneeID)
		clauses = append(clauses, fmt.Sprintf("t.assignee_id = $%d", len(args)))
	} else if filter.AssignerID != "" {
		args = append(args, filter.AssignerID)
		clauses = append(clauses, fmt.Sprintf("t.assigner_id = $%d", len(args)))
	}

	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, fmt.Sprintf("t.status = $%d", len(args)))
	}

	where := ""
	if len(clauses) > 0 {
		where = "WHERE " + strings.Join(clauses, " AND ")
	}
	return where, args
}

// List implements task.TaskRepository.
func (r *taskRepository) List(ctx context.Context, filter task.ListFilter) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	where, args := taskFilterClauses(filter)

	args = append(args, filter.Limit)
	limitPos := len(args)
	args = append(args, filter.Offset)
	offsetPos := len(args)

	query := fmt.Sprintf(`
		SELECT `+taskColumns+taskJoins+`
		%s
		ORDER BY t.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, limitPos, offsetPos)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]task.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// Count implements task.TaskRepository.
func (r *taskRepository) Count(ctx context.Context, filter task.ListFilter) (int, error) {
	q := GetQuerier(ctx, r.db)

	where, args := taskFilterClauses(filter)

	query := fmt.Sprintf(`SELECT COUNT(*) FROM tasks t %s`, where)

	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	return count, nil
}

// CreateComment implements task.TaskRepository.
func (r *taskRepository) CreateComment(ctx context.Context, c *task.Comment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO task_comments (id, task_id, author_id, body)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, c.ID, c.TaskID, c.AuthorID, c.Body).Scan(&c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create task comment: %w", err)
	}

	return nil
}

// ListComments implements task.TaskRepository.
func (r *taskRepository) ListComments(ctx context.Context, taskID string) ([]task.Comment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.task_id, c.author_id, e.name, c.body, c.created_at
		FROM task_comments c
		JOIN employees e ON e.id = c.author_id
		WHERE c.task_id = $1
		ORDER BY c.created_at ASC
	`

	rows, err := q.Query(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list task comments: %w", err)
	}
	defer rows.Close()

	comments := make([]task.Comment, 0)
	for rows.Next() {
		var c task.Comment
		if err := rows.Scan(&c.ID, &c.TaskID, &c.AuthorID, &c.AuthorName, &c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task comment: %w", err)
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}
