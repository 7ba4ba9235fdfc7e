package task

import (
	"context"
	"fmt"
	"time"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/employee"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/notification"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/task"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type TaskServiceImpl struct {
	task.TaskRepository
	employee.EmployeeRepository
	notificationService notification.NotificationService
}

func NewTaskService(taskRepo task.TaskRepository, employeeRepo employee.EmployeeRepository, notificationService notification.NotificationService) task.TaskService {
	return &TaskServiceImpl{
		TaskRepository:      taskRepo,
		EmployeeRepository:  employeeRepo,
		notificationService: notificationService,
	}
}

type callerClaims struct {
	EmployeeID string
	Name       string
	Role       employee.Role
}

func claimsFromContext(ctx context.Context) (callerClaims, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return callerClaims{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return callerClaims{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	name, _ := claims["name"].(string)
	roleStr, _ := claims["role"].(string)

	return callerClaims{
		EmployeeID: employeeID,
		Name:       name,
		Role:       employee.Role(roleStr),
	}, nil
}

// Create implements task.TaskService.
func (s *TaskServiceImpl) Create(ctx context.Context, req task.CreateTaskRequest) (task.Task, error) {
	if err := req.Validate(); err != nil {
		return task.Task{}, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return task.Task{}, err
	}

	assignee, err := s.EmployeeRepository.GetByID(ctx, req.AssigneeID)
	if err != nil {
		return task.Task{}, err
	}

	// Self-assignment is always allowed.
	if assignee.ID != caller.EmployeeID && !employee.CanAssignTaskTo(caller.Role, assignee.Role) {
		return task.Task{}, task.ErrAssignNotPermitted
	}

	t := task.Task{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  assignee.ID,
		AssignerID:  caller.EmployeeID,
		Priority:    task.Priority(req.Priority),
		Status:      task.StatusPending,
		DueDate:     req.DueDate,
	}

	if err := s.TaskRepository.Create(ctx, &t); err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	t.AssigneeName = assignee.Name
	t.AssignerName = caller.Name

	if assignee.ID != caller.EmployeeID {
		kind := notification.KindInfo
		if t.Priority == task.PriorityUrgent {
			kind = notification.KindWarning
		}
		body := fmt.Sprintf("%s assigned you a task: %s", caller.Name, t.Title)
		if t.DueDate != nil {
			body += " (due " + *t.DueDate + ")"
		}
		s.notificationService.Queue(notification.CreateNotificationRequest{
			RecipientID: assignee.ID,
			Kind:        kind,
			Title:       "New task assigned",
			Body:        body,
			Link:        linkTo("/tasks"),
		})
	}

	return t, nil
}

// Get implements task.TaskService.
func (s *TaskServiceImpl) Get(ctx context.Context, taskID string) (task.Task, error) {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return task.Task{}, err
	}

	t, err := s.TaskRepository.GetByID(ctx, taskID)
	if err != nil {
		return task.Task{}, err
	}

	if !s.canView(caller, t) {
		return task.Task{}, task.ErrTaskNotFound
	}

	return t, nil
}

// Update implements task.TaskService.
func (s *TaskServiceImpl) Update(ctx context.Context, taskID string, req task.UpdateTaskRequest) (task.Task, error) {
	if err := req.Validate(); err != nil {
		return task.Task{}, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return task.Task{}, err
	}

	t, err := s.TaskRepository.GetByID(ctx, taskID)
	if err != nil {
		return task.Task{}, err
	}

	if t.AssignerID != caller.EmployeeID && caller.Role != employee.RoleAdmin {
		return task.Task{}, task.ErrNotTaskParticipant
	}

	t.Title = req.Title
	t.Description = req.Description
	t.Priority = task.Priority(req.Priority)
	t.DueDate = req.DueDate

	if err := s.TaskRepository.Update(ctx, &t); err != nil {
		return task.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	if t.AssigneeID != caller.EmployeeID {
		s.notificationService.Queue(notification.CreateNotificationRequest{
			RecipientID: t.AssigneeID,
			Kind:        notification.KindInfo,
			Title:       "Task updated",
			Body:        fmt.Sprintf("%s updated the task: %s", caller.Name, t.Title),
			Link:        linkTo("/tasks"),
		})
	}

	return t, nil
}

// UpdateStatus implements task.TaskService.
func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, taskID string, req task.UpdateStatusRequest) (task.Task, error) {
	if err := req.Validate(); err != nil {
		return task.Task{}, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return task.Task{}, err
	}

	t, err := s.TaskRepository.GetByID(ctx, taskID)
	if err != nil {
		return task.Task{}, err
	}

	if t.AssigneeID != caller.EmployeeID && t.AssignerID != caller.EmployeeID {
		return task.Task{}, task.ErrNotTaskParticipant
	}

	newStatus := task.Status(req.Status)
	t.Status = newStatus
	if newStatus == task.StatusCompleted {
		if t.CompletedAt == nil {
			now := time.Now()
			t.CompletedAt = &now
		}
	} else {
		t.CompletedAt = nil
	}

	if err := s.TaskRepository.Update(ctx, &t); err != nil {
		return task.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	if newStatus == task.StatusCompleted && caller.EmployeeID != t.AssignerID {
		s.notificationService.Queue(notification.CreateNotificationRequest{
			RecipientID: t.AssignerID,
			Kind:        notification.KindSuccess,
			Title:       "Task completed",
			Body:        fmt.Sprintf("%s completed the task: %s", caller.Name, t.Title),
			Link:        linkTo("/tasks"),
		})
	}

	return t, nil
}

// Delete implements task.TaskService.
func (s *TaskServiceImpl) Delete(ctx context.Context, taskID string) error {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	t, err := s.TaskRepository.GetByID(ctx, taskID)
	if err != nil {
		return err
	}

	if t.AssignerID != caller.EmployeeID && caller.Role != employee.RoleAdmin {
		return task.ErrNotTaskParticipant
	}

	return s.TaskRepository.Delete(ctx, taskID)
}

// List implements task.TaskService.
func (s *TaskServiceImpl) List(ctx context.Context, filter task.ListFilter) ([]task.Task, int, error) {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	filter.AssigneeID = caller.EmployeeID
	if caller.Role == employee.RoleManager || caller.Role == employee.RoleAdmin {
		filter.AssignerID = caller.EmployeeID
	} else {
		filter.AssignerID = ""
	}

	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	tasks, err := s.TaskRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	total, err := s.TaskRepository.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	return tasks, total, nil
}

// AddComment implements task.TaskService.
func (s *TaskServiceImpl) AddComment(ctx context.Context, taskID string, req task.AddCommentRequest) (task.Comment, error) {
	if err := req.Validate(); err != nil {
		return task.Comment{}, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return task.Comment{}, err
	}

	t, err := s.TaskRepository.GetByID(ctx, taskID)
	if err != nil {
		return task.Comment{}, err
	}

	if !s.canView(caller, t) {
		return task.Comment{}, task.ErrTaskNotFound
	}

	c := task.Comment{
		ID:       uuid.New().String(),
		TaskID:   t.ID,
		AuthorID: caller.EmployeeID,
		Body:     req.Body,
	}

	if err := s.TaskRepository.CreateComment(ctx, &c); err != nil {
		return task.Comment{}, fmt.Errorf("failed to create comment: %w", err)
	}
	c.AuthorName = caller.Name

	// Notify the other side of the task.
	recipient := t.AssigneeID
	if caller.EmployeeID == t.AssigneeID {
		recipient = t.AssignerID
	}
	if recipient != caller.EmployeeID {
		s.notificationService.Queue(notification.CreateNotificationRequest{
			RecipientID: recipient,
			Kind:        notification.KindInfo,
			Title:       "New comment",
			Body:        fmt.Sprintf("%s commented on: %s", caller.Name, t.Title),
			Link:        linkTo("/tasks"),
		})
	}

	return c, nil
}

// ListComments implements task.TaskService.
func (s *TaskServiceImpl) ListComments(ctx context.Context, taskID string) ([]task.Comment, error) {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	t, err := s.TaskRepository.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !s.canView(caller, t) {
		return nil, task.ErrTaskNotFound
	}

	return s.TaskRepository.ListComments(ctx, taskID)
}

func (s *TaskServiceImpl) canView(caller callerClaims, t task.Task) bool {
	if caller.Role == employee.RoleAdmin {
		return true
	}
	return t.AssigneeID == caller.EmployeeID || t.AssignerID == caller.EmployeeID
}

func linkTo(path string) *string {
	return &path
}
