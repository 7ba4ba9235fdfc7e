package task

import (
	"context"
	"testing"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/employee"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/notification"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/task"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTaskRepo struct {
	byID       map[string]task.Task
	comments   map[string][]task.Comment
	lastFilter task.ListFilter
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{byID: map[string]task.Task{}, comments: map[string][]task.Comment{}}
}

func (f *fakeTaskRepo) Create(ctx context.Context, t *task.Task) error {
	f.byID[t.ID] = *t
	return nil
}

func (f *fakeTaskRepo) GetByID(ctx context.Context, id string) (task.Task, error) {
	t, ok := f.byID[id]
	if !ok {
		return task.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

func (f *fakeTaskRepo) Update(ctx context.Context, t *task.Task) error {
	f.byID[t.ID] = *t
	return nil
}

func (f *fakeTaskRepo) Delete(ctx context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeTaskRepo) List(ctx context.Context, filter task.ListFilter) ([]task.Task, error) {
	f.lastFilter = filter
	return nil, nil
}

func (f *fakeTaskRepo) Count(ctx context.Context, filter task.ListFilter) (int, error) {
	return 0, nil
}

func (f *fakeTaskRepo) CreateComment(ctx context.Context, c *task.Comment) error {
	f.comments[c.TaskID] = append(f.comments[c.TaskID], *c)
	return nil
}

func (f *fakeTaskRepo) ListComments(ctx context.Context, taskID string) ([]task.Comment, error) {
	return f.comments[taskID], nil
}

type fakeEmployeeRepo struct {
	byID map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByPhone(ctx context.Context, phone string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func (f *fakeEmployeeRepo) UpdateProfile(ctx context.Context, emp employee.Employee) error {
	return nil
}

func (f *fakeEmployeeRepo) UpdateStatus(ctx context.Context, id string, status employee.Status) error {
	return nil
}

func (f *fakeEmployeeRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

type captureNotifier struct {
	queued []notification.CreateNotificationRequest
}

func (c *captureNotifier) Queue(reqs ...notification.CreateNotificationRequest) {
	c.queued = append(c.queued, reqs...)
}

func (c *captureNotifier) List(ctx context.Context, limit int, offset int) (notification.ListResponse, error) {
	return notification.ListResponse{}, nil
}

func (c *captureNotifier) MarkRead(ctx context.Context, notificationID string) error { return nil }
func (c *captureNotifier) ClearAll(ctx context.Context) error                        { return nil }
func (c *captureNotifier) Shutdown()                                                 {}

func claimsContext(t *testing.T, employeeID string, name string, role employee.Role) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("task-test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"name":        name,
		"role":        string(role),
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func teamRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Name: "Arun Mehta", Role: employee.RoleEmployee, Status: employee.StatusActive},
		"emp-2": {ID: "emp-2", Name: "Rhea Das", Role: employee.RoleEmployee, Status: employee.StatusActive},
		"mgr-1": {ID: "mgr-1", Name: "Priya Nair", Role: employee.RoleManager, Status: employee.StatusActive},
		"adm-1": {ID: "adm-1", Name: "Sana Iyer", Role: employee.RoleAdmin, Status: employee.StatusActive},
	}}
}

func TestCreateTask(t *testing.T) {
	req := task.CreateTaskRequest{Title: "Write onboarding doc", AssigneeID: "emp-1", Priority: "normal"}

	t.Run("manager assigns to employee", func(t *testing.T) {
		notifier := &captureNotifier{}
		svc := NewTaskService(newFakeTaskRepo(), teamRepo(), notifier)

		created, err := svc.Create(claimsContext(t, "mgr-1", "Priya Nair", employee.RoleManager), req)
		require.NoError(t, err)

		assert.Equal(t, task.StatusPending, created.Status)
		assert.Equal(t, "mgr-1", created.AssignerID)
		assert.Equal(t, "Arun Mehta", created.AssigneeName)
		assert.Nil(t, created.CompletedAt)

		require.Len(t, notifier.queued, 1)
		assert.Equal(t, "emp-1", notifier.queued[0].RecipientID)
		assert.Equal(t, notification.KindInfo, notifier.queued[0].Kind)
	})

	t.Run("urgent assignment warns and carries the due date", func(t *testing.T) {
		notifier := &captureNotifier{}
		svc := NewTaskService(newFakeTaskRepo(), teamRepo(), notifier)

		due := "2026-03-10"
		urgent := req
		urgent.Priority = "urgent"
		urgent.DueDate = &due
		_, err := svc.Create(claimsContext(t, "mgr-1", "Priya Nair", employee.RoleManager), urgent)
		require.NoError(t, err)

		require.Len(t, notifier.queued, 1)
		assert.Equal(t, notification.KindWarning, notifier.queued[0].Kind)
		assert.Contains(t, notifier.queued[0].Body, "due 2026-03-10")
	})

	t.Run("employee cannot assign to others", func(t *testing.T) {
		svc := NewTaskService(newFakeTaskRepo(), teamRepo(), &captureNotifier{})

		other := req
		other.AssigneeID = "emp-2"
		_, err := svc.Create(claimsContext(t, "emp-1", "Arun Mehta", employee.RoleEmployee), other)
		assert.ErrorIs(t, err, task.ErrAssignNotPermitted)
	})

	t.Run("self-assignment is always allowed", func(t *testing.T) {
		notifier := &captureNotifier{}
		svc := NewTaskService(newFakeTaskRepo(), teamRepo(), notifier)

		created, err := svc.Create(claimsContext(t, "emp-1", "Arun Mehta", employee.RoleEmployee), req)
		require.NoError(t, err)

		assert.Equal(t, created.AssigneeID, created.AssignerID)
		assert.Empty(t, notifier.queued, "no notification for self-assignment")
	})

	t.Run("manager cannot assign to admin", func(t *testing.T) {
		svc := NewTaskService(newFakeTaskRepo(), teamRepo(), &captureNotifier{})

		toAdmin := req
		toAdmin.AssigneeID = "adm-1"
		_, err := svc.Create(claimsContext(t, "mgr-1", "Priya Nair", employee.RoleManager), toAdmin)
		assert.ErrorIs(t, err, task.ErrAssignNotPermitted)
	})
}

func TestUpdateStatus(t *testing.T) {
	seed := task.Task{ID: "t-1", Title: "Write onboarding doc", AssigneeID: "emp-1", AssignerID: "mgr-1",
		Priority: task.PriorityNormal, Status: task.StatusPending}

	t.Run("completion stamps CompletedAt and notifies the assigner", func(t *testing.T) {
		repo := newFakeTaskRepo()
		repo.byID["t-1"] = seed
		notifier := &captureNotifier{}
		svc := NewTaskService(repo, teamRepo(), notifier)

		ctx := claimsContext(t, "emp-1", "Arun Mehta", employee.RoleEmployee)
		updated, err := svc.UpdateStatus(ctx, "t-1", task.UpdateStatusRequest{Status: "completed"})
		require.NoError(t, err)

		assert.Equal(t, task.StatusCompleted, updated.Status)
		require.NotNil(t, updated.CompletedAt)

		require.Len(t, notifier.queued, 1)
		assert.Equal(t, "mgr-1", notifier.queued[0].RecipientID)

		// Reopening clears the completion stamp.
		updated, err = svc.UpdateStatus(ctx, "t-1", task.UpdateStatusRequest{Status: "processing"})
		require.NoError(t, err)
		assert.Nil(t, updated.CompletedAt)
	})

	t.Run("only participants may change status", func(t *testing.T) {
		repo := newFakeTaskRepo()
		repo.byID["t-1"] = seed
		svc := NewTaskService(repo, teamRepo(), &captureNotifier{})

		ctx := claimsContext(t, "emp-2", "Rhea Das", employee.RoleEmployee)
		_, err := svc.UpdateStatus(ctx, "t-1", task.UpdateStatusRequest{Status: "processing"})
		assert.ErrorIs(t, err, task.ErrNotTaskParticipant)
	})
}

func TestUpdateTask(t *testing.T) {
	seed := task.Task{ID: "t-1", Title: "Write onboarding doc", Description: "cover the punch clock",
		AssigneeID: "emp-1", AssignerID: "mgr-1", Priority: task.PriorityNormal, Status: task.StatusPending}

	edit := task.UpdateTaskRequest{Title: "Write onboarding doc v2", Description: "cover breaks too",
		Priority: "urgent"}

	t.Run("assigner edits the fields", func(t *testing.T) {
		repo := newFakeTaskRepo()
		repo.byID["t-1"] = seed
		notifier := &captureNotifier{}
		svc := NewTaskService(repo, teamRepo(), notifier)

		due := "2026-03-20"
		withDue := edit
		withDue.DueDate = &due
		ctx := claimsContext(t, "mgr-1", "Priya Nair", employee.RoleManager)
		updated, err := svc.Update(ctx, "t-1", withDue)
		require.NoError(t, err)

		assert.Equal(t, "Write onboarding doc v2", updated.Title)
		assert.Equal(t, "cover breaks too", updated.Description)
		assert.Equal(t, task.PriorityUrgent, updated.Priority)
		require.NotNil(t, updated.DueDate)
		assert.Equal(t, due, *updated.DueDate)
		assert.Equal(t, task.StatusPending, updated.Status, "status untouched by field edits")

		require.Len(t, notifier.queued, 1)
		assert.Equal(t, "emp-1", notifier.queued[0].RecipientID)
	})

	t.Run("admin may edit any task", func(t *testing.T) {
		repo := newFakeTaskRepo()
		repo.byID["t-1"] = seed
		svc := NewTaskService(repo, teamRepo(), &captureNotifier{})

		ctx := claimsContext(t, "adm-1", "Sana Iyer", employee.RoleAdmin)
		updated, err := svc.Update(ctx, "t-1", edit)
		require.NoError(t, err)
		assert.Equal(t, task.PriorityUrgent, updated.Priority)
	})

	t.Run("assignee may not edit", func(t *testing.T) {
		repo := newFakeTaskRepo()
		repo.byID["t-1"] = seed
		svc := NewTaskService(repo, teamRepo(), &captureNotifier{})

		ctx := claimsContext(t, "emp-1", "Arun Mehta", employee.RoleEmployee)
		_, err := svc.Update(ctx, "t-1", edit)
		assert.ErrorIs(t, err, task.ErrNotTaskParticipant)
	})

	t.Run("validation", func(t *testing.T) {
		repo := newFakeTaskRepo()
		repo.byID["t-1"] = seed
		svc := NewTaskService(repo, teamRepo(), &captureNotifier{})

		ctx := claimsContext(t, "mgr-1", "Priya Nair", employee.RoleManager)
		_, err := svc.Update(ctx, "t-1", task.UpdateTaskRequest{Title: "", Priority: "normal"})
		assert.Error(t, err)

		_, err = svc.Update(ctx, "t-1", task.UpdateTaskRequest{Title: "ok", Priority: "critical"})
		assert.Error(t, err)
	})
}

func TestDeleteTask(t *testing.T) {
	seed := task.Task{ID: "t-1", AssigneeID: "emp-1", AssignerID: "mgr-1", Status: task.StatusPending}

	t.Run("assignee may not delete", func(t *testing.T) {
		repo := newFakeTaskRepo()
		repo.byID["t-1"] = seed
		svc := NewTaskService(repo, teamRepo(), &captureNotifier{})

		err := svc.Delete(claimsContext(t, "emp-1", "Arun Mehta", employee.RoleEmployee), "t-1")
		assert.ErrorIs(t, err, task.ErrNotTaskParticipant)
	})

	t.Run("assigner and admin may delete", func(t *testing.T) {
		repo := newFakeTaskRepo()
		repo.byID["t-1"] = seed
		svc := NewTaskService(repo, teamRepo(), &captureNotifier{})

		require.NoError(t, svc.Delete(claimsContext(t, "mgr-1", "Priya Nair", employee.RoleManager), "t-1"))

		repo.byID["t-1"] = seed
		require.NoError(t, svc.Delete(claimsContext(t, "adm-1", "Sana Iyer", employee.RoleAdmin), "t-1"))
	})
}

func TestListScopes(t *testing.T) {
	t.Run("employee sees own assignments only", func(t *testing.T) {
		repo := newFakeTaskRepo()
		svc := NewTaskService(repo, teamRepo(), &captureNotifier{})

		_, _, err := svc.List(claimsContext(t, "emp-1", "Arun Mehta", employee.RoleEmployee), task.ListFilter{})
		require.NoError(t, err)

		assert.Equal(t, "emp-1", repo.lastFilter.AssigneeID)
		assert.Empty(t, repo.lastFilter.AssignerID)
	})

	t.Run("manager also sees what they assigned", func(t *testing.T) {
		repo := newFakeTaskRepo()
		svc := NewTaskService(repo, teamRepo(), &captureNotifier{})

		_, _, err := svc.List(claimsContext(t, "mgr-1", "Priya Nair", employee.RoleManager), task.ListFilter{})
		require.NoError(t, err)

		assert.Equal(t, "mgr-1", repo.lastFilter.AssigneeID)
		assert.Equal(t, "mgr-1", repo.lastFilter.AssignerID)
	})
}

func TestComments(t *testing.T) {
	seed := task.Task{ID: "t-1", Title: "Write onboarding doc", AssigneeID: "emp-1", AssignerID: "mgr-1",
		Status: task.StatusProcessing}

	t.Run("assignee comments, assigner is notified", func(t *testing.T) {
		repo := newFakeTaskRepo()
		repo.byID["t-1"] = seed
		notifier := &captureNotifier{}
		svc := NewTaskService(repo, teamRepo(), notifier)

		ctx := claimsContext(t, "emp-1", "Arun Mehta", employee.RoleEmployee)
		c, err := svc.AddComment(ctx, "t-1", task.AddCommentRequest{Body: "first draft is up"})
		require.NoError(t, err)

		assert.Equal(t, "emp-1", c.AuthorID)
		assert.Equal(t, "Arun Mehta", c.AuthorName)

		require.Len(t, notifier.queued, 1)
		assert.Equal(t, "mgr-1", notifier.queued[0].RecipientID)

		comments, err := svc.ListComments(ctx, "t-1")
		require.NoError(t, err)
		assert.Len(t, comments, 1)
	})

	t.Run("outsiders see no task at all", func(t *testing.T) {
		repo := newFakeTaskRepo()
		repo.byID["t-1"] = seed
		svc := NewTaskService(repo, teamRepo(), &captureNotifier{})

		ctx := claimsContext(t, "emp-2", "Rhea Das", employee.RoleEmployee)
		_, err := svc.AddComment(ctx, "t-1", task.AddCommentRequest{Body: "hi"})
		assert.ErrorIs(t, err, task.ErrTaskNotFound)

		_, err = svc.Get(ctx, "t-1")
		assert.ErrorIs(t, err, task.ErrTaskNotFound)
	})
}
