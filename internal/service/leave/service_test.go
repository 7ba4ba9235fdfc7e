package leave

import (
	"context"
	"testing"
	"time"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/employee"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/leave"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/notification"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLeaveRepo struct {
	byID map[string]leave.Leave
	last *leave.Leave
}

func (s *stubLeaveRepo) Create(ctx context.Context, l *leave.Leave) error {
	s.last = l
	return nil
}

func (s *stubLeaveRepo) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	l, ok := s.byID[id]
	if !ok {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	return l, nil
}

func (s *stubLeaveRepo) Update(ctx context.Context, l *leave.Leave) error {
	s.last = l
	if s.byID == nil {
		s.byID = map[string]leave.Leave{}
	}
	s.byID[l.ID] = *l
	return nil
}

func (s *stubLeaveRepo) List(ctx context.Context, filter leave.ListFilter) ([]leave.Leave, error) {
	return nil, nil
}

func (s *stubLeaveRepo) Count(ctx context.Context, filter leave.ListFilter) (int, error) {
	return 0, nil
}

type stubEmployeeRepo struct {
	byID map[string]employee.Employee
}

func (s *stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := s.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (s *stubEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) GetByPhone(ctx context.Context, phone string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	all := make([]employee.Employee, 0, len(s.byID))
	for _, e := range s.byID {
		all = append(all, e)
	}
	return all, nil
}

func (s *stubEmployeeRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(s.byID)), nil
}

func (s *stubEmployeeRepo) UpdateProfile(ctx context.Context, emp employee.Employee) error { return nil }

func (s *stubEmployeeRepo) UpdateStatus(ctx context.Context, id string, status employee.Status) error {
	return nil
}

func (s *stubEmployeeRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return nil
}

func (s *stubEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

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
	ja := jwtauth.New("HS256", []byte("leave-test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"name":        name,
		"role":        string(role),
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func testTeam() *stubEmployeeRepo {
	return &stubEmployeeRepo{byID: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Name: "Arun Mehta", Role: employee.RoleEmployee, Status: employee.StatusActive},
		"mgr-1": {ID: "mgr-1", Name: "Priya Nair", Role: employee.RoleManager, Status: employee.StatusActive},
		"mgr-2": {ID: "mgr-2", Name: "Dev Kapoor", Role: employee.RoleManager, Status: employee.StatusInactive},
		"adm-1": {ID: "adm-1", Name: "Sana Iyer", Role: employee.RoleAdmin, Status: employee.StatusActive},
	}}
}

func TestApply(t *testing.T) {
	t.Run("notifies only the chosen approver", func(t *testing.T) {
		leaveRepo := &stubLeaveRepo{}
		notifier := &captureNotifier{}
		svc := NewLeaveService(leaveRepo, testTeam(), notifier)

		ctx := claimsContext(t, "emp-1", "Arun Mehta", employee.RoleEmployee)
		l, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
			Type:       "casual",
			DateFrom:   "2026-03-02",
			DateTo:     "2026-03-04",
			Reason:     "family trip",
			ApproverID: "mgr-1",
		})
		require.NoError(t, err)

		assert.Equal(t, leave.StatusPending, l.Status)
		assert.Equal(t, 3.0, l.Days)
		assert.Equal(t, "emp-1", l.EmployeeID)
		assert.Equal(t, "mgr-1", l.ApproverID)
		assert.Equal(t, "Priya Nair", l.ApproverName)

		require.Len(t, notifier.queued, 1)
		assert.Equal(t, "mgr-1", notifier.queued[0].RecipientID)
	})

	t.Run("half day", func(t *testing.T) {
		leaveRepo := &stubLeaveRepo{}
		svc := NewLeaveService(leaveRepo, testTeam(), &captureNotifier{})

		session := "second"
		ctx := claimsContext(t, "emp-1", "Arun Mehta", employee.RoleEmployee)
		l, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
			Type:           "sick",
			DateFrom:       "2026-03-02",
			DateTo:         "2026-03-02",
			IsHalfDay:      true,
			HalfDaySession: &session,
			Reason:         "doctor visit",
			ApproverID:     "adm-1",
		})
		require.NoError(t, err)

		assert.Equal(t, 0.5, l.Days)
		require.NotNil(t, l.HalfDaySession)
		assert.Equal(t, leave.SessionSecond, *l.HalfDaySession)
	})

	t.Run("approver must be eligible", func(t *testing.T) {
		svc := NewLeaveService(&stubLeaveRepo{}, testTeam(), &captureNotifier{})

		// A manager cannot route to another manager.
		ctx := claimsContext(t, "mgr-1", "Priya Nair", employee.RoleManager)
		_, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
			Type: "casual", DateFrom: "2026-03-02", DateTo: "2026-03-02",
			Reason: "errand", ApproverID: "mgr-2",
		})
		assert.ErrorIs(t, err, leave.ErrApproverNotPermitted)
	})

	t.Run("approver must be active", func(t *testing.T) {
		svc := NewLeaveService(&stubLeaveRepo{}, testTeam(), &captureNotifier{})

		ctx := claimsContext(t, "emp-1", "Arun Mehta", employee.RoleEmployee)
		_, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
			Type: "casual", DateFrom: "2026-03-02", DateTo: "2026-03-02",
			Reason: "errand", ApproverID: "mgr-2",
		})
		assert.ErrorIs(t, err, leave.ErrApproverNotPermitted)
	})

	t.Run("unknown approver", func(t *testing.T) {
		svc := NewLeaveService(&stubLeaveRepo{}, testTeam(), &captureNotifier{})

		ctx := claimsContext(t, "emp-1", "Arun Mehta", employee.RoleEmployee)
		_, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
			Type: "casual", DateFrom: "2026-03-02", DateTo: "2026-03-02",
			Reason: "errand", ApproverID: "ghost",
		})
		assert.ErrorIs(t, err, leave.ErrApproverNotPermitted)
	})
}

func TestApprovers(t *testing.T) {
	svc := NewLeaveService(&stubLeaveRepo{}, testTeam(), &captureNotifier{})

	t.Run("employee sees active managers and admins", func(t *testing.T) {
		ctx := claimsContext(t, "emp-1", "Arun Mehta", employee.RoleEmployee)
		eligible, err := svc.Approvers(ctx)
		require.NoError(t, err)

		ids := make(map[string]bool)
		for _, e := range eligible {
			ids[e.ID] = true
		}
		assert.Equal(t, map[string]bool{"mgr-1": true, "adm-1": true}, ids)
	})

	t.Run("manager sees only admins", func(t *testing.T) {
		ctx := claimsContext(t, "mgr-1", "Priya Nair", employee.RoleManager)
		eligible, err := svc.Approvers(ctx)
		require.NoError(t, err)

		require.Len(t, eligible, 1)
		assert.Equal(t, "adm-1", eligible[0].ID)
	})
}

func TestDecide(t *testing.T) {
	pending := leave.Leave{ID: "lv-1", EmployeeID: "emp-1", Type: leave.TypeCasual,
		DateFrom: "2026-03-02", DateTo: "2026-03-04", Status: leave.StatusPending,
		ApproverID: "mgr-1", ApproverName: "Priya Nair"}

	t.Run("designated approver approves", func(t *testing.T) {
		leaveRepo := &stubLeaveRepo{byID: map[string]leave.Leave{"lv-1": pending}}
		notifier := &captureNotifier{}
		svc := NewLeaveService(leaveRepo, testTeam(), notifier)

		ctx := claimsContext(t, "mgr-1", "Priya Nair", employee.RoleManager)
		l, err := svc.Decide(ctx, "lv-1", leave.DecideLeaveRequest{Status: "approved"})
		require.NoError(t, err)

		assert.Equal(t, leave.StatusApproved, l.Status)
		assert.NotNil(t, l.DecidedAt)

		require.Len(t, notifier.queued, 1)
		assert.Equal(t, "emp-1", notifier.queued[0].RecipientID)
		assert.Equal(t, notification.KindSuccess, notifier.queued[0].Kind)
	})

	t.Run("rejection records the response", func(t *testing.T) {
		leaveRepo := &stubLeaveRepo{byID: map[string]leave.Leave{"lv-1": pending}}
		svc := NewLeaveService(leaveRepo, testTeam(), &captureNotifier{})

		note := "release week"
		ctx := claimsContext(t, "mgr-1", "Priya Nair", employee.RoleManager)
		l, err := svc.Decide(ctx, "lv-1", leave.DecideLeaveRequest{Status: "rejected", Response: &note})
		require.NoError(t, err)

		assert.Equal(t, leave.StatusRejected, l.Status)
		require.NotNil(t, l.ApproverResponse)
		assert.Equal(t, note, *l.ApproverResponse)
	})

	t.Run("admin may overrule any application", func(t *testing.T) {
		leaveRepo := &stubLeaveRepo{byID: map[string]leave.Leave{"lv-1": pending}}
		svc := NewLeaveService(leaveRepo, testTeam(), &captureNotifier{})

		ctx := claimsContext(t, "adm-1", "Sana Iyer", employee.RoleAdmin)
		l, err := svc.Decide(ctx, "lv-1", leave.DecideLeaveRequest{Status: "approved"})
		require.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, l.Status)
	})

	t.Run("nobody decides their own", func(t *testing.T) {
		own := pending
		own.EmployeeID = "mgr-1"
		leaveRepo := &stubLeaveRepo{byID: map[string]leave.Leave{"lv-1": own}}
		svc := NewLeaveService(leaveRepo, testTeam(), &captureNotifier{})

		ctx := claimsContext(t, "mgr-1", "Priya Nair", employee.RoleManager)
		_, err := svc.Decide(ctx, "lv-1", leave.DecideLeaveRequest{Status: "approved"})
		assert.ErrorIs(t, err, leave.ErrCannotApproveOwn)
	})

	t.Run("other managers may not rule", func(t *testing.T) {
		leaveRepo := &stubLeaveRepo{byID: map[string]leave.Leave{"lv-1": pending}}
		svc := NewLeaveService(leaveRepo, testTeam(), &captureNotifier{})

		ctx := claimsContext(t, "mgr-2", "Dev Kapoor", employee.RoleManager)
		_, err := svc.Decide(ctx, "lv-1", leave.DecideLeaveRequest{Status: "approved"})
		assert.ErrorIs(t, err, leave.ErrNotDesignatedApprover)
	})

	t.Run("already decided", func(t *testing.T) {
		decided := pending
		decided.Status = leave.StatusRejected
		leaveRepo := &stubLeaveRepo{byID: map[string]leave.Leave{"lv-1": decided}}
		svc := NewLeaveService(leaveRepo, testTeam(), &captureNotifier{})

		ctx := claimsContext(t, "mgr-1", "Priya Nair", employee.RoleManager)
		_, err := svc.Decide(ctx, "lv-1", leave.DecideLeaveRequest{Status: "approved"})
		assert.ErrorIs(t, err, leave.ErrInvalidTransition)
	})

	t.Run("no decision while a cancellation request is open", func(t *testing.T) {
		requested := pending
		requested.Status = leave.StatusCancelRequested
		leaveRepo := &stubLeaveRepo{byID: map[string]leave.Leave{"lv-1": requested}}
		svc := NewLeaveService(leaveRepo, testTeam(), &captureNotifier{})

		ctx := claimsContext(t, "mgr-1", "Priya Nair", employee.RoleManager)

		note := "cannot spare the week"
		_, err := svc.Decide(ctx, "lv-1", leave.DecideLeaveRequest{Status: "rejected", Response: &note})
		assert.ErrorIs(t, err, leave.ErrInvalidTransition)

		_, err = svc.Decide(ctx, "lv-1", leave.DecideLeaveRequest{Status: "approved"})
		assert.ErrorIs(t, err, leave.ErrInvalidTransition)
	})
}

func TestCancellationFlow(t *testing.T) {
	decidedAt := time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)
	approved := leave.Leave{ID: "lv-1", EmployeeID: "emp-1", Type: leave.TypeEarned,
		DateFrom: "2026-03-02", DateTo: "2026-03-04", Status: leave.StatusApproved,
		ApproverID: "mgr-1", ApproverName: "Priya Nair", DecidedAt: &decidedAt}

	t.Run("only the owner may request", func(t *testing.T) {
		leaveRepo := &stubLeaveRepo{byID: map[string]leave.Leave{"lv-1": approved}}
		svc := NewLeaveService(leaveRepo, testTeam(), &captureNotifier{})

		ctx := claimsContext(t, "adm-1", "Sana Iyer", employee.RoleAdmin)
		_, err := svc.RequestCancellation(ctx, "lv-1", leave.CancelLeaveRequest{Reason: "plans changed"})
		assert.ErrorIs(t, err, leave.ErrNotLeaveOwner)
	})

	t.Run("request notifies the designated approver", func(t *testing.T) {
		leaveRepo := &stubLeaveRepo{byID: map[string]leave.Leave{"lv-1": approved}}
		notifier := &captureNotifier{}
		svc := NewLeaveService(leaveRepo, testTeam(), notifier)

		ctx := claimsContext(t, "emp-1", "Arun Mehta", employee.RoleEmployee)
		l, err := svc.RequestCancellation(ctx, "lv-1", leave.CancelLeaveRequest{Reason: "plans changed"})
		require.NoError(t, err)
		assert.Equal(t, leave.StatusCancelRequested, l.Status)

		require.Len(t, notifier.queued, 1)
		assert.Equal(t, "mgr-1", notifier.queued[0].RecipientID)
	})

	t.Run("designated approver confirms", func(t *testing.T) {
		requested := approved
		requested.Status = leave.StatusCancelRequested
		leaveRepo := &stubLeaveRepo{byID: map[string]leave.Leave{"lv-1": requested}}
		svc := NewLeaveService(leaveRepo, testTeam(), &captureNotifier{})

		ctx := claimsContext(t, "mgr-1", "Priya Nair", employee.RoleManager)
		l, err := svc.ResolveCancellation(ctx, "lv-1", true)
		require.NoError(t, err)
		assert.Equal(t, leave.StatusCancelled, l.Status)
	})

	t.Run("other managers may not resolve", func(t *testing.T) {
		requested := approved
		requested.Status = leave.StatusCancelRequested
		leaveRepo := &stubLeaveRepo{byID: map[string]leave.Leave{"lv-1": requested}}
		svc := NewLeaveService(leaveRepo, testTeam(), &captureNotifier{})

		ctx := claimsContext(t, "mgr-2", "Dev Kapoor", employee.RoleManager)
		_, err := svc.ResolveCancellation(ctx, "lv-1", true)
		assert.ErrorIs(t, err, leave.ErrNotDesignatedApprover)
	})

	t.Run("admin may resolve in the approver's place", func(t *testing.T) {
		requested := approved
		requested.Status = leave.StatusCancelRequested
		leaveRepo := &stubLeaveRepo{byID: map[string]leave.Leave{"lv-1": requested}}
		svc := NewLeaveService(leaveRepo, testTeam(), &captureNotifier{})

		ctx := claimsContext(t, "adm-1", "Sana Iyer", employee.RoleAdmin)
		l, err := svc.ResolveCancellation(ctx, "lv-1", true)
		require.NoError(t, err)
		assert.Equal(t, leave.StatusCancelled, l.Status)
	})

	t.Run("denial restores the approved state", func(t *testing.T) {
		requested := approved
		requested.Status = leave.StatusCancelRequested
		reason := "plans changed"
		requested.CancelReason = &reason
		leaveRepo := &stubLeaveRepo{byID: map[string]leave.Leave{"lv-1": requested}}
		svc := NewLeaveService(leaveRepo, testTeam(), &captureNotifier{})

		ctx := claimsContext(t, "mgr-1", "Priya Nair", employee.RoleManager)
		l, err := svc.ResolveCancellation(ctx, "lv-1", false)
		require.NoError(t, err)

		assert.Equal(t, leave.StatusApproved, l.Status)
		assert.Nil(t, l.CancelReason)
	})

	t.Run("denial of an undecided leave goes back to pending", func(t *testing.T) {
		requested := approved
		requested.Status = leave.StatusCancelRequested
		requested.DecidedAt = nil
		leaveRepo := &stubLeaveRepo{byID: map[string]leave.Leave{"lv-1": requested}}
		svc := NewLeaveService(leaveRepo, testTeam(), &captureNotifier{})

		ctx := claimsContext(t, "mgr-1", "Priya Nair", employee.RoleManager)
		l, err := svc.ResolveCancellation(ctx, "lv-1", false)
		require.NoError(t, err)
		assert.Equal(t, leave.StatusPending, l.Status)
	})

	t.Run("resolve requires a pending request", func(t *testing.T) {
		leaveRepo := &stubLeaveRepo{byID: map[string]leave.Leave{"lv-1": approved}}
		svc := NewLeaveService(leaveRepo, testTeam(), &captureNotifier{})

		ctx := claimsContext(t, "mgr-1", "Priya Nair", employee.RoleManager)
		_, err := svc.ResolveCancellation(ctx, "lv-1", true)
		assert.ErrorIs(t, err, leave.ErrInvalidTransition)
	})
}
