package breaks

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/attendance"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/breaks"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/employee"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBreakRepo struct {
	byID map[string]breaks.Break

	// attendance id to date, so List can honor the date filter the way
	// the SQL join does.
	dates map[string]string
}

func newFakeBreakRepo() *fakeBreakRepo {
	return &fakeBreakRepo{byID: map[string]breaks.Break{}, dates: map[string]string{}}
}

func (f *fakeBreakRepo) Create(ctx context.Context, b *breaks.Break) error {
	f.byID[b.ID] = *b
	return nil
}

func (f *fakeBreakRepo) GetByID(ctx context.Context, id string) (breaks.Break, error) {
	b, ok := f.byID[id]
	if !ok {
		return breaks.Break{}, breaks.ErrBreakNotFound
	}
	return b, nil
}

func (f *fakeBreakRepo) GetOpenByEmployee(ctx context.Context, employeeID string) (breaks.Break, error) {
	for _, b := range f.byID {
		if b.EmployeeID == employeeID && b.IsOpen() {
			return b, nil
		}
	}
	return breaks.Break{}, breaks.ErrBreakNotFound
}

func (f *fakeBreakRepo) ListByAttendance(ctx context.Context, attendanceID string) ([]breaks.Break, error) {
	var out []breaks.Break
	for _, b := range f.byID {
		if b.AttendanceID == attendanceID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBreakRepo) matches(b breaks.Break, filter breaks.ListFilter) bool {
	if filter.EmployeeID != "" && b.EmployeeID != filter.EmployeeID {
		return false
	}
	if filter.Date != "" && f.dates[b.AttendanceID] != filter.Date {
		return false
	}
	return true
}

func (f *fakeBreakRepo) List(ctx context.Context, filter breaks.ListFilter) ([]breaks.Break, error) {
	out := make([]breaks.Break, 0)
	for _, b := range f.byID {
		if f.matches(b, filter) {
			name := "Arun Mehta"
			b.EmployeeName = &name
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	return out, nil
}

func (f *fakeBreakRepo) Count(ctx context.Context, filter breaks.ListFilter) (int, error) {
	count := 0
	for _, b := range f.byID {
		if f.matches(b, filter) {
			count++
		}
	}
	return count, nil
}

func (f *fakeBreakRepo) Update(ctx context.Context, b *breaks.Break) error {
	f.byID[b.ID] = *b
	return nil
}

type fakeAttendanceRepo struct {
	today map[string]attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att *attendance.Attendance) error {
	return nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (attendance.Attendance, error) {
	att, ok := f.today[employeeID]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att *attendance.Attendance) error {
	return nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Count(ctx context.Context, filter attendance.ListFilter) (int, error) {
	return 0, nil
}

func claimsContext(t *testing.T, employeeID string) context.Context {
	t.Helper()
	return roleContext(t, employeeID, "Employee")
}

func roleContext(t *testing.T, employeeID, role string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("breaks-test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"role":        role,
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func openAttendance(employeeID string) *fakeAttendanceRepo {
	now := time.Now()
	return &fakeAttendanceRepo{today: map[string]attendance.Attendance{
		employeeID: {ID: "att-1", EmployeeID: employeeID, Date: now.Format("2006-01-02"), PunchIn: &now},
	}}
}

func TestStartBreak(t *testing.T) {
	t.Run("requires an open attendance session", func(t *testing.T) {
		svc := NewBreakService(newFakeBreakRepo(), &fakeAttendanceRepo{})

		_, err := svc.Start(claimsContext(t, "emp-1"), breaks.StartBreakRequest{Type: "lunch"})
		assert.ErrorIs(t, err, attendance.ErrNotPunchedIn)
	})

	t.Run("rejects after punch-out", func(t *testing.T) {
		repo := openAttendance("emp-1")
		att := repo.today["emp-1"]
		now := time.Now()
		att.PunchOut = &now
		repo.today["emp-1"] = att

		svc := NewBreakService(newFakeBreakRepo(), repo)
		_, err := svc.Start(claimsContext(t, "emp-1"), breaks.StartBreakRequest{Type: "lunch"})
		assert.ErrorIs(t, err, attendance.ErrNotPunchedIn)
	})

	t.Run("one open break at a time across types", func(t *testing.T) {
		svc := NewBreakService(newFakeBreakRepo(), openAttendance("emp-1"))
		ctx := claimsContext(t, "emp-1")

		b, err := svc.Start(ctx, breaks.StartBreakRequest{Type: "lunch"})
		require.NoError(t, err)
		assert.Equal(t, breaks.BreakLunch, b.Type)
		assert.Equal(t, "att-1", b.AttendanceID)
		assert.True(t, b.IsOpen())

		_, err = svc.Start(ctx, breaks.StartBreakRequest{Type: "short1"})
		assert.ErrorIs(t, err, breaks.ErrBreakAlreadyOpen)
	})

	t.Run("unknown type", func(t *testing.T) {
		svc := NewBreakService(newFakeBreakRepo(), openAttendance("emp-1"))

		_, err := svc.Start(claimsContext(t, "emp-1"), breaks.StartBreakRequest{Type: "nap"})
		assert.Error(t, err)
	})
}

func TestEndBreak(t *testing.T) {
	svc := NewBreakService(newFakeBreakRepo(), openAttendance("emp-1"))
	ctx := claimsContext(t, "emp-1")

	t.Run("nothing open", func(t *testing.T) {
		_, err := svc.End(ctx)
		assert.ErrorIs(t, err, breaks.ErrBreakNotFound)
	})

	t.Run("closes and measures", func(t *testing.T) {
		_, err := svc.Start(ctx, breaks.StartBreakRequest{Type: "short1"})
		require.NoError(t, err)

		b, err := svc.End(ctx)
		require.NoError(t, err)
		assert.False(t, b.IsOpen())
		assert.GreaterOrEqual(t, b.DurationMinutes, 0)

		// A second type may start once the first has ended.
		_, err = svc.Start(ctx, breaks.StartBreakRequest{Type: "short2"})
		assert.NoError(t, err)
	})
}

func TestTodayBreaks(t *testing.T) {
	t.Run("no attendance yet", func(t *testing.T) {
		svc := NewBreakService(newFakeBreakRepo(), &fakeAttendanceRepo{})

		resp, err := svc.Today(claimsContext(t, "emp-1"))
		require.NoError(t, err)
		assert.Empty(t, resp.Breaks)
		assert.Nil(t, resp.OpenBreak)
		assert.Zero(t, resp.TotalMinutes)
	})

	t.Run("sums closed breaks and flags the open one", func(t *testing.T) {
		breakRepo := newFakeBreakRepo()
		start := time.Now().Add(-2 * time.Hour)
		end := start.Add(30 * time.Minute)
		breakRepo.byID["b1"] = breaks.Break{ID: "b1", EmployeeID: "emp-1", AttendanceID: "att-1",
			Type: breaks.BreakLunch, StartedAt: start, EndedAt: &end, DurationMinutes: 30}
		breakRepo.byID["b2"] = breaks.Break{ID: "b2", EmployeeID: "emp-1", AttendanceID: "att-1",
			Type: breaks.BreakShort1, StartedAt: end}

		svc := NewBreakService(breakRepo, openAttendance("emp-1"))

		resp, err := svc.Today(claimsContext(t, "emp-1"))
		require.NoError(t, err)

		assert.Len(t, resp.Breaks, 2)
		assert.Equal(t, 30, resp.TotalMinutes)
		require.NotNil(t, resp.OpenBreak)
		assert.Equal(t, "b2", resp.OpenBreak.ID)
	})
}

func TestTeamBreaks(t *testing.T) {
	seedRepo := func() *fakeBreakRepo {
		repo := newFakeBreakRepo()
		repo.dates["att-1"] = "2026-03-02"
		repo.dates["att-2"] = "2026-03-03"

		start := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
		end := start.Add(45 * time.Minute)
		repo.byID["b1"] = breaks.Break{ID: "b1", EmployeeID: "emp-1", AttendanceID: "att-1",
			Type: breaks.BreakLunch, StartedAt: start, EndedAt: &end, DurationMinutes: 45}
		repo.byID["b2"] = breaks.Break{ID: "b2", EmployeeID: "emp-2", AttendanceID: "att-2",
			Type: breaks.BreakShort1, StartedAt: start.Add(24 * time.Hour)}
		return repo
	}

	t.Run("manager sees everyone, newest first", func(t *testing.T) {
		svc := NewBreakService(seedRepo(), &fakeAttendanceRepo{})

		teamBreaks, total, err := svc.TeamList(roleContext(t, "mgr-1", "Manager"), breaks.ListFilter{})
		require.NoError(t, err)

		assert.Equal(t, 2, total)
		require.Len(t, teamBreaks, 2)
		assert.Equal(t, "b2", teamBreaks[0].ID)
		require.NotNil(t, teamBreaks[0].EmployeeName)
		assert.NotEmpty(t, *teamBreaks[0].EmployeeName)
	})

	t.Run("date filter narrows to that day", func(t *testing.T) {
		svc := NewBreakService(seedRepo(), &fakeAttendanceRepo{})

		teamBreaks, total, err := svc.TeamList(roleContext(t, "adm-1", "Admin"),
			breaks.ListFilter{Date: "2026-03-02"})
		require.NoError(t, err)

		assert.Equal(t, 1, total)
		require.Len(t, teamBreaks, 1)
		assert.Equal(t, "b1", teamBreaks[0].ID)
	})

	t.Run("employees may not browse the team view", func(t *testing.T) {
		svc := NewBreakService(seedRepo(), &fakeAttendanceRepo{})

		_, _, err := svc.TeamList(claimsContext(t, "emp-1"), breaks.ListFilter{})
		assert.ErrorIs(t, err, employee.ErrNotPermitted)
	})

	t.Run("malformed date", func(t *testing.T) {
		svc := NewBreakService(seedRepo(), &fakeAttendanceRepo{})

		_, _, err := svc.TeamList(roleContext(t, "mgr-1", "Manager"),
			breaks.ListFilter{Date: "02-03-2026"})
		assert.Error(t, err)
	})
}
