package employee

import (
	"context"
	"testing"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/employee"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memEmployeeRepo struct {
	byID map[string]employee.Employee
}

func (m *memEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	m.byID[emp.ID] = emp
	return emp, nil
}

func (m *memEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := m.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (m *memEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (m *memEmployeeRepo) GetByPhone(ctx context.Context, phone string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (m *memEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	all := make([]employee.Employee, 0, len(m.byID))
	for _, e := range m.byID {
		all = append(all, e)
	}
	return all, nil
}

func (m *memEmployeeRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.byID)), nil
}

func (m *memEmployeeRepo) UpdateProfile(ctx context.Context, emp employee.Employee) error {
	m.byID[emp.ID] = emp
	return nil
}

func (m *memEmployeeRepo) UpdateStatus(ctx context.Context, id string, status employee.Status) error {
	e := m.byID[id]
	e.Status = status
	m.byID[id] = e
	return nil
}

func (m *memEmployeeRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	e := m.byID[id]
	e.PasswordHash = &passwordHash
	m.byID[id] = e
	return nil
}

func (m *memEmployeeRepo) Delete(ctx context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

func teamRepo() *memEmployeeRepo {
	return &memEmployeeRepo{byID: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Name: "Arun Mehta", Role: employee.RoleEmployee, Status: employee.StatusActive},
		"adm-1": {ID: "adm-1", Name: "Sana Iyer", Role: employee.RoleAdmin, Status: employee.StatusActive},
	}}
}

func claimsContext(t *testing.T, employeeID string, role employee.Role) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("employee-test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"role":        string(role),
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func strPtr(s string) *string { return &s }

func TestUpdateProfile(t *testing.T) {
	t.Run("self edit", func(t *testing.T) {
		repo := teamRepo()
		svc := NewEmployeeService(repo)

		ctx := claimsContext(t, "emp-1", employee.RoleEmployee)
		resp, err := svc.UpdateProfile(ctx, employee.UpdateProfileRequest{
			ID:  "emp-1",
			Bio: strPtr("Backend, mostly Go"),
		})
		require.NoError(t, err)
		require.NotNil(t, resp.Bio)
		assert.Equal(t, "Backend, mostly Go", *resp.Bio)
	})

	t.Run("only admins edit other profiles", func(t *testing.T) {
		svc := NewEmployeeService(teamRepo())

		ctx := claimsContext(t, "emp-1", employee.RoleEmployee)
		_, err := svc.UpdateProfile(ctx, employee.UpdateProfileRequest{
			ID:   "adm-1",
			Name: strPtr("Not Sana"),
		})
		assert.ErrorIs(t, err, employee.ErrNotPermitted)
	})
}

func TestUpdateProfileRoleChange(t *testing.T) {
	t.Run("admin promotes an employee", func(t *testing.T) {
		repo := teamRepo()
		svc := NewEmployeeService(repo)

		ctx := claimsContext(t, "adm-1", employee.RoleAdmin)
		resp, err := svc.UpdateProfile(ctx, employee.UpdateProfileRequest{
			ID:   "emp-1",
			Role: strPtr("Manager"),
		})
		require.NoError(t, err)
		assert.Equal(t, employee.RoleManager, resp.Role)
		assert.Equal(t, employee.RoleManager, repo.byID["emp-1"].Role)
	})

	t.Run("nobody grants themselves a role", func(t *testing.T) {
		repo := teamRepo()
		svc := NewEmployeeService(repo)

		ctx := claimsContext(t, "emp-1", employee.RoleEmployee)
		_, err := svc.UpdateProfile(ctx, employee.UpdateProfileRequest{
			ID:   "emp-1",
			Role: strPtr("Admin"),
		})
		assert.ErrorIs(t, err, employee.ErrNotPermitted)
		assert.Equal(t, employee.RoleEmployee, repo.byID["emp-1"].Role)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		svc := NewEmployeeService(teamRepo())

		ctx := claimsContext(t, "adm-1", employee.RoleAdmin)
		_, err := svc.UpdateProfile(ctx, employee.UpdateProfileRequest{
			ID:   "emp-1",
			Role: strPtr("Overlord"),
		})
		assert.Error(t, err)
	})
}
