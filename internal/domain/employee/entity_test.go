package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleHelpers(t *testing.T) {
	admin := Employee{Role: RoleAdmin, Status: StatusActive}
	manager := Employee{Role: RoleManager, Status: StatusActive}
	regular := Employee{Role: RoleEmployee, Status: StatusInactive}

	assert.True(t, admin.IsAdmin())
	assert.True(t, admin.IsManager())
	assert.False(t, manager.IsAdmin())
	assert.True(t, manager.IsManager())
	assert.False(t, regular.IsManager())

	assert.True(t, admin.IsActive())
	assert.False(t, regular.IsActive())
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole("Employee"))
	assert.True(t, ValidRole("Manager"))
	assert.True(t, ValidRole("Admin"))
	assert.False(t, ValidRole("employee"))
	assert.False(t, ValidRole("SuperAdmin"))
	assert.False(t, ValidRole(""))
}

func TestCanApproveFor(t *testing.T) {
	cases := []struct {
		requester, candidate Role
		want                 bool
	}{
		{RoleEmployee, RoleManager, true},
		{RoleEmployee, RoleAdmin, true},
		{RoleEmployee, RoleEmployee, false},
		{RoleManager, RoleAdmin, true},
		{RoleManager, RoleManager, false},
		{RoleManager, RoleEmployee, false},
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleManager, true},
		{RoleAdmin, RoleEmployee, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CanApproveFor(c.requester, c.candidate),
			"requester=%s candidate=%s", c.requester, c.candidate)
	}
}

func TestCanAssignTaskTo(t *testing.T) {
	cases := []struct {
		assigner, assignee Role
		want               bool
	}{
		{RoleAdmin, RoleManager, true},
		{RoleAdmin, RoleEmployee, true},
		{RoleAdmin, RoleAdmin, false},
		{RoleManager, RoleEmployee, true},
		{RoleManager, RoleManager, false},
		{RoleManager, RoleAdmin, false},
		{RoleEmployee, RoleEmployee, false},
		{RoleEmployee, RoleManager, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CanAssignTaskTo(c.assigner, c.assignee),
			"assigner=%s assignee=%s", c.assigner, c.assignee)
	}
}
