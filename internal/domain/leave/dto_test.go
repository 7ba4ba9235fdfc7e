package leave

import (
	"errors"
	"testing"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	return verrs.ToMap()
}

func TestApplyLeaveRequestValidate(t *testing.T) {
	session := "first"

	t.Run("valid full-day range", func(t *testing.T) {
		req := ApplyLeaveRequest{Type: "casual", DateFrom: "2026-03-02", DateTo: "2026-03-04", Reason: "family trip", ApproverID: "mgr-1"}
		assert.NoError(t, req.Validate())
	})

	t.Run("valid half day", func(t *testing.T) {
		req := ApplyLeaveRequest{Type: "sick", DateFrom: "2026-03-02", DateTo: "2026-03-02", IsHalfDay: true, HalfDaySession: &session, Reason: "doctor visit", ApproverID: "mgr-1"}
		assert.NoError(t, req.Validate())
	})

	t.Run("unknown type", func(t *testing.T) {
		req := ApplyLeaveRequest{Type: "sabbatical", DateFrom: "2026-03-02", DateTo: "2026-03-02", Reason: "x", ApproverID: "mgr-1"}
		fields := fieldErrors(t, req.Validate())
		assert.Contains(t, fields, "type")
	})

	t.Run("reversed range", func(t *testing.T) {
		req := ApplyLeaveRequest{Type: "casual", DateFrom: "2026-03-04", DateTo: "2026-03-02", Reason: "x", ApproverID: "mgr-1"}
		fields := fieldErrors(t, req.Validate())
		assert.Contains(t, fields, "date_to")
	})

	t.Run("half day spanning two dates", func(t *testing.T) {
		req := ApplyLeaveRequest{Type: "casual", DateFrom: "2026-03-02", DateTo: "2026-03-03", IsHalfDay: true, HalfDaySession: &session, Reason: "x", ApproverID: "mgr-1"}
		fields := fieldErrors(t, req.Validate())
		assert.Contains(t, fields, "is_half_day")
	})

	t.Run("half day without session", func(t *testing.T) {
		req := ApplyLeaveRequest{Type: "casual", DateFrom: "2026-03-02", DateTo: "2026-03-02", IsHalfDay: true, Reason: "x", ApproverID: "mgr-1"}
		fields := fieldErrors(t, req.Validate())
		assert.Contains(t, fields, "half_day_session")
	})

	t.Run("missing reason", func(t *testing.T) {
		req := ApplyLeaveRequest{Type: "casual", DateFrom: "2026-03-02", DateTo: "2026-03-02", Reason: "   ", ApproverID: "mgr-1"}
		fields := fieldErrors(t, req.Validate())
		assert.Contains(t, fields, "reason")
	})

	t.Run("missing approver", func(t *testing.T) {
		req := ApplyLeaveRequest{Type: "casual", DateFrom: "2026-03-02", DateTo: "2026-03-02", Reason: "x"}
		fields := fieldErrors(t, req.Validate())
		assert.Contains(t, fields, "approver_id")
	})

	t.Run("bad date format", func(t *testing.T) {
		req := ApplyLeaveRequest{Type: "casual", DateFrom: "02-03-2026", DateTo: "2026-03-02", Reason: "x", ApproverID: "mgr-1"}
		fields := fieldErrors(t, req.Validate())
		assert.Contains(t, fields, "date_from")
	})
}

func TestDecideLeaveRequestValidate(t *testing.T) {
	note := "headcount too low that week"

	assert.NoError(t, (&DecideLeaveRequest{Status: "approved"}).Validate())
	assert.NoError(t, (&DecideLeaveRequest{Status: "rejected", Response: &note}).Validate())

	err := (&DecideLeaveRequest{Status: "rejected"}).Validate()
	fields := fieldErrors(t, err)
	assert.Contains(t, fields, "response")

	err = (&DecideLeaveRequest{Status: "cancelled"}).Validate()
	fields = fieldErrors(t, err)
	assert.Contains(t, fields, "status")
}

func TestCancelLeaveRequestValidate(t *testing.T) {
	assert.NoError(t, (&CancelLeaveRequest{Reason: "plans changed"}).Validate())

	err := (&CancelLeaveRequest{}).Validate()
	var verrs validator.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
}
