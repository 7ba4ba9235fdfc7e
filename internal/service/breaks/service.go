package breaks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/attendance"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/breaks"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/employee"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type BreakServiceImpl struct {
	breaks.BreakRepository
	attendance.AttendanceRepository
}

func NewBreakService(breakRepo breaks.BreakRepository, attendanceRepo attendance.AttendanceRepository) breaks.BreakService {
	return &BreakServiceImpl{
		BreakRepository:      breakRepo,
		AttendanceRepository: attendanceRepo,
	}
}

type callerClaims struct {
	EmployeeID string
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

	roleStr, _ := claims["role"].(string)

	return callerClaims{
		EmployeeID: employeeID,
		Role:       employee.Role(roleStr),
	}, nil
}

// Start implements breaks.BreakService.
func (s *BreakServiceImpl) Start(ctx context.Context, req breaks.StartBreakRequest) (breaks.Break, error) {
	if err := req.Validate(); err != nil {
		return breaks.Break{}, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return breaks.Break{}, err
	}
	employeeID := caller.EmployeeID

	now := time.Now()
	today := now.Format("2006-01-02")

	att, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return breaks.Break{}, attendance.ErrNotPunchedIn
		}
		return breaks.Break{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	if !att.IsOpen() {
		return breaks.Break{}, attendance.ErrNotPunchedIn
	}

	// One break at a time, across all types.
	if _, err := s.BreakRepository.GetOpenByEmployee(ctx, employeeID); err == nil {
		return breaks.Break{}, breaks.ErrBreakAlreadyOpen
	} else if !errors.Is(err, breaks.ErrBreakNotFound) {
		return breaks.Break{}, fmt.Errorf("failed to check open break: %w", err)
	}

	b := breaks.Break{
		ID:           uuid.New().String(),
		EmployeeID:   employeeID,
		AttendanceID: att.ID,
		Type:         breaks.BreakType(req.Type),
		StartedAt:    now,
	}

	if err := s.BreakRepository.Create(ctx, &b); err != nil {
		return breaks.Break{}, fmt.Errorf("failed to create break: %w", err)
	}

	return b, nil
}

// End implements breaks.BreakService.
func (s *BreakServiceImpl) End(ctx context.Context) (breaks.Break, error) {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return breaks.Break{}, err
	}

	b, err := s.BreakRepository.GetOpenByEmployee(ctx, caller.EmployeeID)
	if err != nil {
		if errors.Is(err, breaks.ErrBreakNotFound) {
			return breaks.Break{}, breaks.ErrBreakNotFound
		}
		return breaks.Break{}, fmt.Errorf("failed to get open break: %w", err)
	}

	now := time.Now()
	b.EndedAt = &now
	b.DurationMinutes = attendance.ElapsedMinutes(b.StartedAt, now)

	if err := s.BreakRepository.Update(ctx, &b); err != nil {
		return breaks.Break{}, fmt.Errorf("failed to end break: %w", err)
	}

	return b, nil
}

// Today implements breaks.BreakService.
func (s *BreakServiceImpl) Today(ctx context.Context) (breaks.DayBreaksResponse, error) {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return breaks.DayBreaksResponse{}, err
	}

	today := time.Now().Format("2006-01-02")

	att, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, caller.EmployeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return breaks.DayBreaksResponse{Breaks: []breaks.Break{}}, nil
		}
		return breaks.DayBreaksResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	dayBreaks, err := s.BreakRepository.ListByAttendance(ctx, att.ID)
	if err != nil {
		return breaks.DayBreaksResponse{}, fmt.Errorf("failed to list breaks: %w", err)
	}

	resp := breaks.DayBreaksResponse{Breaks: dayBreaks}
	for i := range dayBreaks {
		if dayBreaks[i].IsOpen() {
			resp.OpenBreak = &dayBreaks[i]
		} else {
			resp.TotalMinutes += dayBreaks[i].DurationMinutes
		}
	}

	return resp, nil
}

// TeamList implements breaks.BreakService.
func (s *BreakServiceImpl) TeamList(ctx context.Context, filter breaks.ListFilter) ([]breaks.Break, int, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	if caller.Role != employee.RoleManager && caller.Role != employee.RoleAdmin {
		return nil, 0, employee.ErrNotPermitted
	}

	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	teamBreaks, err := s.BreakRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list team breaks: %w", err)
	}

	total, err := s.BreakRepository.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count team breaks: %w", err)
	}

	return teamBreaks, total, nil
}
