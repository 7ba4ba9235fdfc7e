package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/attendance"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/employee"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/settings"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/geo"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	settings.SettingsRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, settingsRepo settings.SettingsRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		SettingsRepository:   settingsRepo,
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

func (s *AttendanceServiceImpl) officeSettings(ctx context.Context) settings.CompanySettings {
	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return settings.Default()
	}
	return cfg
}

// PunchIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchIn(ctx context.Context, req attendance.PunchRequest) (attendance.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchResponse{}, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	now := time.Now()
	today := now.Format("2006-01-02")

	if _, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, caller.EmployeeID, today); err == nil {
		return attendance.PunchResponse{}, attendance.ErrAlreadyPunchedIn
	} else if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.PunchResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}

	cfg := s.officeSettings(ctx)

	mood := "neutral"
	if req.Mood != nil {
		mood = *req.Mood
	}

	att := attendance.Attendance{
		ID:         uuid.New().String(),
		EmployeeID: caller.EmployeeID,
		Date:       today,
		PunchIn:    &now,
		Mood:       &mood,
	}

	var distance *float64
	var inOffice *bool
	if req.Latitude != nil && req.Longitude != nil {
		d, in := geo.Evaluate(*req.Latitude, *req.Longitude, cfg.OfficeLatitude, cfg.OfficeLongitude, cfg.RadiusMeters)
		att.PunchInLatitude = req.Latitude
		att.PunchInLongitude = req.Longitude
		att.PunchInDistanceM = &d
		att.PunchInInOffice = &in
		distance = &d
		inOffice = &in
	}

	if err := s.AttendanceRepository.Create(ctx, &att); err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return attendance.PunchResponse{
		Attendance: att,
		DistanceM:  distance,
		InOffice:   inOffice,
		OfficeName: cfg.OfficeName,
	}, nil
}

// PunchOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchOut(ctx context.Context, req attendance.PunchOutRequest) (attendance.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchResponse{}, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	now := time.Now()
	today := now.Format("2006-01-02")

	att, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, caller.EmployeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.PunchResponse{}, attendance.ErrNotPunchedIn
		}
		return attendance.PunchResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	if att.PunchOut != nil {
		return attendance.PunchResponse{}, attendance.ErrSessionClosed
	}
	if att.PunchIn == nil {
		return attendance.PunchResponse{}, attendance.ErrNotPunchedIn
	}

	cfg := s.officeSettings(ctx)

	att.PunchOut = &now
	att.WorkingMinutes = attendance.ElapsedMinutes(*att.PunchIn, now)

	var distance *float64
	var inOffice *bool
	if req.Latitude != nil && req.Longitude != nil {
		d, in := geo.Evaluate(*req.Latitude, *req.Longitude, cfg.OfficeLatitude, cfg.OfficeLongitude, cfg.RadiusMeters)
		att.PunchOutLatitude = req.Latitude
		att.PunchOutLongitude = req.Longitude
		att.PunchOutDistanceM = &d
		att.PunchOutInOffice = &in
		distance = &d
		inOffice = &in
	}

	if req.WorkLog != nil {
		att.WorkLog = req.WorkLog
	}

	if err := s.AttendanceRepository.Update(ctx, &att); err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return attendance.PunchResponse{
		Attendance: att,
		DistanceM:  distance,
		InOffice:   inOffice,
		OfficeName: cfg.OfficeName,
	}, nil
}

// UpdateWorkLog implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateWorkLog(ctx context.Context, req attendance.UpdateWorkLogRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.Attendance{}, err
	}

	today := time.Now().Format("2006-01-02")

	att, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, caller.EmployeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.Attendance{}, attendance.ErrNotPunchedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	// The log stays editable only while the session is open.
	if !att.IsOpen() {
		return attendance.Attendance{}, attendance.ErrSessionClosed
	}

	att.WorkLog = &req.WorkLog

	if err := s.AttendanceRepository.Update(ctx, &att); err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to update work log: %w", err)
	}

	return att, nil
}

// Today implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Today(ctx context.Context) (attendance.Attendance, error) {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.Attendance{}, err
	}

	today := time.Now().Format("2006-01-02")

	return s.AttendanceRepository.GetByEmployeeAndDate(ctx, caller.EmployeeID, today)
}

// History implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) History(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, int, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	// History is always scoped to the caller.
	filter.EmployeeID = caller.EmployeeID
	normalizePage(&filter)

	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance history: %w", err)
	}

	total, err := s.AttendanceRepository.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance history: %w", err)
	}

	return records, total, nil
}

// TeamList implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TeamList(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, int, error) {
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

	normalizePage(&filter)

	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list team attendance: %w", err)
	}

	total, err := s.AttendanceRepository.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count team attendance: %w", err)
	}

	return records, total, nil
}

func normalizePage(filter *attendance.ListFilter) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 31
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
}
