package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/employee"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/leave"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/notification"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employee.EmployeeRepository
	notificationService notification.NotificationService
}

func NewLeaveService(leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository, notificationService notification.NotificationService) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:     leaveRepo,
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

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.Leave, error) {
	if err := req.Validate(); err != nil {
		return leave.Leave{}, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return leave.Leave{}, err
	}

	approver, err := s.EmployeeRepository.GetByID(ctx, req.ApproverID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.Leave{}, leave.ErrApproverNotPermitted
		}
		return leave.Leave{}, fmt.Errorf("failed to get approver: %w", err)
	}

	if approver.ID == caller.EmployeeID || !approver.IsActive() ||
		!employee.CanApproveFor(caller.Role, approver.Role) {
		return leave.Leave{}, leave.ErrApproverNotPermitted
	}

	from, _ := time.Parse("2006-01-02", req.DateFrom)
	to, _ := time.Parse("2006-01-02", req.DateTo)

	l := leave.Leave{
		ID:           uuid.New().String(),
		EmployeeID:   caller.EmployeeID,
		Type:         leave.LeaveType(req.Type),
		DateFrom:     req.DateFrom,
		DateTo:       req.DateTo,
		IsHalfDay:    req.IsHalfDay,
		Days:         leave.Duration(from, to, req.IsHalfDay),
		Reason:       req.Reason,
		Status:       leave.StatusPending,
		ApproverID:   approver.ID,
		ApproverName: approver.Name,
	}
	if req.IsHalfDay && req.HalfDaySession != nil {
		session := leave.HalfDaySession(*req.HalfDaySession)
		l.HalfDaySession = &session
	}

	if err := s.LeaveRepository.Create(ctx, &l); err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}
	l.EmployeeName = caller.Name

	s.notificationService.Queue(notification.CreateNotificationRequest{
		RecipientID: approver.ID,
		Kind:        notification.KindInfo,
		Title:       "New leave request",
		Body:        fmt.Sprintf("%s applied for %s leave (%s to %s)", caller.Name, l.Type, l.DateFrom, l.DateTo),
		Link:        linkTo("/leaves"),
	})

	return l, nil
}

// Approvers implements leave.LeaveService.
func (s *LeaveServiceImpl) Approvers(ctx context.Context) ([]employee.Employee, error) {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	eligible := make([]employee.Employee, 0)
	for _, e := range employees {
		if e.ID == caller.EmployeeID || !e.IsActive() {
			continue
		}
		if !employee.CanApproveFor(caller.Role, e.Role) {
			continue
		}
		eligible = append(eligible, e)
	}

	return eligible, nil
}

// canRuleOn is the single permission gate for decisions and cancellation
// resolutions: the designated approver or any Admin.
func canRuleOn(l leave.Leave, caller callerClaims) bool {
	return caller.EmployeeID == l.ApproverID || caller.Role == employee.RoleAdmin
}

// Decide implements leave.LeaveService.
func (s *LeaveServiceImpl) Decide(ctx context.Context, leaveID string, req leave.DecideLeaveRequest) (leave.Leave, error) {
	if err := req.Validate(); err != nil {
		return leave.Leave{}, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return leave.Leave{}, err
	}

	l, err := s.LeaveRepository.GetByID(ctx, leaveID)
	if err != nil {
		return leave.Leave{}, err
	}

	if l.EmployeeID == caller.EmployeeID {
		return leave.Leave{}, leave.ErrCannotApproveOwn
	}

	if !canRuleOn(l, caller) {
		return leave.Leave{}, leave.ErrNotDesignatedApprover
	}

	// An open cancellation request is ruled on through ResolveCancellation,
	// not here.
	target := leave.Status(req.Status)
	if l.Status == leave.StatusCancelRequested || !leave.CanTransition(l.Status, target) {
		return leave.Leave{}, leave.ErrInvalidTransition
	}

	now := time.Now()
	l.Status = target
	l.DecidedAt = &now
	l.ApproverResponse = req.Response

	if err := s.LeaveRepository.Update(ctx, &l); err != nil {
		return leave.Leave{}, fmt.Errorf("failed to update leave: %w", err)
	}

	kind := notification.KindSuccess
	body := fmt.Sprintf("%s approved your %s leave (%s to %s)", caller.Name, l.Type, l.DateFrom, l.DateTo)
	if target == leave.StatusRejected {
		kind = notification.KindError
		body = fmt.Sprintf("%s rejected your %s leave (%s to %s)", caller.Name, l.Type, l.DateFrom, l.DateTo)
		if req.Response != nil {
			body += ": " + *req.Response
		}
	}

	s.notificationService.Queue(notification.CreateNotificationRequest{
		RecipientID: l.EmployeeID,
		Kind:        kind,
		Title:       "Leave " + string(target),
		Body:        body,
		Link:        linkTo("/leaves"),
	})

	return l, nil
}

// RequestCancellation implements leave.LeaveService.
func (s *LeaveServiceImpl) RequestCancellation(ctx context.Context, leaveID string, req leave.CancelLeaveRequest) (leave.Leave, error) {
	if err := req.Validate(); err != nil {
		return leave.Leave{}, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return leave.Leave{}, err
	}

	l, err := s.LeaveRepository.GetByID(ctx, leaveID)
	if err != nil {
		return leave.Leave{}, err
	}

	if l.EmployeeID != caller.EmployeeID {
		return leave.Leave{}, leave.ErrNotLeaveOwner
	}

	if !leave.CanTransition(l.Status, leave.StatusCancelRequested) {
		return leave.Leave{}, leave.ErrInvalidTransition
	}

	l.Status = leave.StatusCancelRequested
	l.CancelReason = &req.Reason

	if err := s.LeaveRepository.Update(ctx, &l); err != nil {
		return leave.Leave{}, fmt.Errorf("failed to update leave: %w", err)
	}

	s.notificationService.Queue(notification.CreateNotificationRequest{
		RecipientID: l.ApproverID,
		Kind:        notification.KindWarning,
		Title:       "Leave cancellation requested",
		Body:        fmt.Sprintf("%s wants to cancel their %s leave (%s to %s): %s", caller.Name, l.Type, l.DateFrom, l.DateTo, req.Reason),
		Link:        linkTo("/leaves"),
	})

	return l, nil
}

// ResolveCancellation implements leave.LeaveService.
func (s *LeaveServiceImpl) ResolveCancellation(ctx context.Context, leaveID string, confirm bool) (leave.Leave, error) {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return leave.Leave{}, err
	}

	l, err := s.LeaveRepository.GetByID(ctx, leaveID)
	if err != nil {
		return leave.Leave{}, err
	}

	if l.EmployeeID == caller.EmployeeID {
		return leave.Leave{}, leave.ErrCannotApproveOwn
	}

	if !canRuleOn(l, caller) {
		return leave.Leave{}, leave.ErrNotDesignatedApprover
	}

	if l.Status != leave.StatusCancelRequested {
		return leave.Leave{}, leave.ErrInvalidTransition
	}

	if confirm {
		l.Status = leave.StatusCancelled
	} else {
		// Denial restores the pre-request state: approved when the leave
		// had already been decided, pending otherwise. Rejected leaves
		// never reach cancel_requested, so a decision here means approval.
		if l.DecidedAt != nil {
			l.Status = leave.StatusApproved
		} else {
			l.Status = leave.StatusPending
		}
		l.CancelReason = nil
	}

	if err := s.LeaveRepository.Update(ctx, &l); err != nil {
		return leave.Leave{}, fmt.Errorf("failed to update leave: %w", err)
	}

	title := "Leave cancellation confirmed"
	body := fmt.Sprintf("%s confirmed cancellation of your %s leave (%s to %s)", caller.Name, l.Type, l.DateFrom, l.DateTo)
	kind := notification.KindSuccess
	if !confirm {
		title = "Leave cancellation denied"
		body = fmt.Sprintf("%s denied cancellation of your %s leave (%s to %s)", caller.Name, l.Type, l.DateFrom, l.DateTo)
		kind = notification.KindWarning
	}

	s.notificationService.Queue(notification.CreateNotificationRequest{
		RecipientID: l.EmployeeID,
		Kind:        kind,
		Title:       title,
		Body:        body,
		Link:        linkTo("/leaves"),
	})

	return l, nil
}

// Mine implements leave.LeaveService.
func (s *LeaveServiceImpl) Mine(ctx context.Context, filter leave.ListFilter) ([]leave.Leave, int, error) {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	filter.EmployeeID = caller.EmployeeID
	normalizePage(&filter)

	leaves, err := s.LeaveRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leaves: %w", err)
	}

	total, err := s.LeaveRepository.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count leaves: %w", err)
	}

	return leaves, total, nil
}

// TeamList implements leave.LeaveService.
func (s *LeaveServiceImpl) TeamList(ctx context.Context, filter leave.ListFilter) ([]leave.Leave, int, error) {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	if caller.Role != employee.RoleManager && caller.Role != employee.RoleAdmin {
		return nil, 0, employee.ErrNotPermitted
	}

	normalizePage(&filter)

	leaves, err := s.LeaveRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list team leaves: %w", err)
	}

	total, err := s.LeaveRepository.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count team leaves: %w", err)
	}

	return leaves, total, nil
}

func normalizePage(filter *leave.ListFilter) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
}

func linkTo(path string) *string {
	return &path
}
