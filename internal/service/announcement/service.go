package announcement

import (
	"context"
	"fmt"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/announcement"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/employee"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/notification"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type AnnouncementServiceImpl struct {
	announcement.AnnouncementRepository
	employee.EmployeeRepository
	notificationService notification.NotificationService
}

func NewAnnouncementService(announcementRepo announcement.AnnouncementRepository, employeeRepo employee.EmployeeRepository, notificationService notification.NotificationService) announcement.AnnouncementService {
	return &AnnouncementServiceImpl{
		AnnouncementRepository: announcementRepo,
		EmployeeRepository:     employeeRepo,
		notificationService:    notificationService,
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

// Create implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Create(ctx context.Context, req announcement.CreateAnnouncementRequest) (announcement.Announcement, error) {
	if err := req.Validate(); err != nil {
		return announcement.Announcement{}, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return announcement.Announcement{}, err
	}

	if caller.Role != employee.RoleManager && caller.Role != employee.RoleAdmin {
		return announcement.Announcement{}, employee.ErrNotPermitted
	}

	a := announcement.Announcement{
		ID:       uuid.New().String(),
		Title:    req.Title,
		Body:     req.Body,
		Kind:     announcement.Kind(req.Kind),
		AuthorID: caller.EmployeeID,
	}

	if err := s.AnnouncementRepository.Create(ctx, &a); err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}
	a.AuthorName = caller.Name

	s.notifyEveryone(ctx, caller, a)

	return a, nil
}

// Delete implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Delete(ctx context.Context, announcementID string) error {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	a, err := s.AnnouncementRepository.GetByID(ctx, announcementID)
	if err != nil {
		return err
	}

	if a.AuthorID != caller.EmployeeID && caller.Role != employee.RoleAdmin {
		return announcement.ErrNotAnnouncementOwner
	}

	return s.AnnouncementRepository.Delete(ctx, announcementID)
}

// List implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) List(ctx context.Context, limit int, offset int) ([]announcement.Announcement, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	announcements, err := s.AnnouncementRepository.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list announcements: %w", err)
	}

	total, err := s.AnnouncementRepository.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count announcements: %w", err)
	}

	return announcements, total, nil
}

func (s *AnnouncementServiceImpl) notifyEveryone(ctx context.Context, caller callerClaims, a announcement.Announcement) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return
	}

	kind := notification.KindInfo
	if a.Kind == announcement.KindUrgent {
		kind = notification.KindWarning
	}

	link := "/announcements"
	reqs := make([]notification.CreateNotificationRequest, 0, len(employees))
	for _, e := range employees {
		if e.ID == caller.EmployeeID || !e.IsActive() {
			continue
		}
		reqs = append(reqs, notification.CreateNotificationRequest{
			RecipientID: e.ID,
			Kind:        kind,
			Title:       "Announcement: " + a.Title,
			Body:        a.Body,
			Link:        &link,
		})
	}

	s.notificationService.Queue(reqs...)
}
