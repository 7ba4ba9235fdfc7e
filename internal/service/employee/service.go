package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/employee"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepo}
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

	roleStr, ok := claims["role"].(string)
	if !ok || !employee.ValidRole(roleStr) {
		return callerClaims{}, fmt.Errorf("role claim is missing or invalid")
	}

	return callerClaims{
		EmployeeID: employeeID,
		Name:       name,
		Role:       employee.Role(roleStr),
	}, nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}

	return responses, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(e), nil
}

// UpdateProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateProfile(ctx context.Context, req employee.UpdateProfileRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.ID != caller.EmployeeID && caller.Role != employee.RoleAdmin {
		return employee.EmployeeResponse{}, employee.ErrNotPermitted
	}

	// Roles are granted by an Admin, never self-assigned.
	if req.Role != nil && caller.Role != employee.RoleAdmin {
		return employee.EmployeeResponse{}, employee.ErrNotPermitted
	}

	e, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Role != nil {
		e.Role = employee.Role(*req.Role)
	}
	if req.Phone != nil {
		if *req.Phone == "" {
			e.Phone = nil
		} else {
			e.Phone = req.Phone
		}
	}
	if req.Designation != nil {
		e.Designation = req.Designation
	}
	if req.Bio != nil {
		e.Bio = req.Bio
	}
	if req.AvatarURL != nil {
		e.AvatarURL = req.AvatarURL
	}
	if req.StatusText != nil {
		e.StatusText = req.StatusText
	}
	if req.StatusEmoji != nil {
		e.StatusEmoji = req.StatusEmoji
	}

	if err := s.EmployeeRepository.UpdateProfile(ctx, e); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update profile: %w", err)
	}

	return employee.ToResponse(e), nil
}

// UpdateStatus implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateStatus(ctx context.Context, req employee.UpdateStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	if caller.Role != employee.RoleAdmin {
		return employee.ErrNotPermitted
	}

	status := employee.Status(strings.ToLower(req.Status))
	if err := s.EmployeeRepository.UpdateStatus(ctx, req.ID, status); err != nil {
		return err
	}

	return nil
}

// ChangePassword implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ChangePassword(ctx context.Context, req employee.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	if req.ID != caller.EmployeeID && caller.Role != employee.RoleAdmin {
		return employee.ErrNotPermitted
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.EmployeeRepository.UpdatePassword(ctx, req.ID, string(hash)); err != nil {
		return err
	}

	return nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	if caller.Role != employee.RoleAdmin {
		return employee.ErrNotPermitted
	}

	if id == caller.EmployeeID {
		return employee.ErrCannotDeleteSelf
	}

	if err := s.EmployeeRepository.Delete(ctx, id); err != nil {
		return err
	}

	return nil
}
