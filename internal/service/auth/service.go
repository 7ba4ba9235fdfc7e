package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/auth"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/employee"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/jwt"
	"github.com/google/uuid"
	jwxjwt "github.com/lestrrat-go/jwx/v2/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employee.EmployeeRepository
	jwtService jwt.Service
}

func NewAuthService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		EmployeeRepository: employeeRepo,
		jwtService:         jwtService,
	}
}

// Signup implements auth.AuthService.
func (s *AuthServiceImpl) Signup(ctx context.Context, req auth.SignupRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByEmail(ctx, req.Email); err == nil {
		return auth.TokenResponse{}, employee.ErrEmailExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	if req.Phone != "" {
		if _, err := s.EmployeeRepository.GetByPhone(ctx, req.Phone); err == nil {
			return auth.TokenResponse{}, employee.ErrPhoneExists
		} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, fmt.Errorf("failed to check phone: %w", err)
		}
	}

	count, err := s.EmployeeRepository.Count(ctx)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}

	// The first account to register owns the workspace. Everyone after
	// that starts as a regular employee; an Admin promotes from there.
	role := employee.RoleEmployee
	if count == 0 {
		role = employee.RoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	newEmployee := employee.Employee{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		Role:         role,
		Status:       employee.StatusActive,
		PasswordHash: &hashStr,
	}
	if req.Phone != "" {
		newEmployee.Phone = &req.Phone
	}

	created, err := s.EmployeeRepository.Create(ctx, newEmployee)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return s.issueTokens(created)
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if emp.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !emp.IsActive() {
		return auth.TokenResponse{}, employee.ErrAccountInactive
	}

	return s.issueTokens(emp)
}

// LoginWithGoogle implements auth.AuthService.
func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, googleEmail string) (auth.TokenResponse, error) {
	emp, err := s.EmployeeRepository.GetByEmail(ctx, googleEmail)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrGoogleNotLinked
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if !emp.IsActive() {
		return auth.TokenResponse{}, employee.ErrAccountInactive
	}

	return s.issueTokens(emp)
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	employeeID, err := s.validateRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if !emp.IsActive() {
		return auth.TokenResponse{}, employee.ErrAccountInactive
	}

	// Rotate: the presented refresh token is single use.
	s.jwtService.RevokeToken(refreshToken)

	return s.issueTokens(emp)
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

func (s *AuthServiceImpl) validateRefreshToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", auth.ErrInvalidToken
	}

	if s.jwtService.IsTokenRevoked(tokenString) {
		return "", auth.ErrTokenRevoked
	}

	token, err := s.jwtService.JWTAuth().Decode(tokenString)
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	if err := jwxjwt.Validate(token, jwxjwt.WithAcceptableSkew(30*time.Second)); err != nil {
		return "", auth.ErrInvalidToken
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "refresh" {
		return "", auth.ErrInvalidToken
	}

	idVal, ok := token.Get("employee_id")
	if !ok {
		return "", auth.ErrInvalidToken
	}

	employeeID, ok := idVal.(string)
	if !ok || employeeID == "" {
		return "", auth.ErrInvalidToken
	}

	return employeeID, nil
}

func (s *AuthServiceImpl) issueTokens(emp employee.Employee) (auth.TokenResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.Name, emp.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExp,
		Employee:              employee.ToResponse(emp),
	}, nil
}
