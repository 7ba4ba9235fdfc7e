package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/employee"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/settings"
	"github.com/go-chi/jwtauth/v5"
)

type SettingsServiceImpl struct {
	settings.SettingsRepository
}

func NewSettingsService(settingsRepo settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{SettingsRepository: settingsRepo}
}

// Get implements settings.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.CompanySettings, error) {
	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.Default(), nil
		}
		return settings.CompanySettings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	return cfg, nil
}

// Update implements settings.SettingsService.
func (s *SettingsServiceImpl) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.CompanySettings, error) {
	if err := req.Validate(); err != nil {
		return settings.CompanySettings{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return settings.CompanySettings{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, _ := claims["employee_id"].(string)
	roleStr, _ := claims["role"].(string)
	role := employee.Role(roleStr)
	if role != employee.RoleAdmin && role != employee.RoleManager {
		return settings.CompanySettings{}, employee.ErrNotPermitted
	}

	cfg := settings.CompanySettings{
		OfficeName:      req.OfficeName,
		OfficeLatitude:  req.OfficeLatitude,
		OfficeLongitude: req.OfficeLongitude,
		RadiusMeters:    req.RadiusMeters,
		WorkdayStart:    req.WorkdayStart,
		WorkdayEnd:      req.WorkdayEnd,
		UpdatedBy:       &employeeID,
	}

	if err := s.SettingsRepository.Upsert(ctx, &cfg); err != nil {
		return settings.CompanySettings{}, fmt.Errorf("failed to save settings: %w", err)
	}

	return cfg, nil
}
