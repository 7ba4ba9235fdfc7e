package settings

import (
	"context"
	"testing"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/employee"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/settings"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsRepo struct {
	stored *settings.CompanySettings
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (settings.CompanySettings, error) {
	if f.stored == nil {
		return settings.CompanySettings{}, settings.ErrSettingsNotFound
	}
	return *f.stored, nil
}

func (f *fakeSettingsRepo) Upsert(ctx context.Context, s *settings.CompanySettings) error {
	f.stored = s
	return nil
}

func claimsContext(t *testing.T, employeeID string, role employee.Role) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("settings-test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"role":        string(role),
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestGetFallsBackToDefault(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})

	cfg, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, settings.Default(), cfg)
}

func TestGetReturnsSaved(t *testing.T) {
	saved := settings.CompanySettings{OfficeName: "Mumbai Office", OfficeLatitude: 19.0760, OfficeLongitude: 72.8777, RadiusMeters: 150}
	svc := NewSettingsService(&fakeSettingsRepo{stored: &saved})

	cfg, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Mumbai Office", cfg.OfficeName)
}

func TestUpdate(t *testing.T) {
	req := settings.UpdateSettingsRequest{
		OfficeName:      "Mumbai Office",
		OfficeLatitude:  19.0760,
		OfficeLongitude: 72.8777,
		RadiusMeters:    150,
		WorkdayStart:    "10:00",
		WorkdayEnd:      "19:00",
	}

	t.Run("employees may not update", func(t *testing.T) {
		svc := NewSettingsService(&fakeSettingsRepo{})

		_, err := svc.Update(claimsContext(t, "emp-1", employee.RoleEmployee), req)
		assert.ErrorIs(t, err, employee.ErrNotPermitted)
	})

	t.Run("manager saves", func(t *testing.T) {
		repo := &fakeSettingsRepo{}
		svc := NewSettingsService(repo)

		cfg, err := svc.Update(claimsContext(t, "mgr-1", employee.RoleManager), req)
		require.NoError(t, err)
		require.NotNil(t, cfg.UpdatedBy)
		assert.Equal(t, "mgr-1", *cfg.UpdatedBy)
	})

	t.Run("admin saves and is recorded", func(t *testing.T) {
		repo := &fakeSettingsRepo{}
		svc := NewSettingsService(repo)

		cfg, err := svc.Update(claimsContext(t, "adm-1", employee.RoleAdmin), req)
		require.NoError(t, err)

		assert.Equal(t, "Mumbai Office", cfg.OfficeName)
		require.NotNil(t, cfg.UpdatedBy)
		assert.Equal(t, "adm-1", *cfg.UpdatedBy)
		require.NotNil(t, repo.stored)
	})

	t.Run("rejects invalid payload", func(t *testing.T) {
		svc := NewSettingsService(&fakeSettingsRepo{})

		bad := req
		bad.RadiusMeters = -5
		_, err := svc.Update(claimsContext(t, "adm-1", employee.RoleAdmin), bad)
		assert.Error(t, err)
	})
}
