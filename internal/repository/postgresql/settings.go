package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/domain/settings"
	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get implements settings.SettingsRepository.
func (r *settingsRepository) Get(ctx context.Context) (settings.CompanySettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, office_name, office_latitude, office_longitude, radius_meters,
			   workday_start, workday_end, updated_by, updated_at
		FROM company_settings
		WHERE id = 'company'
	`

	var s settings.CompanySettings
	err := q.QueryRow(ctx, query).Scan(
		&s.ID, &s.OfficeName, &s.OfficeLatitude, &s.OfficeLongitude, &s.RadiusMeters,
		&s.WorkdayStart, &s.WorkdayEnd, &s.UpdatedBy, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.CompanySettings{}, settings.ErrSettingsNotFound
		}
		return settings.CompanySettings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	return s, nil
}

// Upsert implements settings.SettingsRepository.
func (r *settingsRepository) Upsert(ctx context.Context, s *settings.CompanySettings) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO company_settings (
			id, office_name, office_latitude, office_longitude, radius_meters,
			workday_start, workday_end, updated_by
		) VALUES (
			'company', $1, $2, $3, $4, $5, $6, $7
		)
		ON CONFLICT (id) DO UPDATE SET
			office_name = EXCLUDED.office_name,
			office_latitude = EXCLUDED.office_latitude,
			office_longitude = EXCLUDED.office_longitude,
			radius_meters = EXCLUDED.radius_meters,
			workday_start = EXCLUDED.workday_start,
			workday_end = EXCLUDED.workday_end,
			updated_by = EXCLUDED.updated_by,
			updated_at = NOW()
		RETURNING id, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.OfficeName, s.OfficeLatitude, s.OfficeLongitude, s.RadiusMeters,
		s.WorkdayStart, s.WorkdayEnd, s.UpdatedBy,
	).Scan(&s.ID, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert settings: %w", err)
	}

	return nil
}
