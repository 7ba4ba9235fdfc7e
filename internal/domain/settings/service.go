package settings

import "context"

type SettingsService interface {
	// Get returns the company settings, falling back to the hardcoded
	// default when none have been saved.
	Get(ctx context.Context) (CompanySettings, error)

	// Update saves new settings. Admin or Manager only. Existing
	// attendance records keep the geofence snapshots taken at punch time.
	Update(ctx context.Context, req UpdateSettingsRequest) (CompanySettings, error)
}
