package settings

import "context"

type SettingsRepository interface {
	// Get returns the singleton settings row, or ErrSettingsNotFound when
	// it has never been written.
	Get(ctx context.Context) (CompanySettings, error)
	// Upsert writes the singleton row, creating it on first save.
	Upsert(ctx context.Context, s *CompanySettings) error
}
