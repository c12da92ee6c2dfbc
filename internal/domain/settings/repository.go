package settings

import "context"

// SettingsRepository - interface for the app_settings singleton row
type SettingsRepository interface {
	Get(ctx context.Context) (Settings, error)
	// Upsert replaces the singleton row.
	Upsert(ctx context.Context, s Settings) (Settings, error)
}

// SettingsService - org configuration operations
type SettingsService interface {
	Get(ctx context.Context) (View, error)
	Update(ctx context.Context, emailNotificationsEnabled, calendarSyncEnabled bool) (View, error)
	StoreGoogleTokens(ctx context.Context, tokens GoogleTokens) error
	ClearGoogleTokens(ctx context.Context) error
}
