package settings

import "time"

// SettingsID is the key of the singleton settings row.
const SettingsID = "app_settings"

// GoogleTokens are the stored OAuth2 tokens of the org-wide Google
// integration account (Gmail + Calendar). Never serialized to clients.
type GoogleTokens struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}

// Settings is the organization-wide configuration singleton.
type Settings struct {
	ID                        string        `json:"settings_id"`
	EmailNotificationsEnabled bool          `json:"email_notifications_enabled"`
	CalendarSyncEnabled       bool          `json:"calendar_sync_enabled"`
	NotificationEmail         *string       `json:"notification_email"`
	GoogleTokens              *GoogleTokens `json:"-"`
	UpdatedAt                 time.Time     `json:"updated_at"`
}

// View is the client-facing projection; google_connected is derived
// from the token presence without exposing the tokens.
type View struct {
	ID                        string    `json:"settings_id"`
	EmailNotificationsEnabled bool      `json:"email_notifications_enabled"`
	CalendarSyncEnabled       bool      `json:"calendar_sync_enabled"`
	NotificationEmail         *string   `json:"notification_email"`
	GoogleConnected           bool      `json:"google_connected"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

func (s Settings) View() View {
	return View{
		ID:                        s.ID,
		EmailNotificationsEnabled: s.EmailNotificationsEnabled,
		CalendarSyncEnabled:       s.CalendarSyncEnabled,
		NotificationEmail:         s.NotificationEmail,
		GoogleConnected:           s.GoogleTokens != nil && s.GoogleTokens.AccessToken != "",
		UpdatedAt:                 s.UpdatedAt,
	}
}

// Defaults returns the settings used before HR ever saves any.
func Defaults() Settings {
	return Settings{
		ID:                        SettingsID,
		EmailNotificationsEnabled: true,
		CalendarSyncEnabled:       true,
	}
}
