package postgresql

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/netsg-cyber/Holidays-app/internal/domain/settings"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/database"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

// Get implements settings.SettingsRepository. Returns the defaults
// when the singleton row has never been written.
func (r *settingsRepositoryImpl) Get(ctx context.Context) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email_notifications_enabled, calendar_sync_enabled,
			   notification_email, google_tokens, updated_at
		FROM app_settings
		WHERE id = $1
	`

	var s settings.Settings
	var tokens []byte
	err := q.QueryRow(ctx, query, settings.SettingsID).Scan(
		&s.ID,
		&s.EmailNotificationsEnabled,
		&s.CalendarSyncEnabled,
		&s.NotificationEmail,
		&tokens,
		&s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return settings.Defaults(), nil
		}
		return settings.Settings{}, err
	}

	if len(tokens) > 0 {
		var gt settings.GoogleTokens
		if err := json.Unmarshal(tokens, &gt); err != nil {
			return settings.Settings{}, err
		}
		s.GoogleTokens = &gt
	}

	return s, nil
}

// Upsert implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Upsert(ctx context.Context, s settings.Settings) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	var tokens []byte
	if s.GoogleTokens != nil {
		var err error
		tokens, err = json.Marshal(s.GoogleTokens)
		if err != nil {
			return settings.Settings{}, err
		}
	}

	query := `
		INSERT INTO app_settings (
			id, email_notifications_enabled, calendar_sync_enabled,
			notification_email, google_tokens, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE SET
			email_notifications_enabled = EXCLUDED.email_notifications_enabled,
			calendar_sync_enabled = EXCLUDED.calendar_sync_enabled,
			notification_email = EXCLUDED.notification_email,
			google_tokens = EXCLUDED.google_tokens,
			updated_at = NOW()
		RETURNING id, email_notifications_enabled, calendar_sync_enabled,
				  notification_email, updated_at
	`

	var saved settings.Settings
	err := q.QueryRow(ctx, query,
		settings.SettingsID,
		s.EmailNotificationsEnabled,
		s.CalendarSyncEnabled,
		s.NotificationEmail,
		tokens,
	).Scan(
		&saved.ID,
		&saved.EmailNotificationsEnabled,
		&saved.CalendarSyncEnabled,
		&saved.NotificationEmail,
		&saved.UpdatedAt,
	)
	if err != nil {
		return settings.Settings{}, err
	}

	saved.GoogleTokens = s.GoogleTokens
	return saved, nil
}
