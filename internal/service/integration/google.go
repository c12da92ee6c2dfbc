package integration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/oauth2"

	"github.com/netsg-cyber/Holidays-app/internal/domain/settings"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/google"
)

// GoogleIntegration gates every Gmail/Calendar call behind the stored
// workspace tokens and the org settings toggles. Calls degrade to
// no-ops when the integration is disconnected or the toggle is off;
// notification and sync failures never fail the triggering operation.
type GoogleIntegration struct {
	settingsRepo settings.SettingsRepository
	google       google.Service
}

func NewGoogleIntegration(settingsRepo settings.SettingsRepository, googleService google.Service) *GoogleIntegration {
	return &GoogleIntegration{
		settingsRepo: settingsRepo,
		google:       googleService,
	}
}

// SendEmail sends an HTML email through the connected Gmail account.
// Returns nil without sending when notifications are disabled or the
// integration is not connected.
func (g *GoogleIntegration) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	s, err := g.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if !s.EmailNotificationsEnabled {
		return nil
	}
	token := oauthToken(s.GoogleTokens)
	if token == nil {
		slog.Warn("Google integration not connected, skipping email", "to", to, "subject", subject)
		return nil
	}

	updated, err := g.google.SendMail(ctx, token, google.Mail{To: to, Subject: subject, Body: htmlBody})
	g.persistToken(ctx, s, token, updated)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	slog.Info("Email notification sent", "to", to, "subject", subject)
	return nil
}

// CreateCalendarEvent inserts an all-day event into the connected
// calendar and returns its id, or nil when sync is off, disconnected,
// or the insert fails.
func (g *GoogleIntegration) CreateCalendarEvent(ctx context.Context, summary, description, startDate, endDate string) *string {
	s, err := g.settingsRepo.Get(ctx)
	if err != nil {
		slog.Error("Failed to load settings for calendar sync", "error", err)
		return nil
	}
	if !s.CalendarSyncEnabled {
		return nil
	}
	token := oauthToken(s.GoogleTokens)
	if token == nil {
		return nil
	}

	eventID, updated, err := g.google.CreateEvent(ctx, token, google.Event{
		Summary:     summary,
		Description: description,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	g.persistToken(ctx, s, token, updated)
	if err != nil {
		slog.Error("Failed to create calendar event", "summary", summary, "error", err)
		return nil
	}

	slog.Info("Calendar event created", "event_id", eventID, "summary", summary)
	return &eventID
}

// DeleteCalendarEvent removes an event from the connected calendar.
// Best effort; failures are logged only.
func (g *GoogleIntegration) DeleteCalendarEvent(ctx context.Context, eventID string) {
	s, err := g.settingsRepo.Get(ctx)
	if err != nil {
		slog.Error("Failed to load settings for calendar sync", "error", err)
		return
	}
	token := oauthToken(s.GoogleTokens)
	if token == nil {
		return
	}

	updated, err := g.google.DeleteEvent(ctx, token, eventID)
	g.persistToken(ctx, s, token, updated)
	if err != nil {
		slog.Error("Failed to delete calendar event", "event_id", eventID, "error", err)
	}
}

// persistToken writes the refreshed token back to settings when the
// API call rotated it.
func (g *GoogleIntegration) persistToken(ctx context.Context, s settings.Settings, before, after *oauth2.Token) {
	if after == nil || after.AccessToken == before.AccessToken {
		return
	}

	tokens := settings.GoogleTokens{
		AccessToken:  after.AccessToken,
		RefreshToken: after.RefreshToken,
	}
	if tokens.RefreshToken == "" && s.GoogleTokens != nil {
		tokens.RefreshToken = s.GoogleTokens.RefreshToken
	}
	if !after.Expiry.IsZero() {
		expiry := after.Expiry
		tokens.ExpiresAt = &expiry
	}

	s.GoogleTokens = &tokens
	if _, err := g.settingsRepo.Upsert(ctx, s); err != nil {
		slog.Error("Failed to persist refreshed Google token", "error", err)
	}
}

func oauthToken(t *settings.GoogleTokens) *oauth2.Token {
	if t == nil || t.AccessToken == "" {
		return nil
	}

	token := &oauth2.Token{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    "Bearer",
	}
	if t.ExpiresAt != nil {
		token.Expiry = *t.ExpiresAt
	} else {
		// Force the oauth2 transport to refresh on first use.
		token.Expiry = time.Now().Add(-time.Minute)
	}
	return token
}
