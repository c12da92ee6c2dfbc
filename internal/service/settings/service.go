package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/netsg-cyber/Holidays-app/internal/domain/settings"
)

type Service struct {
	settings.SettingsRepository
}

func NewService(repository settings.SettingsRepository) *Service {
	return &Service{SettingsRepository: repository}
}

func (s *Service) Get(ctx context.Context) (settings.View, error) {
	current, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return settings.View{}, err
	}
	return current.View(), nil
}

func (s *Service) Update(ctx context.Context, emailNotificationsEnabled, calendarSyncEnabled bool) (settings.View, error) {
	current, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return settings.View{}, err
	}

	current.EmailNotificationsEnabled = emailNotificationsEnabled
	current.CalendarSyncEnabled = calendarSyncEnabled

	saved, err := s.SettingsRepository.Upsert(ctx, current)
	if err != nil {
		return settings.View{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return saved.View(), nil
}

// StoreGoogleTokens persists the OAuth tokens after a successful
// consent flow, connecting the integration.
func (s *Service) StoreGoogleTokens(ctx context.Context, tokens settings.GoogleTokens) error {
	current, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return err
	}

	current.GoogleTokens = &tokens
	if _, err := s.SettingsRepository.Upsert(ctx, current); err != nil {
		return fmt.Errorf("failed to store Google tokens: %w", err)
	}

	slog.Info("Google integration connected")
	return nil
}

// ClearGoogleTokens disconnects the integration.
func (s *Service) ClearGoogleTokens(ctx context.Context) error {
	current, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return err
	}

	current.GoogleTokens = nil
	if _, err := s.SettingsRepository.Upsert(ctx, current); err != nil {
		return fmt.Errorf("failed to clear Google tokens: %w", err)
	}

	slog.Info("Google integration disconnected")
	return nil
}
