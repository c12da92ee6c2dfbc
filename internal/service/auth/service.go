package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/netsg-cyber/Holidays-app/internal/domain/auth"
	"github.com/netsg-cyber/Holidays-app/internal/domain/holiday"
	"github.com/netsg-cyber/Holidays-app/internal/domain/user"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/database"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/ident"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/identity"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/token"
	"github.com/netsg-cyber/Holidays-app/internal/repository/postgresql"
)

const sessionTTL = 7 * 24 * time.Hour

type Service struct {
	db          *database.DB
	identity    identity.Client
	tokens      token.Service
	sessionRepo auth.SessionRepository
	userRepo    user.UserRepository
	credits     holiday.CreditService
}

func NewService(
	db *database.DB,
	identityClient identity.Client,
	tokenService token.Service,
	sessionRepository auth.SessionRepository,
	userRepository user.UserRepository,
	creditService holiday.CreditService,
) *Service {
	return &Service{
		db:          db,
		identity:    identityClient,
		tokens:      tokenService,
		sessionRepo: sessionRepository,
		userRepo:    userRepository,
		credits:     creditService,
	}
}

// ProcessSession exchanges a one-time identity-provider session id for
// a local session. First-time users are created with default credits;
// returning users get their profile refreshed from the provider.
func (s *Service) ProcessSession(ctx context.Context, sessionID string) (user.User, *http.Cookie, error) {
	data, err := s.identity.ExchangeSession(ctx, sessionID)
	if err != nil {
		slog.Error("Identity provider exchange failed", "error", err)
		return user.User{}, nil, auth.ErrIdentityExchangeFailed
	}

	var picture *string
	if data.Picture != "" {
		picture = &data.Picture
	}

	var current user.User
	existing, err := s.userRepo.GetByEmail(ctx, data.Email)
	switch {
	case err == nil:
		current, err = s.userRepo.UpdateProfile(ctx, existing.ID, data.Name, picture)
		if err != nil {
			return user.User{}, nil, fmt.Errorf("failed to refresh profile: %w", err)
		}
	case errors.Is(err, user.ErrUserNotFound):
		current, err = s.registerUser(ctx, data.Email, data.Name, picture)
		if err != nil {
			return user.User{}, nil, err
		}
	default:
		return user.User{}, nil, fmt.Errorf("failed to look up user: %w", err)
	}

	expiresAt := time.Now().Add(sessionTTL)
	session := auth.Session{
		ID:        ident.New(ident.PrefixSession),
		UserID:    current.ID,
		TokenID:   uuid.NewString(),
		ExpiresAt: expiresAt,
	}
	if _, err := s.sessionRepo.Create(ctx, session); err != nil {
		return user.User{}, nil, fmt.Errorf("failed to create session: %w", err)
	}

	signed, err := s.tokens.GenerateSessionToken(current.ID, session.TokenID, expiresAt)
	if err != nil {
		return user.User{}, nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return current, s.tokens.SessionCookie(signed, expiresAt), nil
}

// registerUser creates the user row and its default credits in one
// transaction.
func (s *Service) registerUser(ctx context.Context, email, name string, picture *string) (user.User, error) {
	newUser := user.User{
		ID:      ident.New(ident.PrefixUser),
		Email:   email,
		Name:    name,
		Picture: picture,
		Role:    user.RoleEmployee,
	}

	var created user.User
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.userRepo.Create(txCtx, newUser)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		return s.credits.SeedDefaults(txCtx, created.ID, created.Email, created.Name, time.Now().Year())
	})
	if err != nil {
		return user.User{}, err
	}

	slog.Info("New user registered", "user_id", created.ID, "email", created.Email)
	return created, nil
}

// Resolve validates a token id against the session store.
func (s *Service) Resolve(ctx context.Context, tokenID string) (auth.Snapshot, error) {
	session, err := s.sessionRepo.GetByTokenID(ctx, tokenID)
	if err != nil {
		if errors.Is(err, auth.ErrSessionNotFound) {
			return auth.Snapshot{}, auth.ErrNotAuthenticated
		}
		return auth.Snapshot{}, err
	}

	if session.Expired(time.Now()) {
		_ = s.sessionRepo.DeleteByTokenID(ctx, tokenID)
		return auth.Snapshot{}, auth.ErrSessionExpired
	}

	u, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return auth.Snapshot{}, auth.ErrNotAuthenticated
	}

	return auth.Snapshot{User: u, Session: session}, nil
}

// Logout revokes the session row and returns the clearing cookie.
func (s *Service) Logout(ctx context.Context, tokenID string) (*http.Cookie, error) {
	if tokenID != "" {
		if err := s.sessionRepo.DeleteByTokenID(ctx, tokenID); err != nil && !errors.Is(err, auth.ErrSessionNotFound) {
			return nil, err
		}
	}
	return s.tokens.ClearedSessionCookie(), nil
}

// CleanupExpired deletes sessions past their expiry.
func (s *Service) CleanupExpired(ctx context.Context) error {
	deleted, err := s.sessionRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	if deleted > 0 {
		slog.Info("Expired sessions removed", "count", deleted)
	}
	return nil
}
