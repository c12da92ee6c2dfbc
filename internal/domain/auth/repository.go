package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/netsg-cyber/Holidays-app/internal/domain/user"
)

// SessionRepository - interface for the sessions table
type SessionRepository interface {
	Create(ctx context.Context, session Session) (Session, error)
	GetByTokenID(ctx context.Context, tokenID string) (Session, error)
	DeleteByTokenID(ctx context.Context, tokenID string) error
	DeleteByUserID(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// AuthService - session lifecycle operations
type AuthService interface {
	// ProcessSession exchanges an identity-provider session id for a
	// local session; first-time users are created with default credits.
	ProcessSession(ctx context.Context, sessionID string) (user.User, *http.Cookie, error)
	// Resolve validates a token id against the session store and
	// returns the authenticated snapshot.
	Resolve(ctx context.Context, tokenID string) (Snapshot, error)
	Logout(ctx context.Context, tokenID string) (*http.Cookie, error)
	CleanupExpired(ctx context.Context) error
}
