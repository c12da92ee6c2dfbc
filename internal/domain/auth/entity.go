package auth

import (
	"time"

	"github.com/netsg-cyber/Holidays-app/internal/domain/user"
)

// Session entity. The browser holds a signed session token (cookie or
// bearer); the jti claim inside it maps to TokenID here so logout can
// revoke the token by deleting the row.
type Session struct {
	ID        string
	UserID    string
	TokenID   string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}

// Snapshot is the immutable per-request view of the authenticated
// session, carried on the request context instead of any ambient
// global state.
type Snapshot struct {
	User    user.User
	Session Session
}
