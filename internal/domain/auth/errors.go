package auth

import "errors"

var (
	ErrNotAuthenticated       = errors.New("Not authenticated")
	ErrInvalidToken           = errors.New("Invalid session token")
	ErrSessionExpired         = errors.New("Session expired")
	ErrSessionNotFound        = errors.New("Invalid session")
	ErrIdentityExchangeFailed = errors.New("Identity provider session exchange failed")
)
