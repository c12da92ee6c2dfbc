package settings

import "errors"

var (
	ErrGoogleNotConnected = errors.New("Google account is not connected")
	ErrInvalidOAuthState  = errors.New("Invalid OAuth state")
)
