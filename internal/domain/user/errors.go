package user

import "errors"

var (
	ErrUserNotFound     = errors.New("User not found")
	ErrEmailExists      = errors.New("User with this email already exists")
	ErrInvalidRole      = errors.New("Invalid role")
	ErrSelfDeletion     = errors.New("Cannot delete your own account")
	ErrHRAccessRequired = errors.New("HR access required")
)
