package domain

import "errors"

var (
	ErrEmailExists        = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordMismatch   = errors.New("new passwords do not match")
	ErrPasswordTooShort   = errors.New("new password must be at least 6 characters long")
	ErrProfileNotFound    = errors.New("user profile not found")
	ErrNotLoggedIn        = errors.New("no user is logged in")
	ErrNotAdmin           = errors.New("admin role required")
	ErrSessionActive      = errors.New("a workout session is already active")
	ErrSessionNotActive   = errors.New("no active workout session")
	ErrIndexOutOfRange    = errors.New("exercise index out of range")
)
