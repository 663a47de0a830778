package session

import "errors"

// Session errors.
var (
	// ErrNotConfigured is returned when session functionality is used
	// but WithSession was not configured on the app.
	ErrNotConfigured = errors.New("session: not configured")

	// ErrNotFound is returned when a session or session value does not exist.
	ErrNotFound = errors.New("session: not found")

	// ErrExpired is returned when a session has expired.
	ErrExpired = errors.New("session: expired")

	// ErrInvalidSession is returned when a session cannot be stored.
	ErrInvalidSession = errors.New("session: invalid session")

	// ErrTypeMismatch is returned by Value when the stored value has a different type.
	ErrTypeMismatch = errors.New("session: type mismatch")
)
