package health

import "errors"

var (
	// ErrCheckFailed wraps every failed check.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrUnexpectedStatus is returned by HTTPCheck for non-2xx responses.
	ErrUnexpectedStatus = errors.New("health: unexpected status")
)
