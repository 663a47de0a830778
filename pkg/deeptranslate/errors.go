package deeptranslate

import "errors"

var (
	// ErrNotFound is returned by Lookup when a key resolves to nothing.
	ErrNotFound = errors.New("deeptranslate: translation not found")

	// ErrMaxDepth is returned when resolution descends deeper than the configured limit.
	// It indicates a cyclic or malformed lookup function.
	ErrMaxDepth = errors.New("deeptranslate: maximum resolution depth exceeded")

	// ErrInvalidLocaleEntry is returned when a locale tree contains a value
	// that is neither a string nor a nested mapping.
	ErrInvalidLocaleEntry = errors.New("deeptranslate: invalid locale entry")
)
