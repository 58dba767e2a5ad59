package config

import "errors"

var (
	// ErrNilPointer is returned when Load receives a nil target.
	ErrNilPointer = errors.New("config: target must be a non-nil pointer")

	// ErrParsingConfig is returned when environment parsing fails,
	// including when a required variable is absent.
	ErrParsingConfig = errors.New("config: failed to parse environment")
)
