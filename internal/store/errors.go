package store

import "errors"

var (
	// ErrCorrupt marks storage that exists but does not parse as the
	// expected format. No auto-repair is attempted.
	ErrCorrupt = errors.New("session storage corrupt")

	// ErrIO marks storage that cannot be read or written. The triggering
	// operation fails and is not retried.
	ErrIO = errors.New("session storage unavailable")
)
