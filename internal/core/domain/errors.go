package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedRule indicates a transliteration rule name is unknown.
	ErrUnsupportedRule = errors.New("unsupported rule")

	// ErrUnsupportedEncoding indicates an encoding mode string could not be parsed.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrNotSupported indicates a platform capability is missing on the
	// current platform. Callers fall back to a platform-neutral default.
	ErrNotSupported = errors.New("not supported on this platform")

	// ErrPipelineClosed indicates the conversion pipeline has been torn down.
	ErrPipelineClosed = errors.New("pipeline closed")

	// ErrServiceUnavailable indicates an external collaborator is not configured.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrRateLimited indicates a caller exceeded the permitted request rate.
	ErrRateLimited = errors.New("rate limited")
)
