package rules

import "errors"

var (
	// ErrInvalidTable indicates a rule table could not be parsed.
	ErrInvalidTable = errors.New("invalid rule table")

	// ErrDuplicateTable indicates two tables share a name.
	ErrDuplicateTable = errors.New("duplicate rule table")
)
