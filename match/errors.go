package match

import "errors"

var (
	// ErrInvalidPattern is returned when a rule's regex fails to compile.
	ErrInvalidPattern = errors.New("match: regex failed to compile")

	// ErrInvalidBackreference is returned when a rule's template references
	// a capture group beyond the compiled pattern's group count.
	ErrInvalidBackreference = errors.New("match: template references a capture group that does not exist")

	// ErrMalformedRecord is returned when a rule record is missing a
	// required field (currently: an empty regex string).
	ErrMalformedRecord = errors.New("match: rule record is missing its regex")
)
