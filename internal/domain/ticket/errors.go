package ticket

import "errors"

var (
	// ErrInvalidArgument indicates a value outside an operation's allowed set.
	// Wrapped errors name the offending value and the valid alternatives.
	ErrInvalidArgument = errors.New("invalid argument")
)
