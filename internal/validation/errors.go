package validation

import "errors"

// Error is returned by Validate when a predicate rejects the input.
// It is recovered locally by the field's prompt loop and never escapes Fill.
type Error struct {
	Message string // Message shown to the operator
	Input   string // The rejected input
	Rule    int    // Index of the rule that failed
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var vErr *Error
	return errors.As(err, &vErr)
}
