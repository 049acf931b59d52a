package terminal

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of terminal failure
type ErrorType int

const (
	// ErrTypeMode indicates reading or applying terminal attributes failed
	ErrTypeMode ErrorType = iota
	// ErrTypeRead indicates reading input failed (including end of input)
	ErrTypeRead
	// ErrTypeWrite indicates writing or flushing output failed
	ErrTypeWrite
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeMode:
		return "Terminal Mode Error"
	case ErrTypeRead:
		return "Read Error"
	case ErrTypeWrite:
		return "Write Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error is a terminal I/O failure. These are fatal for the current fill and
// always propagate to the caller.
type Error struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// NewModeError creates a terminal attribute error
func NewModeError(message string, err error) *Error {
	return &Error{Type: ErrTypeMode, Message: message, Err: err}
}

// NewReadError creates an input error
func NewReadError(message string, err error) *Error {
	return &Error{Type: ErrTypeRead, Message: message, Err: err}
}

// NewWriteError creates an output error
func NewWriteError(message string, err error) *Error {
	return &Error{Type: ErrTypeWrite, Message: message, Err: err}
}

// IsTerminalError checks if an error is a terminal error of the given type
func IsTerminalError(err error, typ ErrorType) bool {
	var tErr *Error
	if errors.As(err, &tErr) {
		return tErr.Type == typ
	}
	return false
}
