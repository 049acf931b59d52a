package form

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a form error
type ErrorType int

const (
	// ErrTypeNotFound indicates no field has the requested name
	ErrTypeNotFound ErrorType = iota
	// ErrTypeIncorrectType indicates the field does not hold the requested type
	ErrTypeIncorrectType
	// ErrTypeNoValue indicates the field has not been filled yet
	ErrTypeNoValue
	// ErrTypeFill indicates filling a field failed on an I/O error
	ErrTypeFill
	// ErrTypeDefinition indicates the form or a field was declared incorrectly
	ErrTypeDefinition
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNotFound:
		return "Field Not Found"
	case ErrTypeIncorrectType:
		return "Incorrect Type"
	case ErrTypeNoValue:
		return "No Value"
	case ErrTypeFill:
		return "Fill Error"
	case ErrTypeDefinition:
		return "Definition Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error is returned by form operations that the caller has to handle.
type Error struct {
	Type    ErrorType
	Field   string // Field name, empty when not tied to one field
	Message string
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	prefix := e.Type.String()
	if e.Field != "" {
		prefix = fmt.Sprintf("%s: field '%s'", prefix, e.Field)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", prefix, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrNoParser is returned when a text field's value type has no built-in
// parser and none was supplied with WithParser.
var ErrNoParser = errors.New("form: no parser for field type")

// NewNotFoundError creates a lookup error
func NewNotFoundError(name string) *Error {
	return &Error{Type: ErrTypeNotFound, Field: name, Message: "not found"}
}

// NewIncorrectTypeError creates a type mismatch error
func NewIncorrectTypeError(name string, kind Kind, want string) *Error {
	return &Error{
		Type:    ErrTypeIncorrectType,
		Field:   name,
		Message: fmt.Sprintf("%s field does not hold %s", kind, want),
	}
}

// NewNoValueError creates an error for reading a field before it is filled
func NewNoValueError(name string) *Error {
	return &Error{Type: ErrTypeNoValue, Field: name, Message: "field has no value"}
}

// NewFillError wraps a failure from a field's Fill
func NewFillError(name string, err error) *Error {
	return &Error{Type: ErrTypeFill, Field: name, Message: "failed to fill", Err: err}
}

// NewDefinitionError creates an error for an invalid declaration
func NewDefinitionError(name string, message string) *Error {
	return &Error{Type: ErrTypeDefinition, Field: name, Message: message}
}

func isType(err error, typ ErrorType) bool {
	var fErr *Error
	if errors.As(err, &fErr) {
		return fErr.Type == typ
	}
	return false
}

// IsNotFound checks if an error is a lookup failure
func IsNotFound(err error) bool { return isType(err, ErrTypeNotFound) }

// IsIncorrectType checks if an error is a type mismatch
func IsIncorrectType(err error) bool { return isType(err, ErrTypeIncorrectType) }

// IsNoValue checks if an error is a read before fill
func IsNoValue(err error) bool { return isType(err, ErrTypeNoValue) }

// IsFillError checks if an error came from filling a field
func IsFillError(err error) bool { return isType(err, ErrTypeFill) }
