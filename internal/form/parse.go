package form

import (
	"encoding"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Parser converts trimmed input text into a field value.
type Parser[T any] func(string) (T, error)

// DefaultParser returns the built-in parser for T, or nil when T has none.
// Strings, bools, every integer and float kind, and types implementing
// encoding.TextUnmarshaler are supported. rune is parsed as an int32; use
// Char, or ParseRune with FormatRune, for single characters.
func DefaultParser[T any]() Parser[T] {
	var probe T
	switch any(&probe).(type) {
	case *string, *bool,
		*int, *int8, *int16, *int32, *int64,
		*uint, *uint8, *uint16, *uint32, *uint64,
		*float32, *float64,
		encoding.TextUnmarshaler:
		return parseBuiltin[T]
	default:
		return nil
	}
}

func parseBuiltin[T any](s string) (T, error) {
	var v T
	var err error
	switch p := any(&v).(type) {
	case *string:
		*p = s
	case *bool:
		*p, err = strconv.ParseBool(s)
	case *int:
		var n int64
		n, err = strconv.ParseInt(s, 10, strconv.IntSize)
		*p = int(n)
	case *int8:
		var n int64
		n, err = strconv.ParseInt(s, 10, 8)
		*p = int8(n)
	case *int16:
		var n int64
		n, err = strconv.ParseInt(s, 10, 16)
		*p = int16(n)
	case *int32:
		var n int64
		n, err = strconv.ParseInt(s, 10, 32)
		*p = int32(n)
	case *int64:
		*p, err = strconv.ParseInt(s, 10, 64)
	case *uint:
		var n uint64
		n, err = strconv.ParseUint(s, 10, strconv.IntSize)
		*p = uint(n)
	case *uint8:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 8)
		*p = uint8(n)
	case *uint16:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 16)
		*p = uint16(n)
	case *uint32:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 32)
		*p = uint32(n)
	case *uint64:
		*p, err = strconv.ParseUint(s, 10, 64)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		*p = float32(f)
	case *float64:
		*p, err = strconv.ParseFloat(s, 64)
	case encoding.TextUnmarshaler:
		err = p.UnmarshalText([]byte(s))
	default:
		err = fmt.Errorf("%w: %T", ErrNoParser, v)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// ParseRune accepts exactly one character.
func ParseRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("expected a single character, got %q", s)
	}
	return r, nil
}

// FormatRune renders a rune as the character it encodes.
func FormatRune(r rune) string {
	return string(r)
}
