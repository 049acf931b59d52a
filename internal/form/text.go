package form

import (
	"context"
	"fmt"
	"strings"

	"github.com/muurk/termform/internal/logging"
	"github.com/muurk/termform/internal/optional"
	"github.com/muurk/termform/internal/validation"
)

// TextField reads one line of free text, validates it and parses it into T.
type TextField[T any] struct {
	prompt    string
	validator *validation.Validator
	parse     Parser[T]
	kind      Kind
	format    func(T) string
	snapshot  func(T) any

	value  T
	filled bool
}

// Text declares a free-text field. validator may be nil.
func Text[T any](prompt string, validator *validation.Validator) *TextField[T] {
	return &TextField[T]{
		prompt:    prompt,
		validator: validator,
		parse:     DefaultParser[T](),
		kind:      KindText,
		snapshot:  func(v T) any { return v },
	}
}

// Char declares a single-character field. The value is displayed and
// snapshotted as the character itself rather than its code point.
func Char(prompt string, validator *validation.Validator) *TextField[rune] {
	return Text[rune](prompt, validator).WithParser(ParseRune).WithFormatter(FormatRune)
}

// OptionalText declares a free-text field whose blank input is stored as
// None. Retrieval as T yields T's zero value for None.
func OptionalText[T any](prompt string, validator *validation.Validator) *TextField[optional.Optional[T]] {
	f := &TextField[optional.Optional[T]]{
		prompt:    prompt,
		validator: validator,
		kind:      KindOptionalText,
		snapshot: func(v optional.Optional[T]) any {
			if inner, ok := v.Get(); ok {
				return inner
			}
			return nil
		},
	}
	if base := DefaultParser[T](); base != nil {
		f.parse = optionalParser(base)
	}
	return f
}

func optionalParser[T any](base Parser[T]) Parser[optional.Optional[T]] {
	return func(s string) (optional.Optional[T], error) {
		return optional.Parse[T](s, base)
	}
}

// WithParser replaces the parser for the field's value type.
func (f *TextField[T]) WithParser(parse Parser[T]) *TextField[T] {
	f.parse = parse
	return f
}

// WithFormatter sets how the stored value is displayed and snapshotted.
func (f *TextField[T]) WithFormatter(format func(T) string) *TextField[T] {
	f.format = format
	f.snapshot = func(v T) any { return format(v) }
	return f
}

// WithOptionalFormatter sets how an optional field's inner value is
// displayed and snapshotted. None still displays as "None".
func WithOptionalFormatter[T any](f *TextField[optional.Optional[T]], format func(T) string) *TextField[optional.Optional[T]] {
	f.format = func(v optional.Optional[T]) string {
		if inner, ok := v.Get(); ok {
			return format(inner)
		}
		return v.String()
	}
	f.snapshot = func(v optional.Optional[T]) any {
		if inner, ok := v.Get(); ok {
			return format(inner)
		}
		return nil
	}
	return f
}

// WithOptionalParser sets the parser of an optional field's inner type.
func WithOptionalParser[T any](f *TextField[optional.Optional[T]], parse Parser[T]) *TextField[optional.Optional[T]] {
	f.parse = optionalParser(parse)
	return f
}

// Kind implements Field
func (f *TextField[T]) Kind() Kind { return f.kind }

// Prompt implements Field
func (f *TextField[T]) Prompt() string { return f.prompt }

// Filled implements Field
func (f *TextField[T]) Filled() bool { return f.filled }

// Fill prompts, validates and parses until the input is accepted. Validation
// and parse failures print a message and prompt again; there is no retry
// limit. Reading the line is the only blocking point per attempt.
func (f *TextField[T]) Fill(ctx context.Context, p *Prompter) error {
	if f.parse == nil {
		var zero T
		return fmt.Errorf("%w: %T", ErrNoParser, zero)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := p.ask(f.prompt)
		if err != nil {
			return err
		}
		input := strings.TrimSpace(line)

		if err := f.validator.Validate(input); err != nil {
			logging.LogInputRejected(f.prompt, "validation", err)
			p.notice(err.Error())
			continue
		}

		value, err := f.parse(input)
		if err != nil {
			logging.LogInputRejected(f.prompt, "parse", err)
			p.notice(ParseFailureMessage)
			continue
		}

		f.value = value
		f.filled = true
		return nil
	}
}

// Get returns the stored value.
func (f *TextField[T]) Get() (T, bool) {
	return f.value, f.filled
}

// Display implements Field
func (f *TextField[T]) Display() (string, error) {
	if !f.filled {
		return "", NewNoValueError("")
	}
	return formatValue(f.format, f.value), nil
}

// Snapshot implements Field
func (f *TextField[T]) Snapshot() (any, bool) {
	if !f.filled {
		return nil, false
	}
	return f.snapshot(f.value), true
}
