package form

import (
	"context"
	"fmt"
	"strings"
)

// Option is one selectable value and the label shown for it.
type Option[T any] struct {
	Value T
	Label string
}

// Opt is shorthand for an Option literal.
func Opt[T any](value T, label string) Option[T] {
	return Option[T]{Value: value, Label: label}
}

func formatValue[T any](format func(T) string, v T) string {
	if format == nil {
		return fmt.Sprint(v)
	}
	return format(v)
}

func labelsOf[T any](opts []Option[T]) []string {
	labels := make([]string, len(opts))
	for i, o := range opts {
		labels[i] = o.Label
	}
	return labels
}

// SelectField lets the operator pick exactly one option with the arrow keys.
type SelectField[T any] struct {
	prompt  string
	options []Option[T]
	format  func(T) string

	value  T
	filled bool
}

// Select declares a single-choice field. Options keep their given order.
func Select[T any](prompt string, opts ...Option[T]) *SelectField[T] {
	return &SelectField[T]{prompt: prompt, options: append([]Option[T](nil), opts...)}
}

// WithFormatter sets how the stored value is displayed and snapshotted.
func (f *SelectField[T]) WithFormatter(format func(T) string) *SelectField[T] {
	f.format = format
	return f
}

// Kind implements Field
func (f *SelectField[T]) Kind() Kind { return KindSelect }

// Prompt implements Field
func (f *SelectField[T]) Prompt() string { return f.prompt }

// Filled implements Field
func (f *SelectField[T]) Filled() bool { return f.filled }

// Options returns the declared options.
func (f *SelectField[T]) Options() []Option[T] { return f.options }

// Fill runs the menu and stores the committed option's value.
func (f *SelectField[T]) Fill(ctx context.Context, p *Prompter) error {
	idx, err := p.selectOne(ctx, f.prompt, labelsOf(f.options))
	if err != nil {
		return err
	}
	f.value = f.options[idx].Value
	f.filled = true
	return nil
}

// Get returns the stored value.
func (f *SelectField[T]) Get() (T, bool) {
	return f.value, f.filled
}

// Display implements Field
func (f *SelectField[T]) Display() (string, error) {
	if !f.filled {
		return "", NewNoValueError("")
	}
	return formatValue(f.format, f.value), nil
}

// Snapshot implements Field
func (f *SelectField[T]) Snapshot() (any, bool) {
	if !f.filled {
		return nil, false
	}
	if f.format != nil {
		return f.format(f.value), true
	}
	return f.value, true
}

// MultiSelectField lets the operator toggle any number of options, up to
// an optional limit.
type MultiSelectField[T any] struct {
	prompt  string
	options []Option[T]
	limit   int
	format  func(T) string

	values []T
	filled bool
}

// MultiSelect declares a multiple-choice field. A limit of zero means no
// limit.
func MultiSelect[T any](prompt string, limit int, opts ...Option[T]) *MultiSelectField[T] {
	return &MultiSelectField[T]{
		prompt:  prompt,
		limit:   limit,
		options: append([]Option[T](nil), opts...),
	}
}

// WithFormatter sets how each stored value is displayed and snapshotted.
func (f *MultiSelectField[T]) WithFormatter(format func(T) string) *MultiSelectField[T] {
	f.format = format
	return f
}

// Kind implements Field
func (f *MultiSelectField[T]) Kind() Kind { return KindMultiSelect }

// Prompt implements Field
func (f *MultiSelectField[T]) Prompt() string { return f.prompt }

// Filled implements Field
func (f *MultiSelectField[T]) Filled() bool { return f.filled }

// Limit returns the selection cap, zero when unlimited.
func (f *MultiSelectField[T]) Limit() int { return f.limit }

// Options returns the declared options.
func (f *MultiSelectField[T]) Options() []Option[T] { return f.options }

// Fill runs the menu and stores the toggled values in option order. The
// menu does not commit until at least one option is toggled.
func (f *MultiSelectField[T]) Fill(ctx context.Context, p *Prompter) error {
	idx, err := p.selectMany(ctx, f.prompt, labelsOf(f.options), f.limit)
	if err != nil {
		return err
	}
	values := make([]T, 0, len(idx))
	for _, i := range idx {
		values = append(values, f.options[i].Value)
	}
	f.values = values
	f.filled = true
	return nil
}

// Get returns the stored values.
func (f *MultiSelectField[T]) Get() ([]T, bool) {
	return f.values, f.filled
}

// Display implements Field. Values are rendered as "[a, b]".
func (f *MultiSelectField[T]) Display() (string, error) {
	if !f.filled {
		return "", NewNoValueError("")
	}
	parts := make([]string, len(f.values))
	for i, v := range f.values {
		parts[i] = formatValue(f.format, v)
	}
	return "[" + strings.Join(parts, ", ") + "]", nil
}

// Snapshot implements Field
func (f *MultiSelectField[T]) Snapshot() (any, bool) {
	if !f.filled {
		return nil, false
	}
	if f.format != nil {
		out := make([]string, len(f.values))
		for i, v := range f.values {
			out[i] = f.format(v)
		}
		return out, true
	}
	return append([]T{}, f.values...), true
}
