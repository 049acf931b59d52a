package form

import (
	"context"
	"errors"

	"github.com/muurk/termform/internal/logging"
)

// ErrEmptyName is returned by Build when a field was added without a name.
var ErrEmptyName = errors.New("form: field name must not be empty")

type entry struct {
	name  string
	field Field
}

// Form is an ordered collection of named fields. Fields are filled in the
// order they were added; a lookup by name returns the first field added
// under that name.
type Form struct {
	entries []entry
}

// Fill fills every field in declaration order. The first failure aborts the
// remaining fields and is returned wrapped with the field's name. Fields
// filled before the failure keep their values.
func (f *Form) Fill(ctx context.Context, p *Prompter) error {
	for i, e := range f.entries {
		p.beforeField(i, len(f.entries), e.name)
		if err := e.field.Fill(ctx, p); err != nil {
			return NewFillError(e.name, err)
		}
		display, _ := e.field.Display()
		logging.LogFieldFilled(e.name, e.field.Kind().String(), display)
	}
	return nil
}

// Len returns the number of fields.
func (f *Form) Len() int {
	return len(f.entries)
}

// Names returns the field names in declaration order.
func (f *Form) Names() []string {
	names := make([]string, len(f.entries))
	for i, e := range f.entries {
		names[i] = e.name
	}
	return names
}

// Field returns the first field registered under name.
func (f *Form) Field(name string) (Field, bool) {
	for _, e := range f.entries {
		if e.name == name {
			return e.field, true
		}
	}
	return nil, false
}

// Display renders the named field's value without knowing its type.
func (f *Form) Display(name string) (string, error) {
	field, ok := f.Field(name)
	if !ok {
		return "", NewNotFoundError(name)
	}
	s, err := field.Display()
	if err != nil {
		return "", NewNoValueError(name)
	}
	return s, nil
}

// Snapshot returns every filled field's value keyed by name. Unfilled
// fields are omitted; a None optional is stored as nil.
func (f *Form) Snapshot() map[string]any {
	out := make(map[string]any, len(f.entries))
	for _, e := range f.entries {
		if _, seen := out[e.name]; seen {
			continue
		}
		if v, ok := e.field.Snapshot(); ok {
			out[e.name] = v
		}
	}
	return out
}

// Builder collects fields for a Form.
type Builder struct {
	entries []entry
	err     error
}

// New starts an empty form definition.
func New() *Builder {
	return &Builder{}
}

// Add appends a named field. Errors are reported by Build.
func (b *Builder) Add(name string, field Field) *Builder {
	if b.err != nil {
		return b
	}
	switch {
	case name == "":
		err := NewDefinitionError("", "invalid field")
		err.Err = ErrEmptyName
		b.err = err
	case field == nil:
		b.err = NewDefinitionError(name, "field is nil")
	default:
		b.entries = append(b.entries, entry{name: name, field: field})
	}
	return b
}

// Build returns the form or the first definition error.
func (b *Builder) Build() (*Form, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &Form{entries: append([]entry(nil), b.entries...)}, nil
}

// MustBuild is like Build but panics on a definition error. It is meant for
// forms declared in code.
func (b *Builder) MustBuild() *Form {
	f, err := b.Build()
	if err != nil {
		panic(err)
	}
	return f
}
