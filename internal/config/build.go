package config

import (
	"errors"
	"fmt"

	"github.com/muurk/termform/internal/form"
	"github.com/muurk/termform/internal/validation"
)

// Validate checks the definition and returns every problem found.
func (d *Definition) Validate() []error {
	var errs []error

	if d.Version != CurrentVersion {
		errs = append(errs, fmt.Errorf("unsupported definition version: %d (expected %d)", d.Version, CurrentVersion))
	}
	if len(d.Fields) == 0 {
		errs = append(errs, errors.New("definition has no fields"))
	}

	seen := make(map[string]bool, len(d.Fields))
	for i, fd := range d.Fields {
		where := fmt.Sprintf("field %d", i+1)
		if fd.Name != "" {
			where = fmt.Sprintf("field %d (%s)", i+1, fd.Name)
		}
		for _, err := range fd.validate() {
			errs = append(errs, fmt.Errorf("%s: %w", where, err))
		}
		if fd.Name != "" {
			if seen[fd.Name] {
				errs = append(errs, fmt.Errorf("%s: duplicate field name", where))
			}
			seen[fd.Name] = true
		}
	}

	return errs
}

func (fd FieldDef) validate() []error {
	var errs []error

	if fd.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if fd.Prompt == "" {
		errs = append(errs, errors.New("prompt is required"))
	}

	switch fd.kind() {
	case KindText, KindOptional:
		if len(fd.Options) > 0 {
			errs = append(errs, fmt.Errorf("options are not allowed on %s fields", fd.kind()))
		}
	case KindSelect, KindMultiSelect:
		if len(fd.Options) == 0 {
			errs = append(errs, fmt.Errorf("%s fields need at least one option", fd.kind()))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown kind %q", fd.Kind))
	}
	if fd.isChoice() && len(fd.Rules) > 0 {
		errs = append(errs, fmt.Errorf("rules are not allowed on %s fields", fd.kind()))
	}

	if fd.Limit < 0 {
		errs = append(errs, fmt.Errorf("limit must not be negative, got %d", fd.Limit))
	}
	if fd.Limit != 0 && fd.kind() != KindMultiSelect {
		errs = append(errs, errors.New("limit is only allowed on multiselect fields"))
	}

	for i, r := range fd.Rules {
		if _, err := validation.ByName(r.Rule, r.Arg); err != nil {
			errs = append(errs, fmt.Errorf("rule %d: %w", i+1, err))
		}
	}

	if _, err := fd.build(); err != nil && !errors.Is(err, errSkipped) {
		errs = append(errs, err)
	}

	return errs
}

// errSkipped is returned by build for definitions whose shape is already
// reported by validate.
var errSkipped = errors.New("skipped")

// Build validates the definition and turns it into a form.
func (d *Definition) Build() (*form.Form, error) {
	if errs := d.Validate(); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	b := form.New()
	for _, fd := range d.Fields {
		field, err := fd.build()
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fd.Name, err)
		}
		b.Add(fd.Name, field)
	}
	return b.Build()
}

func (fd FieldDef) validator() (*validation.Validator, error) {
	if len(fd.Rules) == 0 {
		return nil, nil
	}
	rules := make([]validation.Rule, 0, len(fd.Rules))
	for _, r := range fd.Rules {
		pred, err := validation.ByName(r.Rule, r.Arg)
		if err != nil {
			return nil, errSkipped
		}
		rules = append(rules, validation.Rule{Predicate: pred, Message: r.Message})
	}
	return validation.New(rules...), nil
}

// build maps the definition's Type onto the matching generic field.
func (fd FieldDef) build() (form.Field, error) {
	switch fd.valueType() {
	case TypeString:
		return buildField[string](fd, form.DefaultParser[string](), nil)
	case TypeInt:
		return buildField[int](fd, form.DefaultParser[int](), nil)
	case TypeUint:
		return buildField[uint](fd, form.DefaultParser[uint](), nil)
	case TypeFloat:
		return buildField[float64](fd, form.DefaultParser[float64](), nil)
	case TypeBool:
		return buildField[bool](fd, form.DefaultParser[bool](), nil)
	case TypeRune:
		return buildField[rune](fd, form.ParseRune, form.FormatRune)
	default:
		return nil, fmt.Errorf("unknown type %q", fd.Type)
	}
}

// buildField builds one field of value type T. A nil format keeps the
// default rendering.
func buildField[T any](fd FieldDef, parse form.Parser[T], format func(T) string) (form.Field, error) {
	v, err := fd.validator()
	if err != nil {
		return nil, err
	}

	switch fd.kind() {
	case KindText:
		f := form.Text[T](fd.Prompt, v).WithParser(parse)
		if format != nil {
			f.WithFormatter(format)
		}
		return f, nil
	case KindOptional:
		f := form.WithOptionalParser(form.OptionalText[T](fd.Prompt, v), parse)
		if format != nil {
			form.WithOptionalFormatter(f, format)
		}
		return f, nil
	case KindSelect, KindMultiSelect:
		if len(fd.Options) == 0 {
			return nil, errSkipped
		}
		opts := make([]form.Option[T], len(fd.Options))
		for i, o := range fd.Options {
			value, err := parse(o.Value)
			if err != nil {
				return nil, fmt.Errorf("option %d: value %q is not a valid %s", i+1, o.Value, fd.valueType())
			}
			opts[i] = form.Opt(value, o.label())
		}
		if fd.kind() == KindSelect {
			f := form.Select(fd.Prompt, opts...)
			if format != nil {
				f.WithFormatter(format)
			}
			return f, nil
		}
		f := form.MultiSelect(fd.Prompt, fd.Limit, opts...)
		if format != nil {
			f.WithFormatter(format)
		}
		return f, nil
	default:
		return nil, errSkipped
	}
}
