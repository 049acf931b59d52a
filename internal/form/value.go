package form

import (
	"fmt"

	"github.com/muurk/termform/internal/optional"
)

// Value retrieves the named field's value as T. The request must match the
// field's declared type exactly: a Text[int] field cannot be read as int64.
// Optional fields are read by their inner type and yield T's zero value when
// left blank. Multi-select fields yield their first selected value.
func Value[T any](f *Form, name string) (T, error) {
	var zero T
	field, ok := f.Field(name)
	if !ok {
		return zero, NewNotFoundError(name)
	}

	switch field.Kind() {
	case KindText:
		if tf, ok := field.(*TextField[T]); ok {
			return filled(name, tf.Get)
		}
	case KindOptionalText:
		if tf, ok := field.(*TextField[optional.Optional[T]]); ok {
			v, err := filled(name, tf.Get)
			return v.OrDefault(), err
		}
		if tf, ok := field.(*TextField[T]); ok {
			return filled(name, tf.Get)
		}
	case KindSelect:
		if sf, ok := field.(*SelectField[T]); ok {
			return filled(name, sf.Get)
		}
	case KindMultiSelect:
		if mf, ok := field.(*MultiSelectField[T]); ok {
			vs, err := filled(name, mf.Get)
			if err != nil {
				return zero, err
			}
			if len(vs) == 0 {
				return zero, NewNoValueError(name)
			}
			return vs[0], nil
		}
	}
	return zero, NewIncorrectTypeError(name, field.Kind(), typeName[T]())
}

// Values retrieves the named field's value as a slice of T. Multi-select
// fields return every selected value in option order; every other kind
// returns a one-element slice, holding T's zero value for a blank optional.
func Values[T any](f *Form, name string) ([]T, error) {
	field, ok := f.Field(name)
	if !ok {
		return nil, NewNotFoundError(name)
	}

	switch field.Kind() {
	case KindText:
		if tf, ok := field.(*TextField[T]); ok {
			v, err := filled(name, tf.Get)
			if err != nil {
				return nil, err
			}
			return []T{v}, nil
		}
	case KindOptionalText:
		if tf, ok := field.(*TextField[optional.Optional[T]]); ok {
			v, err := filled(name, tf.Get)
			if err != nil {
				return nil, err
			}
			return []T{v.OrDefault()}, nil
		}
	case KindSelect:
		if sf, ok := field.(*SelectField[T]); ok {
			v, err := filled(name, sf.Get)
			if err != nil {
				return nil, err
			}
			return []T{v}, nil
		}
	case KindMultiSelect:
		if mf, ok := field.(*MultiSelectField[T]); ok {
			vs, err := filled(name, mf.Get)
			if err != nil {
				return nil, err
			}
			return append([]T{}, vs...), nil
		}
	}
	return nil, NewIncorrectTypeError(name, field.Kind(), "[]"+typeName[T]())
}

func filled[V any](name string, get func() (V, bool)) (V, error) {
	v, ok := get()
	if !ok {
		var zero V
		return zero, NewNoValueError(name)
	}
	return v, nil
}

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", &zero)[1:]
}
