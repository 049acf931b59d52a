// Package optional provides a value that may be absent, used for text fields
// the operator is allowed to leave blank.
package optional

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Optional holds either a value of type T or nothing. The zero value is None.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Parse turns blank input into None and anything else into Some(parse(s)).
func Parse[T any](s string, parse func(string) (T, error)) (Optional[T], error) {
	if s == "" {
		return None[T](), nil
	}
	v, err := parse(s)
	if err != nil {
		return None[T](), err
	}
	return Some(v), nil
}

// IsSome reports whether a value is present.
func (o Optional[T]) IsSome() bool {
	return o.ok
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// OrDefault returns the value, or T's zero value when empty.
func (o Optional[T]) OrDefault() T {
	return o.value
}

// Or returns the value, or fallback when empty.
func (o Optional[T]) Or(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// String implements fmt.Stringer; empty renders as "None".
func (o Optional[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprint(o.value)
}

// Number is the set of types the arithmetic helpers accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// combine applies op when both sides are present and otherwise keeps
// whichever side is present.
func combine[T Number](a, b Optional[T], op func(T, T) T) Optional[T] {
	switch {
	case a.ok && b.ok:
		return Some(op(a.value, b.value))
	case a.ok:
		return a
	case b.ok:
		return b
	default:
		return None[T]()
	}
}

// Add returns a+b, or the present side when one is empty.
func Add[T Number](a, b Optional[T]) Optional[T] {
	return combine(a, b, func(x, y T) T { return x + y })
}

// Sub returns a-b, or the present side when one is empty.
func Sub[T Number](a, b Optional[T]) Optional[T] {
	return combine(a, b, func(x, y T) T { return x - y })
}

// Mul returns a*b, or the present side when one is empty.
func Mul[T Number](a, b Optional[T]) Optional[T] {
	return combine(a, b, func(x, y T) T { return x * y })
}

// Div returns a/b, or the present side when one is empty. Integer division
// by a present zero panics like the built-in operator.
func Div[T Number](a, b Optional[T]) Optional[T] {
	return combine(a, b, func(x, y T) T { return x / y })
}
