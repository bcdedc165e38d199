package optional

import (
	"encoding/json"
	"fmt"
)

// Value holds either a value of type T or nothing.
//
// The zero Value is None, so a freshly declared variable is absent until
// it is assigned with Of. An empty string or an empty slice wrapped with
// Of is present; absence is never inferred from the wrapped value itself.
type Value[T any] struct {
	v  T
	ok bool
}

// Of wraps v as a present value.
func Of[T any](v T) Value[T] {
	return Value[T]{v: v, ok: true}
}

// None returns the absent value for T.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the wrapped value and whether it is present.
// When absent, the returned value is the zero value of T.
func (o Value[T]) Get() (T, bool) {
	return o.v, o.ok
}

// IsPresent reports whether a value is held.
func (o Value[T]) IsPresent() bool {
	return o.ok
}

// IsNone reports whether the value is absent.
func (o Value[T]) IsNone() bool {
	return !o.ok
}

// OrElse returns the wrapped value, or def when absent.
// Callers use this only where a fallback is explicitly part of their contract.
func (o Value[T]) OrElse(def T) T {
	if !o.ok {
		return def
	}
	return o.v
}

// String renders the wrapped value with %v, or "None" when absent.
func (o Value[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.v)
}

// Map applies f to a present value and propagates None unchanged.
func Map[T, U any](o Value[T], f func(T) U) Value[U] {
	v, ok := o.Get()
	if !ok {
		return None[U]()
	}
	return Of(f(v))
}

// MarshalJSON renders None as null and a present value as its own JSON.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.v)
}

// MarshalYAML satisfies yaml.Marshaler from gopkg.in/yaml.v3.
// Returning a nil interface makes the encoder emit a YAML null.
func (o Value[T]) MarshalYAML() (interface{}, error) {
	if !o.ok {
		return nil, nil
	}
	return o.v, nil
}
