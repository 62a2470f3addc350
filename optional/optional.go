// Package optional models a value that may be absent: a search that found
// nothing, a card without a type, a setting left unset. The zero Value is
// absent, so struct fields of this type need no initialization.
package optional

import "fmt"

type Value[T any] struct {
	value T
	set   bool
}

func Some[T any](value T) Value[T] {
	return Value[T]{value: value, set: true}
}

func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the value and whether there is one. Without one the
// returned value is T's zero value.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.set
}

func (v Value[T]) GetOrElse(fallback T) T {
	if !v.set {
		return fallback
	}

	return v.value
}

func (v Value[T]) NonEmpty() bool {
	return v.set
}

func (v Value[T]) Empty() bool {
	return !v.set
}

// String renders Some(x) or None.
func (v Value[T]) String() string {
	if !v.set {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", v.value)
}

// Map applies f to the value, if there is one.
func Map[T, U any](v Value[T], f func(T) U) Value[U] {
	if !v.set {
		return None[U]()
	}

	return Some(f(v.value))
}
