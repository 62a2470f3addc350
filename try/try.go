// Package try provides a value-or-error result type for APIs that report
// several outcomes at once, where returning a single (value, error) pair
// would not do.
package try

// Try holds either a successful Value or the Error that prevented it.
type Try[A any] struct {
	Value A
	Error error
}

// Success wraps a value.
func Success[A any](value A) Try[A] {
	return Try[A]{Value: value}
}

// Failure wraps an error. A nil error produces a successful zero value.
func Failure[A any](err error) Try[A] {
	return Try[A]{Error: err}
}

// Of builds a Try from a conventional (value, error) return.
func Of[A any](value A, err error) Try[A] {
	if err != nil {
		return Failure[A](err)
	}

	return Success(value)
}

func (t Try[A]) IsSuccess() bool {
	return t.Error == nil
}

func (t Try[A]) IsFailure() bool {
	return t.Error != nil
}

func (t Try[A]) Get() (A, error) { //nolint:ireturn
	if t.IsFailure() {
		var zero A

		return zero, t.Error
	}

	return t.Value, nil
}

func (t Try[A]) GetOrElse(defaultValue A) A { //nolint:ireturn
	if t.IsSuccess() {
		return t.Value
	}

	return defaultValue
}

func Map[A, B any](t Try[A], f func(A) (B, error)) Try[B] {
	if t.IsSuccess() {
		val, err := f(t.Value)

		return Try[B]{Value: val, Error: err}
	}

	return Try[B]{Error: t.Error}
}

// Partition splits results into their successful values and their errors,
// preserving order within each group.
func Partition[A any](results []Try[A]) ([]A, []error) {
	var (
		values []A
		errs   []error
	)

	for _, r := range results {
		if r.IsFailure() {
			errs = append(errs, r.Error)
		} else {
			values = append(values, r.Value)
		}
	}

	return values, errs
}
