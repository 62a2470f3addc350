//nolint:ireturn
package envutil

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/amp-labs/pokedeck/optional"
)

var (
	ErrBadEnvVar     = errors.New("error parsing environment variable")
	ErrEnvVarMissing = errors.New("missing environment variable")
)

// Reader is the outcome of reading one variable: a value if it was set,
// or the error met while parsing it.
type Reader[A any] struct {
	key   string
	value optional.Value[A]
	err   error
}

// Option adjusts a Reader after the variable has been parsed.
type Option[A any] func(Reader[A]) Reader[A]

// Default fills in dfl when the variable is not set.
func Default[A any](dfl A) Option[A] {
	return func(r Reader[A]) Reader[A] {
		if r.value.Empty() && r.err == nil {
			r.value = optional.Some(dfl)
		}

		return r
	}
}

// Required turns a missing variable into err.
func Required[A any](err error) Option[A] {
	return func(r Reader[A]) Reader[A] {
		if r.value.Empty() && r.err == nil {
			r.err = err
		}

		return r
	}
}

// Validate runs check on a parsed value and keeps the error it returns.
func Validate[A any](check func(A) error) Option[A] {
	return func(r Reader[A]) Reader[A] {
		return Map(r, func(v A) (A, error) {
			return v, check(v)
		})
	}
}

func (r Reader[A]) Key() string {
	return r.key
}

// Value returns the parsed value. It fails with ErrBadEnvVar when parsing
// failed and with ErrEnvVarMissing when the variable is not set.
func (r Reader[A]) Value() (A, error) {
	if r.err != nil {
		var zero A

		return zero, fmt.Errorf("%w %s: %w", ErrBadEnvVar, r.key, r.err)
	}

	v, ok := r.value.Get()
	if !ok {
		return v, fmt.Errorf("%w %s", ErrEnvVarMissing, r.key)
	}

	return v, nil
}

// Optional is Value for settings that may be left unset: a missing
// variable is None rather than an error.
func (r Reader[A]) Optional() (optional.Value[A], error) {
	if r.err != nil {
		return optional.None[A](), fmt.Errorf("%w %s: %w", ErrBadEnvVar, r.key, r.err)
	}

	return r.value, nil
}

// ValueOrElse returns fallback when the variable is missing or bad. A bad
// value is logged.
func (r Reader[A]) ValueOrElse(fallback A) A {
	if r.err != nil {
		slog.Warn("error reading environment variable, using fallback value",
			"key", r.key, "error", r.err, "fallback", fallback)

		return fallback
	}

	return r.value.GetOrElse(fallback)
}

func (r Reader[A]) HasValue() bool {
	return r.err == nil && r.value.NonEmpty()
}

func (r Reader[A]) HasError() bool {
	return r.err != nil
}

func (r Reader[A]) String() string {
	if r.err != nil {
		return fmt.Sprintf("%s=<error: %v>", r.key, r.err)
	}

	if v, ok := r.value.Get(); ok {
		return fmt.Sprintf("%s=%v", r.key, v)
	}

	return r.key + "=<not set>"
}

// Map converts a parsed value. Missing and failed Readers pass through.
func Map[A any, B any](r Reader[A], f func(A) (B, error)) Reader[B] {
	out := Reader[B]{key: r.key, err: r.err}

	v, ok := r.value.Get()
	if !ok || r.err != nil {
		return out
	}

	b, err := f(v)
	if err != nil {
		out.err = err

		return out
	}

	out.value = optional.Some(b)

	return out
}
