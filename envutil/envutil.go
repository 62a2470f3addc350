// Package envutil reads typed configuration from environment variables.
// Every reader takes a context so that values can be overridden per call
// tree (see WithEnvOverride and WithEnvFile) without touching the process
// environment.
package envutil

import (
	"context"
	"log/slog"

	"github.com/amp-labs/pokedeck/envtypes"
	"github.com/amp-labs/pokedeck/optional"
	"github.com/amp-labs/pokedeck/xform"
)

// get returns a Reader for the given environment variable key.
func get(ctx context.Context, key string) Reader[string] {
	val, ok := lookup(ctx, key)

	rdr := Reader[string]{key: key}
	if ok {
		rdr.value = optional.Some(val)
	}

	return rdr
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(ctx, key), xform.Bool), opts)
}

func Int[I xform.Intish](ctx context.Context, key string, opts ...Option[I]) Reader[I] {
	return apply(Map(get(ctx, key), xform.Int[I]), opts)
}

// SlogLevel accepts debug, info, warn or error in any case.
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(ctx, key), xform.SlogLevel), opts)
}

// FilePath returns a Reader whose value must name an existing regular file.
func FilePath(ctx context.Context, key string, opts ...Option[envtypes.LocalPath]) Reader[envtypes.LocalPath] {
	return apply(Map(Map(get(ctx, key), xform.Path), xform.PathIsFile), opts)
}
