// Package xform turns raw setting strings into typed values. Every
// transformer has the shape func(A) (B, error) so they chain through
// envutil.Map.
package xform

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/amp-labs/pokedeck/envtypes"
)

// Bool accepts what strconv.ParseBool does (1, t, true, 0, f, false...).
func Bool(value string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(value))
}

// Int parses a base-10 integer that must fit in I.
func Int[I Intish](value string) (I, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}

	// Anything that does not survive the conversion does not fit in I.
	if err != nil || int64(I(n)) != n {
		return 0, fmt.Errorf("%w: %s", ErrOutOfRange, value)
	}

	return I(n), nil
}

// Path stats the input. A missing path is not an error; it yields a
// LocalPath with nil Info. Other stat errors are returned.
func Path(value string) (envtypes.LocalPath, error) {
	stat, err := os.Stat(value)
	if errors.Is(err, os.ErrNotExist) {
		return envtypes.LocalPath{Path: value}, nil
	}

	if err != nil {
		return envtypes.LocalPath{}, err
	}

	return envtypes.LocalPath{Path: value, Info: stat}, nil
}

// PathIsFile rejects paths that are missing or that name a directory.
func PathIsFile(value envtypes.LocalPath) (envtypes.LocalPath, error) {
	switch {
	case !value.Exists():
		return value, fmt.Errorf("%w: %s", os.ErrNotExist, value.Path)
	case value.Info.IsDir():
		return value, fmt.Errorf("%w: %s", ErrNotAFile, value.Path)
	default:
		return value, nil
	}
}

// SlogLevel parses debug, info, warn or error, ignoring case and
// surrounding space.
func SlogLevel(value string) (slog.Level, error) {
	var level slog.Level

	switch name := strings.ToLower(strings.TrimSpace(value)); name {
	case "debug", "info", "warn", "error":
		if err := level.UnmarshalText([]byte(name)); err != nil {
			return 0, err
		}

		return level, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}
