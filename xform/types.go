package xform

import (
	"errors"
)

var (
	ErrOutOfRange      = errors.New("value out of range")
	ErrNotAFile        = errors.New("not a file")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Intish is the set of integer types Int can produce.
type Intish interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}
