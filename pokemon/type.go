package pokemon

import (
	"fmt"
	"strings"
)

// Type is the elemental category of a card. The set is closed.
type Type int

const (
	Fire  Type = 1
	Water Type = 2
	Grass Type = 3
)

// Types lists every known Type in declaration order.
var Types = []Type{Fire, Water, Grass} //nolint:gochecknoglobals

func (t Type) String() string {
	switch t {
	case Fire:
		return "FIRE"
	case Water:
		return "WATER"
	case Grass:
		return "GRASS"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Valid reports whether t is one of the declared types.
func (t Type) Valid() bool {
	return t >= Fire && t <= Grass
}

// ParseType converts a name like "grass" or "GRASS" into a Type.
func ParseType(s string) (Type, error) {
	name := strings.ToUpper(strings.TrimSpace(s))

	for _, t := range Types {
		if t.String() == name {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}
