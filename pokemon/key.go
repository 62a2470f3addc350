package pokemon

import (
	"fmt"
	"strconv"
	"strings"
)

// Key identifies cards by the fields that take part in equality.
type Key struct {
	Name  string
	Level int
}

func (k Key) String() string {
	return k.Name + ":" + strconv.Itoa(k.Level)
}

// Probe returns a category-less Pokemon carrying the key, for use as a
// search target.
func (k Key) Probe() Pokemon {
	return Pokemon{Name: k.Name, Level: k.Level}
}

// ParseKey parses "Name:Level". The level is taken from after the last
// colon so names may contain colons themselves.
func ParseKey(s string) (Key, error) {
	idx := strings.LastIndex(s, ":")
	if idx <= 0 || idx == len(s)-1 {
		return Key{}, fmt.Errorf("%w: %q (want NAME:LEVEL)", ErrBadKey, s)
	}

	level, err := strconv.Atoi(strings.TrimSpace(s[idx+1:]))
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q: %w", ErrBadKey, s, err)
	}

	name := strings.TrimSpace(s[:idx])
	if name == "" {
		return Key{}, fmt.Errorf("%w: %q", ErrEmptyName, s)
	}

	return Key{Name: name, Level: level}, nil
}
