// Package pokemon models trading cards and the two operations performed on a
// sorted collection of them: finding a card by name and level, and moving a
// card into a team of at most TeamCapacity members.
//
// Cards are ordered by name, then by level. The category (Type) takes no part
// in equality, ordering or hashing, so two cards that differ only in Type are
// interchangeable as far as search and team building are concerned.
//
// Collections and teams are plain slices owned by the caller. Search assumes
// the collection is already sorted (see Sort); nothing here keeps it sorted.
package pokemon

import (
	"hash"
	"strconv"

	"github.com/amp-labs/pokedeck/compare"
	"github.com/amp-labs/pokedeck/hashing"
	"github.com/amp-labs/pokedeck/optional"
	"github.com/amp-labs/pokedeck/sortable"
)

// Pokemon is a single card. Treat it as an immutable value.
type Pokemon struct {
	Name  string
	Level int
	Type  optional.Value[Type]
}

var _ sortable.Sortable[Pokemon] = Pokemon{}

// Option customizes a Pokemon built by New.
type Option func(*Pokemon)

// WithType sets the card's category.
func WithType(t Type) Option {
	return func(p *Pokemon) {
		p.Type = optional.Some(t)
	}
}

// New builds a card. It does not validate; call Validate where input is
// untrusted.
func New(name string, level int, opts ...Option) Pokemon {
	p := Pokemon{Name: name, Level: level}

	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// Key returns the identity of the card.
func (p Pokemon) Key() Key {
	return Key{Name: p.Name, Level: p.Level}
}

// Equals is true when name and level match. Type is ignored.
func (p Pokemon) Equals(other Pokemon) bool {
	return p.Name == other.Name && p.Level == other.Level
}

// LessThan orders by name, then by level.
func (p Pokemon) LessThan(other Pokemon) bool {
	if p.Name == other.Name {
		return p.Level < other.Level
	}

	return p.Name < other.Name
}

// Compare returns the three-way ordering of a and b.
func Compare(a, b Pokemon) compare.Ordering {
	return sortable.Compare(a, b)
}

// UpdateHash feeds name and level into h.
func (p Pokemon) UpdateHash(h hash.Hash) error {
	return hashing.Fields(h, hashing.HashableString(p.Name), hashing.HashableInt(p.Level))
}

// Validate rejects cards without a name and cards with an undeclared Type.
func (p Pokemon) Validate() error {
	if p.Name == "" {
		return ErrEmptyName
	}

	if t, ok := p.Type.Get(); ok && !t.Valid() {
		return ErrUnknownType
	}

	return nil
}

func (p Pokemon) String() string {
	typeName := "None"
	if t, ok := p.Type.Get(); ok {
		typeName = t.String()
	}

	return "Pokemon(" + p.Name + ", " + strconv.Itoa(p.Level) + ", " + typeName + ")"
}

// Sort orders a collection in place. Equal cards keep their relative order.
func Sort(collection []Pokemon) {
	sortable.Sort(collection)
}

// IsSorted reports whether collection is ready to be searched.
func IsSorted(collection []Pokemon) bool {
	return sortable.IsSorted(collection)
}
