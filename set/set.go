// Package set keeps distinct values in the order they were first seen.
// Values are keyed by a hash of their identity; two values with the same
// hash that are not Equal are reported as a collision instead of one
// silently replacing the other.
package set

import (
	"errors"
	"iter"
	"slices"

	"facette.io/natsort"
	"github.com/amp-labs/pokedeck/compare"
	"github.com/amp-labs/pokedeck/hashing"
)

// ErrHashCollision is returned when two values that are not equal hash to
// the same key.
var ErrHashCollision = errors.New("hashing collision")

// Collectable values can be hashed and compared for equality. The hash
// must only cover the fields Equals looks at.
type Collectable[T any] interface {
	hashing.Hashable
	compare.Comparable[T]
}

// Ordered is a set that remembers insertion order.
type Ordered[T Collectable[T]] struct {
	hash  hashing.HashFunc
	index map[string]int
	items []T
}

func New[T Collectable[T]](hash hashing.HashFunc) *Ordered[T] {
	return &Ordered[T]{
		hash:  hash,
		index: make(map[string]int),
	}
}

// Add inserts value unless an equal value is already present. It reports
// whether the set grew.
func (s *Ordered[T]) Add(value T) (bool, error) {
	key, err := s.hash(value)
	if err != nil {
		return false, err
	}

	if i, ok := s.index[key]; ok {
		if !compare.Equals(s.items[i], value) {
			return false, ErrHashCollision
		}

		return false, nil
	}

	s.index[key] = len(s.items)
	s.items = append(s.items, value)

	return true, nil
}

func (s *Ordered[T]) Contains(value T) (bool, error) {
	key, err := s.hash(value)
	if err != nil {
		return false, err
	}

	i, ok := s.index[key]
	if !ok {
		return false, nil
	}

	if !compare.Equals(s.items[i], value) {
		return false, ErrHashCollision
	}

	return true, nil
}

func (s *Ordered[T]) Len() int {
	return len(s.items)
}

// Entries returns a copy of the values in insertion order.
func (s *Ordered[T]) Entries() []T {
	return slices.Clone(s.items)
}

// All iterates over the values in insertion order.
func (s *Ordered[T]) All() iter.Seq[T] {
	return slices.Values(s.items)
}

// Names is an Ordered set of strings with sorted views.
type Names struct {
	set *Ordered[hashing.HashableString]
}

func NewNames(hash hashing.HashFunc) *Names {
	return &Names{set: New[hashing.HashableString](hash)}
}

func (n *Names) Add(name string) (bool, error) {
	return n.set.Add(hashing.HashableString(name))
}

func (n *Names) Contains(name string) (bool, error) {
	return n.set.Contains(hashing.HashableString(name))
}

func (n *Names) Len() int {
	return n.set.Len()
}

// Entries returns the names in insertion order.
func (n *Names) Entries() []string {
	out := make([]string, 0, n.Len())
	for name := range n.set.All() {
		out = append(out, string(name))
	}

	return out
}

// Sorted returns the names in byte-wise order.
func (n *Names) Sorted() []string {
	out := n.Entries()
	slices.Sort(out)

	return out
}

// Natural returns the names with digit runs compared by value, so
// "Porygon2" comes before "Porygon10".
func (n *Names) Natural() []string {
	out := n.Entries()
	natsort.Sort(out)

	return out
}
