// Package sortable provides the Sortable interface and the generic routines
// built on it: three-way comparison, stable sorting and binary search over
// an already sorted slice.
//
// # Overview
//
// Sortable extends [github.com/amp-labs/pokedeck/compare.Comparable] with a
// LessThan method. Any type that implements both can be handed to [Sort],
// [IsSorted], [Compare] and [BinarySearch]. Ready-made wrappers exist for
// [Int] and [String].
//
// # Creating Custom Sortable Types
//
// Order by the fields that make up identity, most significant first:
//
//	type Card struct {
//	    Name  string
//	    Level int
//	}
//
//	func (c Card) Equals(other Card) bool {
//	    return c.Name == other.Name && c.Level == other.Level
//	}
//
//	func (c Card) LessThan(other Card) bool {
//	    if c.Name != other.Name {
//	        return c.Name < other.Name
//	    }
//	    return c.Level < other.Level
//	}
//
// # Searching
//
// BinarySearch requires the slice to be sorted by the same ordering;
// sortedness is the caller's responsibility and is not checked. The result
// is an [github.com/amp-labs/pokedeck/optional.Value] holding the index, or
// None when nothing matches:
//
//	cards := []Card{{"Bulbasaur", 10}, {"Charmander", 9}}
//	if idx, ok := sortable.BinarySearch(cards, Card{"Charmander", 9}).Get(); ok {
//	    fmt.Println(cards[idx])
//	}
//
// # Thread Safety
//
// The routines in this package do not synchronize. Sort mutates its
// argument; callers sharing a slice between goroutines must lock around it.
package sortable
