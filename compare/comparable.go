// Package compare holds the equality and three-way ordering contracts
// that sortable, set and pokemon build on.
package compare

// Comparable types decide for themselves what makes two values the same.
// A card, for instance, ignores its type.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals reports whether a and b are the same according to a.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Ordering is the result of a three-way comparison. Its sign matches
// the convention of cmp.Compare.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "<"
	case Equal:
		return "=="
	case Greater:
		return ">"
	default:
		return "?"
	}
}

// Reverse is the ordering of the swapped comparison.
func (o Ordering) Reverse() Ordering {
	return -o
}
