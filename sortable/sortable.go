package sortable

import (
	"slices"

	"github.com/amp-labs/pokedeck/compare"
	"github.com/amp-labs/pokedeck/optional"
)

// Sortable is a Comparable that also defines a strict ordering. LessThan
// must be consistent with Equals: for any a, b exactly one of a < b,
// a == b, b < a holds.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare performs a three-way comparison of a and b.
func Compare[T Sortable[T]](a, b T) compare.Ordering {
	switch {
	case a.LessThan(b):
		return compare.Less
	case b.LessThan(a):
		return compare.Greater
	default:
		return compare.Equal
	}
}

// Sort sorts data in place in ascending order. Equal elements keep
// their relative order.
func Sort[T Sortable[T]](data []T) {
	slices.SortStableFunc(data, func(a, b T) int {
		return int(Compare(a, b))
	})
}

// IsSorted reports whether data is in ascending order.
func IsSorted[T Sortable[T]](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i].LessThan(data[i-1]) {
			return false
		}
	}

	return true
}

// BinarySearch looks for target in data, which must already be sorted
// ascending. It returns the index of a matching element, or None when no
// element compares equal. If several elements are equal to target, any
// one of their indexes may be returned.
func BinarySearch[T Sortable[T]](data []T, target T) optional.Value[int] {
	low := 0
	high := len(data) - 1

	for low <= high {
		mid := low + (high-low)/2 //nolint:mnd

		switch Compare(data[mid], target) {
		case compare.Less:
			// target is to the right
			low = mid + 1
		case compare.Greater:
			high = mid - 1
		default:
			return optional.Some(mid)
		}
	}

	return optional.None[int]()
}
