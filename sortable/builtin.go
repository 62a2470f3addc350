package sortable

// Int and String let plain levels and names go through Sort and
// BinarySearch without a wrapper struct:
//
//	levels := []sortable.Int{12, 5, 9}
//	sortable.Sort(levels)
//	sortable.BinarySearch(levels, 9) // Some(1)
type (
	Int    int
	String string
)

var (
	_ Sortable[Int]    = Int(0)
	_ Sortable[String] = String("")
)

func (i Int) Equals(other Int) bool   { return i == other }
func (i Int) LessThan(other Int) bool { return i < other }

func (s String) Equals(other String) bool { return s == other }

// LessThan is byte-wise, so "Zubat" sorts before "abra".
func (s String) LessThan(other String) bool { return s < other }
