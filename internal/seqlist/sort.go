package seqlist

import (
	"slices"

	"github.com/maruel/natural"
	"golang.org/x/exp/constraints"
)

// Ordering is the result of a comparison.
type Ordering int8

const (
	Lt Ordering = -1
	Eq Ordering = 0
	Gt Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Lt:
		return "Lt"
	case Eq:
		return "Eq"
	case Gt:
		return "Gt"
	default:
		return "invalid ordering"
	}
}

// Sort sorts the elements using cmp, the sort is stable: elements comparing Eq keep their
// relative order. A unique list is sorted in place.
func (l List[T]) Sort(cmp func(a, b T) Ordering) List[T] {
	if l.length <= 1 {
		return l
	}
	if !l.IsUnique() {
		l = l.detach(l.length, "sort")
	}

	slices.SortStableFunc(l.view(), func(a, b T) int {
		return int(cmp(a, b))
	})
	return l
}

// SortAsc sorts l in increasing order.
func SortAsc[T constraints.Ordered](l List[T]) List[T] {
	return l.Sort(CompareOrdered[T])
}

// SortDesc sorts l in decreasing order.
func SortDesc[T constraints.Ordered](l List[T]) List[T] {
	return l.Sort(func(a, b T) Ordering {
		return CompareOrdered(b, a)
	})
}

// CompareOrdered compares two ordered values, NaNs are considered less than any other value
// and equal to each other.
func CompareOrdered[T constraints.Ordered](a, b T) Ordering {
	aNaN := a != a
	bNaN := b != b

	switch {
	case aNaN && bNaN:
		return Eq
	case aNaN:
		return Lt
	case bNaN:
		return Gt
	case a < b:
		return Lt
	case a > b:
		return Gt
	}
	return Eq
}

// NaturalOrder compares strings the way humans do: digit sequences are compared by their
// numeric value ("file2" < "file10").
func NaturalOrder(a, b string) Ordering {
	switch {
	case a == b:
		return Eq
	case natural.Less(a, b):
		return Lt
	default:
		return Gt
	}
}
