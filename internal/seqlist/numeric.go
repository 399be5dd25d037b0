package seqlist

import (
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Max returns the greatest element according to CompareOrdered, the first one if several
// elements are equal. NaNs are only returned if all elements are NaN.
// ErrListWasEmpty is returned for an empty list.
func Max[N Number](l List[N]) (N, error) {
	view := l.view()
	if len(view) == 0 {
		return 0, ErrListWasEmpty
	}

	max := view[0]
	for _, n := range view[1:] {
		if CompareOrdered(n, max) == Gt {
			max = n
		}
	}
	return max, nil
}

// Min returns the smallest element according to CompareOrdered, the first one if several
// elements are equal. The first NaN is returned if there is one.
// ErrListWasEmpty is returned for an empty list.
func Min[N Number](l List[N]) (N, error) {
	view := l.view()
	if len(view) == 0 {
		return 0, ErrListWasEmpty
	}

	min := view[0]
	for _, n := range view[1:] {
		if CompareOrdered(n, min) == Lt {
			min = n
		}
	}
	return min, nil
}

// Sum returns the sum of the elements, integer overflows wrap around.
func Sum[N Number](l List[N]) N {
	var sum N
	for _, n := range l.view() {
		sum += n
	}
	return sum
}

// Product returns the product of the elements, 1 for an empty list.
func Product[N Number](l List[N]) N {
	product := N(1)
	for _, n := range l.view() {
		product *= n
	}
	return product
}

// SumFloats returns the sum of a list of float64.
func SumFloats(l List[float64]) float64 {
	return floats.Sum(l.view())
}
