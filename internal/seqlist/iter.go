package seqlist

import (
	"iter"
)

// Entries returns an iterator over the indexes and elements of l, from left to right.
func (l List[T]) Entries() iter.Seq2[int, T] {
	view := l.view()
	return func(yield func(int, T) bool) {
		for i, e := range view {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements of l, from left to right.
func (l List[T]) Values() iter.Seq[T] {
	view := l.view()
	return func(yield func(T) bool) {
		for _, e := range view {
			if !yield(e) {
				return
			}
		}
	}
}

// Backward returns an iterator over the indexes and elements of l, from right to left.
func (l List[T]) Backward() iter.Seq2[int, T] {
	view := l.view()
	return func(yield func(int, T) bool) {
		for i := len(view) - 1; i >= 0; i-- {
			if !yield(i, view[i]) {
				return
			}
		}
	}
}
