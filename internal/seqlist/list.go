package seqlist

import (
	"fmt"
	"iter"
	"slices"

	"github.com/inoxlang/seqlist/internal/utils"
	"golang.org/x/exp/constraints"
)

// List is a growable sequence of elements stored in a buffer that may be shared by several
// handles. A handle is unique when it holds the only reference to its buffer: operations
// that modify a unique list do so in place, operations on a shared list clone the buffer
// first so that other handles never observe the modification.
//
// Methods returning a List consume their receiver: the receiver should not be used after the
// call, only the returned list. Share registers an additional handle, copying the struct
// by assignment does not, the two copies would both be considered unique.
//
// The zero value is an empty list and holds no allocation.
type List[T any] struct {
	buf    *buffer[T]
	offset int
	length int
}

// Empty returns a list of length 0 and capacity 0.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Single returns a list containing v.
func Single[T any](v T) List[T] {
	list := newList[T](1)
	list.buf.slots[0] = v
	list.length = 1
	return list
}

// Repeat returns a list containing n copies of v, ErrAllocationFailure is returned if n
// exceeds MaxLength[T](). A negative n results in an empty list.
func Repeat[T any](v T, n int) (List[T], error) {
	list, err := WithCapacity[T](n)
	if err != nil {
		return List[T]{}, err
	}
	if list.buf == nil {
		return list, nil
	}

	slots := list.buf.slots[:n]
	for i := range slots {
		slots[i] = v
	}
	list.length = n
	return list, nil
}

// WithCapacity returns an empty list with room for n elements.
func WithCapacity[T any](n int) (List[T], error) {
	if n <= 0 {
		return List[T]{}, nil
	}
	if maxLen := MaxLength[T](); n > maxLen {
		return List[T]{}, fmt.Errorf("%w: %d elements requested, maximum is %d", ErrAllocationFailure, n, maxLen)
	}
	return newList[T](n), nil
}

// Range returns the integers of [lo, hi] in increasing order, the list is empty if hi < lo.
// Range panics with ErrAllocationFailure if the span is too large to be allocated.
func Range[I constraints.Integer](lo, hi I) List[I] {
	length, ok := utils.SpanLen(lo, hi)
	if !ok {
		err := fmt.Errorf("%w: range [%v, %v] is too large", ErrAllocationFailure, lo, hi)
		logger().Error().Err(err).Send()
		panic(err)
	}

	list := newList[I](length)
	if length == 0 {
		return list
	}

	slots := list.buf.slots
	v := lo
	for i := range slots {
		slots[i] = v
		v++
	}
	list.length = length
	return list
}

// FromSlice returns a list holding a copy of s.
func FromSlice[T any](s []T) List[T] {
	return copyOf(s, len(s))
}

// Collect returns a list of the values yielded by seq.
func Collect[T any](seq iter.Seq[T]) List[T] {
	var elements []T
	for v := range seq {
		elements = append(elements, v)
	}
	return adoptSlice(elements)
}

func (l List[T]) view() []T {
	if l.buf == nil {
		return nil
	}
	return l.buf.slots[l.offset : l.offset+l.length]
}

// Len returns the number of elements.
func (l List[T]) Len() int {
	return l.length
}

// Cap returns the number of elements the list can hold without growing.
func (l List[T]) Cap() int {
	if l.buf == nil {
		return 0
	}
	return len(l.buf.slots) - l.offset
}

func (l List[T]) IsEmpty() bool {
	return l.length == 0
}

// IsUnique reports whether l holds the only reference to its buffer. Lists without a
// buffer are unique.
func (l List[T]) IsUnique() bool {
	return l.buf == nil || l.buf.refs.Load() == 1
}

// Share returns a new handle to the buffer of l, both l and the returned handle are then
// shared until one of them is released or consumed by a cloning operation.
func (l List[T]) Share() List[T] {
	if l.buf != nil {
		l.buf.refs.Add(1)
	}
	return l
}

// Release gives up the reference of l on its buffer, l should not be used afterwards.
func (l List[T]) Release() {
	if l.buf != nil {
		l.buf.refs.Add(-1)
	}
}

// Get returns the element at index i or an error wrapping ErrOutOfBounds.
func (l List[T]) Get(i int) (T, error) {
	if i < 0 || i >= l.length {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrOutOfBounds, i, l.length)
	}
	return l.buf.slots[l.offset+i], nil
}

func (l List[T]) First() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, ErrListWasEmpty
	}
	return l.buf.slots[l.offset], nil
}

func (l List[T]) Last() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, ErrListWasEmpty
	}
	return l.buf.slots[l.offset+l.length-1], nil
}

// Any returns true if pred returns true for at least one element, elements after the first
// match are not visited.
func (l List[T]) Any(pred func(T) bool) bool {
	for _, e := range l.view() {
		if pred(e) {
			return true
		}
	}
	return false
}

// All returns true if pred returns true for every element, it stops at the first mismatch.
// All returns true for an empty list.
func (l List[T]) All(pred func(T) bool) bool {
	for _, e := range l.view() {
		if !pred(e) {
			return false
		}
	}
	return true
}

func (l List[T]) CountIf(pred func(T) bool) int {
	count := 0
	for _, e := range l.view() {
		if pred(e) {
			count++
		}
	}
	return count
}

func (l List[T]) FindFirst(pred func(T) bool) (T, error) {
	i, err := l.FindFirstIndex(pred)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.buf.slots[l.offset+i], nil
}

func (l List[T]) FindLast(pred func(T) bool) (T, error) {
	i, err := l.FindLastIndex(pred)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.buf.slots[l.offset+i], nil
}

// FindFirstIndex returns the index of the first element matching pred or ErrOutOfBounds.
func (l List[T]) FindFirstIndex(pred func(T) bool) (int, error) {
	for i, e := range l.view() {
		if pred(e) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: no element matches", ErrOutOfBounds)
}

// FindLastIndex returns the index of the last element matching pred or ErrOutOfBounds.
func (l List[T]) FindLastIndex(pred func(T) bool) (int, error) {
	view := l.view()
	for i := len(view) - 1; i >= 0; i-- {
		if pred(view[i]) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: no element matches", ErrOutOfBounds)
}

// ToSlice returns a copy of the elements, the result is never nil.
func (l List[T]) ToSlice() []T {
	s := make([]T, l.length)
	copy(s, l.view())
	return s
}

func (l List[T]) String() string {
	return fmt.Sprint(utils.EmptySliceIfNil(l.view()))
}

func Contains[T comparable](l List[T], v T) bool {
	return slices.Contains(l.view(), v)
}

func Equal[T comparable](a, b List[T]) bool {
	return slices.Equal(a.view(), b.view())
}

func StartsWith[T comparable](l List[T], prefix List[T]) bool {
	if prefix.length > l.length {
		return false
	}
	return slices.Equal(l.view()[:prefix.length], prefix.view())
}

func EndsWith[T comparable](l List[T], suffix List[T]) bool {
	if suffix.length > l.length {
		return false
	}
	return slices.Equal(l.view()[l.length-suffix.length:], suffix.view())
}
