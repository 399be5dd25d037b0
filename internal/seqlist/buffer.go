package seqlist

import (
	"fmt"
	"sync/atomic"
)

// buffer is the backing storage of one or more lists, len(slots) is the allocated capacity.
type buffer[T any] struct {
	slots []T
	refs  atomic.Int64
}

// newBuffer allocates a buffer with a single owner, it panics with ErrAllocationFailure if
// capacity exceeds MaxLength[T]().
func newBuffer[T any](capacity int) *buffer[T] {
	if maxLen := MaxLength[T](); capacity < 0 || capacity > maxLen {
		err := fmt.Errorf("%w: requested capacity %d, maximum is %d", ErrAllocationFailure, capacity, maxLen)
		logger().Error().Err(err).Send()
		panic(err)
	}

	buf := &buffer[T]{slots: make([]T, capacity)}
	buf.refs.Store(1)
	return buf
}

// adoptSlice wraps s without copying it, the caller should not use s afterwards.
func adoptSlice[T any](s []T) List[T] {
	if cap(s) == 0 {
		return List[T]{}
	}
	buf := &buffer[T]{slots: s[:cap(s)]}
	buf.refs.Store(1)
	return List[T]{buf: buf, length: len(s)}
}

// newList returns an empty list with room for capacity elements.
func newList[T any](capacity int) List[T] {
	if capacity == 0 {
		return List[T]{}
	}
	return List[T]{buf: newBuffer[T](capacity)}
}

// copyOf returns a uniquely owned list holding a copy of elements, with the given capacity.
func copyOf[T any](elements []T, capacity int) List[T] {
	list := newList[T](max(capacity, len(elements)))
	if list.buf != nil {
		list.length = copy(list.buf.slots, elements)
	}
	return list
}

// detach copies the live elements of l into a new buffer of the given capacity and gives up
// the reference of l on its buffer. It is used by the shared paths of mutating operations.
func (l List[T]) detach(capacity int, op string) List[T] {
	clone := copyOf(l.view(), capacity)
	l.logClone(op, clone.Cap())
	l.Release()
	return clone
}

// copyRange is like detach but only keeps the elements in [start, end).
func (l List[T]) copyRange(start, end int, op string) List[T] {
	clone := copyOf(l.view()[start:end], end-start)
	l.logClone(op, clone.Cap())
	l.Release()
	return clone
}

// grow returns a list holding the elements of l with room for at least needed elements.
func (l List[T]) grow(needed int, op string) List[T] {
	oldCapacity := l.Cap()
	newCapacity := grownCapacity[T](oldCapacity, needed)

	grown := copyOf(l.view(), newCapacity)

	if e := logger().Debug(); e.Enabled() {
		e.Str("op", op).
			Bool("shared", !l.IsUnique()).
			Int("len", l.length).
			Int("oldCap", oldCapacity).
			Int("newCap", newCapacity).
			Msg("buffer grown")
	}

	l.Release()
	return grown
}

func (l List[T]) logClone(op string, newCapacity int) {
	if l.buf == nil {
		return
	}
	if e := logger().Debug(); e.Enabled() {
		e.Str("op", op).
			Bool("shared", !l.IsUnique()).
			Int("len", l.length).
			Int("newCap", newCapacity).
			Msg("buffer cloned")
	}
}
