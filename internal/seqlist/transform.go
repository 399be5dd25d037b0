package seqlist

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/inoxlang/seqlist/internal/utils"
)

// Set replaces the element at index i with v. If i is out of bounds the list is returned
// unchanged.
func (l List[T]) Set(i int, v T) List[T] {
	if i < 0 || i >= l.length {
		return l
	}
	if !l.IsUnique() {
		l = l.detach(l.length, "set")
	}
	l.buf.slots[l.offset+i] = v
	return l
}

// Replace is like Set but also returns the previous element. If i is out of bounds the list
// is returned unchanged together with v and false.
func (l List[T]) Replace(i int, v T) (List[T], T, bool) {
	if i < 0 || i >= l.length {
		return l, v, false
	}
	old := l.buf.slots[l.offset+i]
	return l.Set(i, v), old, true
}

// Swap exchanges the elements at i and j, the list is returned unchanged if one of the
// indexes is out of bounds.
func (l List[T]) Swap(i, j int) List[T] {
	if i < 0 || j < 0 || i >= l.length || j >= l.length || i == j {
		return l
	}
	if !l.IsUnique() {
		l = l.detach(l.length, "swap")
	}
	view := l.view()
	view[i], view[j] = view[j], view[i]
	return l
}

// Append adds v at the end of the list. A unique list with spare capacity is modified in
// place, otherwise the elements are copied into a larger buffer.
func (l List[T]) Append(v T) List[T] {
	if l.IsUnique() && l.length < l.Cap() {
		l.buf.slots[l.offset+l.length] = v
		l.length++
		return l
	}

	l = l.grow(l.length+1, "append")
	l.buf.slots[l.length] = v
	l.length++
	return l
}

// Prepend adds v at the start of the list, a new buffer of length+1 elements is always
// allocated.
func (l List[T]) Prepend(v T) List[T] {
	list := newList[T](l.length + 1)
	list.buf.slots[0] = v
	list.length = 1 + copy(list.buf.slots[1:], l.view())
	l.Release()
	return list
}

// Concat appends the elements of other to l, other is not consumed.
func (l List[T]) Concat(other List[T]) List[T] {
	otherElements := other.view()
	if len(otherElements) == 0 {
		return l
	}

	if l.IsUnique() && l.Cap()-l.length >= len(otherElements) {
		copy(l.buf.slots[l.offset+l.length:], otherElements)
		l.length += len(otherElements)
		return l
	}

	list := newList[T](l.length + len(otherElements))
	n := copy(list.buf.slots, l.view())
	n += copy(list.buf.slots[n:], otherElements)
	list.length = n
	l.Release()
	return list
}

// DropLast removes the last element. ErrListWasEmpty is returned, with the unchanged list,
// if the list is empty.
func (l List[T]) DropLast() (others List[T], last T, err error) {
	if l.length == 0 {
		return l, last, ErrListWasEmpty
	}

	last = l.buf.slots[l.offset+l.length-1]
	if l.IsUnique() {
		var zero T
		l.buf.slots[l.offset+l.length-1] = zero
		l.length--
		return l, last, nil
	}

	return l.copyRange(0, l.length-1, "dropLast"), last, nil
}

// DropFirst removes the first element, the remaining elements are always copied into a new
// buffer. ErrListWasEmpty is returned, with the unchanged list, if the list is empty.
func (l List[T]) DropFirst() (first T, others List[T], err error) {
	if l.length == 0 {
		return first, l, ErrListWasEmpty
	}

	first = l.buf.slots[l.offset]
	return first, l.copyRange(1, l.length, "dropFirst"), nil
}

// Drop removes the last n elements, n is clamped to [0, length].
func (l List[T]) Drop(n int) List[T] {
	n = clamp(n, l.length)
	if n == 0 {
		return l
	}

	if l.IsUnique() {
		clear(l.view()[l.length-n:])
		l.length -= n
		return l
	}
	return l.copyRange(0, l.length-n, "drop")
}

// DropFromFront removes the first n elements, n is clamped to [0, length]. A unique list
// only advances its offset.
func (l List[T]) DropFromFront(n int) List[T] {
	n = clamp(n, l.length)
	if n == 0 {
		return l
	}

	if l.IsUnique() {
		clear(l.view()[:n])
		l.offset += n
		l.length -= n
		return l
	}
	return l.copyRange(n, l.length, "dropFromFront")
}

// DropAt removes the element at index i, the list is returned unchanged if i is out of bounds.
func (l List[T]) DropAt(i int) List[T] {
	if i < 0 || i >= l.length {
		return l
	}

	if l.IsUnique() {
		view := l.view()
		copy(view[i:], view[i+1:])
		var zero T
		view[len(view)-1] = zero
		l.length--
		return l
	}

	view := l.view()
	list := newList[T](l.length - 1)
	if list.buf != nil {
		n := copy(list.buf.slots, view[:i])
		n += copy(list.buf.slots[n:], view[i+1:])
		list.length = n
	}
	l.logClone("dropAt", list.Cap())
	l.Release()
	return list
}

// DropIndices removes the elements at the given indexes, out of bounds and duplicate
// indexes are ignored.
func (l List[T]) DropIndices(indices ...int) List[T] {
	if len(indices) == 0 || l.length == 0 {
		return l
	}

	dropped := bitset.New(uint(l.length))
	for _, i := range indices {
		if i >= 0 && i < l.length {
			dropped.Set(uint(i))
		}
	}
	if dropped.None() {
		return l
	}

	return l.keepIndexed("dropIndices", func(i int, _ T) bool {
		return !dropped.Test(uint(i))
	})
}

// Reverse reverses the order of the elements.
func (l List[T]) Reverse() List[T] {
	if l.length <= 1 {
		return l
	}
	if l.IsUnique() {
		utils.Reverse(l.view())
		return l
	}

	list := newList[T](l.length)
	list.length = utils.CopyReversed(list.buf.slots, l.view())
	l.logClone("reverse", list.Cap())
	l.Release()
	return list
}

// Take returns the first min(n, length) elements.
func (l List[T]) Take(n int) List[T] {
	return l.Drop(l.length - clamp(n, l.length))
}

// TakeLast returns the last min(n, length) elements.
func (l List[T]) TakeLast(n int) List[T] {
	return l.DropFromFront(l.length - clamp(n, l.length))
}

// Sublist returns at most n elements starting at index start, the result is empty if start
// is out of bounds.
func (l List[T]) Sublist(start, n int) List[T] {
	start = clamp(start, l.length)
	end := start + clamp(n, l.length-start)

	if start == 0 && end == l.length {
		return l
	}
	if l.IsUnique() {
		return l.Drop(l.length - end).DropFromFront(start)
	}
	return l.copyRange(start, end, "sublist")
}

// Split partitions the list at index i, which is clamped to [0, length]. The two parts are
// independently owned.
func (l List[T]) Split(i int) (before, others List[T]) {
	i = clamp(i, l.length)
	others = copyOf(l.view()[i:], l.length-i)
	before = l.Take(i)
	return
}

// KeepIf only keeps the elements for which pred returns true. A unique list is compacted in
// place and keeps its capacity, a shared list is copied into a buffer of length elements.
func (l List[T]) KeepIf(pred func(T) bool) List[T] {
	return l.keepIndexed("keepIf", func(_ int, e T) bool {
		return pred(e)
	})
}

// DropIf removes the elements for which pred returns true.
func (l List[T]) DropIf(pred func(T) bool) List[T] {
	return l.keepIndexed("dropIf", func(_ int, e T) bool {
		return !pred(e)
	})
}

func (l List[T]) keepIndexed(op string, keep func(i int, e T) bool) List[T] {
	view := l.view()

	if l.IsUnique() {
		kept := 0
		for i, e := range view {
			if keep(i, e) {
				view[kept] = e
				kept++
			}
		}
		clear(view[kept:])
		l.length = kept
		return l
	}

	list := newList[T](l.length)
	for i, e := range view {
		if keep(i, e) {
			list.buf.slots[list.length] = e
			list.length++
		}
	}
	l.logClone(op, list.Cap())
	l.Release()
	return list
}

// Intersperse inserts sep between each pair of consecutive elements.
func (l List[T]) Intersperse(sep T) List[T] {
	if l.length <= 1 {
		return l
	}

	list := newList[T](2*l.length - 1)
	for i, e := range l.view() {
		if i > 0 {
			list.buf.slots[list.length] = sep
			list.length++
		}
		list.buf.slots[list.length] = e
		list.length++
	}
	l.Release()
	return list
}

// Reserve makes sure that at least n elements can be appended without growing the buffer.
func (l List[T]) Reserve(n int) List[T] {
	if n <= 0 || (l.IsUnique() && l.Cap()-l.length >= n) {
		return l
	}
	return l.detach(l.length+n, "reserve")
}

// ReleaseExcessCapacity returns a list whose buffer holds exactly its elements, the slots
// released by DropFromFront are reclaimed as well.
func (l List[T]) ReleaseExcessCapacity() List[T] {
	if l.buf == nil || (l.offset == 0 && len(l.buf.slots) == l.length) {
		return l
	}
	if l.length == 0 {
		l.Release()
		return List[T]{}
	}
	return l.detach(l.length, "releaseExcessCapacity")
}

// ChunksOf splits l into lists of n elements, the last chunk may be shorter. The result is
// empty if n <= 0. l is not consumed.
func ChunksOf[T any](l List[T], n int) List[List[T]] {
	if n <= 0 || l.length == 0 {
		return List[List[T]]{}
	}

	view := l.view()
	chunks := newList[List[T]]((l.length + n - 1) / n)
	for start := 0; start < len(view); start += n {
		end := min(start+n, len(view))
		chunks.buf.slots[chunks.length] = FromSlice(view[start:end])
		chunks.length++
	}
	return chunks
}

func clamp(n, length int) int {
	return min(max(n, 0), length)
}
