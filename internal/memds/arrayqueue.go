package memds

import (
	"iter"

	"github.com/inoxlang/seqlist/internal/seqlist"
	"github.com/inoxlang/seqlist/internal/utils"
)

const (
	// the dequeued prefix of a queue is reclaimed once it is at least as large as
	// the number of live elements and MIN_COMPACTABLE_PREFIX.
	MIN_COMPACTABLE_PREFIX = 32
)

// thread unsafe array queue. The queue uniquely owns its list, so Enqueue appends in place
// and Dequeue only advances the start of the list.
type ArrayQueue[T any] struct {
	elements seqlist.List[T]

	//upper bound of the number of dequeued slots still held by the buffer.
	dequeued int
}

func NewArrayQueue[T any]() *ArrayQueue[T] {
	return &ArrayQueue[T]{}
}

// Enqueue adds a value to the end of the queue.
func (q *ArrayQueue[T]) Enqueue(value T) {
	q.elements = q.elements.Append(value)
}

// EnqueueAll adds zero or more values to the end of the queue.
func (q *ArrayQueue[T]) EnqueueAll(values ...T) {
	q.elements = enqueueAll(q.elements, values)
}

// Dequeue removes first element of the queue and returns it.
// Second return parameter is true, unless the queue was empty and there was nothing to dequeue.
func (q *ArrayQueue[T]) Dequeue() (value T, ok bool) {
	value, ok, q.elements, q.dequeued = dequeue(q.elements, q.dequeued)
	return
}

// Peek returns first element of the queue without removing it.
// Second return parameter is true, unless the queue was empty and there was nothing to peek.
func (q *ArrayQueue[T]) Peek() (value T, ok bool) {
	value, err := q.elements.First()
	return value, err == nil
}

// Empty returns true if queue does not contain any elements.
func (q *ArrayQueue[T]) Empty() bool {
	return q.elements.IsEmpty()
}

// Size returns the number of elements within the queue.
func (q *ArrayQueue[T]) Size() int {
	return q.elements.Len()
}

// Clear removes all elements from the queue.
func (q *ArrayQueue[T]) Clear() {
	q.elements.Release()
	q.elements = seqlist.Empty[T]()
	q.dequeued = 0
}

// Values returns all elements in the queue (FIFO order).
func (q *ArrayQueue[T]) Values() []T {
	return q.elements.ToSlice()
}

// Snapshot returns a handle sharing the buffer of the queue, the next modification of the
// queue copies its elements. The caller should release the snapshot when done.
func (q *ArrayQueue[T]) Snapshot() seqlist.List[T] {
	return q.elements.Share()
}

// Entries returns an iterator over the elements in FIFO order, the queue should not be modified
// during the iteration.
func (q *ArrayQueue[T]) Entries() iter.Seq2[int, T] {
	return q.elements.Entries()
}

func (q *ArrayQueue[T]) ForEachElem(fn func(i int, e T) error) error {
	for i, e := range q.elements.Entries() {
		err := fn(i, e)
		if err != nil {
			return err
		}
	}
	return nil
}

// ArrayQueueIterator iterates over a snapshot of a queue, the queue can be modified during
// the iteration.
type ArrayQueueIterator[T any] struct {
	index    int
	elements seqlist.List[T]
}

func (q *ArrayQueue[T]) Iterator() *ArrayQueueIterator[T] {
	return &ArrayQueueIterator[T]{
		index:    -1,
		elements: q.elements.Share(),
	}
}

func (it *ArrayQueueIterator[T]) Next() bool {
	if it.index >= it.elements.Len()-1 {
		return false
	}
	it.index++
	return true
}

func (it *ArrayQueueIterator[T]) Value() T {
	return utils.Must(it.elements.Get(it.index))
}

func (it *ArrayQueueIterator[T]) Index() int {
	return it.index
}

// Close releases the snapshot held by the iterator.
func (it *ArrayQueueIterator[T]) Close() {
	it.elements.Release()
	it.elements = seqlist.List[T]{}
}

func enqueueAll[T any](elements seqlist.List[T], values []T) seqlist.List[T] {
	elements = elements.Reserve(len(values))
	for _, v := range values {
		elements = elements.Append(v)
	}
	return elements
}

func dequeue[T any](elements seqlist.List[T], dequeued int) (T, bool, seqlist.List[T], int) {
	first, err := elements.First()
	if err != nil {
		return first, false, elements, dequeued
	}

	elements = elements.DropFromFront(1)
	dequeued++

	if dequeued >= MIN_COMPACTABLE_PREFIX && dequeued >= elements.Len() {
		if e := logger().Debug(); e.Enabled() {
			e.Int("len", elements.Len()).Int("dequeued", dequeued).Msg("buffer compacted")
		}
		elements = elements.ReleaseExcessCapacity()
		dequeued = 0
	}
	return first, true, elements, dequeued
}
