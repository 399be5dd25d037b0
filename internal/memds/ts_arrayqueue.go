package memds

import (
	"sync"

	"github.com/inoxlang/seqlist/internal/seqlist"
)

// Thread safe array queue
type TSArrayQueue[T any] struct {
	elements seqlist.List[T]
	dequeued int
	lock     sync.RWMutex

	autoRemoveCondition func(v T) bool
	hasHadElements      bool
}

func NewTSArrayQueue[T any]() *TSArrayQueue[T] {
	return &TSArrayQueue[T]{}
}

func NewTSArrayQueueWithConfig[T any](config TSArrayQueueConfig[T]) *TSArrayQueue[T] {
	q := &TSArrayQueue[T]{}
	q.autoRemoveCondition = config.AutoRemoveCondition

	return q
}

type TSArrayQueueConfig[T any] struct {
	AutoRemoveCondition func(v T) bool
}

// Enqueue adds a value to the end of the queue
func (q *TSArrayQueue[T]) Enqueue(value T) {
	q.lock.Lock()
	defer q.lock.Unlock()

	q.elements = q.elements.Append(value)
	q.hasHadElements = true
}

// EnqueueAutoRemove does the same as Enqueue but also removes all elements that validate the autoremove condition.
func (q *TSArrayQueue[T]) EnqueueAutoRemove(value T) {
	q.lock.Lock()
	defer q.lock.Unlock()

	q.elements = q.elements.Append(value)
	q.hasHadElements = true
	q.autoRemoveNoLock()
}

// EnqueueAll adds zero or more values to the end of the queue
func (q *TSArrayQueue[T]) EnqueueAll(values ...T) {
	q.lock.Lock()
	defer q.lock.Unlock()

	q.elements = enqueueAll(q.elements, values)
	if len(values) > 0 {
		q.hasHadElements = true
	}
}

// EnqueueAllAutoRemove does the same as EnqueueAll but also removes all elements that validate the autoremove condition.
func (q *TSArrayQueue[T]) EnqueueAllAutoRemove(values ...T) {
	q.lock.Lock()
	defer q.lock.Unlock()

	q.elements = enqueueAll(q.elements, values)
	if len(values) > 0 {
		q.hasHadElements = true
	}
	q.autoRemoveNoLock()
}

// Dequeue removes first element of the queue and returns it.
// Second return parameter is true, unless the queue was empty and there was nothing to dequeue.
func (q *TSArrayQueue[T]) Dequeue() (value T, ok bool) {
	q.lock.Lock()
	defer q.lock.Unlock()

	value, ok, q.elements, q.dequeued = dequeue(q.elements, q.dequeued)
	return
}

// DequeueAll removes all the elements of the queue and returns them.
// The first element of the queue is the first element in the returned slice.
func (q *TSArrayQueue[T]) DequeueAll() []T {
	q.lock.Lock()
	defer q.lock.Unlock()

	elements := q.elements.ToSlice()
	q.elements = q.elements.Drop(q.elements.Len())
	return elements
}

// Peek returns first element of the queue without removing it.
// Second return parameter is true, unless the queue was empty and there was nothing to peek.
func (q *TSArrayQueue[T]) Peek() (value T, ok bool) {
	q.lock.RLock()
	defer q.lock.RUnlock()

	value, err := q.elements.First()
	return value, err == nil
}

// IsEmpty returns true if queue does not contain any elements.
func (q *TSArrayQueue[T]) IsEmpty() bool {
	q.lock.RLock()
	defer q.lock.RUnlock()

	return q.elements.IsEmpty()
}

// HasNeverHadElements returns true if no element was ever added to the queue.
func (q *TSArrayQueue[T]) HasNeverHadElements() bool {
	q.lock.RLock()
	defer q.lock.RUnlock()

	return !q.hasHadElements
}

// Size returns the number of elements within the queue.
func (q *TSArrayQueue[T]) Size() int {
	q.lock.RLock()
	defer q.lock.RUnlock()

	return q.elements.Len()
}

// Clear removes all elements from the queue.
func (q *TSArrayQueue[T]) Clear() {
	q.lock.Lock()
	defer q.lock.Unlock()

	q.elements.Release()
	q.elements = seqlist.Empty[T]()
	q.dequeued = 0
}

// AutoRemove removes all elements that validate the autoremove condition.
// If there is not autoremove condition the function does nothing.
func (q *TSArrayQueue[T]) AutoRemove() {
	if q.autoRemoveCondition == nil {
		return
	}

	q.lock.Lock()
	defer q.lock.Unlock()

	q.autoRemoveNoLock()
}

func (q *TSArrayQueue[T]) autoRemoveNoLock() {
	if q.autoRemoveCondition == nil {
		return
	}
	q.elements = q.elements.DropIf(q.autoRemoveCondition)
}

// Values returns all elements in the queue (FIFO order).
func (q *TSArrayQueue[T]) Values() []T {
	q.lock.RLock()
	defer q.lock.RUnlock()

	return q.elements.ToSlice()
}

// Snapshot returns a handle sharing the buffer of the queue. The snapshot can be read from
// any goroutine, the next modification of the queue copies its elements.
func (q *TSArrayQueue[T]) Snapshot() seqlist.List[T] {
	q.lock.RLock()
	defer q.lock.RUnlock()

	return q.elements.Share()
}

func (q *TSArrayQueue[T]) Iterator() *ArrayQueueIterator[T] {
	return &ArrayQueueIterator[T]{
		index:    -1,
		elements: q.Snapshot(),
	}
}
