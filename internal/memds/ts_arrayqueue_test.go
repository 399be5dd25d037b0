package memds

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTSArrayQueue(t *testing.T) {
	t.Parallel()

	t.Run("FIFO order", func(t *testing.T) {
		q := NewTSArrayQueue[int]()
		assert.True(t, q.HasNeverHadElements())

		q.EnqueueAll()
		assert.True(t, q.HasNeverHadElements())

		q.EnqueueAll(1, 2)
		q.Enqueue(3)
		assert.False(t, q.HasNeverHadElements())
		assert.Equal(t, 3, q.Size())

		v, ok := q.Peek()
		assert.True(t, ok)
		assert.Equal(t, 1, v)

		v, ok = q.Dequeue()
		assert.True(t, ok)
		assert.Equal(t, 1, v)
		assert.Equal(t, []int{2, 3}, q.DequeueAll())
		assert.True(t, q.IsEmpty())

		_, ok = q.Dequeue()
		assert.False(t, ok)
		assert.False(t, q.HasNeverHadElements())
	})

	t.Run("auto remove", func(t *testing.T) {
		q := NewTSArrayQueueWithConfig(TSArrayQueueConfig[int]{
			AutoRemoveCondition: func(v int) bool {
				return v < 0
			},
		})

		q.EnqueueAll(-1, 1, -2, 2)
		assert.Equal(t, []int{-1, 1, -2, 2}, q.Values())

		q.EnqueueAutoRemove(3)
		assert.Equal(t, []int{1, 2, 3}, q.Values())

		q.EnqueueAll(-3)
		q.AutoRemove()
		assert.Equal(t, []int{1, 2, 3}, q.Values())

		q.EnqueueAllAutoRemove(-4, 4, -5)
		assert.Equal(t, []int{1, 2, 3, 4}, q.Values())
	})

	t.Run("AutoRemove without condition", func(t *testing.T) {
		q := NewTSArrayQueue[int]()
		q.EnqueueAll(-1, 1)
		q.AutoRemove()
		q.EnqueueAutoRemove(2)
		assert.Equal(t, []int{-1, 1, 2}, q.Values())
	})

	t.Run("Clear", func(t *testing.T) {
		q := NewTSArrayQueue[int]()
		q.EnqueueAll(1, 2)
		q.Clear()
		assert.True(t, q.IsEmpty())
		assert.False(t, q.HasNeverHadElements())
	})

	t.Run("concurrent producers and consumers", func(t *testing.T) {
		const PRODUCER_COUNT = 4
		const ELEMENTS_PER_PRODUCER = 500

		q := NewTSArrayQueue[int]()

		var producers sync.WaitGroup
		for p := 0; p < PRODUCER_COUNT; p++ {
			producers.Add(1)
			go func(p int) {
				defer producers.Done()
				for i := 0; i < ELEMENTS_PER_PRODUCER; i++ {
					q.Enqueue(p*ELEMENTS_PER_PRODUCER + i)
				}
			}(p)
		}

		var mutex sync.Mutex
		seen := map[int]bool{}

		done := make(chan struct{})
		var consumers sync.WaitGroup
		for c := 0; c < 2; c++ {
			consumers.Add(1)
			go func() {
				defer consumers.Done()
				for {
					v, ok := q.Dequeue()
					if ok {
						mutex.Lock()
						seen[v] = true
						mutex.Unlock()
						continue
					}
					select {
					case <-done:
						return
					default:
					}
				}
			}()
		}

		producers.Wait()
		close(done)
		consumers.Wait()

		for _, v := range q.DequeueAll() {
			seen[v] = true
		}
		assert.Len(t, seen, PRODUCER_COUNT*ELEMENTS_PER_PRODUCER)
	})

	t.Run("snapshots read from other goroutines", func(t *testing.T) {
		q := NewTSArrayQueue[int]()
		q.EnqueueAll(1, 2, 3)

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				snapshot := q.Snapshot()
				defer snapshot.Release()

				values := snapshot.ToSlice()
				assert.GreaterOrEqual(t, len(values), 3)
				assert.Equal(t, []int{1, 2, 3}, values[:3])
			}()
		}

		for i := 4; i < 100; i++ {
			q.Enqueue(i)
		}
		wg.Wait()

		it := q.Iterator()
		defer it.Close()
		count := 0
		for it.Next() {
			count++
		}
		assert.Equal(t, 99, count)
	})
}
