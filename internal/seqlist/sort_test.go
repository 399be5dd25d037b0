package seqlist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort(t *testing.T) {
	t.Parallel()

	t.Run("ascending and descending", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3, 4}, SortAsc(FromSlice([]int{3, 1, 4, 2})).ToSlice())
		assert.Equal(t, []int{4, 3, 2, 1}, SortDesc(FromSlice([]int{3, 1, 4, 2})).ToSlice())
		assert.True(t, SortAsc(Empty[int]()).IsEmpty())
	})

	t.Run("sort is stable", func(t *testing.T) {
		type entry struct {
			key   int
			label string
		}

		list := FromSlice([]entry{{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}, {0, "e"}, {2, "f"}})
		sorted := list.Sort(func(a, b entry) Ordering {
			return CompareOrdered(a.key, b.key)
		})

		labels := Map(sorted, func(e entry) string { return e.label })
		assert.Equal(t, []string{"e", "b", "d", "a", "c", "f"}, labels.ToSlice())
	})

	t.Run("unique list is sorted in place", func(t *testing.T) {
		list := FromSlice([]int{2, 1})
		buf := list.buf
		assert.Same(t, buf, SortAsc(list).buf)
	})

	t.Run("shared list", func(t *testing.T) {
		list := FromSlice([]int{2, 1})
		snapshot := list.Share()

		assert.Equal(t, []int{1, 2}, SortAsc(list).ToSlice())
		assert.Equal(t, []int{2, 1}, snapshot.ToSlice())
	})

	t.Run("NaN", func(t *testing.T) {
		sorted := SortAsc(FromSlice([]float64{1, math.NaN(), 0}))
		require.Equal(t, 3, sorted.Len())
		first, _ := sorted.First()
		assert.True(t, math.IsNaN(first))
		assert.Equal(t, []float64{0, 1}, sorted.DropFromFront(1).ToSlice())
	})

	t.Run("natural order", func(t *testing.T) {
		sorted := FromSlice([]string{"file10", "file2", "file1"}).Sort(NaturalOrder)
		assert.Equal(t, []string{"file1", "file2", "file10"}, sorted.ToSlice())
		assert.Equal(t, Eq, NaturalOrder("a", "a"))
	})
}

func TestOrdering(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Lt, CompareOrdered(1, 2))
	assert.Equal(t, Gt, CompareOrdered("b", "a"))
	assert.Equal(t, Eq, CompareOrdered(math.NaN(), math.NaN()))
	assert.Equal(t, "Lt", Lt.String())
	assert.Equal(t, "Eq", Eq.String())
	assert.Equal(t, "Gt", Gt.String())
}

func TestNumeric(t *testing.T) {
	t.Parallel()

	t.Run("Max and Min", func(t *testing.T) {
		list := FromSlice([]int{3, 7, 1, 7})

		max, err := Max(list)
		require.NoError(t, err)
		assert.Equal(t, 7, max)

		min, err := Min(list)
		require.NoError(t, err)
		assert.Equal(t, 1, min)

		_, err = Max(Empty[float64]())
		assert.ErrorIs(t, err, ErrListWasEmpty)
		_, err = Min(Empty[uint8]())
		assert.ErrorIs(t, err, ErrListWasEmpty)
	})

	t.Run("NaN is less than any other value", func(t *testing.T) {
		nan := math.NaN()

		max, err := Max(FromSlice([]float64{nan, 2, nan, 1}))
		require.NoError(t, err)
		assert.Equal(t, 2.0, max)

		min, err := Min(FromSlice([]float64{1, 0, nan, 2}))
		require.NoError(t, err)
		assert.True(t, math.IsNaN(min))

		max, err = Max(FromSlice([]float64{nan, nan}))
		require.NoError(t, err)
		assert.True(t, math.IsNaN(max))

		sorted := SortAsc(FromSlice([]float64{2, nan, 1}))
		first, _ := sorted.First()
		last, _ := sorted.Last()
		min, _ = Min(sorted)
		max, _ = Max(sorted)
		assert.True(t, math.IsNaN(first) && math.IsNaN(min))
		assert.Equal(t, last, max)
	})

	t.Run("Sum and Product", func(t *testing.T) {
		assert.Equal(t, 10, Sum(Range(1, 4)))
		assert.Equal(t, 24, Product(Range(1, 4)))
		assert.Equal(t, 0, Sum(Empty[int]()))
		assert.Equal(t, 1, Product(Empty[int]()))
		assert.Equal(t, uint8(4), Sum(FromSlice([]uint8{255, 5})))
	})

	t.Run("SumFloats", func(t *testing.T) {
		assert.InDelta(t, 1.0, SumFloats(FromSlice([]float64{0.25, 0.25, 0.5})), 1e-12)
		assert.Zero(t, SumFloats(Empty[float64]()))
	})
}
