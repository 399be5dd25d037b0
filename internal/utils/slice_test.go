package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverse(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		var s []int
		Reverse(s)
		assert.Empty(t, s)
	})

	t.Run("odd length", func(t *testing.T) {
		s := []int{1, 2, 3}
		Reverse(s)
		assert.Equal(t, []int{3, 2, 1}, s)
	})

	t.Run("even length", func(t *testing.T) {
		s := []int{1, 2, 3, 4}
		Reverse(s)
		assert.Equal(t, []int{4, 3, 2, 1}, s)
	})
}

func TestCopyReversed(t *testing.T) {
	t.Parallel()

	dst := make([]string, 3)
	n := CopyReversed(dst, []string{"a", "b", "c"})
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"c", "b", "a"}, dst)

	short := make([]string, 2)
	n = CopyReversed(short, []string{"a", "b", "c"})
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"c", "b"}, short)
}

func TestSpanLen(t *testing.T) {
	t.Parallel()

	n, ok := SpanLen(1, 3)
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	n, ok = SpanLen(3, 1)
	assert.True(t, ok)
	assert.Zero(t, n)

	n, ok = SpanLen[int8](math.MinInt8, math.MaxInt8)
	assert.True(t, ok)
	assert.Equal(t, 256, n)

	_, ok = SpanLen[int64](math.MinInt64, math.MaxInt64)
	assert.False(t, ok)
}

func TestMulNoOverflow(t *testing.T) {
	t.Parallel()

	p, ok := MulNoOverflow(3, 4)
	assert.True(t, ok)
	assert.Equal(t, 12, p)

	_, ok = MulNoOverflow(math.MaxInt, 2)
	assert.False(t, ok)

	_, ok = MulNoOverflow(-1, 2)
	assert.False(t, ok)
}
