package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindClosestString(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		s, dist, ok := FindClosestString(context.Background(), []string{"aaa", "bba", "cca"}, "aa", 2)
		if !assert.True(t, ok) {
			return
		}

		assert.Equal(t, 1, dist)
		assert.Equal(t, "aaa", s)
	})

	t.Run("maxDifferences should be respected", func(t *testing.T) {
		_, _, ok := FindClosestString(context.Background(), []string{"aaaaa"}, "aa", 2)
		if !assert.False(t, ok) {
			return
		}
	})

	t.Run("differences are counted in runes", func(t *testing.T) {
		s, dist, ok := FindClosestString(context.Background(), []string{"résumé", "resume"}, "résume", 1)
		if !assert.True(t, ok) {
			return
		}

		assert.Equal(t, 1, dist)
		assert.Equal(t, "résumé", s)
	})

	t.Run("empty candidates", func(t *testing.T) {
		s, dist, ok := FindClosestString(context.Background(), nil, "a", 3)
		assert.False(t, ok)
		assert.Zero(t, dist)
		assert.Empty(t, s)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, ok := FindClosestString(ctx, []string{"a"}, "a", 3)
		assert.False(t, ok)
	})
}

func TestStripANSISequences(t *testing.T) {
	assert.Equal(t, "error", StripANSISequences("\x1b[31merror\x1b[0m"))
}

func TestConvertPanicValueToError(t *testing.T) {
	err := errors.New("e")
	assert.Same(t, err, ConvertPanicValueToError(err))
	assert.EqualError(t, ConvertPanicValueToError("e"), `"e"`)
}
