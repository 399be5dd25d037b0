package seqlist

import (
	"bytes"
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//the tests in this file modify package-level state, they should not call t.Parallel().

func TestPolicy(t *testing.T) {
	defaultPolicy := GetPolicy()
	defer SetPolicy(defaultPolicy)

	t.Run("default policy", func(t *testing.T) {
		assert.Equal(t, Policy{GrowthFactor: DEFAULT_GROWTH_FACTOR, MinAllocation: DEFAULT_MIN_ALLOCATION}, defaultPolicy)
	})

	t.Run("invalid policies", func(t *testing.T) {
		assert.ErrorIs(t, SetPolicy(Policy{GrowthFactor: 1}), ErrInvalidGrowthFactor)
		assert.ErrorIs(t, SetPolicy(Policy{GrowthFactor: MAX_GROWTH_FACTOR + 1}), ErrInvalidGrowthFactor)
		assert.Error(t, SetPolicy(Policy{GrowthFactor: 2, MinAllocation: -1}))
		assert.Equal(t, defaultPolicy, GetPolicy())
	})

	t.Run("growth factor", func(t *testing.T) {
		require.NoError(t, SetPolicy(Policy{GrowthFactor: 3}))
		defer SetPolicy(defaultPolicy)

		list := FromSlice([]int{1, 2, 3, 4}).Append(5)
		assert.Equal(t, 12, list.Cap())

		list = Empty[int]().Append(1)
		assert.Equal(t, 1, list.Cap())
	})

	t.Run("minimum allocation", func(t *testing.T) {
		require.NoError(t, SetPolicy(Policy{GrowthFactor: 2, MinAllocation: 10}))
		defer SetPolicy(defaultPolicy)

		list := Single(1).Append(2)
		assert.Equal(t, 10, list.Cap())
	})

	t.Run("grown capacity is clamped to the maximum length", func(t *testing.T) {
		maxLen := MaxLength[byte]()
		assert.Equal(t, maxLen, grownCapacity[byte](maxLen/2+1, maxLen/2+2))
		assert.Equal(t, maxLen, grownCapacity[byte](math.MaxInt/2+10, 1))
		assert.Equal(t, 8, grownCapacity[byte](4, 5))
		assert.Equal(t, 20, grownCapacity[byte](4, 20))
	})
}

func TestLogging(t *testing.T) {
	defer ResetLogger()

	var out bytes.Buffer
	SetLogger(zerolog.New(&out).Level(zerolog.DebugLevel))

	decodeEvents := func() []map[string]any {
		var events []map[string]any
		for _, line := range bytes.Split(bytes.TrimSpace(out.Bytes()), []byte{'\n'}) {
			if len(line) == 0 {
				continue
			}
			var event map[string]any
			require.NoError(t, json.Unmarshal(line, &event))
			events = append(events, event)
		}
		out.Reset()
		return events
	}

	t.Run("growth", func(t *testing.T) {
		FromSlice([]int{1, 2}).Append(3)

		events := decodeEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "buffer grown", events[0]["msg"])
		assert.Equal(t, "debug", events[0]["lvl"])
		assert.Equal(t, LOG_SOURCE, events[0][SOURCE_LOG_FIELD_NAME])
		assert.Equal(t, "append", events[0]["op"])
		assert.EqualValues(t, 2, events[0]["oldCap"])
		assert.EqualValues(t, 4, events[0]["newCap"])
	})

	t.Run("copy-on-write clone", func(t *testing.T) {
		list := FromSlice([]int{1, 2})
		snapshot := list.Share()
		list.Set(0, 5)

		events := decodeEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "buffer cloned", events[0]["msg"])
		assert.Equal(t, "set", events[0]["op"])
		assert.Equal(t, true, events[0]["shared"])
		snapshot.Release()
	})

	t.Run("in-place operations are not logged", func(t *testing.T) {
		list, _ := WithCapacity[int](4)
		list.Append(1).Append(2).Set(0, 3).Reverse()
		assert.Empty(t, decodeEvents())
	})

	t.Run("allocation failure", func(t *testing.T) {
		var recovered any
		func() {
			defer func() {
				recovered = recover()
			}()
			Range[int64](math.MinInt64, math.MaxInt64)
		}()

		err, ok := recovered.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrAllocationFailure)

		events := decodeEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "error", events[0]["lvl"])
	})

	t.Run("ResetLogger", func(t *testing.T) {
		ResetLogger()
		FromSlice([]int{1}).Append(2)
		assert.Empty(t, decodeEvents())
	})
}
