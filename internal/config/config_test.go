package config

import (
	"testing"

	"github.com/inoxlang/seqlist/internal/seqlist"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

//the tests in this file modify package-level state, they should not call t.Parallel().

func mapLookup(env map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}
}

func resetVars() func() {
	growthFactor, minAlloc, logLevel := GROWTH_FACTOR, MIN_ALLOCATION, LOG_LEVEL
	forceColor, noColor := FORCE_COLOR, NO_COLOR

	return func() {
		GROWTH_FACTOR, MIN_ALLOCATION, LOG_LEVEL = growthFactor, minAlloc, logLevel
		FORCE_COLOR, NO_COLOR = forceColor, noColor
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		defer resetVars()()

		err := loadFromEnv(mapLookup(map[string]string{
			GROWTH_FACTOR_ENV_VAR:  "3",
			MIN_ALLOCATION_ENV_VAR: "16",
			LOG_LEVEL_ENV_VAR:      "debug",
			"FORCE_COLOR":          "1",
			"NO_COLOR":             "false",
		}))

		assert.NoError(t, err)
		assert.Equal(t, 3, GROWTH_FACTOR)
		assert.Equal(t, 16, MIN_ALLOCATION)
		assert.Equal(t, zerolog.DebugLevel, LOG_LEVEL)
		assert.True(t, FORCE_COLOR)
		assert.False(t, NO_COLOR)
	})

	t.Run("invalid values are ignored", func(t *testing.T) {
		defer resetVars()()
		GROWTH_FACTOR = seqlist.DEFAULT_GROWTH_FACTOR

		err := loadFromEnv(mapLookup(map[string]string{
			GROWTH_FACTOR_ENV_VAR:  "1",
			MIN_ALLOCATION_ENV_VAR: "-5",
			LOG_LEVEL_ENV_VAR:      "verbose",
		}))

		assert.ErrorIs(t, err, seqlist.ErrInvalidGrowthFactor)
		assert.ErrorContains(t, err, MIN_ALLOCATION_ENV_VAR)
		assert.ErrorContains(t, err, LOG_LEVEL_ENV_VAR)
		assert.Equal(t, seqlist.DEFAULT_GROWTH_FACTOR, GROWTH_FACTOR)
	})

	t.Run("non numeric growth factor", func(t *testing.T) {
		defer resetVars()()

		err := loadFromEnv(mapLookup(map[string]string{GROWTH_FACTOR_ENV_VAR: "x"}))
		assert.ErrorContains(t, err, GROWTH_FACTOR_ENV_VAR)
	})

	t.Run("no variables", func(t *testing.T) {
		defer resetVars()()
		assert.NoError(t, loadFromEnv(mapLookup(nil)))
	})
}

func TestApply(t *testing.T) {
	defer resetVars()()
	defer seqlist.SetPolicy(seqlist.GetPolicy())

	GROWTH_FACTOR = 4
	MIN_ALLOCATION = 8
	assert.NoError(t, Apply())
	assert.Equal(t, seqlist.Policy{GrowthFactor: 4, MinAllocation: 8}, seqlist.GetPolicy())

	list := seqlist.Single(1).Append(2)
	assert.Equal(t, 8, list.Cap())
}

func TestColorize(t *testing.T) {
	shouldColorize := SHOULD_COLORIZE
	defer func() {
		SHOULD_COLORIZE = shouldColorize
	}()

	SHOULD_COLORIZE = false
	assert.Equal(t, "error", Colorize("error", "1"))
	assert.Equal(t, "invalid element: x", Colorize("invalid element: \x1b[31mx\x1b[0m", "1"))
}
