package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/inoxlang/seqlist/internal/seqlist"
	"github.com/inoxlang/seqlist/internal/utils"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
)

const (
	APP_NAME = "seqlist"

	GROWTH_FACTOR_ENV_VAR  = "SEQLIST_GROWTH_FACTOR"
	MIN_ALLOCATION_ENV_VAR = "SEQLIST_MIN_ALLOCATION"
	LOG_LEVEL_ENV_VAR      = "SEQLIST_LOG_LEVEL"

	DEFAULT_LOG_LEVEL = zerolog.InfoLevel
)

var (
	GROWTH_FACTOR  = seqlist.DEFAULT_GROWTH_FACTOR
	MIN_ALLOCATION = seqlist.DEFAULT_MIN_ALLOCATION
	LOG_LEVEL      = DEFAULT_LOG_LEVEL

	FORCE_COLOR           bool
	TRUECOLOR_COLORTERM   bool
	TERM_256COLOR_CAPABLE bool
	NO_COLOR              bool
	SHOULD_COLORIZE       bool

	// termenv.Ascii if !SHOULD_COLORIZE
	COLOR_PROFILE = termenv.Ascii

	// set if an environment variable has an invalid value, the default value is kept.
	ENV_ERR error
)

func init() {
	ENV_ERR = loadFromEnv(os.LookupEnv)
	targetSpecificInit()
}

// loadFromEnv reads the SEQLIST_* variables, invalid values are reported and ignored.
func loadFromEnv(lookup func(string) (string, bool)) error {
	var errs []error

	if s, ok := lookup(GROWTH_FACTOR_ENV_VAR); ok {
		factor, err := strconv.Atoi(s)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%s: %w", GROWTH_FACTOR_ENV_VAR, err))
		case factor < 2 || factor > seqlist.MAX_GROWTH_FACTOR:
			errs = append(errs, fmt.Errorf("%s: %w: %d", GROWTH_FACTOR_ENV_VAR, seqlist.ErrInvalidGrowthFactor, factor))
		default:
			GROWTH_FACTOR = factor
		}
	}

	if s, ok := lookup(MIN_ALLOCATION_ENV_VAR); ok {
		minAlloc, err := strconv.Atoi(s)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%s: %w", MIN_ALLOCATION_ENV_VAR, err))
		case minAlloc < 0:
			errs = append(errs, fmt.Errorf("%s: negative value %d", MIN_ALLOCATION_ENV_VAR, minAlloc))
		default:
			MIN_ALLOCATION = minAlloc
		}
	}

	if s, ok := lookup(LOG_LEVEL_ENV_VAR); ok {
		level, err := zerolog.ParseLevel(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", LOG_LEVEL_ENV_VAR, err))
		} else {
			LOG_LEVEL = level
		}
	}

	if s, ok := lookup("FORCE_COLOR"); ok {
		FORCE_COLOR = isTruthy(s)
	}

	if s, ok := lookup("NO_COLOR"); ok {
		NO_COLOR = isTruthy(s)
	}

	return errors.Join(errs...)
}

func isTruthy(s string) bool {
	return len(s) != 0 && s != "false" && s != "0"
}

// Apply installs the growth policy read from the environment.
func Apply() error {
	return seqlist.SetPolicy(seqlist.Policy{
		GrowthFactor:  GROWTH_FACTOR,
		MinAllocation: MIN_ALLOCATION,
	})
}

// NewLogger returns a human-readable logger writing to w at LOG_LEVEL.
func NewLogger(w io.Writer) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !SHOULD_COLORIZE,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(consoleWriter).Level(LOG_LEVEL).With().Timestamp().Logger()
}

// Colorize returns s with the given ANSI color if colors are enabled, otherwise s is returned
// without any escape sequence it may already contain.
func Colorize(s string, color string) string {
	if !SHOULD_COLORIZE {
		return utils.StripANSISequences(s)
	}
	return termenv.String(s).Foreground(COLOR_PROFILE.Color(color)).String()
}
