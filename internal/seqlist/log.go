package seqlist

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

const (
	SOURCE_LOG_FIELD_NAME = "src"
	LOG_SOURCE            = "seqlist"
)

var (
	nopLogger     = zerolog.Nop()
	packageLogger atomic.Pointer[zerolog.Logger]
)

func init() {
	zerolog.DurationFieldInteger = false
	zerolog.DurationFieldUnit = time.Millisecond
	zerolog.MessageFieldName = "msg"
	zerolog.LevelFieldName = "lvl"
	zerolog.TimestampFieldName = "tm"

	packageLogger.Store(&nopLogger)
}

// SetLogger sets the logger used to report buffer allocations and copy-on-write clones,
// a child logger with a src field is created. Debug events are emitted on hot paths so
// the level of the logger should be at least info in production.
func SetLogger(logger zerolog.Logger) {
	child := logger.With().Str(SOURCE_LOG_FIELD_NAME, LOG_SOURCE).Logger()
	packageLogger.Store(&child)
}

// ResetLogger restores the no-op logger.
func ResetLogger() {
	packageLogger.Store(&nopLogger)
}

func logger() *zerolog.Logger {
	return packageLogger.Load()
}
