package memds

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

const LOG_SOURCE = "memds"

var (
	nopLogger     = zerolog.Nop()
	packageLogger atomic.Pointer[zerolog.Logger]
)

func init() {
	packageLogger.Store(&nopLogger)
}

// SetLogger sets the logger used to report queue compactions, a child logger with a src
// field is created.
func SetLogger(logger zerolog.Logger) {
	child := logger.With().Str("src", LOG_SOURCE).Logger()
	packageLogger.Store(&child)
}

func ResetLogger() {
	packageLogger.Store(&nopLogger)
}

func logger() *zerolog.Logger {
	return packageLogger.Load()
}
