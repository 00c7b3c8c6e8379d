package meetingtime

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var logger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	logger.Store(&nop)
}

// SetLogger replaces the package logger. Parse failures are reported on it at
// debug level. Safe for concurrent use.
func SetLogger(l zerolog.Logger) { logger.Store(&l) }

// Logger returns the current package logger (zerolog.Nop by default).
func Logger() *zerolog.Logger { return logger.Load() }

func traceFailure(err *ParseError) {
	Logger().Debug().
		Str("input", err.Input).
		Int("offset", err.Offset).
		Str("reason", err.Reason).
		Msg("datetime parse failed")
}
