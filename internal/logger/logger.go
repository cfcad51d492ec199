// Package logger provides structured diagnostic logging.
//
// Diagnostics go to stderr so that report output on stdout stays clean.
package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// DefaultLevel keeps diagnostics quiet unless asked for.
const DefaultLevel = "warn"

// New creates a console logger writing to w at the given level.
// Unknown levels fall back to DefaultLevel.
func New(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// Levels lists the accepted --log-level values.
var Levels = []string{"debug", "info", "warn", "error"}

// ValidLevel reports whether level is one of Levels.
func ValidLevel(level string) bool {
	for _, l := range Levels {
		if level == l {
			return true
		}
	}
	return false
}
