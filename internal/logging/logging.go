// Package logging builds the CLI logger. Library packages never log.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a human-readable console logger on w at the given level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// NewFormat returns the JSON logger for format "json" and the console
// logger otherwise.
func NewFormat(w io.Writer, format string, level zerolog.Level) zerolog.Logger {
	if format == "json" {
		return NewJSON(w, level)
	}

	return New(w, level)
}

// NewJSON returns a structured JSON logger on w, for piping into collectors.
func NewJSON(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
