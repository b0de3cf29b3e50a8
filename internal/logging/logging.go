package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates the diagnostic logger for the binary
// Diagnostics go to stderr so stdout carries only the sweep report
func New(debug bool) zerolog.Logger {
	return NewWithWriter(os.Stderr, debug)
}

// NewWithWriter creates a console logger writing to w
func NewWithWriter(w io.Writer, debug bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}
