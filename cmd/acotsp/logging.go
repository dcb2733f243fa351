package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// newLogger builds a console-friendly zerolog.Logger writing to stderr. One
// logger is constructed at the entry point and threaded by value into the
// packages that need it, rather than kept as a global singleton.
func newLogger() zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	return zerolog.New(writer).With().Timestamp().Logger()
}
