// SPDX-License-Identifier: MIT

package cliconfig

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	logger = NewLogger(os.Stderr)
}

// NewLogger returns a human-readable zerolog logger writing to w.
func NewLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
}

// Logger returns the package logger.
func Logger() zerolog.Logger {
	return logger
}

// LeveledLogger returns l restricted to the named level ("debug", "info",
// "warn", "error"). An empty name keeps l's level.
func LeveledLogger(l zerolog.Logger, level string) (zerolog.Logger, error) {
	if level == "" {
		return l, nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return l, err
	}
	return l.Level(lvl), nil
}
