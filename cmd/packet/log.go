package main

import (
	"io"
	"log/slog"
)

// newLogger returns a text logger without timestamps.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// logger returns the logger for the environment.
func (e *env) logger() *slog.Logger {
	return newLogger(e.stderr, e.verbose)
}
