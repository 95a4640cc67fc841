package cmd

import (
	"io"
	"log/slog"
)

// newLogger logs warnings to w, or everything when debug is set.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}))
}
