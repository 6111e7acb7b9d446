package cli

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger writing to w at the level held by level,
// so that the level can be raised once flags are parsed.
func NewLogger(w io.Writer, level *slog.LevelVar) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetVerbose switches level between info and debug
func SetVerbose(level *slog.LevelVar, verbose bool) {
	if verbose {
		level.Set(slog.LevelDebug)
		return
	}
	level.Set(slog.LevelInfo)
}
