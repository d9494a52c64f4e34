package logger

import (
	"io"
	"log/slog"
)

// NewTestHandler returns a discard handler for tests. The level still
// applies so tests can assert Enabled behavior.
func NewTestHandler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level})
}
