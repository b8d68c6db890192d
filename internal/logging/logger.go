package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates the application logger on Stderr, keeping Stdout for the browser screens.
func New(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates the application logger on w.
// Error attributes are logged under "err" regardless of how the caller named them.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ForDebug returns a debug logger when enabled and a no-op logger otherwise.
func ForDebug(enabled bool) *slog.Logger {
	if enabled {
		return New(slog.LevelDebug)
	}
	return NewNop()
}
