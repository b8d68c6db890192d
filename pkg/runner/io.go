package runner

import (
	"context"

	"github.com/aretw0/placeholder/pkg/domain"
)

// IOHandler defines the strategy for interacting with the user.
type IOHandler interface {
	// Output draws a screen.
	Output(ctx context.Context, screen *domain.Screen) error

	// Input shows prompt and reads one line of response.
	// It returns io.EOF when the input stream is exhausted.
	Input(ctx context.Context, prompt string) (string, error)

	// SystemOutput shows a one-line message outside of a screen (errors, notices).
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer is a function that transforms text before it is printed.
// This allows for TUI rendering (markdown to ANSI) without coupling the runner.
type ContentRenderer func(string) (string, error)

// TableRenderer formats a table for display.
type TableRenderer func(*domain.Table) string
