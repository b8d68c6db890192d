package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/placeholder/pkg/domain"
)

// ExitMessage is printed when the user leaves the browser.
const ExitMessage = "Bye!"

// Engine is the part of the navigator the runner drives.
type Engine interface {
	Render(state *domain.State) (*domain.Screen, error)
	Navigate(ctx context.Context, state *domain.State, input any) (*domain.State, error)
}

// Runner handles the Render -> Input -> Navigate loop using the provided IO.
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler on Stdin/Stdout is used.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger
}

// NewRunner creates a new Runner with the given options.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the loop until the user exits, the input ends, or ctx is cancelled.
// It returns the last state reached.
//
// Rejected answers and fetch failures are reported through SystemOutput and the same
// prompt is asked again; the screen is not redrawn.
func (r *Runner) Run(ctx context.Context, engine Engine, state *domain.State) (*domain.State, error) {
	if state == nil {
		return nil, fmt.Errorf("runner: nil initial state")
	}
	handler := r.resolveHandler()
	logger := r.resolveLogger()

	redraw := true
	var screen *domain.Screen

	for {
		if state.Terminated() {
			if err := handler.SystemOutput(ctx, ExitMessage); err != nil {
				return state, fmt.Errorf("output error: %w", err)
			}
			return state, nil
		}

		if state.Status == domain.StatusAwaitingComment {
			next, err := r.collectComment(ctx, handler, engine, state)
			if err != nil {
				return r.finish(ctx, handler, state, err)
			}
			state = next
			redraw = true
			continue
		}

		if redraw {
			var err error
			screen, err = engine.Render(state)
			if err != nil {
				return state, fmt.Errorf("render error: %w", err)
			}
			if err := handler.Output(ctx, screen); err != nil {
				return state, fmt.Errorf("output error: %w", err)
			}
			redraw = false
		}

		answer, err := handler.Input(ctx, screen.Prompt)
		if err != nil {
			return r.finish(ctx, handler, state, err)
		}

		next, err := engine.Navigate(ctx, state, answer)
		if err != nil {
			var verr *domain.ValidationError
			switch {
			case errors.As(err, &verr):
				logger.Debug("input rejected", "session_id", state.SessionID, "level", state.Level, "input", answer)
				if err := handler.SystemOutput(ctx, verr.Message); err != nil {
					return state, fmt.Errorf("output error: %w", err)
				}
				continue
			case errors.Is(err, domain.ErrFetchFailed):
				logger.Warn("fetch failed", "session_id", state.SessionID, "level", state.Level, "err", err)
				if err := handler.SystemOutput(ctx, domain.FetchFailureMessage); err != nil {
					return state, fmt.Errorf("output error: %w", err)
				}
				continue
			}
			return state, fmt.Errorf("navigation error: %w", err)
		}

		// Re-render unless the answer only opened the comment sub-flow.
		redraw = next.Status != domain.StatusAwaitingComment
		state = next
	}
}

// collectComment asks the three comment prompts and hands the draft to the engine.
func (r *Runner) collectComment(ctx context.Context, handler IOHandler, engine Engine, state *domain.State) (*domain.State, error) {
	var draft domain.CommentDraft
	fields := []struct {
		prompt string
		dst    *string
	}{
		{domain.PromptCommentEmail, &draft.Email},
		{domain.PromptCommentTitle, &draft.Title},
		{domain.PromptCommentBody, &draft.Body},
	}
	for _, f := range fields {
		val, err := handler.Input(ctx, f.prompt)
		if err != nil {
			return state, err
		}
		*f.dst = val
	}

	next, err := engine.Navigate(ctx, state, draft)
	if err != nil {
		return state, fmt.Errorf("comment error: %w", err)
	}
	return next, nil
}

// finish maps the end of input to a clean exit.
func (r *Runner) finish(ctx context.Context, handler IOHandler, state *domain.State, err error) (*domain.State, error) {
	if errors.Is(err, io.EOF) {
		r.resolveLogger().Debug("input closed", "session_id", state.SessionID)
		_ = handler.SystemOutput(ctx, "\n"+ExitMessage)
		return state, nil
	}
	if ctx.Err() != nil {
		return state, ctx.Err()
	}
	return state, fmt.Errorf("input error: %w", err)
}

func (r *Runner) resolveHandler() IOHandler {
	if r.Handler == nil {
		// Memoize to prevent creating new pumps on subsequent Run calls.
		r.Handler = NewTextHandler(os.Stdin, os.Stdout)
	}
	return r.Handler
}

func (r *Runner) resolveLogger() *slog.Logger {
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Logger
}
