package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/placeholder/pkg/domain"
	"golang.org/x/term"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sc.sigCh:
			sc.mu.Lock()
			sc.sigVal = sig
			sc.mu.Unlock()
			sc.Cancel()
		case <-sc.Context.Done():
		}
		sc.stop.Do(func() {
			signal.Stop(sc.sigCh)
		})
	}()

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnLevelEnter: func(ctx context.Context, e *domain.LevelEvent) {
			logger.Debug("Enter Level", "session_id", e.SessionID, "level", e.Level)
		},
		OnLevelLeave: func(ctx context.Context, e *domain.LevelEvent) {
			logger.Debug("Leave Level", "session_id", e.SessionID, "level", e.Level)
		},
		OnFetch: func(ctx context.Context, e *domain.FetchEvent) {
			logger.Debug("Fetch", "kind", e.Kind, "filter", e.Filter.String())
		},
		OnFetchReturn: func(ctx context.Context, e *domain.FetchEvent) {
			if e.Err != nil {
				logger.Debug("Fetch Return (Error)", "kind", e.Kind, "duration", e.Duration, "err", e.Err)
			} else {
				logger.Debug("Fetch Return (Success)", "kind", e.Kind, "count", e.Count, "duration", e.Duration)
			}
		},
		OnInputRejected: func(ctx context.Context, e *domain.InputEvent) {
			logger.Debug("Input Rejected", "level", e.Level, "input", e.Input, "reason", e.Reason)
		},
		OnCommentAdded: func(ctx context.Context, e *domain.CommentEvent) {
			logger.Debug("Comment Added", "post_id", e.PostID, "comment_id", e.CommentID)
		},
	}
}

// terminalWidth reports whether w is a terminal and, if so, its width.
func terminalWidth(w io.Writer) (bool, int) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false, 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return true, 0
	}
	return true, width
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF)
}

func handleExecutionError(err error) error {
	if err == nil || isInterrupted(err) {
		return nil // Exit 0 for interruptions
	}
	return err
}
