package runtime

import (
	"context"
	"time"

	"github.com/aretw0/placeholder/pkg/domain"
)

func (e *Engine) emitLevelEnter(ctx context.Context, sessionID string, level domain.Level) {
	if e.hooks.OnLevelEnter == nil {
		return
	}
	e.hooks.OnLevelEnter(ctx, &domain.LevelEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventLevelEnter, SessionID: sessionID},
		Level:     level,
	})
}

func (e *Engine) emitLevelLeave(ctx context.Context, sessionID string, level domain.Level) {
	if e.hooks.OnLevelLeave == nil {
		return
	}
	e.hooks.OnLevelLeave(ctx, &domain.LevelEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventLevelLeave, SessionID: sessionID},
		Level:     level,
	})
}

// emitFetch and emitFetchReturn run on fetch goroutines; hooks must be safe for concurrent use.
func (e *Engine) emitFetch(ctx context.Context, ev *domain.FetchEvent) {
	if e.hooks.OnFetch != nil {
		e.hooks.OnFetch(ctx, ev)
	}
}

func (e *Engine) emitFetchReturn(ctx context.Context, ev *domain.FetchEvent) {
	if e.hooks.OnFetchReturn != nil {
		e.hooks.OnFetchReturn(ctx, ev)
	}
}

func (e *Engine) emitInputRejected(ctx context.Context, state *domain.State, input, reason string) {
	if e.hooks.OnInputRejected == nil {
		return
	}
	e.hooks.OnInputRejected(ctx, &domain.InputEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventInputRejected, SessionID: state.SessionID},
		Level:     state.Level,
		Input:     input,
		Reason:    reason,
	})
}

func (e *Engine) emitCommentAdded(ctx context.Context, sessionID string, c domain.Comment) {
	if e.hooks.OnCommentAdded == nil {
		return
	}
	e.hooks.OnCommentAdded(ctx, &domain.CommentEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventCommentAdded, SessionID: sessionID},
		PostID:    c.PostID,
		CommentID: c.ID,
	})
}
