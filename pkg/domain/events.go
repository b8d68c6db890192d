package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventLevelEnter    EventType = "level_enter"
	EventLevelLeave    EventType = "level_leave"
	EventFetch         EventType = "fetch"
	EventFetchReturn   EventType = "fetch_return"
	EventInputRejected EventType = "input_rejected"
	EventCommentAdded  EventType = "comment_added"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
}

// LevelEvent represents entry or exit from a level.
type LevelEvent struct {
	EventBase
	Level Level `json:"level"`
}

// FetchEvent represents a collection fetch. Duration and Err are set on return.
type FetchEvent struct {
	EventBase
	Kind     ResourceKind  `json:"kind"`
	Filter   Filter        `json:"filter"`
	Count    int           `json:"count,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
	Err      error         `json:"-"`
}

// InputEvent represents an answer rejected by validation.
type InputEvent struct {
	EventBase
	Level  Level  `json:"level"`
	Input  string `json:"input"`
	Reason string `json:"reason"`
}

// CommentEvent represents a locally appended comment.
type CommentEvent struct {
	EventBase
	PostID    int `json:"post_id"`
	CommentID int `json:"comment_id"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnLevelEnter    func(context.Context, *LevelEvent)
	OnLevelLeave    func(context.Context, *LevelEvent)
	OnFetch         func(context.Context, *FetchEvent)
	OnFetchReturn   func(context.Context, *FetchEvent)
	OnInputRejected func(context.Context, *InputEvent)
	OnCommentAdded  func(context.Context, *CommentEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnLevelEnter:    chain(h.OnLevelEnter, other.OnLevelEnter),
		OnLevelLeave:    chain(h.OnLevelLeave, other.OnLevelLeave),
		OnFetch:         chain(h.OnFetch, other.OnFetch),
		OnFetchReturn:   chain(h.OnFetchReturn, other.OnFetchReturn),
		OnInputRejected: chain(h.OnInputRejected, other.OnInputRejected),
		OnCommentAdded:  chain(h.OnCommentAdded, other.OnCommentAdded),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
