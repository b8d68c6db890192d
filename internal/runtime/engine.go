package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/placeholder/pkg/domain"
	"github.com/aretw0/placeholder/pkg/ports"
	"github.com/google/uuid"
)

const (
	// DefaultMaxUsers is the highest user position accepted at the user list.
	DefaultMaxUsers = 10
	// DefaultMaxPosts is how many posts a user detail shows and accepts.
	DefaultMaxPosts = 5
)

// Engine is the navigation state machine.
// It never mutates the state it is given; every transition returns a new snapshot.
type Engine struct {
	source   ports.DataSource
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	maxUsers int
	maxPosts int
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithSelectionLimits overrides how many users and posts can be selected.
// Non-positive values keep the defaults.
func WithSelectionLimits(maxUsers, maxPosts int) EngineOption {
	return func(e *Engine) {
		if maxUsers > 0 {
			e.maxUsers = maxUsers
		}
		if maxPosts > 0 {
			e.maxPosts = maxPosts
		}
	}
}

// NewEngine creates a new engine reading from source.
func NewEngine(source ports.DataSource, opts ...EngineOption) *Engine {
	e := &Engine{
		source:   source,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxUsers: DefaultMaxUsers,
		maxPosts: DefaultMaxPosts,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start fetches the user list and returns the initial state at LevelUserList.
// An empty sessionID is replaced by a random one.
func (e *Engine) Start(ctx context.Context, sessionID string) (*domain.State, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	users, err := e.fetchUsers(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	state := domain.NewState(sessionID, domain.LevelUserList)
	state.Session.Users = users

	e.logger.Debug("session started", "session_id", sessionID, "users", len(users))
	e.emitLevelEnter(ctx, state.SessionID, state.Level)
	return state, nil
}

// MaxSelection returns the highest number accepted at level, before clamping to what is shown.
func (e *Engine) MaxSelection(level domain.Level) int {
	if level == domain.LevelUserList {
		return e.maxUsers
	}
	return e.maxPosts
}
