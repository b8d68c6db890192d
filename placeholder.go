package placeholder

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/placeholder/internal/runtime"
	"github.com/aretw0/placeholder/pkg/domain"
	"github.com/aretw0/placeholder/pkg/ports"
	"github.com/aretw0/placeholder/pkg/runner"
)

// Browser is the high-level entry point for embedding the browser in another program.
// It wraps the internal navigator and exposes the Start/Navigate/Render cycle.
type Browser struct {
	engine *runtime.Engine
	logger *slog.Logger
}

// Option defines a functional option for configuring the Browser.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	maxUsers int
	maxPosts int
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}

// WithSelectionLimits overrides how many users and posts can be selected.
func WithSelectionLimits(maxUsers, maxPosts int) Option {
	return func(o *options) {
		o.maxUsers = maxUsers
		o.maxPosts = maxPosts
	}
}

// New creates a Browser reading from src.
func New(src ports.DataSource, opts ...Option) (*Browser, error) {
	if src == nil {
		return nil, fmt.Errorf("placeholder: nil data source")
	}
	o := &options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(o)
	}

	return &Browser{
		engine: runtime.NewEngine(src,
			runtime.WithLogger(o.logger),
			runtime.WithLifecycleHooks(o.hooks),
			runtime.WithSelectionLimits(o.maxUsers, o.maxPosts),
		),
		logger: o.logger,
	}, nil
}

// Start fetches the user list and returns the first state.
func (b *Browser) Start(ctx context.Context, sessionID string) (*domain.State, error) {
	return b.engine.Start(ctx, sessionID)
}

// Navigate applies one answer (or a domain.CommentDraft) and returns the next state.
func (b *Browser) Navigate(ctx context.Context, state *domain.State, input any) (*domain.State, error) {
	return b.engine.Navigate(ctx, state, input)
}

// Render describes the screen for state.
func (b *Browser) Render(state *domain.State) (*domain.Screen, error) {
	return b.engine.Render(state)
}

// Browse runs a complete text session on r and w until the user exits or r ends.
func (b *Browser) Browse(ctx context.Context, r io.Reader, w io.Writer) error {
	state, err := b.Start(ctx, "")
	if err != nil {
		return err
	}
	loop := runner.NewRunner(
		runner.WithLogger(b.logger),
		runner.WithInputHandler(runner.NewTextHandler(r, w)),
	)
	_, err = loop.Run(ctx, b, state)
	return err
}
