package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/placeholder"
	metricshttp "github.com/aretw0/placeholder/internal/adapters/http"
	"github.com/aretw0/placeholder/internal/config"
	"github.com/aretw0/placeholder/internal/logging"
	"github.com/aretw0/placeholder/internal/presentation/tui"
	"github.com/aretw0/placeholder/internal/runtime"
	"github.com/aretw0/placeholder/pkg/domain"
	"github.com/aretw0/placeholder/pkg/observability"
	"github.com/aretw0/placeholder/pkg/runner"
)

// RunSession executes one interactive browsing session.
// A failed startup fetch prints the failure message and returns the cause.
func RunSession(ctx context.Context, opts RunOptions) error {
	cfg, err := config.Load(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return err
	}
	logger := logging.ForDebug(cfg.Debug)
	out := opts.stdout()

	sigCtx := NewSignalContext(ctx)
	defer sigCtx.Cancel()

	src, closeSource, err := buildSource(sigCtx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	metrics := observability.NewMetrics()
	hooks := metrics.Hooks()
	if cfg.Debug {
		hooks = hooks.Merge(createDebugHooks(logger))
	}

	engine := runtime.NewEngine(src,
		runtime.WithLogger(logger),
		runtime.WithLifecycleHooks(hooks),
		runtime.WithSelectionLimits(cfg.MaxUsers, cfg.MaxPosts),
	)

	if cfg.MetricsAddr != "" {
		srv, err := metricshttp.StartMetricsServer(cfg.MetricsAddr, metricshttp.NewMetricsHandler(metrics.Registry), logger)
		if err != nil {
			return fmt.Errorf("failed to start metrics server: %w", err)
		}
		defer shutdownMetrics(srv, logger)
	}

	interactive, width := terminalWidth(out)
	styled := interactive && !cfg.Plain
	if styled {
		tui.PrintBanner(out, placeholder.Version)
	}

	state, err := engine.Start(sigCtx, opts.SessionID)
	if err != nil {
		if isInterrupted(err) {
			return nil
		}
		logger.Error("startup failed", "err", err)
		if errors.Is(err, domain.ErrFetchFailed) {
			fmt.Fprintln(out, domain.FetchFailureMessage)
		}
		return err
	}

	handlerOpts := []runner.TextHandlerOption{
		runner.WithClearScreen(interactive && !cfg.NoClear),
		runner.WithMaxInputSize(cfg.MaxInputSize),
	}
	if styled {
		handlerOpts = append(handlerOpts,
			runner.WithTextHandlerRenderer(tui.NewRenderer(width)),
			runner.WithTextHandlerTables(tui.Table),
		)
	}

	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithInputHandler(runner.NewTextHandler(opts.stdin(), out, handlerOpts...)),
	)

	final, runErr := r.Run(sigCtx, engine, state)
	if sigCtx.Err() != nil && runErr == nil {
		runErr = sigCtx.Err()
	}
	if final != nil {
		logger.Info("session finished", "session_id", final.SessionID, "level", final.Level, "steps", len(final.History))
	}
	if sigCtx.Signal() != nil {
		fmt.Fprintln(out, "\n"+runner.ExitMessage)
	}

	return handleExecutionError(runErr)
}

func shutdownMetrics(srv *metricshttp.MetricsServer, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("metrics server shutdown failed", "err", err)
	}
}

// ListUsers writes the user list table once, without entering the browser loop.
func ListUsers(ctx context.Context, opts RunOptions) error {
	cfg, err := config.Load(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return err
	}
	logger := logging.ForDebug(cfg.Debug)
	out := opts.stdout()

	src, closeSource, err := buildSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	engine := runtime.NewEngine(src, runtime.WithLogger(logger), runtime.WithSelectionLimits(cfg.MaxUsers, cfg.MaxPosts))
	state, err := engine.Start(ctx, opts.SessionID)
	if err != nil {
		if errors.Is(err, domain.ErrFetchFailed) {
			fmt.Fprintln(out, domain.FetchFailureMessage)
		}
		return err
	}

	screen, err := engine.Render(state)
	if err != nil {
		return err
	}
	return writeTable(out, screen.Table, cfg.Plain)
}

func writeTable(w io.Writer, t *domain.Table, plain bool) error {
	render := tui.Table
	if interactive, _ := terminalWidth(w); plain || !interactive {
		render = runner.PlainTable
	}
	_, err := fmt.Fprintln(w, render(t))
	return err
}
