package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/placeholder/internal/config"
	httpsource "github.com/aretw0/placeholder/pkg/adapters/http"
	"github.com/aretw0/placeholder/pkg/adapters/memory"
	"github.com/aretw0/placeholder/pkg/adapters/redis"
	"github.com/aretw0/placeholder/pkg/ports"
)

// buildSource wires the data source described by cfg: fixtures or HTTP, optionally behind redis.
// The returned func releases whatever was opened.
func buildSource(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.DataSource, func(), error) {
	var src ports.DataSource

	if cfg.Fixtures != "" {
		mem, err := memory.LoadFixtures(cfg.Fixtures)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("using fixtures", "path", cfg.Fixtures)
		src = mem
	} else {
		remote, err := httpsource.New(cfg.BaseURL,
			httpsource.WithTimeout(cfg.Timeout),
			httpsource.WithLogger(logger),
		)
		if err != nil {
			return nil, nil, err
		}
		src = remote
	}

	if cfg.RedisURL == "" {
		return src, func() {}, nil
	}

	cache, err := redis.New(src, cfg.RedisURL, redis.WithTTL(cfg.CacheTTL), redis.WithLogger(logger))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create cache: %w", err)
	}
	if err := cache.Ping(ctx); err != nil {
		// The cache degrades to the wrapped source on its own.
		logger.Warn("redis unreachable, responses will not be cached", "err", err)
	}
	return cache, func() { _ = cache.Close() }, nil
}
