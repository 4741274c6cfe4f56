package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/asciiwalk"
	"github.com/aretw0/asciiwalk/internal/config"
	"github.com/aretw0/asciiwalk/pkg/adapters/memory"
	"github.com/aretw0/asciiwalk/pkg/adapters/redis"
	"github.com/aretw0/asciiwalk/pkg/domain"
	"github.com/aretw0/asciiwalk/pkg/ports"
)

// EngineOptions tunes NewEngine beyond what the config file holds.
type EngineOptions struct {
	Trace bool
	Hooks *domain.LifecycleHooks
}

// NewEngine initializes an engine with standard CLI conventions.
// The returned close function releases the result store.
func NewEngine(ctx context.Context, cfg config.Config, logger *slog.Logger, opts EngineOptions) (*asciiwalk.Engine, func() error, error) {
	store, closeStore, err := createStore(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	engineOpts := []asciiwalk.Option{
		asciiwalk.WithLogger(logger),
		asciiwalk.WithStore(store),
		asciiwalk.WithMaxSteps(cfg.MaxSteps),
		asciiwalk.WithTrace(opts.Trace),
	}

	// Debug hooks only when they would be printed.
	hooks := domain.LifecycleHooks{}
	if logger.Enabled(ctx, slog.LevelDebug) {
		hooks = createDebugHooks(logger)
	}
	if opts.Hooks != nil {
		hooks = chainHooks(hooks, *opts.Hooks)
	}
	engineOpts = append(engineOpts, asciiwalk.WithLifecycleHooks(hooks))

	return asciiwalk.New(engineOpts...), closeStore, nil
}

// createStore picks Redis when an address is configured, memory otherwise.
func createStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (ports.ResultStore, func() error, error) {
	if cfg.Redis.Addr == "" {
		return memory.NewStore(), func() error { return nil }, nil
	}

	store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
		redis.WithTTL(cfg.Redis.TTL),
		redis.WithPrefix(cfg.Redis.Prefix),
	)
	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("redis at %s unreachable: %w", cfg.Redis.Addr, err)
	}
	logger.Info("Result store ready", "backend", "redis", "addr", cfg.Redis.Addr)
	return store, store.Close, nil
}
