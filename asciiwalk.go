package asciiwalk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/asciiwalk/internal/walker"
	"github.com/aretw0/asciiwalk/pkg/domain"
	"github.com/aretw0/asciiwalk/pkg/ports"
)

// Engine is the high-level entry point for the asciiwalk library.
// It wraps the internal walker, adding result caching, logging and hooks.
// Unlike a walker, an Engine is safe for concurrent use: every call walks
// with its own walker.
type Engine struct {
	store     ports.ResultStore
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	maxSteps  int
	withTrace bool
}

var _ ports.Walker = (*Engine)(nil)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStore caches results in store, keyed by domain.MapKey.
func WithStore(store ports.ResultStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithMaxSteps bounds every walk. Zero keeps walks unbounded.
func WithMaxSteps(n int) Option {
	return func(e *Engine) {
		e.maxSteps = n
	}
}

// WithTrace keeps the visited positions in returned results.
func WithTrace(enabled bool) Option {
	return func(e *Engine) {
		e.withTrace = enabled
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized (so we don't pass nil down to the walker)
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return eng
}

// Walk follows the path on raw.
// It returns domain.ErrStartNotFound when the map has no start marker.
// A bounded walk that runs out of steps returns its partial result together
// with domain.ErrStepLimitExceeded.
func (e *Engine) Walk(ctx context.Context, raw string) (*domain.Result, error) {
	key := domain.MapKey(raw)
	logger := e.logger.With("map", key[:12])

	if e.store != nil {
		cached, err := e.store.Load(ctx, key)
		switch {
		case err == nil && e.maxSteps > 0 && cached.Steps > e.maxSteps:
			// Stored by an engine with a higher limit; walk again so the limit applies.
			logger.Debug("stored result exceeds step limit", "steps", cached.Steps, "max_steps", e.maxSteps)
		case err == nil:
			logger.Debug("result served from store")
			e.replay(ctx, cached)
			return e.shape(cached), nil
		case !errors.Is(err, domain.ErrResultNotFound):
			// A broken cache must not break walking.
			logger.Warn("result store load failed", "err", err)
		}
	}

	w := walker.New(raw,
		walker.WithLogger(logger),
		walker.WithLifecycleHooks(e.hooks),
		walker.WithMaxSteps(e.maxSteps),
	)

	runErr := w.Run(ctx)
	result, err := w.Result()
	if err != nil {
		return nil, err
	}
	if runErr != nil {
		return e.shape(result), fmt.Errorf("walk incomplete: %w", runErr)
	}

	if e.store != nil {
		if err := e.store.Save(ctx, key, result); err != nil {
			logger.Warn("result store save failed", "err", err)
		}
	}

	logger.Debug("walk finished", "steps", result.Steps, "letters", result.Letters)
	return e.shape(result), nil
}

// replay fires the walk start and end hooks for a result served from the
// store. No step hooks fire since no cell is visited.
func (e *Engine) replay(ctx context.Context, r *domain.Result) {
	var start domain.Position
	if len(r.Trace) > 0 {
		start = r.Trace[0]
	}
	if e.hooks.OnWalkStart != nil {
		e.hooks.OnWalkStart(ctx, &domain.WalkEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventWalkStart},
			Start:     start,
			Status:    domain.StatusWalking,
			Cached:    true,
		})
	}
	if e.hooks.OnWalkEnd != nil {
		e.hooks.OnWalkEnd(ctx, &domain.WalkEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventWalkEnd},
			Start:     start,
			Status:    r.Status,
			Steps:     r.Steps,
			Cached:    true,
		})
	}
}

func (e *Engine) shape(r *domain.Result) *domain.Result {
	if !e.withTrace {
		r.Trace = nil
	}
	return r
}

// Follow walks raw with default settings and returns the letters and
// characters collected. ok is false when the map has no start marker.
func Follow(raw string) (letters, characters string, ok bool) {
	w := walker.New(raw)
	// An unbounded walk with a background context cannot fail.
	_ = w.Run(context.Background())

	letters, ok = w.Letters()
	if !ok {
		return "", "", false
	}
	characters, _ = w.Characters()
	return letters, characters, true
}
