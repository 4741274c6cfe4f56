package walker

import (
	"log/slog"

	"github.com/aretw0/asciiwalk/pkg/domain"
)

// Option configures a Walker.
type Option func(*Walker)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Walker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks fired by Run.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(w *Walker) {
		w.hooks = hooks
	}
}

// WithMaxSteps bounds the number of moves Run may take.
// Zero or a negative value leaves the walk unbounded.
func WithMaxSteps(n int) Option {
	return func(w *Walker) {
		w.maxSteps = n
	}
}
