package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/asciiwalk/internal/logging"
	"github.com/aretw0/asciiwalk/pkg/domain"
	"github.com/aretw0/asciiwalk/pkg/observability"
)

// SignalError is the cancellation cause recorded when a signal arrives.
type SignalError struct {
	Signal os.Signal
}

func (e *SignalError) Error() string {
	return "received signal " + e.Signal.String()
}

// SignalContext is a context cancelled by SIGINT or SIGTERM that remembers
// which signal cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
}

// NewSignalContext works like signal.NotifyContext but keeps the signal
// as the context cause.
func NewSignalContext(parent context.Context) *SignalContext {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	sc := watchSignals(parent, ch)
	go func() {
		<-sc.Done()
		signal.Stop(ch)
	}()
	return sc
}

func watchSignals(parent context.Context, ch <-chan os.Signal) *SignalContext {
	ctx, cancel := context.WithCancelCause(parent)
	go func() {
		select {
		case sig := <-ch:
			cancel(&SignalError{Signal: sig})
		case <-ctx.Done():
		}
	}()
	return &SignalContext{
		Context: ctx,
		Cancel:  func() { cancel(context.Canceled) },
	}
}

// Signal returns the signal that cancelled the context, or nil.
func (sc *SignalContext) Signal() os.Signal {
	var se *SignalError
	if errors.As(context.Cause(sc.Context), &se) {
		return se.Signal
	}
	return nil
}

// CreateLogger configures the application logger from a level name.
func CreateLogger(level string) (*slog.Logger, error) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return logging.NewNop(), err
	}
	return logging.New(lvl), nil
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnWalkStart: func(ctx context.Context, e *domain.WalkEvent) {
			logger.Debug("Walk Start", "start", e.Start.String())
		},
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			logger.Debug("Step", "pos", e.Position.String(), "dir", e.Direction.String(), "char", e.Char, "new_letter", e.NewLetter)
		},
		OnWalkEnd: func(ctx context.Context, e *domain.WalkEvent) {
			if e.Err != nil {
				logger.Debug("Walk End (Error)", "steps", e.Steps, "err", e.Err)
			} else {
				logger.Debug("Walk End", "steps", e.Steps, "status", e.Status)
			}
		},
	}
}

func chainHooks(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return observability.Chain(hooks...)
}
