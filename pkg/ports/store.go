package ports

import (
	"context"

	"github.com/aretw0/asciiwalk/pkg/domain"
)

// ResultStore defines the interface for persisting walk results.
// A walk is a pure function of its map, so results can be shared by key.
type ResultStore interface {
	// Save persists the result under key.
	Save(ctx context.Context, key string, result *domain.Result) error

	// Load retrieves the result stored under key.
	// Returns domain.ErrResultNotFound if nothing is stored.
	Load(ctx context.Context, key string) (*domain.Result, error)

	// Delete removes the result stored under key.
	Delete(ctx context.Context, key string) error

	// List returns the keys currently stored.
	List(ctx context.Context) ([]string, error)
}
