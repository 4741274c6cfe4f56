package ports

import (
	"context"

	"github.com/aretw0/asciiwalk/pkg/domain"
)

// Walker is the engine surface used by transports.
type Walker interface {
	// Walk follows the path on raw and returns its result.
	// Returns domain.ErrStartNotFound when raw holds no start marker.
	Walk(ctx context.Context, raw string) (*domain.Result, error)
}
