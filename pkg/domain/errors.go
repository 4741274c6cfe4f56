package domain

import "errors"

// ErrStartNotFound is returned when a map has no start marker, so no walk took place.
var ErrStartNotFound = errors.New("start marker not found")

// ErrStepLimitExceeded is returned when a bounded walk runs out of steps before terminating.
var ErrStepLimitExceeded = errors.New("step limit exceeded")

// ErrResultNotFound is returned when a result key cannot be found in the store.
var ErrResultNotFound = errors.New("result not found")
