package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventWalkStart EventType = "walk_start"
	EventStep      EventType = "step"
	EventWalkEnd   EventType = "walk_end"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// StepEvent represents one move of the walker.
type StepEvent struct {
	EventBase
	Position  Position  `json:"position"`
	Direction Direction `json:"direction"`
	Char      string    `json:"char"`
	// NewLetter is set when this step recorded a waypoint for the first time.
	NewLetter bool `json:"new_letter,omitempty"`
}

// WalkEvent represents the start or the end of a walk.
type WalkEvent struct {
	EventBase
	Start  Position `json:"start"`
	Status Status   `json:"status"`
	Steps  int      `json:"steps"`
	// Cached is set when the result was served from a store instead of walked.
	Cached bool  `json:"cached,omitempty"`
	Err    error `json:"-"`
}

// LifecycleHooks defines callbacks for walker observability.
type LifecycleHooks struct {
	OnWalkStart func(context.Context, *WalkEvent)
	OnStep      func(context.Context, *StepEvent)
	OnWalkEnd   func(context.Context, *WalkEvent)
}
