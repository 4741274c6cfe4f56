package domain

// Status describes where a walker is in its lifecycle.
type Status string

const (
	StatusUninitiated Status = "uninitiated" // No walk yet, or the map has no start marker
	StatusWalking     Status = "walking"     // A start was found and steps remain possible
	StatusTerminated  Status = "terminated"  // No further step was found
)

// Result is the outcome of a walk.
type Result struct {
	// Letters holds each waypoint letter once, in first-visit order.
	Letters string `json:"letters"`

	// Characters holds every rune stepped on, start marker included.
	Characters string `json:"characters"`

	// Steps counts the moves taken after the start marker.
	Steps int `json:"steps"`

	Status Status `json:"status"`

	// Trace lists the visited positions in order. Omitted when not requested.
	Trace []Position `json:"trace,omitempty"`
}
