package walker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/asciiwalk/internal/logging"
	"github.com/aretw0/asciiwalk/pkg/domain"
)

// Walker follows the path on a single map.
type Walker struct {
	grid domain.Grid

	position    domain.Position
	hasPosition bool
	direction   domain.Direction
	status      domain.Status

	characters []rune
	letters    []rune
	visited    map[domain.Position]struct{} // letter dedup only
	trace      []domain.Position
	steps      int

	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	maxSteps int
}

// New parses raw into a grid. No walk state is set up until Initiate or Run.
func New(raw string, opts ...Option) *Walker {
	w := &Walker{
		grid:   domain.NewGrid(raw),
		status: domain.StatusUninitiated,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Grid returns the parsed map.
func (w *Walker) Grid() domain.Grid {
	return w.grid
}

// Initiate resets the walk and looks for the start marker.
// Rows are scanned top to bottom and the last row holding a marker wins;
// within a row the first marker is used.
func (w *Walker) Initiate() {
	w.characters = nil
	w.letters = nil
	w.visited = make(map[domain.Position]struct{})
	w.trace = nil
	w.steps = 0
	w.direction = domain.NoDirection
	w.hasPosition = false
	w.status = domain.StatusUninitiated

	for row, cells := range w.grid {
		for col, r := range cells {
			if r == domain.Start {
				w.position = domain.Position{Row: row, Col: col}
				w.hasPosition = true
				break
			}
		}
	}

	if !w.hasPosition {
		return
	}

	w.status = domain.StatusWalking
	w.characters = []rune{domain.Start}
	w.letters = []rune{}
	w.trace = []domain.Position{w.position}
}

// RelativePosition returns the cell one step away in direction d.
// It reports false when there is no current position.
func (w *Walker) RelativePosition(d domain.Direction) (domain.Position, bool) {
	if !w.hasPosition {
		return domain.Position{}, false
	}
	return w.position.Move(d), true
}

// FindNextPosition selects the next step without taking it.
// The current heading is tried first, then the remaining turns in canonical
// order; the reverse heading is never considered. It reports false when no
// neighbouring cell is on the path.
func (w *Walker) FindNextPosition() (domain.Position, domain.Direction, bool) {
	if !w.hasPosition {
		return domain.Position{}, domain.NoDirection, false
	}

	candidates := make([]domain.Direction, 0, len(domain.Directions))
	if w.direction != domain.NoDirection {
		candidates = append(candidates, w.direction)
	}
	opposite := w.direction.Opposite()
	for _, d := range domain.Directions {
		if d != w.direction && d != opposite {
			candidates = append(candidates, d)
		}
	}

	for _, d := range candidates {
		next, _ := w.RelativePosition(d)
		if next.Row < 0 || next.Col < 0 {
			continue
		}
		r, ok := w.grid.At(next)
		if !ok {
			continue
		}
		if domain.IsTraversable(r) {
			return next, d, true
		}
	}
	return domain.Position{}, domain.NoDirection, false
}

// Step moves to the next cell and records it. It returns false when the walk
// has terminated or was never started.
func (w *Walker) Step() bool {
	if !w.hasPosition {
		return false
	}

	next, dir, ok := w.FindNextPosition()
	if !ok {
		w.hasPosition = false
		w.direction = domain.NoDirection
		w.status = domain.StatusTerminated
		return false
	}

	w.position = next
	w.direction = dir
	w.steps++
	w.trace = append(w.trace, next)

	r, _ := w.grid.At(next)
	w.characters = append(w.characters, r)
	if domain.IsWaypoint(r) {
		if _, seen := w.visited[next]; !seen {
			w.letters = append(w.letters, r)
			w.visited[next] = struct{}{}
		}
	}
	return true
}

// Run initiates a walk and steps until it terminates.
// A map without a start marker is not an error: Run returns nil and the
// outputs stay absent. The context is checked between steps, and a walk
// configured with WithMaxSteps stops with domain.ErrStepLimitExceeded.
func (w *Walker) Run(ctx context.Context) error {
	w.Initiate()
	if !w.hasPosition {
		w.logger.Debug("walk skipped, no start marker", "rows", w.grid.Rows())
		return nil
	}

	start := w.position
	w.logger.Debug("walk started", "start", start.String())
	if w.hooks.OnWalkStart != nil {
		w.hooks.OnWalkStart(ctx, &domain.WalkEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventWalkStart},
			Start:     start,
			Status:    w.status,
		})
	}

	var err error
	for w.hasPosition {
		if cerr := ctx.Err(); cerr != nil {
			err = fmt.Errorf("walk interrupted at %s: %w", w.position, cerr)
			break
		}
		if w.maxSteps > 0 && w.steps >= w.maxSteps {
			err = fmt.Errorf("walk stopped at %s after %d steps: %w", w.position, w.steps, domain.ErrStepLimitExceeded)
			break
		}

		lettersBefore := len(w.letters)
		if !w.Step() {
			break
		}
		if w.hooks.OnStep != nil {
			w.hooks.OnStep(ctx, &domain.StepEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStep},
				Position:  w.position,
				Direction: w.direction,
				Char:      string(w.characters[len(w.characters)-1]),
				NewLetter: len(w.letters) > lettersBefore,
			})
		}
	}

	if err != nil {
		w.hasPosition = false
		w.direction = domain.NoDirection
		w.status = domain.StatusTerminated
		w.logger.Warn("walk aborted", "steps", w.steps, "err", err)
	} else {
		w.logger.Debug("walk terminated", "steps", w.steps, "letters", string(w.letters))
	}

	if w.hooks.OnWalkEnd != nil {
		w.hooks.OnWalkEnd(ctx, &domain.WalkEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventWalkEnd},
			Start:     start,
			Status:    w.status,
			Steps:     w.steps,
			Err:       err,
		})
	}
	return err
}

// Letters returns the waypoint letters collected so far.
// It reports false until a walk has been initiated from a start marker.
func (w *Walker) Letters() (string, bool) {
	if w.status == domain.StatusUninitiated {
		return "", false
	}
	return string(w.letters), true
}

// Characters returns every rune stepped on so far, start marker included.
// It reports false until a walk has been initiated from a start marker.
func (w *Walker) Characters() (string, bool) {
	if w.status == domain.StatusUninitiated {
		return "", false
	}
	return string(w.characters), true
}

// Status returns the lifecycle stage of the current walk.
func (w *Walker) Status() domain.Status {
	return w.status
}

// Position returns the current cell. It reports false before a walk starts
// and after it terminates.
func (w *Walker) Position() (domain.Position, bool) {
	return w.position, w.hasPosition
}

// Direction returns the current heading, NoDirection before the first step.
func (w *Walker) Direction() domain.Direction {
	return w.direction
}

// Trace returns a copy of the visited positions, start included.
func (w *Walker) Trace() []domain.Position {
	out := make([]domain.Position, len(w.trace))
	copy(out, w.trace)
	return out
}

// Result snapshots the walk outputs.
// It returns domain.ErrStartNotFound when no walk has been initiated.
func (w *Walker) Result() (*domain.Result, error) {
	if w.status == domain.StatusUninitiated {
		return nil, domain.ErrStartNotFound
	}
	return &domain.Result{
		Letters:    string(w.letters),
		Characters: string(w.characters),
		Steps:      w.steps,
		Status:     w.status,
		Trace:      w.Trace(),
	}, nil
}
