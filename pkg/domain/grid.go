package domain

import "strings"

// Path indicators recognised on a map.
const (
	Start      rune = '@'
	Horizontal rune = '-'
	Vertical   rune = '|'
	Corner     rune = '+'
	End        rune = 'x'
)

// Indicators is the closed set of non-letter runes that mark a path cell.
var Indicators = [...]rune{Start, Horizontal, Vertical, Corner, End}

// IsIndicator reports whether r is one of the path indicators.
func IsIndicator(r rune) bool {
	for _, ind := range Indicators {
		if r == ind {
			return true
		}
	}
	return false
}

// IsWaypoint reports whether r is an uppercase ASCII letter.
func IsWaypoint(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// IsTraversable reports whether a walker may step onto a cell holding r.
func IsTraversable(r rune) bool {
	return IsWaypoint(r) || IsIndicator(r)
}

// Grid is an immutable map split into rows. Rows may differ in length.
type Grid [][]rune

// NewGrid splits raw on line breaks. An empty string yields a single empty row.
func NewGrid(raw string) Grid {
	lines := strings.Split(raw, "\n")
	g := make(Grid, len(lines))
	for i, line := range lines {
		g[i] = []rune(line)
	}
	return g
}

// At returns the rune at pos. Negative or out-of-range coordinates are absent.
func (g Grid) At(pos Position) (rune, bool) {
	if pos.Row < 0 || pos.Col < 0 || pos.Row >= len(g) {
		return 0, false
	}
	row := g[pos.Row]
	if pos.Col >= len(row) {
		return 0, false
	}
	return row[pos.Col], true
}

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g)
}

// Width returns the length of the longest row.
func (g Grid) Width() int {
	w := 0
	for _, row := range g {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}
