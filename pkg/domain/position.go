package domain

import "fmt"

// Position is a (row, column) coordinate on a Grid. The origin is the top-left cell.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Move returns the neighbouring coordinate in direction d.
// No bounds checking is done; callers look the result up with Grid.At.
func (p Position) Move(d Direction) Position {
	switch d {
	case Left:
		return Position{Row: p.Row, Col: p.Col - 1}
	case Up:
		return Position{Row: p.Row - 1, Col: p.Col}
	case Right:
		return Position{Row: p.Row, Col: p.Col + 1}
	case Down:
		return Position{Row: p.Row + 1, Col: p.Col}
	default:
		return p
	}
}

func (p Position) String() string {
	return fmt.Sprintf("%d/%d", p.Row, p.Col)
}
