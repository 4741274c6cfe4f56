package domain

import "fmt"

// Direction is one of the four orthogonal headings on a grid.
// The zero value, NoDirection, means no step has been taken yet.
type Direction int

const (
	NoDirection Direction = iota
	Left
	Up
	Right
	Down
)

// Directions is the canonical order in which turns are tried.
var Directions = [...]Direction{Left, Up, Right, Down}

// Opposite returns the reverse heading, or NoDirection for an unrecognised value.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	default:
		return NoDirection
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "LEFT"
	case Up:
		return "UP"
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	default:
		return ""
	}
}

// MarshalText encodes the direction by name so traces read well as JSON.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText. Empty text is NoDirection.
func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*d = NoDirection
	case "LEFT":
		*d = Left
	case "UP":
		*d = Up
	case "RIGHT":
		*d = Right
	case "DOWN":
		*d = Down
	default:
		return fmt.Errorf("unknown direction %q", text)
	}
	return nil
}
