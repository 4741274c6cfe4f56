package tui

import (
	"strings"

	"github.com/aretw0/asciiwalk/pkg/domain"
	"github.com/muesli/termenv"
)

// Overlay renders the grid with the walked cells highlighted.
// With the Ascii profile the output is the map text unchanged.
func Overlay(g domain.Grid, trace []domain.Position, p termenv.Profile) string {
	visited := make(map[domain.Position]int, len(trace))
	for _, pos := range trace {
		visited[pos]++
	}

	var sb strings.Builder
	for row, cells := range g {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col, r := range cells {
			pos := domain.Position{Row: row, Col: col}
			sb.WriteString(styleCell(p, r, visited[pos]))
		}
	}
	return sb.String()
}

func styleCell(p termenv.Profile, r rune, visits int) string {
	s := p.String(string(r))
	switch {
	case visits == 0 && domain.IsTraversable(r):
		// On the map but never reached, e.g. a branch the walk skipped.
		return s.Faint().String()
	case visits == 0:
		return s.String()
	case r == domain.Start || r == domain.End:
		return s.Foreground(p.Color("#f472b6")).Bold().String()
	case domain.IsWaypoint(r):
		return s.Foreground(p.Color("#facc15")).Bold().String()
	case visits > 1:
		// Crossings.
		return s.Foreground(p.Color("#a78bfa")).String()
	default:
		return s.Foreground(p.Color("#22d3ee")).String()
	}
}
