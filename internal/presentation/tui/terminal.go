package tui

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Profile picks the color profile for f. Color is disabled when the caller
// asks for it or when f is not a terminal.
func Profile(f *os.File, color bool) termenv.Profile {
	if !color || !IsTerminal(f) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).ColorProfile()
}
