package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the asciiwalk banner to w using profile p.
func PrintBanner(w io.Writer, p termenv.Profile) {
	lines := []struct {
		text  string
		color string
	}{
		{`   ____  _____ ____ ___ ___ `, "#22d3ee"},
		{`  / _  |/ ___// __//  //  / `, "#38bdf8"},
		{` / /_| |\__ \/ /__ / / / /  `, "#60a5fa"},
		{`/_/  |_|____/\___//__//__/  walk`, "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
