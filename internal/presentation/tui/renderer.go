package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/asciiwalk"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// It picks a light or dark theme from the terminal background.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return plain
	}
	return r.Render
}

// NewRendererWithStyle is NewRenderer with a fixed glamour style
// (e.g. "dark", "light", "notty").
func NewRendererWithStyle(style string) func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
	)
	if err != nil {
		return plain
	}
	return r.Render
}

func plain(md string) (string, error) {
	return md, nil
}

// MarkdownReport formats walk reports as a markdown document.
func MarkdownReport(reports []asciiwalk.Report) string {
	var sb strings.Builder
	sb.WriteString("# Walk report\n")
	for _, rep := range reports {
		fmt.Fprintf(&sb, "\n## %s\n\n", rep.Source)
		if rep.Error != "" {
			fmt.Fprintf(&sb, "> %s\n\n", rep.Error)
		}
		if rep.Result == nil {
			continue
		}
		fmt.Fprintf(&sb, "- **Letters:** `%s`\n", orDash(rep.Result.Letters))
		fmt.Fprintf(&sb, "- **Path as characters:** `%s`\n", rep.Result.Characters)
		fmt.Fprintf(&sb, "- **Steps:** %d\n", rep.Result.Steps)
	}
	return sb.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
