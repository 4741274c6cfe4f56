package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/asciiwalk/internal/walker"
	"github.com/aretw0/asciiwalk/pkg/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const autoplayInterval = 120 * time.Millisecond

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#818cf8"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#22d3ee"))
	letterStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#facc15"))
	currentStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
)

type tickMsg time.Time

// Stepper is a bubbletea model that plays a walk one step at a time.
type Stepper struct {
	name string
	w    *walker.Walker
	auto bool
}

// NewStepper wraps w, initiating a fresh walk.
func NewStepper(name string, w *walker.Walker) *Stepper {
	w.Initiate()
	return &Stepper{name: name, w: w}
}

// Walker exposes the underlying walker.
func (s *Stepper) Walker() *walker.Walker {
	return s.w
}

// Init implements tea.Model.
func (s *Stepper) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s *Stepper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return s, tea.Quit
		case " ", "n", "right", "enter":
			s.w.Step()
		case "r":
			s.auto = false
			s.w.Initiate()
		case "a":
			s.auto = !s.auto
			if s.auto {
				return s, tick()
			}
		}
	case tickMsg:
		if !s.auto {
			return s, nil
		}
		if !s.w.Step() {
			s.auto = false
			return s, nil
		}
		return s, tick()
	}
	return s, nil
}

func tick() tea.Cmd {
	return tea.Tick(autoplayInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// View implements tea.Model.
func (s *Stepper) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("asciiwalk · %s", s.name)))
	b.WriteString("\n\n")
	b.WriteString(boxStyle.Render(s.renderGrid()))
	b.WriteString("\n\n")

	letters, ok := s.w.Letters()
	if !ok {
		b.WriteString("No start marker found.\n")
	} else {
		chars, _ := s.w.Characters()
		fmt.Fprintf(&b, "Letters: %q\n", letters)
		fmt.Fprintf(&b, "Path as characters: %q\n", chars)
		fmt.Fprintf(&b, "Status: %s\n", s.w.Status())
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("space/n: step · a: autoplay · r: restart · q: quit"))
	return b.String()
}

func (s *Stepper) renderGrid() string {
	visited := make(map[domain.Position]bool)
	for _, p := range s.w.Trace() {
		visited[p] = true
	}
	current, walking := s.w.Position()
	g := s.w.Grid()
	width := g.Width()

	var b strings.Builder
	for row, cells := range g {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < width; col++ {
			r := ' '
			if col < len(cells) {
				r = cells[col]
			}
			pos := domain.Position{Row: row, Col: col}
			cell := string(r)
			switch {
			case walking && pos == current:
				cell = currentStyle.Render(cell)
			case visited[pos] && domain.IsWaypoint(r):
				cell = letterStyle.Render(cell)
			case visited[pos]:
				cell = pathStyle.Render(cell)
			}
			b.WriteString(cell)
		}
	}
	return b.String()
}

// Play runs the stepper as a full-screen program.
func Play(name string, w *walker.Walker) error {
	_, err := tea.NewProgram(NewStepper(name, w), tea.WithAltScreen()).Run()
	return err
}
