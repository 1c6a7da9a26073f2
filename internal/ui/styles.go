package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// Styler renders terminal decoration for status output. Styling is enabled
// only when the destination is an actual terminal, so captured output stays
// plain text.
type Styler struct {
	enabled bool
	step    lipgloss.Style
}

func NewStyler(w io.Writer) *Styler {
	enabled := false
	if f, ok := w.(*os.File); ok {
		enabled = term.IsTerminal(f.Fd())
	}
	return &Styler{
		enabled: enabled,
		step:    lipgloss.NewStyle().Bold(true),
	}
}

// Step renders a step description.
func (s *Styler) Step(text string) string {
	if !s.enabled {
		return text
	}
	return s.step.Render(text)
}
