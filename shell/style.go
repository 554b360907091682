package shell

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	enabled  bool
	header   lipgloss.Style
	muted    lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
	complete lipgloss.Style
}

func newStyles(out io.Writer, enabled bool) styles {
	renderer := lipgloss.NewRenderer(out)
	return styles{
		enabled:  enabled,
		header:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		muted:    renderer.NewStyle().Foreground(lipgloss.Color("244")),
		success:  renderer.NewStyle().Foreground(lipgloss.Color("2")),
		failure:  renderer.NewStyle().Foreground(lipgloss.Color("1")),
		complete: renderer.NewStyle().Foreground(lipgloss.Color("244")).Strikethrough(true),
	}
}

func (s styles) paint(style lipgloss.Style, value string) string {
	if !s.enabled || value == "" {
		return value
	}
	return style.Render(value)
}
