package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	memberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	lineNoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5F5F5F"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

func newViewport(width, height int) viewport.Model {
	return viewport.New(width, height)
}

// ModelView renders the preview TUI model's view as a string.
func ModelView(m model) string {
	if m.quitting {
		return "Goodbye!\n"
	}
	if !m.ready {
		return "Loading...\n"
	}

	side := "original"
	if m.showPreview {
		side = "preview"
	}
	header := headerStyle.Render(m.fileName) + "  " +
		fmt.Sprintf("pattern %q  [%s]", m.exprText, side)

	footer := helpStyle.Render("p: toggle preview • up/down: scroll • q: quit")

	return header + "\n\n" + m.viewport.View() + "\n" + footer
}

// renderLines formats the visible side of the preview with line numbers,
// highlighting the lines the pattern selects.
func renderLines(m model) string {
	lines := m.visibleLines()
	var b strings.Builder
	for i, line := range lines {
		no := lineNoStyle.Render(fmt.Sprintf("%4d ", i+1))
		if i < len(m.member) && m.member[i] {
			b.WriteString(no + memberStyle.Render(line))
		} else {
			b.WriteString(no + line)
		}
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
