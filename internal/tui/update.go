package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// headerHeight and footerHeight are the rows the chrome takes away from the
// viewport.
const (
	headerHeight = 2
	footerHeight = 2
)

// Update handles all Bubbletea update logic for the preview TUI.
func Update(m model, msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(m, msg)
	case tea.WindowSizeMsg:
		return handleWindowResize(m, msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// HandleKeyMsg handles key presses.
func HandleKeyMsg(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "p", "tab", " ":
		m.showPreview = !m.showPreview
		m.viewport.SetContent(renderLines(m))
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func handleWindowResize(m model, msg tea.WindowSizeMsg) (model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	vpHeight := max(msg.Height-headerHeight-footerHeight, 1)
	if !m.ready {
		m.viewport = newViewport(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = vpHeight
	}
	m.viewport.SetContent(renderLines(m))
	return m, nil
}

// max returns the maximum of two ints.
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
