// Package tui implements the interactive preview: the input file with member
// lines highlighted, flipping between the original text and the transformed
// result without writing anything.
package tui

import (
	"bufio"
	"fmt"
	"os"

	"togglecomment/internal/comment"
	"togglecomment/internal/stream"
	"togglecomment/pkg/address"

	tea "github.com/charmbracelet/bubbletea"
)

// Run loads the file and launches the preview TUI.
func Run(fileName, exprText string, pattern address.Pattern, commenter *comment.Commenter, mode stream.Mode) error {
	file, err := os.Open(fileName)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", fileName, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading %s: %w", fileName, err)
	}

	m := initialModel(fileName, exprText, pattern, commenter, mode, lines)
	p := tea.NewProgram(&teaModelAdapter{m}, tea.WithAltScreen())

	_, err = p.Run()
	return err
}

// teaModelAdapter adapts our model to the tea.Model interface using Update
// and ModelView.
type teaModelAdapter struct {
	m model
}

func (a *teaModelAdapter) Init() tea.Cmd {
	return nil
}

func (a *teaModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m2, cmd := Update(a.m, msg)
	a.m = m2
	return a, cmd
}

func (a *teaModelAdapter) View() string {
	return ModelView(a.m)
}
