package tui

import (
	"togglecomment/internal/comment"
	"togglecomment/internal/stream"
	"togglecomment/pkg/address"

	"github.com/charmbracelet/bubbles/viewport"
)

// model is the Bubbletea model for the preview TUI. It holds the original
// file lines, the transformed lines, and per-line membership; the p key flips
// between showing the original and the transformed text.
type model struct {
	fileName    string
	lines       []string // original file content
	transformed []string // content after the transform
	member      []bool   // per-line pattern membership
	exprText    string   // the address expression, for the header
	mode        stream.Mode

	viewport    viewport.Model
	showPreview bool
	quitting    bool
	width       int
	height      int
	ready       bool
}

// initialModel evaluates the pattern over the file once and builds the model.
func initialModel(fileName, exprText string, pattern address.Pattern, commenter *comment.Commenter, mode stream.Mode, lines []string) model {
	transformed, member := stream.Lines(pattern, commenter, mode, lines)
	return model{
		fileName:    fileName,
		lines:       lines,
		transformed: transformed,
		member:      member,
		exprText:    exprText,
		mode:        mode,
	}
}

// visibleLines returns whichever side of the preview is currently shown.
func (m model) visibleLines() []string {
	if m.showPreview {
		return m.transformed
	}
	return m.lines
}
