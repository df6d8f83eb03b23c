// Package stream drives one address pattern over a line stream, applying the
// configured comment transformation to member lines as they pass through.
package stream

import (
	"bufio"
	"fmt"
	"io"

	"togglecomment/internal/comment"
	"togglecomment/pkg/address"
)

// Mode selects the transformation applied to member lines.
type Mode int

const (
	// ModeToggle flips the comment state of each contiguous member block,
	// commenting the whole block unless every non-blank line is already
	// commented.
	ModeToggle Mode = iota

	// ModeComment inserts the prefix at the start of every member line,
	// exactly as sed 's/^/PREFIX/' would.
	ModeComment

	// ModeUncomment removes one prefix from every member line that has one.
	ModeUncomment
)

// ParseMode maps a mode name from the command line to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "toggle":
		return ModeToggle, nil
	case "comment":
		return ModeComment, nil
	case "uncomment":
		return ModeUncomment, nil
	}
	return ModeToggle, fmt.Errorf("unknown mode %q (expected toggle, comment or uncomment)", s)
}

// Processor runs a single forward pass: each input line is evaluated against
// the pattern, transformed if it is a member, and written out before the next
// line is read. Comment and uncomment modes stream line by line; toggle mode
// holds only the current run of member lines, because the toggle direction
// depends on the whole run.
type Processor struct {
	matcher   *address.RangeMatcher
	commenter *comment.Commenter
	mode      Mode
}

// New builds a Processor. The matcher carries per-pass range state, so a
// Processor, like its matcher, is good for exactly one Run.
func New(pattern address.Pattern, commenter *comment.Commenter, mode Mode) *Processor {
	return &Processor{
		matcher:   address.NewRangeMatcher(pattern),
		commenter: commenter,
		mode:      mode,
	}
}

// Run copies r to w, transforming member lines per the processor's mode.
func (p *Processor) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	out := bufio.NewWriter(w)

	var block []string
	flush := func() {
		if len(block) == 0 {
			return
		}
		for _, line := range p.commenter.ToggleBlock(block) {
			out.WriteString(line)
			out.WriteByte('\n')
		}
		block = block[:0]
	}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if !p.matcher.Evaluate(line, lineNo) {
			flush()
			out.WriteString(line)
			out.WriteByte('\n')
			continue
		}

		switch p.mode {
		case ModeComment:
			out.WriteString(p.commenter.InsertPrefix(line))
			out.WriteByte('\n')
		case ModeUncomment:
			out.WriteString(p.commenter.UncommentLine(line))
			out.WriteByte('\n')
		default:
			block = append(block, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	flush()

	if err := out.Flush(); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}

// Lines is the in-memory counterpart of Run, used by the preview UI: it
// returns the transformed lines alongside per-line membership.
func Lines(pattern address.Pattern, commenter *comment.Commenter, mode Mode, lines []string) ([]string, []bool) {
	matcher := address.NewRangeMatcher(pattern)
	member := make([]bool, len(lines))
	for i, line := range lines {
		member[i] = matcher.Evaluate(line, i+1)
	}

	out := make([]string, len(lines))
	var block []string
	blockStart := 0
	flush := func() {
		if len(block) == 0 {
			return
		}
		for j, line := range commenter.ToggleBlock(block) {
			out[blockStart+j] = line
		}
		block = block[:0]
	}

	for i, line := range lines {
		if !member[i] {
			flush()
			out[i] = line
			continue
		}
		switch mode {
		case ModeComment:
			out[i] = commenter.InsertPrefix(line)
		case ModeUncomment:
			out[i] = commenter.UncommentLine(line)
		default:
			if len(block) == 0 {
				blockStart = i
			}
			block = append(block, line)
		}
	}
	flush()

	return out, member
}
