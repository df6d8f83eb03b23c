package comment

import (
	"fmt"
	"regexp"
	"strings"
)

// Commenter applies a line-comment prefix to lines of text. The prefix
// pattern recognizes a commented line as optional leading whitespace, the
// prefix, then the rest of the line.
type Commenter struct {
	prefix  string
	pattern *regexp.Regexp
}

// New builds a Commenter for the given prefix, e.g. "# " or "// ".
func New(prefix string) (*Commenter, error) {
	pattern, err := regexp.Compile(`^(\s*)` + regexp.QuoteMeta(prefix) + `(.*?)$`)
	if err != nil {
		return nil, fmt.Errorf("failed to build prefix pattern for %q: %w", prefix, err)
	}
	return &Commenter{prefix: prefix, pattern: pattern}, nil
}

// Prefix returns the configured comment prefix.
func (c *Commenter) Prefix() string {
	return c.prefix
}

// IsCommented reports whether the line already carries the prefix after any
// leading whitespace.
func (c *Commenter) IsCommented(line string) bool {
	return c.pattern.MatchString(line)
}

// CommentLine returns the line with the prefix applied. Already-commented
// lines are returned unchanged.
func (c *Commenter) CommentLine(line string) string {
	if c.IsCommented(line) {
		return line
	}
	return c.prefix + line
}

// UncommentLine removes one occurrence of the prefix, preserving leading
// whitespace. Lines without the prefix are returned unchanged.
func (c *Commenter) UncommentLine(line string) string {
	m := c.pattern.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	return m[1] + m[2]
}

// ToggleLine uncomments a commented line and comments an uncommented one.
func (c *Commenter) ToggleLine(line string) string {
	if c.IsCommented(line) {
		return c.UncommentLine(line)
	}
	return c.prefix + line
}

// InsertPrefix prepends the prefix unconditionally, the equivalent of
// sed 's/^/PREFIX/'. Unlike CommentLine it stacks a second prefix on an
// already-commented line, which is what keeps block toggling a round trip.
func (c *Commenter) InsertPrefix(line string) string {
	return c.prefix + line
}

// WillComment decides the direction of a block toggle: true when any
// non-blank line in the block is uncommented. Blank lines carry no vote, so
// an all-blank block reports false and toggles to itself.
func (c *Commenter) WillComment(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !c.IsCommented(line) {
			return true
		}
	}
	return false
}

// ToggleBlock toggles the comment state of the whole block in one direction.
// When commenting, every non-blank line gets the prefix inserted at the start
// of the line, commented or not; toggling the result restores the original
// block exactly. When uncommenting, one prefix is removed per line. Blank
// lines are never touched.
func (c *Commenter) ToggleBlock(lines []string) []string {
	out := make([]string, len(lines))
	if c.WillComment(lines) {
		for i, line := range lines {
			if strings.TrimSpace(line) == "" {
				out[i] = line
				continue
			}
			out[i] = c.InsertPrefix(line)
		}
		return out
	}
	for i, line := range lines {
		out[i] = c.UncommentLine(line)
	}
	return out
}
