package address

// RangeMatcher evaluates one Pattern against a stream of lines, one call per
// line in increasing line-number order starting at 1. It carries the state
// needed to resolve ranges: whether a range is currently open, and the line
// it opened on (relative end clauses count from there).
//
// A matcher handles exactly one pass over one input; construct a fresh one
// per file.
type RangeMatcher struct {
	pattern   Pattern
	inRange   bool
	startLine int
}

// NewRangeMatcher returns a matcher for p with no range open. A range
// starting at line 0 (the GNU sed extension) begins with the range already
// open, so the end clause is tested from line 1 onward.
func NewRangeMatcher(p Pattern) *RangeMatcher {
	m := &RangeMatcher{pattern: p}
	if p.IsRange() && p.Start.Kind == KindLine && p.Start.Line == 0 {
		m.inRange = true
		m.startLine = 0
	}
	return m
}

// Evaluate reports whether the line is a member of the pattern's region and
// advances the matcher's range state. Lines must be fed in order: lineNo
// starts at 1 and increases by 1 per call.
func (m *RangeMatcher) Evaluate(line string, lineNo int) bool {
	member := m.evaluate(line, lineNo)
	if m.pattern.Negated {
		return !member
	}
	return member
}

func (m *RangeMatcher) evaluate(line string, lineNo int) bool {
	p := m.pattern
	if !p.IsRange() {
		// Single addresses re-test every line independently; a regex is
		// not "first match only".
		return p.Start.Match(line, lineNo)
	}

	if m.inRange {
		// Interior lines are members unconditionally; the line that
		// matches the end clause is the last member.
		if m.endReached(line, lineNo) {
			m.inRange = false
		}
		return true
	}

	if !p.Start.Match(line, lineNo) {
		return false
	}
	m.inRange = true
	m.startLine = lineNo

	// An end clause that resolves at or before the opening line collapses
	// the range to that one line: N,+0 closes immediately, as does a
	// numeric end at or below the line the start matched on (sed's
	// /public/,1 behavior). A regex end is never tested against the
	// opening line; the earliest it can close the range is the next line.
	switch p.End.Kind {
	case KindRelative:
		if m.startLine+p.End.Offset <= lineNo {
			m.inRange = false
		}
	case KindLine:
		if p.End.Line <= lineNo {
			m.inRange = false
		}
	}
	return true
}

// endReached tests the end clause against a line strictly inside an open
// range. Numeric and relative ends use >= rather than == so the range still
// closes if their target somehow falls between calls.
func (m *RangeMatcher) endReached(line string, lineNo int) bool {
	end := *m.pattern.End
	switch end.Kind {
	case KindLine:
		return lineNo >= end.Line
	case KindRelative:
		return lineNo >= m.startLine+end.Offset
	case KindRegex:
		return end.Text.MatchString(line)
	case KindEvery:
		return true
	}
	return false
}
