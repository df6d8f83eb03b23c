// Package address parses ex/sed-style address expressions and resolves them
// against a stream of lines, one line at a time, deciding per line whether it
// falls inside the matched region.
package address

// Kind discriminates the variants of an Address. The set is closed; every
// switch over Kind in this package handles all of them.
type Kind int

const (
	// KindLine matches exactly one 1-based line number.
	KindLine Kind = iota

	// KindRegex matches any line whose text matches the pattern.
	KindRegex

	// KindRelative matches the line a fixed offset after the line that
	// opened the enclosing range. Only valid as a range end clause.
	KindRelative

	// KindEvery matches every line (the empty address).
	KindEvery
)

// TextMatcher is the capability an Address needs from a regex engine.
// *regexp.Regexp satisfies it.
type TextMatcher interface {
	MatchString(s string) bool
}

// Address is a single line-selection primitive: a line number, a regex,
// a relative offset, or the whole file.
type Address struct {
	Kind   Kind
	Line   int         // KindLine
	Offset int         // KindRelative
	Text   TextMatcher // KindRegex
}

// LineAddress returns an Address matching exactly line n.
func LineAddress(n int) Address {
	return Address{Kind: KindLine, Line: n}
}

// RegexAddress returns an Address matching any line accepted by m.
func RegexAddress(m TextMatcher) Address {
	return Address{Kind: KindRegex, Text: m}
}

// RelativeAddress returns an end-clause Address matching the line offset
// lines after the range start.
func RelativeAddress(offset int) Address {
	return Address{Kind: KindRelative, Offset: offset}
}

// EveryLine returns the empty address, which matches the whole file.
func EveryLine() Address {
	return Address{Kind: KindEvery}
}

// Match reports whether the address selects the given line. Relative
// addresses always report false here; they are resolved by RangeMatcher,
// which knows the line the range opened on.
func (a Address) Match(line string, lineNo int) bool {
	switch a.Kind {
	case KindLine:
		return a.Line == lineNo
	case KindRegex:
		return a.Text.MatchString(line)
	case KindEvery:
		return true
	}
	return false
}

// Pattern is a parsed address expression: a single Address, or a range from
// Start through End inclusive, optionally negated.
type Pattern struct {
	Start   Address
	End     *Address // nil for a single (non-range) pattern
	Negated bool
}

// IsRange reports whether the pattern is a two-address range.
func (p Pattern) IsRange() bool {
	return p.End != nil
}
