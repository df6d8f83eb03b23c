package address

import (
	"fmt"
	"regexp"
	"strings"
)

// ParseError describes a malformed address expression. It is returned by
// ParsePattern before any line is processed; a malformed pattern never
// produces a partial parse.
type ParseError struct {
	Expr   string // the full expression as given
	Clause string // the offending clause within it
	Reason string
	Err    error // underlying error, e.g. a regexp compile failure
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("bad address %q: clause %q: %s", e.Expr, e.Clause, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParsePattern parses a textual address expression into a Pattern.
//
// The grammar is the ex/sed subset the tool supports:
//
//	N          1-indexed line number
//	M,N        inclusive range of lines
//	M,+N       range from M spanning N additional lines
//	/re/       regular expression, every matching line
//	/a/,/b/    range from a line matching a through a line matching b
//	''         empty pattern, the whole file
//
// Any of the above may carry a trailing '!' to negate membership. Line 0 is
// accepted only as the start of a range whose end is a regex (the GNU sed
// extension that lets the end clause match on line 1).
func ParsePattern(expr string) (Pattern, error) {
	s := expr
	negated := false
	if strings.HasSuffix(s, "!") {
		negated = true
		s = s[:len(s)-1]
	}

	if s == "" {
		return Pattern{Start: EveryLine(), Negated: negated}, nil
	}

	start, rest, err := parseAddress(expr, s)
	if err != nil {
		return Pattern{}, err
	}

	if rest == "" {
		if start.Kind == KindLine && start.Line == 0 {
			return Pattern{}, &ParseError{Expr: expr, Clause: s, Reason: "line 0 is only valid as the start of a regex-ended range"}
		}
		return Pattern{Start: start, Negated: negated}, nil
	}

	if rest[0] != ',' {
		return Pattern{}, &ParseError{Expr: expr, Clause: rest, Reason: "unexpected text after address"}
	}
	endText := rest[1:]

	var end Address
	if strings.HasPrefix(endText, "+") {
		offset, err := parseInt(expr, endText, endText[1:])
		if err != nil {
			return Pattern{}, err
		}
		end = RelativeAddress(offset)
	} else {
		var tail string
		end, tail, err = parseAddress(expr, endText)
		if err != nil {
			return Pattern{}, err
		}
		if tail != "" {
			return Pattern{}, &ParseError{Expr: expr, Clause: tail, Reason: "unexpected text after range end"}
		}
		if end.Kind == KindLine && end.Line == 0 {
			return Pattern{}, &ParseError{Expr: expr, Clause: endText, Reason: "line 0 cannot end a range"}
		}
	}

	if start.Kind == KindLine && start.Line == 0 && end.Kind != KindRegex {
		return Pattern{}, &ParseError{Expr: expr, Clause: s, Reason: "line 0 is only valid as the start of a regex-ended range"}
	}

	return Pattern{Start: start, End: &end, Negated: negated}, nil
}

// parseAddress consumes one address from the front of s and returns it along
// with the unconsumed remainder. The full expression is carried for error
// reporting only.
func parseAddress(expr, s string) (Address, string, error) {
	if s == "" || s[0] == ',' {
		// Empty address: the whole file.
		return EveryLine(), s, nil
	}

	if s[0] == '/' {
		// The delimiter cannot be escaped, so the body runs to the next slash.
		closing := strings.IndexByte(s[1:], '/')
		if closing < 0 {
			return Address{}, "", &ParseError{Expr: expr, Clause: s, Reason: "unterminated regex"}
		}
		body := s[1 : closing+1]
		re, err := regexp.Compile(body)
		if err != nil {
			return Address{}, "", &ParseError{Expr: expr, Clause: s[:closing+2], Reason: "invalid regex", Err: err}
		}
		return RegexAddress(re), s[closing+2:], nil
	}

	token := s
	if i := strings.IndexByte(s, ','); i >= 0 {
		token = s[:i]
	}
	n, err := parseInt(expr, token, token)
	if err != nil {
		return Address{}, "", err
	}
	return LineAddress(n), s[len(token):], nil
}

// parseInt parses a run of decimal digits. Unlike strconv.Atoi it rejects
// signs and whitespace, matching the address grammar exactly.
func parseInt(expr, clause, digits string) (int, error) {
	if digits == "" {
		return 0, &ParseError{Expr: expr, Clause: clause, Reason: "expected a line number"}
	}
	n := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, &ParseError{Expr: expr, Clause: clause, Reason: "expected a line number"}
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
