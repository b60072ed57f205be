// Package scan locates balanced delimiter regions and named fields inside
// loosely structured source text without building a syntax tree.
package scan

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrNotFound signals that the start pattern does not occur in the body
	ErrNotFound = errors.New("pattern not found")
	// ErrUnterminated signals that the pattern occurs but its delimiters never balance.
	// It wraps ErrNotFound so callers can treat both as "nothing to do".
	ErrUnterminated = fmt.Errorf("found start of expression but could not find an end: %w", ErrNotFound)
)

// Span is a located region of a body.
// Finish is the index of the matched closing delimiter.
type Span struct {
	Start  int
	Finish int
	Text   string
}

// End returns the exclusive end offset of the span's text
func (s Span) End() int {
	return s.Start + len(s.Text)
}

// Match describes a balanced region found by Balanced.
// Full runs from the start of the pattern match through the closing delimiter inclusive.
// Inner runs from just past the pattern match up to, but excluding, the closing delimiter.
type Match struct {
	Full  Span
	Inner Span
}

// Balanced finds the first match of start in body and the region that balances
// open against close from the delimiter that ends the match.
//
// Delimiters inside string and comment literals are counted like any other.
func Balanced(body string, start *regexp.Regexp, open, close byte) (Match, error) {
	loc := start.FindStringIndex(body)
	if loc == nil {
		return Match{}, ErrNotFound
	}

	from := loc[0]
	if loc[1] > loc[0] && body[loc[1]-1] == open {
		from = loc[1] - 1
	}

	finish := balance(body, from, open, close)
	if finish < 0 {
		return Match{}, ErrUnterminated
	}

	return Match{
		Full: Span{
			Start:  loc[0],
			Finish: finish,
			Text:   body[loc[0] : finish+1],
		},
		Inner: Span{
			Start:  loc[1],
			Finish: finish,
			Text:   body[loc[1]:finish],
		},
	}, nil
}

// balance returns the index at which the close count first catches up with
// the open count, scanning from offset, or -1 when the body ends first.
func balance(body string, offset int, open, close byte) int {
	opened, closed := 0, 0
	for i := offset; i < len(body); i++ {
		switch body[i] {
		case open:
			opened++
		case close:
			closed++
		default:
			continue
		}
		if closed > 0 && closed == opened {
			return i
		}
	}
	return -1
}

// Splice replaces the text covered by span with repl
func Splice(body string, span Span, repl string) string {
	return body[:span.Start] + repl + body[span.End():]
}
