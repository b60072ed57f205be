package scan

import (
	"regexp"
	"strings"
)

// ExtractKey pulls the value of the field whose start is matched by start out
// of body. fragment is the value with its delimiters; remainder is body with
// the whole field (key and value) removed. When the field is absent the error
// is ErrNotFound (or ErrUnterminated) and remainder is body unchanged.
func ExtractKey(body string, start *regexp.Regexp, open, close byte) (fragment, remainder string, err error) {
	m, err := Balanced(body, start, open, close)
	if err != nil {
		return "", body, err
	}
	fragment = string(open) + m.Inner.Text + string(close)
	return fragment, Splice(body, m.Full, ""), nil
}

// SplitTopLevel splits body at every sep that is not nested inside (), [] or {}
// and not inside a quoted string. Empty trailing parts are dropped.
func SplitTopLevel(body string, sep byte) []string {
	var (
		parts []string
		depth int
		quote byte
		last  int
	)
	for i := 0; i < len(body); i++ {
		c := body[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"', '`':
			quote = c
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, body[last:i])
				last = i + 1
			}
		}
	}
	if tail := body[last:]; strings.TrimSpace(tail) != "" {
		parts = append(parts, tail)
	}
	return parts
}
