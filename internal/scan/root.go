package scan

import (
	"regexp"
	"strings"
)

// ExportMarker is the token that makes depth one count as root scope
const ExportMarker = "export default"

// AtRootDepth returns the last match of pattern inside [windowStart, windowEnd)
// that sits at brace depth zero relative to windowStart. A match at depth one
// also qualifies once the text scanned so far contains ExportMarker, since the
// exported options object is the root for field removal.
//
// A windowEnd of zero or beyond the body means the end of the body.
func AtRootDepth(pattern *regexp.Regexp, body string, windowStart, windowEnd int) (Span, bool) {
	if windowEnd <= 0 || windowEnd > len(body) {
		windowEnd = len(body)
	}
	windowStart = max(windowStart, 0)
	if windowStart >= windowEnd {
		return Span{}, false
	}

	var (
		result Span
		found  bool
	)
	for _, loc := range pattern.FindAllStringIndex(body[windowStart:windowEnd], -1) {
		if loc[1] == loc[0] {
			continue
		}
		start, end := windowStart+loc[0], windowStart+loc[1]
		scanned := body[windowStart:start]
		opened := strings.Count(scanned, "{")
		closed := strings.Count(scanned, "}")

		if opened == closed || (opened == closed+1 && strings.Contains(scanned, ExportMarker)) {
			result = Span{Start: start, Finish: end - 1, Text: body[start:end]}
			found = true
		}
	}

	return result, found
}
