package script

import (
	"strings"

	"bennypowers.dev/vss/internal/scan"
)

// stripReturn removes a trailing top-level `return { ... }` from a setup body.
// Shorthand entries already name a binding in the body and are dropped; keyed
// entries and methods are turned into declarations so their values survive.
func stripReturn(body string) string {
	span, ok := scan.AtRootDepth(returnStart, body, 0, 0)
	if !ok {
		return body
	}

	m, err := scan.Balanced(body[span.Start:], returnStart, '{', '}')
	if err != nil {
		return body
	}
	if rest := body[span.Start+m.Full.End():]; strings.Trim(rest, "; \t\r\n") != "" {
		return body
	}

	before := body[:span.Start]
	indent := before[strings.LastIndex(before, "\n")+1:]
	if strings.TrimSpace(indent) != "" {
		indent = ""
	}

	kept := strings.TrimRight(before, " \t\r\n")
	for _, decl := range returnDeclarations(m.Inner.Text) {
		kept += "\n" + indent + decl
	}
	return kept
}

// returnDeclarations converts the entries of a returned object literal into
// top-level declarations.
func returnDeclarations(object string) []string {
	var decls []string
	for _, entry := range scan.SplitTopLevel(object, ',') {
		entry = strings.TrimSpace(entry)
		if entry == "" || strings.HasPrefix(entry, "...") {
			continue
		}
		if m := keyedEntry.FindStringSubmatch(entry); m != nil {
			key, value := m[1], strings.TrimSpace(m[2])
			if key != value {
				decls = append(decls, "const "+key+" = "+value+";")
			}
			continue
		}
		if m := methodEntry.FindStringSubmatch(entry); m != nil {
			decls = append(decls, m[1]+"function "+m[2])
		}
	}
	return decls
}
