package script

import (
	"errors"
	"regexp"
	"strings"

	"bennypowers.dev/vss/internal/log"
	"bennypowers.dev/vss/internal/scan"
)

// Field is the verbatim, delimiter-inclusive text of an extracted field value
type Field struct {
	Raw string
}

// Block is the content of one component's script region plus the fields
// extracted from it while it is being rewritten. A Block is owned by a single
// conversion and is not safe for concurrent use.
type Block struct {
	// Name identifies the block in log messages, usually the source path
	Name string

	content string

	// Props, Emits and Components hold the last extracted value of each field,
	// or nil when the field was not found.
	Props      *Field
	Emits      *Field
	Components *Field
}

// NewBlock creates a block over the raw script content
func NewBlock(name, content string) *Block {
	return &Block{Name: name, content: content}
}

// Content returns the current script content
func (b *Block) Content() string {
	return b.content
}

// ExtractComponents removes the child-component registry. Components used in
// the template are resolved from imports in the sugar form, so the value is
// kept only for reporting.
func (b *Block) ExtractComponents() {
	if f, ok := b.extract("components", componentsStart, nil, '{', '}'); ok {
		b.Components = f
	}
}

// ExtractEmits removes the event declaration list
func (b *Block) ExtractEmits() {
	if f, ok := b.extract("emits", emitsStart, emitsBare, '[', ']'); ok {
		b.Emits = f
	}
}

// ExtractProps removes the properties declaration
func (b *Block) ExtractProps() {
	if f, ok := b.extract("props", propsStart, propsBare, '{', '}'); ok {
		b.Props = f
	}
}

// extract tries the delimited form of a field first and falls back to the
// single-line bare form only when the delimited form is absent.
func (b *Block) extract(field string, start, bare *regexp.Regexp, open, close byte) (*Field, bool) {
	fragment, remainder, err := scan.ExtractKey(b.content, start, open, close)
	switch {
	case err == nil:
		b.content = remainder
		return &Field{Raw: fragment}, true
	case errors.Is(err, scan.ErrUnterminated):
		log.Warn("%s: skipping %s: %v", b.Name, field, err)
		return nil, false
	case bare == nil:
		return nil, false
	}

	loc := bare.FindStringSubmatchIndex(b.content)
	if loc == nil {
		return nil, false
	}
	value := strings.TrimSpace(b.content[loc[2]:loc[3]])
	if value == "" {
		return nil, false
	}
	b.content = b.content[:loc[0]] + b.content[loc[1]:]
	return &Field{Raw: value}, true
}

// RemoveComponentName deletes the root-level name field. When no name sits at
// root scope the first textual occurrence is removed instead.
func (b *Block) RemoveComponentName() {
	span, ok := scan.AtRootDepth(nameField, b.content, 0, 0)
	if !ok {
		loc := nameField.FindStringIndex(b.content)
		if loc == nil {
			return
		}
		span = scan.Span{Start: loc[0], Finish: loc[1] - 1, Text: b.content[loc[0]:loc[1]]}
	}

	c := b.content
	start, end := span.Start, span.End()
	if end < len(c) && c[end] == ',' {
		end++
	}

	// A field alone on its line takes its indentation and the line breaks after it.
	lineStart := start
	for lineStart > 0 && isBlank(c[lineStart-1]) {
		lineStart--
	}
	if lineStart == 0 || c[lineStart-1] == '\n' {
		lineEnd := end
		for lineEnd < len(c) && isBlank(c[lineEnd]) {
			lineEnd++
		}
		if lineEnd == len(c) || c[lineEnd] == '\n' || c[lineEnd] == '\r' {
			for lineEnd < len(c) && (c[lineEnd] == '\n' || c[lineEnd] == '\r') {
				lineEnd++
			}
			start, end = lineStart, lineEnd
		}
	}

	b.content = c[:start] + c[end:]
}

// RemoveDoubleSymbols collapses separators and blank lines left behind by
// removals, then trims the content so it ends with a single newline.
// Running it on its own output changes nothing.
func (b *Block) RemoveDoubleSymbols() {
	c := b.content
	for {
		prev := c
		for _, rule := range collapseRules {
			for rule.expr.MatchString(c) {
				c = rule.expr.ReplaceAllString(c, rule.repl)
			}
		}
		c = strings.TrimSpace(c)
		if loc := danglingParen.FindStringIndex(c); loc != nil && unclosedParens(c) < 0 {
			c = strings.TrimSpace(c[:loc[0]])
		}
		if c == prev {
			break
		}
	}
	if c != "" && !strings.HasSuffix(c, "\n") {
		c += "\n"
	}
	b.content = c
}

// ApplyEmits inserts defineEmits before the default export
func (b *Block) ApplyEmits() {
	if b.Emits == nil {
		return
	}
	binding := ""
	if emitCall.MatchString(b.content) {
		binding = "const emit = "
	}
	b.insertBeforeExport(binding + "defineEmits(" + b.Emits.Raw + ");\n\n")
}

// ApplyProps inserts defineProps before the default export
func (b *Block) ApplyProps() {
	if b.Props == nil {
		return
	}
	binding := ""
	if propsRef.MatchString(b.content) {
		binding = "const props = "
	}
	b.insertBeforeExport(binding + "defineProps(" + b.Props.Raw + ");\n\n")
}

func (b *Block) insertBeforeExport(decl string) {
	idx := strings.Index(b.content, scan.ExportMarker)
	if idx < 0 {
		log.Debug("%s: no default export to anchor %q", b.Name, strings.TrimSpace(decl))
		return
	}
	b.content = b.content[:idx] + decl + b.content[idx:]
}

// RemoveExport unwraps the default-exported options object, optionally wrapped
// in a call such as defineComponent(...), leaving its members in place.
func (b *Block) RemoveExport() {
	m, err := scan.Balanced(b.content, exportStart, '{', '}')
	if err != nil {
		b.warnUnterminated("export default", err)
		return
	}

	var members string
	if lines := strings.Split(m.Full.Text, "\n"); len(lines) > 1 {
		lines[0] = ""
		lines[len(lines)-1] = ""
		members = strings.Join(lines, "\n")
	} else {
		members = m.Inner.Text
	}

	c := scan.Splice(b.content, m.Full, members)
	b.content = danglingEnd.ReplaceAllString(c, "")
}

// RemoveSetup replaces the setup routine with its body. A trailing
// `return { ... }` is dropped; keyed entries in it become declarations.
func (b *Block) RemoveSetup() {
	m, err := scan.Balanced(b.content, setupStart, '{', '}')
	if err != nil {
		b.warnUnterminated("setup()", err)
		return
	}

	body := stripReturn(m.Inner.Text)
	c := scan.Splice(b.content, m.Full, body)

	after := m.Full.Start + len(body)
	if loc := strayComma.FindStringIndex(c[after:]); loc != nil {
		c = c[:after] + c[after+loc[1]:]
	}
	b.content = c
}

// RemoveDefineComponent drops defineComponent from named import specifiers
// and removes an import that is left empty.
func (b *Block) RemoveDefineComponent() {
	b.content = namedImport.ReplaceAllStringFunc(b.content, func(stmt string) string {
		parts := namedImport.FindStringSubmatch(stmt)
		specifiers := scan.SplitTopLevel(parts[2], ',')

		found := false
		kept := make([]string, 0, len(specifiers))
		for _, s := range specifiers {
			switch s = strings.TrimSpace(s); s {
			case "":
			case "defineComponent":
				found = true
			default:
				kept = append(kept, s)
			}
		}
		switch {
		case !found:
			return stmt
		case len(kept) == 0:
			return ""
		}
		return parts[1] + " " + strings.Join(kept, ", ") + " " + parts[3] + parts[4]
	})
}

// unclosedParens returns opening minus closing parentheses in s
func unclosedParens(s string) int {
	return strings.Count(s, "(") - strings.Count(s, ")")
}

func (b *Block) warnUnterminated(what string, err error) {
	if errors.Is(err, scan.ErrUnterminated) {
		log.Warn("%s: skipping %s: %v", b.Name, what, err)
	}
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}
