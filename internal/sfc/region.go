package sfc

import (
	"strings"

	"bennypowers.dev/vss/internal/parser/html"
)

// Kind is the tag of a top-level component block
type Kind string

const (
	KindTemplate Kind = "template"
	KindScript   Kind = "script"
	KindStyle    Kind = "style"
)

// SetupAttr marks a script block written in the setup sugar form
const SetupAttr = "setup"

// Attr is an opening-tag attribute
type Attr = html.Attr

// Region is one tagged block of a single-file component
type Region struct {
	Kind    Kind
	Attrs   []Attr
	Content string
	// StartLine is the 0-indexed line of the source file where Content begins
	StartLine uint
}

// Has reports whether the region carries the named attribute
func (r *Region) Has(name string) bool {
	for _, a := range r.Attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// Attr returns the value of the named attribute, or "" when absent
func (r *Region) Attr(name string) string {
	for _, a := range r.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// IsEmpty reports whether the region is missing or has only whitespace
func (r *Region) IsEmpty() bool {
	return r == nil || strings.TrimSpace(r.Content) == ""
}

// WithAttr returns a copy of the region with a boolean attribute appended,
// unless the region already has it.
func (r *Region) WithAttr(name string) *Region {
	out := *r
	if r.Has(name) {
		return &out
	}
	out.Attrs = append(append([]Attr(nil), r.Attrs...), Attr{Name: name, Bool: true})
	return &out
}

// openTag renders `<kind attrs>`
func (r *Region) openTag() string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(string(r.Kind))
	for _, a := range r.Attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		if !a.Bool {
			sb.WriteString(`="`)
			sb.WriteString(a.Value)
			sb.WriteByte('"')
		}
	}
	sb.WriteByte('>')
	return sb.String()
}

// Reassemble serializes regions in the given order. Missing and blank
// regions are omitted.
func Reassemble(regions []*Region) string {
	var sb strings.Builder
	for _, r := range regions {
		if r.IsEmpty() {
			continue
		}
		sb.WriteString(r.openTag())
		sb.WriteByte('\n')
		sb.WriteString(r.Content)
		sb.WriteString("</")
		sb.WriteString(string(r.Kind))
		sb.WriteString(">\n\n")
	}
	return sb.String()
}
