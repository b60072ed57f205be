package sfc

import (
	"errors"
	"fmt"

	"bennypowers.dev/vss/internal/parser/html"
)

// Component is the parsed form of one .vue file
type Component struct {
	SourcePath string
	Template   *Region
	Script     *Region
	Styles     []*Region
}

// ErrUnknownKind is returned when a region's tag is not template, script or style
var ErrUnknownKind = errors.New("unknown region kind")

// ReconstructError reports a failure to serialize a component
type ReconstructError struct {
	Path string
	Err  error
}

func (e *ReconstructError) Error() string {
	return fmt.Sprintf("failed to reconstruct %s: %v", e.Path, e.Err)
}

func (e *ReconstructError) Unwrap() error {
	return e.Err
}

// Parse splits source into its template, script and style regions.
// The first template is kept, and every style. Of several scripts, one
// marked setup is preferred so an already converted file is recognized.
func Parse(path, source string) *Component {
	p := html.AcquireParser()
	defer html.ReleaseParser(p)

	c := &Component{SourcePath: path}
	for _, block := range p.ParseBlocks(source) {
		r := &Region{
			Kind:      Kind(block.Tag),
			Attrs:     block.Attrs,
			Content:   block.Content,
			StartLine: block.StartLine,
		}
		switch r.Kind {
		case KindTemplate:
			if c.Template == nil {
				c.Template = r
			}
		case KindScript:
			if c.Script == nil || (!c.Script.Has(SetupAttr) && r.Has(SetupAttr)) {
				c.Script = r
			}
		case KindStyle:
			c.Styles = append(c.Styles, r)
		}
	}
	return c
}

// IsConverted reports whether the script already uses the setup form
func (c *Component) IsConverted() bool {
	return c.Script != nil && c.Script.Has(SetupAttr)
}

// Skip reports whether the component has nothing to convert
func (c *Component) Skip() bool {
	return c.IsConverted() || c.Script.IsEmpty()
}

// Regions returns the component's regions in output order
func (c *Component) Regions() []*Region {
	regions := []*Region{c.Template, c.Script}
	return append(regions, c.Styles...)
}

// Reconstruct serializes the component with its script marked setup.
// A non-empty region of unknown kind fails with a *ReconstructError.
func (c *Component) Reconstruct() (string, error) {
	regions := []*Region{c.Template}
	if c.Script != nil {
		regions = append(regions, c.Script.WithAttr(SetupAttr))
	}
	regions = append(regions, c.Styles...)

	for _, r := range regions {
		if r.IsEmpty() {
			continue
		}
		switch r.Kind {
		case KindTemplate, KindScript, KindStyle:
		default:
			return "", &ReconstructError{
				Path: c.SourcePath,
				Err:  fmt.Errorf("%w: %q", ErrUnknownKind, r.Kind),
			}
		}
	}
	return Reassemble(regions), nil
}
