package html

// Attr is one attribute of a block's opening tag. Bool is set for
// attributes written without a value, such as `setup` or `scoped`.
type Attr struct {
	Name  string
	Value string
	Bool  bool
}

// Block is a top-level element of a single-file component
type Block struct {
	// Tag is the element name, e.g. "template", "script" or "style"
	Tag string
	// Attrs are the opening tag's attributes in source order
	Attrs []Attr
	// Content is the raw text between the opening and closing tags,
	// without the line break that directly follows the opening tag
	Content string
	// StartLine is the 0-indexed line of the component file where Content begins
	StartLine uint
}

// Attr returns the attribute with the given name
func (b Block) Attr(name string) (Attr, bool) {
	for _, a := range b.Attrs {
		if a.Name == name {
			return a, true
		}
	}
	return Attr{}, false
}
