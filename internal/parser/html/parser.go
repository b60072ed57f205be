package html

import (
	"fmt"
	"strings"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_html "github.com/tree-sitter/tree-sitter-html/bindings/go"
)

// Parser splits a single-file component into its top-level blocks
type Parser struct {
	parser     *sitter.Parser
	blockQuery *sitter.Query
}

var htmlLang = sitter.NewLanguage(tree_sitter_html.Language())

// parserPool is a pool of reusable HTML parsers
var parserPool = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		if err := parser.SetLanguage(htmlLang); err != nil {
			panic(fmt.Sprintf("failed to set HTML language: %v", err))
		}

		blockQuery, qerr := sitter.NewQuery(htmlLang, `
			(document [(element) (script_element) (style_element)] @block)
		`)
		if qerr != nil {
			panic(fmt.Sprintf("failed to compile block query: %v", qerr))
		}

		return &Parser{
			parser:     parser,
			blockQuery: blockQuery,
		}
	},
}

// AcquireParser gets a parser from the pool
func AcquireParser() *Parser {
	p := parserPool.Get().(*Parser)
	p.parser.Reset()
	return p
}

// ReleaseParser returns a parser to the pool
func ReleaseParser(p *Parser) {
	if p != nil {
		parserPool.Put(p)
	}
}

// ParseBlocks returns the top-level elements of source in document order
func (p *Parser) ParseBlocks(source string) []Block {
	sourceBytes := []byte(source)
	tree := p.parser.Parse(sourceBytes, nil)
	if tree == nil {
		return nil
	}
	defer tree.Close()

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	var blocks []Block
	matches := cursor.Matches(p.blockQuery, tree.RootNode(), sourceBytes)
	for match := matches.Next(); match != nil; match = matches.Next() {
		for _, capture := range match.Captures {
			node := capture.Node
			if block, ok := readBlock(&node, sourceBytes); ok {
				blocks = append(blocks, block)
			}
		}
	}

	return blocks
}

// readBlock reads the tag name, attributes and raw content of an element
func readBlock(node *sitter.Node, source []byte) (Block, bool) {
	var startTag, endTag *sitter.Node
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "start_tag":
			startTag = child
		case "end_tag":
			endTag = child
		}
	}
	if startTag == nil {
		return Block{}, false
	}

	block := Block{}
	for i := uint(0); i < startTag.ChildCount(); i++ {
		child := startTag.Child(i)
		switch child.Kind() {
		case "tag_name":
			block.Tag = strings.ToLower(text(child, source))
		case "attribute":
			block.Attrs = append(block.Attrs, readAttr(child, source))
		}
	}

	contentStart := startTag.EndByte()
	contentEnd := node.EndByte()
	if endTag != nil && !endTag.IsMissing() {
		contentEnd = endTag.StartByte()
	}
	if contentEnd < contentStart {
		contentEnd = contentStart
	}

	content := string(source[contentStart:contentEnd])
	block.StartLine = startTag.EndPosition().Row
	if trimmed, ok := strings.CutPrefix(content, "\r\n"); ok {
		content = trimmed
		block.StartLine++
	} else if trimmed, ok := strings.CutPrefix(content, "\n"); ok {
		content = trimmed
		block.StartLine++
	}
	block.Content = content

	return block, true
}

// readAttr reads an attribute node; attributes without a value are boolean
func readAttr(node *sitter.Node, source []byte) Attr {
	attr := Attr{Bool: true}
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "attribute_name":
			attr.Name = text(child, source)
		case "attribute_value":
			attr.Value = text(child, source)
			attr.Bool = false
		case "quoted_attribute_value":
			attr.Bool = false
			for j := uint(0); j < child.ChildCount(); j++ {
				if inner := child.Child(j); inner.Kind() == "attribute_value" {
					attr.Value = text(inner, source)
				}
			}
		}
	}
	return attr
}

func text(node *sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}
