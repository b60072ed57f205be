package js

import (
	"fmt"
	"strings"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
)

// Parser checks JavaScript for syntax errors
type Parser struct {
	parser *sitter.Parser
}

var jsLang = sitter.NewLanguage(tree_sitter_javascript.Language())

// parserPool is a pool of reusable JS parsers
var parserPool = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		if err := parser.SetLanguage(jsLang); err != nil {
			panic(fmt.Sprintf("failed to set JS language: %v", err))
		}
		return &Parser{parser: parser}
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

// Check parses source and returns every ERROR and MISSING node as a Problem
func (p *Parser) Check(source string) []Problem {
	sourceBytes := []byte(source)
	tree := p.parser.Parse(sourceBytes, nil)
	if tree == nil {
		return []Problem{{Message: "failed to parse script"}}
	}
	defer tree.Close()

	var problems []Problem
	collectProblems(tree.RootNode(), sourceBytes, &problems)
	return problems
}

// collectProblems walks only the subtrees that contain errors
func collectProblems(node *sitter.Node, source []byte, problems *[]Problem) {
	if node == nil || !node.HasError() {
		return
	}

	pos := node.StartPosition()
	switch {
	case node.IsMissing():
		*problems = append(*problems, Problem{
			Line:    pos.Row,
			Column:  pos.Column,
			Message: fmt.Sprintf("missing %q", node.Kind()),
		})
		return
	case node.IsError():
		*problems = append(*problems, Problem{
			Line:    pos.Row,
			Column:  pos.Column,
			Message: fmt.Sprintf("unexpected %q", snippet(node, source)),
		})
		return
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		collectProblems(node.Child(i), source, problems)
	}
}

// snippet returns the first line of a node's text, shortened for messages
func snippet(node *sitter.Node, source []byte) string {
	s := string(source[node.StartByte():node.EndByte()])
	s, _, _ = strings.Cut(strings.TrimSpace(s), "\n")
	if len(s) > 40 {
		s = s[:40] + "…"
	}
	return s
}
