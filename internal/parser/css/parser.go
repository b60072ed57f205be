package css

import (
	"fmt"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
)

// Parser handles parsing CSS with tree-sitter
type Parser struct {
	parser *sitter.Parser
}

var cssLang = sitter.NewLanguage(tree_sitter_css.Language())

var parserPool = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		if err := parser.SetLanguage(cssLang); err != nil {
			panic(fmt.Sprintf("failed to set CSS language: %v", err))
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

// Check parses a stylesheet and reports ERROR and MISSING nodes
func (p *Parser) Check(source string) []Problem {
	tree := p.parser.Parse([]byte(source), nil)
	if tree == nil {
		return []Problem{{Message: "failed to parse CSS"}}
	}
	defer tree.Close()

	var problems []Problem
	p.walkTree(tree.RootNode(), &problems)
	return problems
}

// walkTree descends into subtrees that contain errors
func (p *Parser) walkTree(node *sitter.Node, problems *[]Problem) {
	if node == nil || !node.HasError() {
		return
	}

	if node.IsError() || node.IsMissing() {
		msg := "invalid syntax"
		if node.IsMissing() {
			msg = fmt.Sprintf("missing %q", node.Kind())
		}
		*problems = append(*problems, Problem{
			Line:    node.StartPosition().Row,
			Column:  node.StartPosition().Column,
			Message: msg,
		})
		return
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		p.walkTree(node.Child(i), problems)
	}
}
