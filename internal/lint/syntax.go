package lint

import (
	"context"
	"fmt"
	"os"

	"bennypowers.dev/vss/internal/parser"
	"bennypowers.dev/vss/internal/sfc"
)

// SyntaxLinter parses the script and style blocks of a written component
// with tree-sitter and reports ERROR and MISSING nodes.
type SyntaxLinter struct{}

// NewSyntaxLinter creates a SyntaxLinter
func NewSyntaxLinter() *SyntaxLinter {
	return &SyntaxLinter{}
}

func (s *SyntaxLinter) Lint(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	problems := Check(sfc.Parse(path, string(data)))
	if len(problems) > 0 {
		return &ProblemsError{Path: path, Problems: problems}
	}
	return nil
}

// Check returns the syntax problems of a component as "line:col: message"
// strings, with 1-based file coordinates.
func Check(c *sfc.Component) []string {
	var problems []string
	check := func(r *sfc.Region, languageID string) {
		for _, p := range parser.Check(r.Content, languageID) {
			problems = append(problems, fmt.Sprintf("%d:%d: %s", r.StartLine+p.Line+1, p.Column+1, p.Message))
		}
	}

	if c.Script != nil {
		check(c.Script, parser.ScriptLanguage(c.Script.Attr("lang")))
	}
	for _, style := range c.Styles {
		check(style, parser.StyleLanguage(style.Attr("lang")))
	}
	return problems
}
