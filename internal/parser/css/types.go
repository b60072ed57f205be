package css

import "fmt"

// Problem is a syntax error found in a stylesheet
type Problem struct {
	Line    uint
	Column  uint
	Message string
}

// String renders the problem with 1-based coordinates
func (p Problem) String() string {
	return fmt.Sprintf("%d:%d: %s", p.Line+1, p.Column+1, p.Message)
}
