package js

import "fmt"

// Problem is a syntax error found in a script
type Problem struct {
	// Line is the 0-indexed line of the problem within the checked source
	Line uint
	// Column is the 0-indexed byte column of the problem
	Column uint
	// Message describes the problem
	Message string
}

// String renders the problem with 1-based coordinates
func (p Problem) String() string {
	return fmt.Sprintf("%d:%d: %s", p.Line+1, p.Column+1, p.Message)
}
