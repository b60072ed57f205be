// Package lint checks converted components after they are written.
package lint

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Linter checks one written file
type Linter interface {
	Lint(ctx context.Context, path string) error
}

// ProblemsError lists the syntax problems found in a file
type ProblemsError struct {
	Path     string
	Problems []string
}

func (e *ProblemsError) Error() string {
	noun := "problems"
	if len(e.Problems) == 1 {
		noun = "problem"
	}
	return fmt.Sprintf("%s: %d syntax %s: %s", e.Path, len(e.Problems), noun, strings.Join(e.Problems, "; "))
}

// Chain runs every linter in order and joins their errors
type Chain []Linter

func (c Chain) Lint(ctx context.Context, path string) error {
	var errs []error
	for _, l := range c {
		if l == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return errors.Join(append(errs, err)...)
		}
		if err := l.Lint(ctx, path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
