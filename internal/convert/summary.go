package convert

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// Summary aggregates the results of a run
type Summary struct {
	Results []Result
}

// Count returns the number of results with the given status
func (s Summary) Count(status Status) int {
	n := 0
	for _, r := range s.Results {
		if r.Status == status {
			n++
		}
	}
	return n
}

// LintWarnings returns the number of written files that failed linting
func (s Summary) LintWarnings() int {
	n := 0
	for _, r := range s.Results {
		if r.LintErr != nil {
			n++
		}
	}
	return n
}

var (
	convertedColor = color.New(color.FgGreen)
	skippedColor   = color.New(color.FgCyan)
	failedColor    = color.New(color.FgRed, color.Bold)
	warnColor      = color.New(color.FgYellow)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// Print writes one line per file and a box with the totals
func (s Summary) Print(w io.Writer) {
	for _, r := range s.Results {
		switch r.Status {
		case Converted:
			target := r.Output
			if target == "" {
				target = "(dry run)"
			}
			convertedColor.Fprintf(w, "✓ %s", r.Path)
			fmt.Fprintf(w, " → %s\n", target)
			if r.LintErr != nil {
				warnColor.Fprintf(w, "  ⚠ %v\n", r.LintErr)
			}
		case Skipped:
			skippedColor.Fprintf(w, "- %s", r.Path)
			fmt.Fprintln(w, " (already setup or no script)")
		case Failed:
			failedColor.Fprintf(w, "✗ %s", r.Path)
			fmt.Fprintf(w, ": %v\n", r.Err)
		}
	}

	lines := []string{
		fmt.Sprintf("converted: %d", s.Count(Converted)),
		fmt.Sprintf("skipped:   %d", s.Count(Skipped)),
		fmt.Sprintf("failed:    %d", s.Count(Failed)),
	}
	if n := s.LintWarnings(); n > 0 {
		lines = append(lines, fmt.Sprintf("lint:      %d", n))
	}
	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
}
