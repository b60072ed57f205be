package lint

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"
)

// ErrEmptyCommand is returned when a CommandLinter has nothing to run
var ErrEmptyCommand = errors.New("empty lint command")

// CommandLinter runs an external command with the file path appended,
// e.g. `npx eslint --fix`. The command line is split with shell quoting
// rules, so `--rule "quotes: off"` passes one argument.
type CommandLinter struct {
	Command string
}

// NewCommandLinter creates a linter for the given command line
func NewCommandLinter(command string) *CommandLinter {
	return &CommandLinter{Command: command}
}

func (c *CommandLinter) Lint(ctx context.Context, path string) error {
	fields, err := shellwords.Parse(c.Command)
	if err != nil {
		return fmt.Errorf("invalid lint command %q: %w", c.Command, err)
	}
	if len(fields) == 0 {
		return ErrEmptyCommand
	}

	args := append(fields[1:], path)
	cmd := exec.CommandContext(ctx, fields[0], args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return fmt.Errorf("%s: %w", fields[0], err)
		}
		return fmt.Errorf("%s: %w: %s", fields[0], err, msg)
	}
	return nil
}
