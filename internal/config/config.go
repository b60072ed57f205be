// Package config loads conversion settings from package.json, rc files and flags.
package config

import (
	"errors"
	"fmt"
)

// DefaultDestination is the output directory used when none is configured
const DefaultDestination = "output"

// Config holds the settings of one conversion run
type Config struct {
	// Destination is the directory converted files are written under
	Destination string
	// Overwrite writes converted files over their sources
	Overwrite bool
	// Jobs is the number of files converted concurrently
	Jobs int
	// Lint runs the syntax check on every written file
	Lint bool
	// LintCommand is an external command run on every written file
	LintCommand string
	// Patterns are the glob patterns or paths to convert
	Patterns []string
}

// ErrInvalidJobs is returned for a negative job count
var ErrInvalidJobs = errors.New("jobs must not be negative")

// ErrNoDestination is returned when neither a destination nor overwrite is set
var ErrNoDestination = errors.New("destination must be set unless overwriting")

// Default returns the built-in settings
func Default() Config {
	return Config{
		Destination: DefaultDestination,
		Jobs:        1,
		Lint:        true,
	}
}

// Validate reports settings that cannot be run
func (c Config) Validate() error {
	if c.Jobs < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidJobs, c.Jobs)
	}
	if !c.Overwrite && c.Destination == "" {
		return ErrNoDestination
	}
	return nil
}

// fileConfig is the on-disk form; nil fields leave the current value alone
type fileConfig struct {
	Destination *string  `json:"destination" yaml:"destination" toml:"destination"`
	Overwrite   *bool    `json:"overwrite" yaml:"overwrite" toml:"overwrite"`
	Jobs        *int     `json:"jobs" yaml:"jobs" toml:"jobs"`
	Lint        *bool    `json:"lint" yaml:"lint" toml:"lint"`
	LintCommand *string  `json:"lintCommand" yaml:"lintCommand" toml:"lintCommand"`
	Patterns    []string `json:"patterns" yaml:"patterns" toml:"patterns"`
}

// merge applies the set fields of f over c
func (c *Config) merge(f fileConfig) {
	if f.Destination != nil {
		c.Destination = *f.Destination
	}
	if f.Overwrite != nil {
		c.Overwrite = *f.Overwrite
	}
	if f.Jobs != nil {
		c.Jobs = *f.Jobs
	}
	if f.Lint != nil {
		c.Lint = *f.Lint
	}
	if f.LintCommand != nil {
		c.LintCommand = *f.LintCommand
	}
	if len(f.Patterns) > 0 {
		c.Patterns = f.Patterns
	}
}
