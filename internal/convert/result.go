package convert

import (
	"bennypowers.dev/vss/internal/script"
)

// Status is the outcome of converting one file
type Status int

const (
	Skipped Status = iota
	Converted
	Failed
)

func (s Status) String() string {
	switch s {
	case Skipped:
		return "skipped"
	case Converted:
		return "converted"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result describes what happened to one source file
type Result struct {
	// Path is the source file
	Path string
	// Output is the file written, empty when nothing was written
	Output string
	// Content is the converted component text
	Content string
	Status  Status
	// Err is set when Status is Failed
	Err error
	// LintErr is set when the written file did not pass the linter
	LintErr error
	// Report lists the pipeline steps that changed the script
	Report script.Report
}
