// Package convert runs the options-to-setup conversion over a batch of files.
package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"bennypowers.dev/vss/internal/collections"
	"bennypowers.dev/vss/internal/lint"
	"bennypowers.dev/vss/internal/log"
	"bennypowers.dev/vss/internal/script"
	"bennypowers.dev/vss/internal/sfc"
	"golang.org/x/sync/errgroup"
)

// ErrOutputCollision is returned for a file whose output path was already
// claimed by an earlier file of the batch
var ErrOutputCollision = errors.New("output path already used by another file")

// Options control a conversion run
type Options struct {
	Destination string
	Overwrite   bool
	// DryRun converts without writing or linting
	DryRun bool
	// Jobs is the number of concurrent workers; values below 1 mean 1
	Jobs int
	// Linter checks each written file; nil disables linting
	Linter lint.Linter
	// Writer persists output; nil means FSWriter
	Writer Writer
}

func (o Options) writer() Writer {
	if o.Writer == nil {
		return FSWriter{}
	}
	return o.Writer
}

// ConvertFile converts one component. Errors are reported in the Result.
func ConvertFile(ctx context.Context, path string, opts Options) Result {
	result := Result{Path: path}
	fail := func(err error) Result {
		result.Status = Failed
		result.Err = err
		log.Error("%s: %v", path, err)
		return result
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: user-selected input
	if err != nil {
		return fail(fmt.Errorf("failed to read: %w", err))
	}

	component := sfc.Parse(path, string(data))
	if component.Skip() {
		log.Debug("Skipping %s", path)
		result.Status = Skipped
		return result
	}

	block := script.NewBlock(path, component.Script.Content)
	result.Report = block.Run()
	component.Script.Content = block.Content()

	content, err := component.Reconstruct()
	if err != nil {
		return fail(err)
	}
	result.Content = content
	result.Status = Converted

	if opts.DryRun {
		return result
	}

	output := OutputPath(opts.Destination, path, opts.Overwrite)
	if err := opts.writer().WriteFile(output, []byte(content)); err != nil {
		return fail(err)
	}
	result.Output = output

	if opts.Linter != nil {
		if err := opts.Linter.Lint(ctx, output); err != nil {
			log.Warn("Lint failed for %s: %v", output, err)
			result.LintErr = err
		}
	}

	return result
}

// Run converts paths with up to opts.Jobs workers. Results keep the order
// of paths. No per-file error stops the batch; a cancelled context marks
// the files not yet started as failed.
func Run(ctx context.Context, paths []string, opts Options) Summary {
	results := make([]Result, len(paths))
	claimed := collections.NewSet[string]()

	var pending []int
	for i, path := range paths {
		output := filepath.Clean(OutputPath(opts.Destination, path, opts.Overwrite))
		if !opts.DryRun && !claimed.Insert(output) {
			results[i] = Result{Path: path, Status: Failed, Err: fmt.Errorf("%w: %s", ErrOutputCollision, output)}
			log.Error("%s: %v", path, results[i].Err)
			continue
		}
		pending = append(pending, i)
	}

	jobs := max(opts.Jobs, 1)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for _, i := range pending {
		g.Go(func() error {
			results[i] = ConvertFile(gctx, paths[i], opts)
			return nil
		})
	}
	_ = g.Wait()

	return Summary{Results: results}
}
