package main

import (
	"fmt"
	"os"

	"bennypowers.dev/vss/internal/config"
	"bennypowers.dev/vss/internal/convert"
	"bennypowers.dev/vss/internal/lint"
	"bennypowers.dev/vss/internal/log"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert components matching glob patterns or paths",
	Long: `Convert every .vue file matched by the given glob patterns (** is
supported) or paths. Files already using <script setup> are skipped.
Failed files are reported without stopping the batch.`,
	Example: `  vue-script-setup convert "src/**/*.vue"
  vue-script-setup convert src/components -o --lint-cmd "npx eslint --fix"`,
	RunE: runConvert,
}

func init() {
	flags := convertCmd.Flags()
	flags.StringP("destination", "d", config.DefaultDestination, "directory to write converted files under")
	flags.BoolP("overwrite", "o", false, "overwrite source files in place")
	flags.IntP("jobs", "j", 1, "number of files to convert concurrently")
	flags.Bool("lint", true, "check the syntax of each written file")
	flags.String("lint-cmd", "", "command run on each written file, with its path appended")
	flags.String("config", "", "config file (.yaml, .yml, .json or .toml)")
	flags.Bool("dry-run", false, "print converted files instead of writing them")
}

// loadConfig merges config files with the flags set on the command line
func loadConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	flags := cmd.Flags()

	explicit, err := flags.GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	wd, err := os.Getwd()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := config.Load(wd, explicit)
	if err != nil {
		return cfg, err
	}

	if flags.Changed("destination") {
		cfg.Destination, _ = flags.GetString("destination")
	}
	if flags.Changed("overwrite") {
		cfg.Overwrite, _ = flags.GetBool("overwrite")
	}
	if flags.Changed("jobs") {
		cfg.Jobs, _ = flags.GetInt("jobs")
	}
	if flags.Changed("lint") {
		cfg.Lint, _ = flags.GetBool("lint")
	}
	if flags.Changed("lint-cmd") {
		cfg.LintCommand, _ = flags.GetString("lint-cmd")
	}
	if len(args) > 0 {
		cfg.Patterns = args
	}

	return cfg, cfg.Validate()
}

// linterFor builds the linter chain for the configured checks
func linterFor(cfg config.Config) lint.Linter {
	var chain lint.Chain
	if cfg.Lint {
		chain = append(chain, lint.NewSyntaxLinter())
	}
	if cfg.LintCommand != "" {
		chain = append(chain, lint.NewCommandLinter(cfg.LintCommand))
	}
	if len(chain) == 0 {
		return nil
	}
	return chain
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}

	paths, err := convert.DiscoverAll(cfg.Patterns)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		log.Warn("No .vue files matched %v", cfg.Patterns)
		return nil
	}
	log.Debug("Converting %d files with %d jobs", len(paths), max(cfg.Jobs, 1))

	summary := convert.Run(cmd.Context(), paths, convert.Options{
		Destination: cfg.Destination,
		Overwrite:   cfg.Overwrite,
		DryRun:      dryRun,
		Jobs:        cfg.Jobs,
		Linter:      linterFor(cfg),
	})

	out := cmd.OutOrStdout()
	if dryRun {
		for _, r := range summary.Results {
			if r.Status == convert.Converted {
				fmt.Fprintf(out, "// %s\n%s", r.Path, r.Content)
			}
		}
	}

	if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
		summary.Print(out)
	}
	return nil
}
