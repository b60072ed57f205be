package main

import (
	"fmt"
	"os"

	"bennypowers.dev/vss/internal/log"
	"bennypowers.dev/vss/internal/version"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "vue-script-setup",
	Short: "Convert Vue options-object components to <script setup>",
	Long: `vue-script-setup rewrites single-file components that default-export an
options object into the <script setup> form, moving props, emits and the
setup body to the top level.`,
	SilenceUsage:      true,
	PersistentPreRunE: configureOutput,
}

func init() {
	rootCmd.Version = version.GetVersion()

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only print errors")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// configureOutput applies the persistent color and logging flags
func configureOutput(cmd *cobra.Command, _ []string) error {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}
	switch colorMode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return fmt.Errorf("invalid --color value %q (want auto, on or off)", colorMode)
	}

	levelName, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return err
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return err
	}

	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return err
	}
	if quiet {
		level = log.LevelError
	}
	log.SetLevel(level)
	return nil
}

// isTerminal reports whether f is attached to a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
