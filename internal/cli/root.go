// Package cli provides the Cobra command structure for mdlconf.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlconf/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are the persistent flags shared by all subcommands.
type globalFlags struct {
	debug      bool
	configPath string
	color      string
	strict     bool
}

// NewRootCommand creates the root mdlconf command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "mdlconf",
		Short: "Validate and inspect markdownlint configuration documents",
		Long: `mdlconf is a toolkit for markdownlint-style configuration documents
(.markdownlint.jsonc and friends). It parses JSON-with-comments and YAML
settings, validates every rule code and parameter against the engine's
schema, and resolves the effective setting for any rule.

mdlconf never lints markdown itself; that is the lint engine's job. It
makes sure the configuration handed to the engine is sound.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flags.strict, "strict", false,
		"treat unknown rule codes as errors")

	// Add subcommands.
	rootCmd.AddCommand(newValidateCommand(flags))
	rootCmd.AddCommand(newShowCommand(flags))
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(flags.color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
