package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlconf/internal/configloader"
	"github.com/yaklabco/mdlconf/internal/logging"
	"github.com/yaklabco/mdlconf/internal/ui/pretty"
)

const formatJSON = "json"

type validateFlags struct {
	format string
}

// validateReport is the JSON output shape of the validate command.
type validateReport struct {
	Valid      bool     `json:"valid"`
	Path       string   `json:"path,omitempty"`
	LoadedFrom []string `json:"loaded_from,omitempty"`
	Settings   int      `json:"settings"`
	Warnings   []string `json:"warnings,omitempty"`
	Problems   []string `json:"problems,omitempty"`
}

func newValidateCommand(global *globalFlags) *cobra.Command {
	flags := &validateFlags{}

	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a configuration document",
		Long: `Load a configuration document, strip comments, parse it, and check
every key and parameter against the rule schema. All schema problems are
reported together; a document with any problem produces no configuration.

Without a path argument the document is discovered by searching upward
from the current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := global.configPath
			if len(args) == 1 {
				path = args[0]
			}
			return runValidate(cmd, global, flags, path)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text or json")

	return cmd
}

func runValidate(cmd *cobra.Command, global *globalFlags, flags *validateFlags, path string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)
	styles := pretty.NewStyles(pretty.IsColorEnabled(global.color, os.Stdout))

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: path,
		Policy:       unknownRulePolicy(global),
	})
	if err != nil {
		return reportValidateFailure(cmd, flags, styles, err)
	}

	if flags.format == formatJSON {
		return writeJSON(cmd, validateReport{
			Valid:      true,
			Path:       result.Path,
			LoadedFrom: result.LoadedFrom,
			Settings:   result.Config.Len(),
			Warnings:   result.Warnings,
		})
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}

	if result.Path == "" {
		cmd.Println(styles.Success.Render("ok") + "  no configuration found; engine defaults apply")
		return nil
	}

	cmd.Printf("%s  %s  %d rule setting(s)\n",
		styles.Success.Render("ok"),
		styles.FilePath.Render(result.Path),
		result.Config.Len(),
	)
	return nil
}

// reportValidateFailure renders parse and schema failures and converts them
// into the config-error exit signal.
func reportValidateFailure(cmd *cobra.Command, flags *validateFlags, styles *pretty.Styles, err error) error {
	var schemaErr *configloader.SchemaError
	var parseErr *configloader.ParseError

	if flags.format == formatJSON {
		report := validateReport{Valid: false}
		switch {
		case errors.As(err, &schemaErr):
			report.Path = schemaErr.Path
			for _, v := range schemaErr.Violations {
				report.Problems = append(report.Problems, v.String())
			}
		case errors.As(err, &parseErr):
			report.Path = parseErr.Path
			report.Problems = []string{parseErr.Error()}
		default:
			report.Problems = []string{err.Error()}
		}
		if writeErr := writeJSON(cmd, report); writeErr != nil {
			return writeErr
		}
		return ErrConfigInvalid
	}

	switch {
	case errors.As(err, &schemaErr):
		cmd.Print(styles.FormatSchemaError(schemaErr))
		return ErrConfigInvalid
	case errors.As(err, &parseErr):
		cmd.Printf("%s  %s\n", styles.FormatSeverity("error"), parseErr.Error())
		return ErrConfigInvalid
	default:
		return err
	}
}

// unknownRulePolicy maps the --strict flag to a loader policy.
func unknownRulePolicy(global *globalFlags) configloader.UnknownRulePolicy {
	if global.strict {
		return configloader.UnknownRuleError
	}
	return configloader.UnknownRuleWarn
}

// writeJSON writes an indented JSON value to the command's stdout.
func writeJSON(cmd *cobra.Command, value any) error {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	cmd.Println(string(encoded))
	return nil
}
