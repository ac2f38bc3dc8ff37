package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlconf/internal/logging"
	"github.com/yaklabco/mdlconf/pkg/config"
	"github.com/yaklabco/mdlconf/pkg/fsutil"
)

type initFlags struct {
	output string
	format string
	full   bool
	force  bool
	stdout bool
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Long: `Write a commented starter configuration to the current directory.
The starter enables all rules and tunes the handful that need it; --full
instead documents every known rule. An existing file is never replaced
unless --force is given, in which case a backup is kept beside it.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", ".markdownlint.jsonc", "path of the file to write")
	cmd.Flags().StringVar(&flags.format, "format", "jsonc", "template format: jsonc, json, or yaml")
	cmd.Flags().BoolVar(&flags.full, "full", false, "document every known rule")
	cmd.Flags().BoolVar(&flags.force, "force", false, "replace an existing file, keeping a backup")
	cmd.Flags().BoolVar(&flags.stdout, "stdout", false, "print the template instead of writing a file")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	content, err := config.GenerateTemplate(config.TemplateOptions{
		Full:   flags.full,
		Format: flags.format,
	})
	if err != nil {
		return err
	}

	if flags.stdout {
		cmd.Print(string(content))
		return nil
	}

	if _, statErr := os.Stat(flags.output); statErr == nil {
		if !flags.force {
			return fmt.Errorf("%s already exists; pass --force to replace it", flags.output)
		}
		created, backupErr := fsutil.CreateBackup(ctx, flags.output)
		if backupErr != nil {
			return fmt.Errorf("backing up %s: %w", flags.output, backupErr)
		}
		if created {
			logger.Info("kept backup of existing file",
				logging.FieldPath, fsutil.BackupPath(flags.output))
		}
	}

	if err := fsutil.WriteAtomic(ctx, flags.output, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("writing %s: %w", flags.output, err)
	}

	logger.Info("wrote configuration", logging.FieldPath, flags.output)
	return nil
}
