package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlconf/internal/configloader"
	"github.com/yaklabco/mdlconf/internal/logging"
	"github.com/yaklabco/mdlconf/internal/ui/pretty"
	"github.com/yaklabco/mdlconf/pkg/schema"
)

type showFlags struct {
	rule   string
	format string
}

// showEntry is one resolved rule setting in JSON output.
type showEntry struct {
	Rule      string         `json:"rule"`
	Name      string         `json:"name,omitempty"`
	Enabled   bool           `json:"enabled"`
	Inherited bool           `json:"inherited"`
	Params    map[string]any `json:"params,omitempty"`
}

func newShowCommand(global *globalFlags) *cobra.Command {
	flags := &showFlags{}

	cmd := &cobra.Command{
		Use:   "show [path]",
		Short: "Show the effective configuration",
		Long: `Load a configuration document and print the setting every rule
resolves to, including rules the document never mentions. Rules absent
from the document inherit the document-wide default.

With --rule, print the resolved setting of a single rule. The rule may
be given by code, alias, or any case variant.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := global.configPath
			if len(args) == 1 {
				path = args[0]
			}
			return runShow(cmd, global, flags, path)
		},
	}

	cmd.Flags().StringVar(&flags.rule, "rule", "", "show a single rule's resolved setting")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text or json")

	return cmd
}

func runShow(cmd *cobra.Command, global *globalFlags, flags *showFlags, path string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)
	styles := pretty.NewStyles(pretty.IsColorEnabled(global.color, os.Stdout))

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: path,
		Policy:       unknownRulePolicy(global),
	})
	if err != nil {
		return reportValidateFailure(cmd, &validateFlags{format: flags.format}, styles, err)
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}

	registry := schema.Default

	if flags.rule != "" {
		return showSingleRule(cmd, flags, result, registry)
	}

	if flags.format == formatJSON {
		entries := make([]showEntry, 0, len(registry.IDs()))
		for _, id := range registry.IDs() {
			entries = append(entries, resolvedEntry(result, registry, id))
		}
		return writeJSON(cmd, entries)
	}

	if result.Path != "" {
		cmd.Println(styles.FilePath.Render(result.Path))
	}
	cmd.Print(styles.SettingsTable(result.Config, registry, pretty.TerminalWidth(os.Stdout)))
	return nil
}

func showSingleRule(cmd *cobra.Command, flags *showFlags, result *configloader.LoadResult, registry *schema.Registry) error {
	id, rule, ok := registry.Resolve(flags.rule)
	if !ok {
		if !schema.IsRuleCode(flags.rule) {
			return fmt.Errorf("unknown rule %q", flags.rule)
		}
		id = strings.ToUpper(flags.rule)
	}

	if flags.format == formatJSON {
		entry := resolvedEntry(result, registry, id)
		entry.Name = rule.Name
		return writeJSON(cmd, entry)
	}

	setting := result.Config.Resolve(id)
	label := id
	if rule.Name != "" {
		label = id + " (" + rule.Name + ")"
	}
	_, explicit := result.Config.Settings[id]
	cmd.Printf("%s: %s\n", label, pretty.FormatSetting(setting, !explicit))
	return nil
}

func resolvedEntry(result *configloader.LoadResult, registry *schema.Registry, id string) showEntry {
	setting := result.Config.Resolve(id)
	_, explicit := result.Config.Settings[id]

	entry := showEntry{
		Rule:      id,
		Enabled:   setting.Enabled(),
		Inherited: !explicit,
		Params:    setting.Params,
	}
	if rule, ok := registry.Get(id); ok {
		entry.Name = rule.Name
	}
	return entry
}
