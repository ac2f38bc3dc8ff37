package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlconf/internal/logging"
	"github.com/yaklabco/mdlconf/pkg/schema"
)

type rulesFlags struct {
	tag    string
	format string
}

// ruleParamInfo represents one schema parameter in JSON output.
type ruleParamInfo struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Required bool     `json:"required,omitempty"`
	Enum     []string `json:"enum,omitempty"`
}

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags,omitempty"`
	Aliases     []string        `json:"aliases,omitempty"`
	Params      []ruleParamInfo `json:"params,omitempty"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List known rules and their parameters",
		Long: `List every rule the schema knows, with its name, description,
tags, and configurable parameters. Documents may reference rules by
code, name, or tag; this is the authoritative list of all three.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			registry := schema.Default

			rules := registry.Rules()
			if flags.tag != "" {
				if !registry.IsTag(flags.tag) {
					return fmt.Errorf("unknown tag %q", flags.tag)
				}
				ids := registry.TagRules(flags.tag)
				rules = make([]schema.Rule, 0, len(ids))
				for _, id := range ids {
					if rule, ok := registry.Get(id); ok {
						rules = append(rules, rule)
					}
				}
			}

			if flags.format == formatJSON {
				return outputRulesJSON(registry, rules)
			}

			logger := logging.NewInteractive()
			logger.Info("known rules", logging.FieldRules, len(rules))

			for _, rule := range rules {
				fields := []any{
					logging.FieldName, rule.Name,
					logging.FieldDescription, rule.Description,
				}
				if len(rule.Tags) > 0 {
					fields = append(fields, logging.FieldTags, strings.Join(rule.Tags, ","))
				}
				if rule.Shape.HasParams() {
					fields = append(fields, logging.FieldParams, strings.Join(rule.Shape.FieldNames(), ","))
				}
				logger.Info(rule.ID, fields...)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.tag, "tag", "", "only list rules carrying this tag")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text or json")

	return cmd
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(registry *schema.Registry, rules []schema.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		info := ruleInfo{
			ID:          rule.ID,
			Name:        rule.Name,
			Description: rule.Description,
			Tags:        rule.Tags,
			Aliases:     registry.AliasesFor(rule.ID),
		}
		for _, field := range rule.Shape.Fields {
			info.Params = append(info.Params, ruleParamInfo{
				Name:     field.Name,
				Type:     field.Type.String(),
				Required: field.Required,
				Enum:     field.Enum,
			})
		}
		infos = append(infos, info)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
