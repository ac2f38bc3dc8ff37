package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yaklabco/mdlconf/pkg/schema"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full documents every known rule instead of the starter set.
	Full bool

	// Format is the output format: "jsonc", "json", or "yaml".
	Format string

	// Header overrides the default header comment. Ignored for "json".
	Header string
}

// defaultHeader is the comment prepended to generated JSONC templates.
const defaultHeader = `markdownlint settings
Rules not listed here fall back to the "default" value.`

// StarterConfig returns the starter configuration used by minimal
// templates: the settings this toolkit was originally built around,
// tuned for Korean-language markdown documents with frontmatter.
func StarterConfig() *Config {
	cfg := New()
	cfg.Default = true
	cfg.DefaultSet = true

	cfg.Set("MD007", ParamsSetting(map[string]any{"indent": 2}))
	// Long lines are common in Korean prose; length is not enforced.
	cfg.Set("MD013", BoolSetting(false))
	cfg.Set("MD022", ParamsSetting(map[string]any{"lines_above": 1, "lines_below": 1}))
	cfg.Set("MD024", ParamsSetting(map[string]any{"siblings_only": true}))
	cfg.Set("MD025", ParamsSetting(map[string]any{"front_matter_title": "^\\s*title\\s*[:=]"}))
	cfg.Set("MD026", ParamsSetting(map[string]any{"punctuation": ".,;:!?。，；：！？"}))
	cfg.Set("MD033", ParamsSetting(map[string]any{"allowed_elements": []string{"br", "sub", "sup"}}))
	// Frontmatter occupies the first line; a leading heading is not required.
	cfg.Set("MD041", BoolSetting(false))

	return cfg
}

// GenerateTemplate produces a configuration document for `mdlconf init`.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	header := opts.Header
	if header == "" {
		header = defaultHeader
	}

	if opts.Full {
		if opts.Format == "yaml" || opts.Format == "json" {
			cfg := fullConfig()
			return serializeTemplate(cfg, opts.Format, header)
		}
		return fullJSONCTemplate(header), nil
	}

	return serializeTemplate(StarterConfig(), opts.Format, header)
}

// serializeTemplate renders a config in the requested format.
func serializeTemplate(cfg *Config, format, header string) ([]byte, error) {
	switch format {
	case "yaml":
		return cfg.ToYAML()
	case "json":
		return cfg.ToJSON()
	case "jsonc", "":
		return cfg.ToJSONC(header)
	default:
		return nil, fmt.Errorf("unsupported template format %q", format)
	}
}

// fullConfig returns a config listing every known rule as enabled.
func fullConfig() *Config {
	cfg := New()
	cfg.DefaultSet = true
	for _, rule := range schema.Default.Rules() {
		cfg.Set(rule.ID, BoolSetting(true))
	}
	return cfg
}

// fullJSONCTemplate renders every known rule with its description and
// parameter fields as comments.
func fullJSONCTemplate(header string) []byte {
	var buf bytes.Buffer
	for line := range strings.Lines(header) {
		buf.WriteString("// ")
		buf.WriteString(strings.TrimRight(line, "\n"))
		buf.WriteString("\n")
	}
	buf.WriteString("{\n")
	fmt.Fprintf(&buf, "  %q: true", DefaultKey)

	for _, rule := range schema.Default.Rules() {
		buf.WriteString(",\n\n")
		fmt.Fprintf(&buf, "  // %s: %s\n", rule.Name, rule.Description)
		for _, field := range rule.Shape.Fields {
			fmt.Fprintf(&buf, "  //   %s (%s): %s\n", field.Name, field.Describe(), field.Doc)
		}
		fmt.Fprintf(&buf, "  %q: true", rule.ID)
	}

	buf.WriteString("\n}\n")
	return buf.Bytes()
}
