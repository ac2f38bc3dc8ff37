package pretty_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdlconf/internal/configloader"
	"github.com/yaklabco/mdlconf/internal/ui/pretty"
	"github.com/yaklabco/mdlconf/pkg/config"
	"github.com/yaklabco/mdlconf/pkg/schema"
)

func TestSettingsTable(t *testing.T) {
	t.Parallel()

	cfg := config.New()
	cfg.Set("MD041", config.BoolSetting(false))
	cfg.Set("MD007", config.ParamsSetting(map[string]any{"indent": 2}))

	styles := pretty.NewStyles(false)
	out := styles.SettingsTable(cfg, schema.Default, 0)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Greater(t, len(lines), 3)

	assert.Contains(t, lines[0], "RULE")
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[0], "SETTING")

	// Explicit rules first, in document order.
	assert.Contains(t, lines[2], "MD041")
	assert.Contains(t, lines[2], "disabled")
	assert.Contains(t, lines[3], "MD007")
	assert.Contains(t, lines[3], "indent=2")

	// Unmentioned rules show the inherited default.
	assert.Contains(t, out, "enabled (default)")
	assert.Contains(t, out, "MD001")
	assert.Contains(t, out, "heading-increment")
}

func TestSettingsTable_EmptyRegistry(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	out := styles.SettingsTable(config.New(), schema.NewRegistry(), 0)
	assert.Empty(t, out)
}

func TestSettingsTable_TruncatesToWidth(t *testing.T) {
	t.Parallel()

	cfg := config.New()
	cfg.Set("MD043", config.ParamsSetting(map[string]any{
		"headings": []string{"Introduction", "Installation", "Configuration", "Troubleshooting"},
	}))

	styles := pretty.NewStyles(false)
	out := styles.SettingsTable(cfg, schema.NewRegistry(), 60)

	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.LessOrEqual(t, len(line), 60, "line too wide: %q", line)
	}
	assert.Contains(t, out, "...")
}

func TestSettingsTable_TruncatesWideRunesCleanly(t *testing.T) {
	t.Parallel()

	cfg := config.New()
	cfg.Set("MD026", config.ParamsSetting(map[string]any{
		"punctuation": "。，；：！？、「」『』〜・…‥",
	}))

	styles := pretty.NewStyles(false)
	out := styles.SettingsTable(cfg, schema.NewRegistry(), 50)

	assert.True(t, utf8.ValidString(out), "truncation must not split a rune")
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.LessOrEqual(t, runewidth.StringWidth(line), 50, "line too wide: %q", line)
	}
}

func TestTerminalWidth_NonTerminalFallback(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	assert.Equal(t, 100, pretty.TerminalWidth(&buf))
}

func TestFormatSetting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		setting   config.Setting
		inherited bool
		want      string
	}{
		{"enabled", config.BoolSetting(true), false, "enabled"},
		{"disabled", config.BoolSetting(false), false, "disabled"},
		{"inherited enabled", config.BoolSetting(true), true, "enabled (default)"},
		{"params sorted", config.ParamsSetting(map[string]any{
			"lines_below": 1,
			"lines_above": 1,
		}), false, "lines_above=1, lines_below=1"},
		{"slice param", config.ParamsSetting(map[string]any{
			"allowed_elements": []string{"br", "sub"},
		}), false, "allowed_elements=[br sub]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pretty.FormatSetting(tt.setting, tt.inherited))
		})
	}
}

func TestFormatViolation(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	out := styles.FormatViolation(configloader.Violation{
		Field:    "MD007.indent",
		Message:  "invalid value wide",
		Expected: "integer",
	}, "error")

	assert.Contains(t, out, "error")
	assert.Contains(t, out, "MD007.indent")
	assert.Contains(t, out, "invalid value wide")
	assert.Contains(t, out, "(expected integer)")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestFormatSchemaError(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	err := &configloader.SchemaError{
		Path: ".markdownlint.jsonc",
		Violations: []configloader.Violation{
			{Field: "MD007.indent", Message: "invalid value wide", Expected: "integer"},
			{Field: "default", Message: "default must be a boolean, got string", Expected: "boolean"},
		},
	}

	out := styles.FormatSchemaError(err)
	assert.Contains(t, out, ".markdownlint.jsonc")
	assert.Contains(t, out, "2 problem(s)")
	assert.Contains(t, out, "MD007.indent")
	assert.Contains(t, out, "default must be a boolean")
}

func TestIsColorEnabled(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	assert.True(t, pretty.IsColorEnabled("always", &buf))
	assert.False(t, pretty.IsColorEnabled("never", &buf))
	// A plain writer is never a terminal.
	assert.False(t, pretty.IsColorEnabled("auto", &buf))
}
