package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdlconf/pkg/config"
	"github.com/yaklabco/mdlconf/pkg/schema"
)

func TestStarterConfig(t *testing.T) {
	t.Parallel()

	cfg := config.StarterConfig()

	assert.True(t, cfg.Default)
	assert.True(t, cfg.DefaultSet)
	assert.False(t, cfg.Resolve("MD013").Enabled())
	assert.False(t, cfg.Resolve("MD041").Enabled())
	assert.Equal(t, 2, cfg.Resolve("MD007").Int("indent", 0))
	assert.Equal(t, []string{"br", "sub", "sup"}, cfg.Resolve("MD033").StringSlice("allowed_elements"))

	// Every starter code is a rule the schema knows.
	for _, code := range cfg.Codes() {
		_, ok := schema.Default.Get(code)
		assert.True(t, ok, "starter configures unknown rule %s", code)
	}
}

func TestGenerateTemplate_JSONC(t *testing.T) {
	t.Parallel()

	out, err := config.GenerateTemplate(config.TemplateOptions{Format: "jsonc"})
	require.NoError(t, err)

	text := string(out)
	assert.True(t, strings.HasPrefix(text, "// "))
	assert.Contains(t, text, `"default": true`)
	assert.Contains(t, text, `"MD013": false`)
}

func TestGenerateTemplate_Full(t *testing.T) {
	t.Parallel()

	out, err := config.GenerateTemplate(config.TemplateOptions{Full: true, Format: "jsonc"})
	require.NoError(t, err)

	text := string(out)
	for _, rule := range schema.Default.Rules() {
		assert.Contains(t, text, `"`+rule.ID+`"`, "full template missing %s", rule.ID)
	}
	// Parameter docs appear as comments.
	assert.Contains(t, text, "// line-length")
	assert.Contains(t, text, "line_length (integer)")
}

func TestGenerateTemplate_YAML(t *testing.T) {
	t.Parallel()

	out, err := config.GenerateTemplate(config.TemplateOptions{Format: "yaml"})
	require.NoError(t, err)
	assert.Contains(t, string(out), "default: true")
	assert.NotContains(t, string(out), "//")
}

func TestGenerateTemplate_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := config.GenerateTemplate(config.TemplateOptions{Format: "toml"})
	assert.Error(t, err)
}
