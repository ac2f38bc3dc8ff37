package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdlconf/pkg/schema"
)

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		key    string
		wantID string
		found  bool
	}{
		{"canonical code", "MD013", "MD013", true},
		{"lower-case code", "md013", "MD013", true},
		{"mixed-case code", "Md013", "MD013", true},
		{"rule name alias", "line-length", "MD013", true},
		{"legacy alias", "single-h1", "MD025", true},
		{"legacy alias first-line", "first-line-h1", "MD041", true},
		{"well-formed but unknown", "MD999", "", false},
		{"not a rule at all", "banana", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			id, rule, found := schema.Default.Resolve(tt.key)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.wantID, id)
				assert.Equal(t, tt.wantID, rule.ID)
			}
		})
	}
}

func TestRegistry_Tags(t *testing.T) {
	t.Parallel()

	assert.True(t, schema.Default.IsTag("whitespace"))
	assert.True(t, schema.Default.IsTag("headings"))
	assert.False(t, schema.Default.IsTag("MD013"))

	members := schema.Default.TagRules("whitespace")
	require.NotEmpty(t, members)
	assert.Contains(t, members, "MD009")
	assert.Contains(t, members, "MD010")
	assert.IsIncreasing(t, members)

	assert.Nil(t, schema.Default.TagRules("no-such-tag"))
}

func TestRegistry_Rules_SortedAndComplete(t *testing.T) {
	t.Parallel()

	rules := schema.Default.Rules()
	require.NotEmpty(t, rules)

	ids := make([]string, 0, len(rules))
	for _, rule := range rules {
		assert.True(t, schema.IsRuleCode(rule.ID), "rule ID %q", rule.ID)
		assert.NotEmpty(t, rule.Name, "rule %s has no name", rule.ID)
		assert.NotEmpty(t, rule.Description, "rule %s has no description", rule.ID)
		ids = append(ids, rule.ID)
	}
	assert.IsIncreasing(t, ids)
	assert.Equal(t, ids, schema.Default.IDs())
}

func TestRegistry_AliasesFor(t *testing.T) {
	t.Parallel()

	aliases := schema.Default.AliasesFor("MD025")
	assert.Contains(t, aliases, "single-title")
	assert.Contains(t, aliases, "single-h1")
}

func TestIsRuleCode(t *testing.T) {
	t.Parallel()

	assert.True(t, schema.IsRuleCode("MD013"))
	assert.True(t, schema.IsRuleCode("md999"))
	assert.True(t, schema.IsRuleCode("mD001"))
	assert.False(t, schema.IsRuleCode("MD13"))
	assert.False(t, schema.IsRuleCode("MD0133"))
	assert.False(t, schema.IsRuleCode("XX013"))
	assert.False(t, schema.IsRuleCode("line-length"))
	assert.False(t, schema.IsRuleCode(""))
}

func TestNewRegistry_Isolated(t *testing.T) {
	t.Parallel()

	registry := schema.NewRegistry()
	registry.Register(schema.Rule{ID: "MD900", Name: "custom-rule", Tags: []string{"custom"}})
	registry.RegisterAlias("legacy-custom", "MD900")

	id, _, found := registry.Resolve("custom-rule")
	assert.True(t, found)
	assert.Equal(t, "MD900", id)

	id, _, found = registry.Resolve("legacy-custom")
	assert.True(t, found)
	assert.Equal(t, "MD900", id)

	// The builtin table belongs to Default only.
	_, _, found = registry.Resolve("MD013")
	assert.False(t, found)

	assert.Equal(t, []string{"MD900"}, registry.TagRules("custom"))
}
