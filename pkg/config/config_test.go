package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdlconf/pkg/config"
)

func TestSetting_Forms(t *testing.T) {
	t.Parallel()

	enabled := config.BoolSetting(true)
	assert.True(t, enabled.IsBool())
	assert.True(t, enabled.Enabled())

	disabled := config.BoolSetting(false)
	assert.True(t, disabled.IsBool())
	assert.False(t, disabled.Enabled())

	params := config.ParamsSetting(map[string]any{"indent": 2})
	assert.False(t, params.IsBool())
	assert.True(t, params.Enabled(), "parameter form implies enabled")

	var zero config.Setting
	assert.True(t, zero.IsBool())
	assert.True(t, zero.Enabled(), "zero setting reports enabled")
}

func TestSetting_Accessors(t *testing.T) {
	t.Parallel()

	setting := config.ParamsSetting(map[string]any{
		"indent":           4,
		"style":            "atx",
		"allowed_elements": []string{"br", "sub"},
	})

	assert.Equal(t, 4, setting.Int("indent", 2))
	assert.Equal(t, 2, setting.Int("missing", 2))
	assert.Equal(t, "atx", setting.String("style", "consistent"))
	assert.Equal(t, "consistent", setting.String("missing", "consistent"))
	assert.Equal(t, []string{"br", "sub"}, setting.StringSlice("allowed_elements"))
	assert.Nil(t, setting.StringSlice("missing"))

	value, ok := setting.Param("indent")
	assert.True(t, ok)
	assert.Equal(t, 4, value)
	_, ok = setting.Param("missing")
	assert.False(t, ok)
}

func TestSetting_Equal(t *testing.T) {
	t.Parallel()

	assert.True(t, config.BoolSetting(true).Equal(config.BoolSetting(true)))
	assert.False(t, config.BoolSetting(true).Equal(config.BoolSetting(false)))
	assert.False(t, config.BoolSetting(true).Equal(config.ParamsSetting(map[string]any{"a": 1})))

	a := config.ParamsSetting(map[string]any{"indent": 2, "names": []string{"Go"}})
	b := config.ParamsSetting(map[string]any{"indent": 2, "names": []string{"Go"}})
	c := config.ParamsSetting(map[string]any{"indent": 2, "names": []string{"Rust"}})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(config.ParamsSetting(map[string]any{"indent": 2})))
}

func TestSetting_Equal_PassthroughValues(t *testing.T) {
	t.Parallel()

	// Unknown-rule settings keep parser-shaped values: mixed arrays stay
	// []any and nested objects stay map[string]any. Equality must compare
	// them by content, not identity.
	build := func() config.Setting {
		return config.ParamsSetting(map[string]any{
			"thresholds": []any{1, 2},
			"options":    map[string]any{"mode": "loose", "depth": 3},
		})
	}

	assert.True(t, build().Equal(build()))

	different := config.ParamsSetting(map[string]any{
		"thresholds": []any{1, 3},
		"options":    map[string]any{"mode": "loose", "depth": 3},
	})
	assert.False(t, build().Equal(different))
}

func TestConfig_Resolve_IsTotal(t *testing.T) {
	t.Parallel()

	cfg := config.New()
	cfg.Set("MD013", config.BoolSetting(false))
	cfg.Set("MD007", config.ParamsSetting(map[string]any{"indent": 2}))

	assert.False(t, cfg.Resolve("MD013").Enabled())
	assert.Equal(t, 2, cfg.Resolve("MD007").Int("indent", 4))

	// Unlisted codes fall back to the document default.
	assert.True(t, cfg.Resolve("MD001").Enabled())
	assert.True(t, cfg.Resolve("MD999").Enabled())

	cfg.Default = false
	assert.False(t, cfg.Resolve("MD001").Enabled())
	assert.False(t, cfg.Resolve("MD013").Enabled(), "explicit setting still wins")
	assert.True(t, cfg.Resolve("MD007").Enabled())
}

func TestConfig_Set_PreservesOrder(t *testing.T) {
	t.Parallel()

	cfg := config.New()
	cfg.Set("MD041", config.BoolSetting(false))
	cfg.Set("MD013", config.BoolSetting(false))
	cfg.Set("MD007", config.ParamsSetting(map[string]any{"indent": 2}))

	assert.Equal(t, []string{"MD041", "MD013", "MD007"}, cfg.Codes())
	assert.Equal(t, 3, cfg.Len())

	// Overwriting keeps the original position.
	cfg.Set("MD013", config.BoolSetting(true))
	assert.Equal(t, []string{"MD041", "MD013", "MD007"}, cfg.Codes())
	assert.True(t, cfg.Resolve("MD013").Enabled())
}

func TestConfig_Equal(t *testing.T) {
	t.Parallel()

	build := func() *config.Config {
		cfg := config.New()
		cfg.DefaultSet = true
		cfg.Set("MD013", config.BoolSetting(false))
		cfg.Set("MD007", config.ParamsSetting(map[string]any{"indent": 2}))
		return cfg
	}

	assert.True(t, build().Equal(build()))

	differentDefault := build()
	differentDefault.Default = false
	assert.False(t, build().Equal(differentDefault))

	differentOrder := config.New()
	differentOrder.DefaultSet = true
	differentOrder.Set("MD007", config.ParamsSetting(map[string]any{"indent": 2}))
	differentOrder.Set("MD013", config.BoolSetting(false))
	assert.False(t, build().Equal(differentOrder), "document order is significant")

	var nilConfig *config.Config
	assert.False(t, build().Equal(nilConfig))
	assert.True(t, nilConfig.Equal(nil))
}

func TestConfig_Clone_IsDeep(t *testing.T) {
	t.Parallel()

	original := config.New()
	original.Set("MD033", config.ParamsSetting(map[string]any{
		"allowed_elements": []string{"br"},
	}))

	clone := original.Clone()
	require.True(t, original.Equal(clone))

	clone.Set("MD013", config.BoolSetting(false))
	clone.Resolve("MD033").StringSlice("allowed_elements")[0] = "sub"

	assert.Equal(t, 1, original.Len())
	assert.Equal(t, []string{"br"}, original.Resolve("MD033").StringSlice("allowed_elements"))
}

func TestConfig_Clone_IsDeep_PassthroughValues(t *testing.T) {
	t.Parallel()

	original := config.New()
	original.Set("MD999", config.ParamsSetting(map[string]any{
		"thresholds": []any{1, 2},
		"options":    map[string]any{"mode": "loose"},
	}))

	clone := original.Clone()
	require.True(t, original.Equal(clone))

	thresholds, _ := clone.Resolve("MD999").Param("thresholds")
	thresholds.([]any)[0] = 99
	options, _ := clone.Resolve("MD999").Param("options")
	options.(map[string]any)["mode"] = "strict"

	got, _ := original.Resolve("MD999").Param("thresholds")
	assert.Equal(t, []any{1, 2}, got)
	got, _ = original.Resolve("MD999").Param("options")
	assert.Equal(t, map[string]any{"mode": "loose"}, got)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := config.New()
	base.Default = false
	base.DefaultSet = true
	base.Set("MD013", config.ParamsSetting(map[string]any{"line_length": 120}))
	base.Set("MD041", config.BoolSetting(false))

	override := config.New()
	override.Set("MD013", config.BoolSetting(false))
	override.Set("MD007", config.ParamsSetting(map[string]any{"indent": 2}))

	merged := config.Merge(base, override)

	// Override wins per key; untouched base settings survive.
	assert.False(t, merged.Resolve("MD013").Enabled())
	assert.False(t, merged.Resolve("MD041").Enabled())
	assert.Equal(t, 2, merged.Resolve("MD007").Int("indent", 0))

	// Override never set a default, so the base default holds.
	assert.False(t, merged.Default)
	assert.True(t, merged.DefaultSet)

	// Inputs are untouched.
	_, stillThere := base.Resolve("MD013").Param("line_length")
	assert.True(t, stillThere)
	assert.Equal(t, 2, override.Len())
}

func TestMerge_OverrideDefaultWins(t *testing.T) {
	t.Parallel()

	base := config.New()
	base.Default = false
	base.DefaultSet = true

	override := config.New()
	override.Default = true
	override.DefaultSet = true

	merged := config.Merge(base, override)
	assert.True(t, merged.Default)
}

func TestMerge_NilInputs(t *testing.T) {
	t.Parallel()

	cfg := config.New()
	cfg.Set("MD013", config.BoolSetting(false))

	assert.True(t, config.Merge(nil, cfg).Equal(cfg))
	assert.True(t, config.Merge(cfg, nil).Equal(cfg))
}
