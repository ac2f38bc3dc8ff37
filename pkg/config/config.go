// Package config defines the core configuration document model for mdlconf.
// These types are pure data structures with no dependency on the loader;
// a Config is immutable once the loader has produced it.
package config

import (
	"reflect"
	"slices"
)

// Setting is the configured value for one rule: either a boolean
// (enabled/disabled) or a rule-specific parameter object. The parameter
// form implies the rule is enabled.
type Setting struct {
	// Bool is the boolean form of the setting. Nil when Params is set.
	Bool *bool

	// Params is the parameter-object form. Values are normalized to
	// bool, int, string, or []string by the loader.
	Params map[string]any
}

// BoolSetting returns a Setting in boolean form.
func BoolSetting(enabled bool) Setting {
	return Setting{Bool: &enabled}
}

// ParamsSetting returns a Setting in parameter-object form.
func ParamsSetting(params map[string]any) Setting {
	return Setting{Params: params}
}

// IsBool reports whether the setting is in boolean form.
func (s Setting) IsBool() bool {
	return s.Params == nil
}

// Enabled reports whether the rule is enabled under this setting.
// A parameter object implies enabled; a zero Setting reports true.
func (s Setting) Enabled() bool {
	if s.Params != nil {
		return true
	}
	if s.Bool != nil {
		return *s.Bool
	}
	return true
}

// Param returns a named parameter value, if present.
func (s Setting) Param(name string) (any, bool) {
	v, ok := s.Params[name]
	return v, ok
}

// Int returns a named integer parameter, or fallback if absent.
func (s Setting) Int(name string, fallback int) int {
	if v, ok := s.Params[name].(int); ok {
		return v
	}
	return fallback
}

// String returns a named string parameter, or fallback if absent.
func (s Setting) String(name, fallback string) string {
	if v, ok := s.Params[name].(string); ok {
		return v
	}
	return fallback
}

// StringSlice returns a named string-sequence parameter, or nil if absent.
func (s Setting) StringSlice(name string) []string {
	if v, ok := s.Params[name].([]string); ok {
		return v
	}
	return nil
}

// Equal reports field-for-field equality of two settings.
func (s Setting) Equal(other Setting) bool {
	if s.IsBool() != other.IsBool() {
		return false
	}
	if s.IsBool() {
		return s.Enabled() == other.Enabled()
	}
	if len(s.Params) != len(other.Params) {
		return false
	}
	for name, v := range s.Params {
		ov, ok := other.Params[name]
		if !ok || !valuesEqual(v, ov) {
			return false
		}
	}
	return true
}

// valuesEqual compares parameter values. Normalized values are bool, int,
// string, or []string, but unknown-rule passthrough keeps values as the
// parser produced them, so slices and nested maps must compare by content.
func valuesEqual(a, b any) bool {
	as, aok := a.([]string)
	bs, bok := b.([]string)
	if aok || bok {
		return aok && bok && slices.Equal(as, bs)
	}
	return reflect.DeepEqual(a, b)
}

// clone returns a deep copy of the setting, including passthrough values
// that were never normalized.
func (s Setting) clone() Setting {
	out := Setting{}
	if s.Bool != nil {
		b := *s.Bool
		out.Bool = &b
	}
	if s.Params != nil {
		out.Params = make(map[string]any, len(s.Params))
		for name, v := range s.Params {
			out.Params[name] = cloneValue(v)
		}
	}
	return out
}

// cloneValue deep-copies a parameter value.
func cloneValue(v any) any {
	switch v := v.(type) {
	case []string:
		return slices.Clone(v)
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = cloneValue(elem)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, elem := range v {
			out[k] = cloneValue(elem)
		}
		return out
	default:
		return v
	}
}

// Config is a validated configuration document: an ordered mapping from
// rule code to Setting plus a global default for unlisted rules.
type Config struct {
	// Default is the fallback for rule codes without an explicit setting.
	Default bool

	// DefaultSet records whether the document carried an explicit
	// "default" key. Affects serialization only; resolution always
	// falls back to Default.
	DefaultSet bool

	// Settings maps canonical rule codes to their explicit settings.
	Settings map[string]Setting

	// order holds rule codes in document order for round-trip output.
	order []string
}

// New returns an empty Config with the implicit engine default: all rules
// enabled unless overridden.
func New() *Config {
	return &Config{
		Default:  true,
		Settings: make(map[string]Setting),
	}
}

// Set records an explicit setting for a rule code, preserving first-seen
// document order. Setting an existing code overwrites its value in place.
func (c *Config) Set(ruleCode string, setting Setting) {
	if _, exists := c.Settings[ruleCode]; !exists {
		c.order = append(c.order, ruleCode)
	}
	c.Settings[ruleCode] = setting
}

// Resolve returns the effective setting for a rule code: the explicit
// setting if present, otherwise the global default in boolean form.
// It is total over all rule codes.
func (c *Config) Resolve(ruleCode string) Setting {
	if setting, ok := c.Settings[ruleCode]; ok {
		return setting
	}
	return BoolSetting(c.Default)
}

// Codes returns the explicitly configured rule codes in document order.
func (c *Config) Codes() []string {
	return slices.Clone(c.order)
}

// Len returns the number of explicit rule settings.
func (c *Config) Len() int {
	return len(c.Settings)
}

// Equal reports field-for-field equality of two configurations,
// including document order.
func (c *Config) Equal(other *Config) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.Default != other.Default || c.DefaultSet != other.DefaultSet {
		return false
	}
	if !slices.Equal(c.order, other.order) {
		return false
	}
	if len(c.Settings) != len(other.Settings) {
		return false
	}
	for code, setting := range c.Settings {
		otherSetting, ok := other.Settings[code]
		if !ok || !setting.Equal(otherSetting) {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := &Config{
		Default:    c.Default,
		DefaultSet: c.DefaultSet,
		Settings:   make(map[string]Setting, len(c.Settings)),
		order:      slices.Clone(c.order),
	}
	for code, setting := range c.Settings {
		clone.Settings[code] = setting.clone()
	}
	return clone
}

// Merge returns a copy of base with override's default and explicit
// settings applied on top. Used for extends chains; neither input is
// modified.
func Merge(base, override *Config) *Config {
	if base == nil {
		return override.Clone()
	}
	if override == nil {
		return base.Clone()
	}

	result := base.Clone()
	if override.DefaultSet {
		result.Default = override.Default
		result.DefaultSet = true
	}
	for _, code := range override.order {
		result.Set(code, override.Settings[code].clone())
	}
	return result
}
