package configloader

import (
	"fmt"
	"math"
	"strings"

	"github.com/yaklabco/mdlconf/pkg/config"
	"github.com/yaklabco/mdlconf/pkg/schema"
)

// UnknownRulePolicy controls how well-formed but unrecognized rule codes
// are treated. The engine grows new rules over time, so documents may
// legitimately configure codes this toolkit does not know yet.
type UnknownRulePolicy int

const (
	// UnknownRuleWarn passes unknown codes through with a warning.
	UnknownRuleWarn UnknownRulePolicy = iota

	// UnknownRuleError rejects unknown codes as schema violations.
	UnknownRuleError
)

// Violation describes one schema problem in a configuration document.
type Violation struct {
	// Field is the path to the offending key (e.g. "MD013.line_length").
	Field string

	// Value is the offending value.
	Value any

	// Expected describes the shape the value should have had.
	Expected string

	// Message describes the problem.
	Message string
}

// String renders the violation as a single diagnostic line.
func (v Violation) String() string {
	var parts []string
	if v.Field != "" {
		parts = append(parts, v.Field)
	}
	parts = append(parts, v.Message)
	if v.Expected != "" {
		parts = append(parts, "expected "+v.Expected)
	}
	return strings.Join(parts, ": ")
}

// SchemaError reports every schema violation found in a document.
// Violations are collected before failing; a document never produces a
// partial configuration.
type SchemaError struct {
	// Path is the config file containing the violations, if known.
	Path string

	// Violations lists every problem found, in document order.
	Violations []Violation
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	prefix := "invalid configuration"
	if e.Path != "" {
		prefix = e.Path + ": invalid configuration"
	}
	lines := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		lines = append(lines, v.String())
	}
	return fmt.Sprintf("%s (%d problem(s)): %s", prefix, len(e.Violations), strings.Join(lines, "; "))
}

// validation accumulates findings while walking a raw document.
type validation struct {
	registry   *schema.Registry
	policy     UnknownRulePolicy
	violations []Violation
	warnings   []Violation
}

func (check *validation) violatef(field string, value any, expected, format string, args ...any) {
	check.violations = append(check.violations, Violation{
		Field:    field,
		Value:    value,
		Expected: expected,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (check *validation) warnf(field string, value any, format string, args ...any) {
	check.warnings = append(check.warnings, Violation{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	})
}

// validate checks every entry of a raw document against the rule schema
// and produces a normalized Config. All violations are collected; on any
// violation the returned config is nil and the error is a *SchemaError.
// Warnings are returned in both outcomes.
func validate(doc *rawDocument, registry *schema.Registry, policy UnknownRulePolicy) (*config.Config, []Violation, error) {
	check := &validation{registry: registry, policy: policy}
	cfg := config.New()

	for _, entry := range doc.entries {
		check.applyEntry(cfg, entry)
	}

	if len(check.violations) > 0 {
		return nil, check.warnings, &SchemaError{Path: doc.path, Violations: check.violations}
	}
	return cfg, check.warnings, nil
}

// Reserved document keys that are not rule codes.
const (
	extendsKey   = "extends"
	schemaRefKey = "$schema"
)

// applyEntry validates one top-level key/value pair and applies it to cfg.
func (check *validation) applyEntry(cfg *config.Config, entry rawEntry) {
	switch entry.key {
	case config.DefaultKey:
		enabled, ok := entry.value.(bool)
		if !ok {
			check.violatef(config.DefaultKey, entry.value, "boolean",
				"default must be a boolean, got %T", entry.value)
			return
		}
		if cfg.DefaultSet {
			check.warnf(config.DefaultKey, entry.value, "duplicate %q key; using last value", config.DefaultKey)
		}
		cfg.Default = enabled
		cfg.DefaultSet = true
		return

	case extendsKey:
		// Resolved by the loader before validation; here only the type
		// is checked so a malformed extends is reported like any field.
		if _, ok := entry.value.(string); !ok {
			check.violatef(extendsKey, entry.value, "string", "extends must be a path string, got %T", entry.value)
		}
		return

	case schemaRefKey:
		// Editor affordance; carries no configuration.
		return
	}

	if id, rule, found := check.registry.Resolve(entry.key); found {
		check.applyRule(cfg, entry, id, rule)
		return
	}

	if check.registry.IsTag(entry.key) {
		check.applyTag(cfg, entry)
		return
	}

	if schema.IsRuleCode(entry.key) {
		check.applyUnknownRule(cfg, entry)
		return
	}

	check.violatef(entry.key, entry.value, "",
		"unrecognized key: not a rule code, alias, or tag")
}

// applyRule validates a known rule's value against its shape.
func (check *validation) applyRule(cfg *config.Config, entry rawEntry, id string, rule schema.Rule) {
	if _, exists := cfg.Settings[id]; exists {
		check.warnf(entry.key, entry.value,
			"duplicate configuration for %s; using last value", id)
	}

	switch value := entry.value.(type) {
	case bool:
		cfg.Set(id, config.BoolSetting(value))

	case nil:
		// Explicit null disables the rule.
		cfg.Set(id, config.BoolSetting(false))

	case map[string]any:
		if !rule.Shape.HasParams() {
			check.violatef(entry.key, entry.value, "boolean",
				"%s takes no parameters", id)
			return
		}
		params, ok := check.checkParams(entry.key, rule.Shape, value)
		if ok {
			cfg.Set(id, config.ParamsSetting(params))
		}

	default:
		check.violatef(entry.key, entry.value, "boolean or parameter object",
			"unsupported value of type %T", entry.value)
	}
}

// checkParams validates and normalizes a parameter object against a shape.
// Returns ok=false when any field violated the shape.
func (check *validation) checkParams(key string, shape schema.Shape, raw map[string]any) (map[string]any, bool) {
	params := make(map[string]any, len(raw))
	valid := true

	for name, value := range raw {
		field, known := shape.Field(name)
		if !known {
			check.violatef(key+"."+name, value, "one of: "+strings.Join(shape.FieldNames(), ", "),
				"unknown parameter")
			valid = false
			continue
		}
		if !field.AllowsValue(value) {
			check.violatef(key+"."+name, value, field.Describe(),
				"invalid value %v", value)
			valid = false
			continue
		}
		params[name] = normalizeValue(value)
	}

	for _, name := range shape.RequiredFields() {
		if _, present := raw[name]; !present {
			field, _ := shape.Field(name)
			check.violatef(key+"."+name, nil, field.Describe(),
				"missing required parameter %q", name)
			valid = false
		}
	}

	if !valid {
		return nil, false
	}
	return params, true
}

// applyTag expands a tag key to boolean settings for its member rules.
func (check *validation) applyTag(cfg *config.Config, entry rawEntry) {
	enabled, ok := entry.value.(bool)
	if !ok {
		check.violatef(entry.key, entry.value, "boolean",
			"tags accept only booleans, got %T", entry.value)
		return
	}
	for _, id := range check.registry.TagRules(entry.key) {
		cfg.Set(id, config.BoolSetting(enabled))
	}
}

// applyUnknownRule handles a syntactically valid but unrecognized rule code
// according to the configured policy. When passed through, parameter values
// are normalized generically since no shape is available.
func (check *validation) applyUnknownRule(cfg *config.Config, entry rawEntry) {
	if check.policy == UnknownRuleError {
		check.violatef(entry.key, entry.value, "",
			"unknown rule code (strict mode)")
		return
	}

	check.warnf(entry.key, entry.value,
		"unknown rule code; passing through unvalidated")

	// Fold to the canonical upper-case form so resolution stays
	// case-insensitive for unknown codes too.
	id := strings.ToUpper(entry.key)

	switch value := entry.value.(type) {
	case bool:
		cfg.Set(id, config.BoolSetting(value))
	case nil:
		cfg.Set(id, config.BoolSetting(false))
	case map[string]any:
		params := make(map[string]any, len(value))
		for name, fieldValue := range value {
			params[name] = normalizeValue(fieldValue)
		}
		cfg.Set(id, config.ParamsSetting(params))
	default:
		check.violatef(entry.key, entry.value, "boolean or parameter object",
			"unsupported value of type %T", entry.value)
	}
}

// normalizeValue converts decoder output to the canonical in-memory types:
// whole float64 values become int, homogeneous []any become []string.
func normalizeValue(value any) any {
	switch v := value.(type) {
	case float64:
		if v == math.Trunc(v) {
			return int(v)
		}
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, elem := range v {
			str, ok := elem.(string)
			if !ok {
				return value
			}
			out = append(out, str)
		}
		return out
	default:
		return value
	}
}
