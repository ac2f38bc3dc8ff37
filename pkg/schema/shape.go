// Package schema describes the configuration surface of the external
// markdown lint engine: which rule codes exist, which aliases and tags map
// to them, and what shape each rule's parameter object may take.
//
// The schema is declarative. Adding a new rule or parameter means adding an
// entry to the builtin table in rules.go; no validation logic changes.
package schema

import (
	"fmt"
	"math"
	"strings"
)

// FieldType identifies the expected type of a rule parameter field.
type FieldType int

const (
	// FieldBool is a true/false parameter.
	FieldBool FieldType = iota

	// FieldInt is a whole-number parameter.
	FieldInt

	// FieldString is a free-form string parameter.
	FieldString

	// FieldStringSlice is an ordered sequence of strings.
	FieldStringSlice
)

// String returns a human-readable name for the field type.
func (t FieldType) String() string {
	switch t {
	case FieldBool:
		return "boolean"
	case FieldInt:
		return "integer"
	case FieldString:
		return "string"
	case FieldStringSlice:
		return "list of strings"
	default:
		return "unknown"
	}
}

// Matches reports whether a decoded JSON/YAML value conforms to the field type.
// JSON numbers decode as float64; integers must be whole numbers.
func (t FieldType) Matches(value any) bool {
	switch t {
	case FieldBool:
		_, ok := value.(bool)
		return ok
	case FieldInt:
		switch n := value.(type) {
		case int:
			return true
		case int64:
			return true
		case float64:
			return n == math.Trunc(n)
		default:
			return false
		}
	case FieldString:
		_, ok := value.(string)
		return ok
	case FieldStringSlice:
		return isStringSlice(value)
	default:
		return false
	}
}

// isStringSlice accepts both []string and the []any produced by generic
// JSON/YAML decoding, as long as every element is a string.
func isStringSlice(value any) bool {
	switch seq := value.(type) {
	case []string:
		return true
	case []any:
		for _, elem := range seq {
			if _, ok := elem.(string); !ok {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// FieldSpec describes one parameter field of a rule.
type FieldSpec struct {
	// Name is the field name as it appears in the configuration document.
	Name string

	// Type is the expected value type.
	Type FieldType

	// Required marks fields the rule cannot operate without.
	Required bool

	// Enum restricts a string field to a fixed set of values.
	// Empty means any value is accepted.
	Enum []string

	// Doc is a one-line description used in templates and rule listings.
	Doc string
}

// Describe returns the expected shape of the field for diagnostics,
// e.g. `integer` or `string (one of: atx, setext)`.
func (f FieldSpec) Describe() string {
	if len(f.Enum) == 0 {
		return f.Type.String()
	}
	return fmt.Sprintf("%s (one of: %s)", f.Type.String(), strings.Join(f.Enum, ", "))
}

// AllowsValue reports whether the value satisfies both the field type and
// the enum restriction, if any.
func (f FieldSpec) AllowsValue(value any) bool {
	if !f.Type.Matches(value) {
		return false
	}
	if len(f.Enum) == 0 {
		return true
	}
	str, ok := value.(string)
	if !ok {
		return true
	}
	for _, allowed := range f.Enum {
		if str == allowed {
			return true
		}
	}
	return false
}

// Shape describes the parameter object a rule accepts.
// A rule with no fields accepts only boolean enable/disable values.
type Shape struct {
	Fields []FieldSpec
}

// Field looks up a field spec by name.
func (s Shape) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// HasParams reports whether the rule accepts a parameter object at all.
func (s Shape) HasParams() bool {
	return len(s.Fields) > 0
}

// RequiredFields returns the names of all required fields in declaration order.
func (s Shape) RequiredFields() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// FieldNames returns all field names in declaration order.
func (s Shape) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}
