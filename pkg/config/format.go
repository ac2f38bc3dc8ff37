package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultKey is the reserved document key holding the global fallback.
const DefaultKey = "default"

// jsonIndent is the indentation unit for JSON document output.
const jsonIndent = "  "

// ToJSON serializes the configuration to document form: a JSON object with
// the "default" key first (when explicitly set) followed by rule settings
// in document order. Parameter object keys are emitted sorted.
func (c *Config) ToJSON() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")

	entries := make([]string, 0, len(c.order)+1)
	if c.DefaultSet {
		entries = append(entries, fmt.Sprintf("%s%q: %t", jsonIndent, DefaultKey, c.Default))
	}
	for _, code := range c.order {
		value, err := encodeSettingJSON(c.Settings[code])
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", code, err)
		}
		entries = append(entries, fmt.Sprintf("%s%q: %s", jsonIndent, code, value))
	}

	buf.WriteString(strings.Join(entries, ",\n"))
	buf.WriteString("\n}\n")
	return buf.Bytes(), nil
}

// ToJSONC serializes the configuration as JSON with a leading comment
// header. The body is identical to ToJSON output.
func (c *Config) ToJSONC(header string) ([]byte, error) {
	body, err := c.ToJSON()
	if err != nil {
		return nil, err
	}
	if header == "" {
		return body, nil
	}

	var buf bytes.Buffer
	for line := range strings.Lines(header) {
		buf.WriteString("// ")
		buf.WriteString(strings.TrimRight(line, "\n"))
		buf.WriteString("\n")
	}
	buf.Write(body)
	return buf.Bytes(), nil
}

// encodeSettingJSON renders one setting in document form: a bare boolean
// or an indented parameter object.
func encodeSettingJSON(setting Setting) (string, error) {
	if setting.IsBool() {
		return fmt.Sprintf("%t", setting.Enabled()), nil
	}

	encoded, err := json.MarshalIndent(setting.Params, jsonIndent, jsonIndent)
	if err != nil {
		return "", fmt.Errorf("marshal params: %w", err)
	}
	return string(encoded), nil
}

// ToYAML serializes the configuration to YAML document form, preserving
// rule order.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	root := &yaml.Node{Kind: yaml.MappingNode}

	appendPair := func(key string, value any) error {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(key); err != nil {
			return fmt.Errorf("encode key %q: %w", key, err)
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(value); err != nil {
			return fmt.Errorf("encode value for %q: %w", key, err)
		}
		root.Content = append(root.Content, keyNode, valueNode)
		return nil
	}

	if c.DefaultSet {
		if err := appendPair(DefaultKey, c.Default); err != nil {
			return nil, err
		}
	}
	for _, code := range c.order {
		setting := c.Settings[code]
		var value any
		if setting.IsBool() {
			value = setting.Enabled()
		} else {
			value = setting.Params
		}
		if err := appendPair(code, value); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(root); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}
	return buf.Bytes(), nil
}
