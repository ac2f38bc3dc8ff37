package configloader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseError reports that the source text is not a well-formed document
// after comment stripping. It is fatal to the load operation.
type ParseError struct {
	// Path is the config file containing the error, if known.
	Path string

	// Line is the 1-based line number of the error, 0 if unknown.
	Line int

	// Err is the underlying parser error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: parse config: %v", e.Path, e.Line, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s: parse config: %v", e.Path, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("line %d: parse config: %v", e.Line, e.Err)
	default:
		return fmt.Sprintf("parse config: %v", e.Err)
	}
}

// Unwrap returns the underlying parser error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// rawEntry is one top-level key/value pair in document order.
type rawEntry struct {
	key   string
	value any
}

// rawDocument is a parsed but not yet validated configuration document.
// Entries keep the order they appeared in the source.
type rawDocument struct {
	path    string
	entries []rawEntry
}

// parseJSONDocument parses stripped JSON content into a rawDocument,
// preserving top-level key order via a token walk.
func parseJSONDocument(content []byte, path string) (*rawDocument, error) {
	dec := json.NewDecoder(bytes.NewReader(content))

	open, err := dec.Token()
	if err != nil {
		return nil, jsonParseError(content, dec, path, err)
	}
	if delim, ok := open.(json.Delim); !ok || delim != '{' {
		return nil, jsonParseError(content, dec, path, fmt.Errorf("top-level value must be an object, got %v", open))
	}

	doc := &rawDocument{path: path}
	for dec.More() {
		keyToken, err := dec.Token()
		if err != nil {
			return nil, jsonParseError(content, dec, path, err)
		}
		key, ok := keyToken.(string)
		if !ok {
			return nil, jsonParseError(content, dec, path, fmt.Errorf("object key must be a string, got %v", keyToken))
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, jsonParseError(content, dec, path, err)
		}
		doc.entries = append(doc.entries, rawEntry{key: key, value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, jsonParseError(content, dec, path, err)
	}
	// Anything after the closing brace is malformed.
	if tok, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, jsonParseError(content, dec, path, err)
		}
		return nil, jsonParseError(content, dec, path, fmt.Errorf("unexpected trailing content: %v", tok))
	}

	return doc, nil
}

// jsonParseError wraps a json decoder error with positional context.
func jsonParseError(content []byte, dec *json.Decoder, path string, err error) error {
	return &ParseError{
		Path: path,
		Line: lineAtOffset(content, dec.InputOffset()),
		Err:  err,
	}
}

// lineAtOffset returns the 1-based line number containing byte offset.
func lineAtOffset(content []byte, offset int64) int {
	if offset < 0 {
		return 0
	}
	if offset > int64(len(content)) {
		offset = int64(len(content))
	}
	return bytes.Count(content[:offset], []byte{'\n'}) + 1
}

// parseYAMLDocument parses YAML content into a rawDocument, preserving
// top-level key order by walking the node tree.
func parseYAMLDocument(content []byte, path string) (*rawDocument, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		// An empty document is a valid, empty configuration.
		return &rawDocument{path: path}, nil
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, &ParseError{
			Path: path,
			Line: mapping.Line,
			Err:  errors.New("top-level value must be a mapping"),
		}
	}

	doc := &rawDocument{path: path}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode := mapping.Content[i]
		valueNode := mapping.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return nil, &ParseError{Path: path, Line: keyNode.Line, Err: err}
		}
		var value any
		if err := valueNode.Decode(&value); err != nil {
			return nil, &ParseError{Path: path, Line: valueNode.Line, Err: err}
		}
		doc.entries = append(doc.entries, rawEntry{key: key, value: value})
	}

	return doc, nil
}
