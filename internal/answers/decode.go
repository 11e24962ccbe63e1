package answers

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the document encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// FormatForPath picks the encoding from a file extension. Anything that is
// not .json is treated as YAML (JSON is a YAML subset, so this errs on the
// permissive side only for misnamed files).
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Parse validates raw document bytes against the embedded schema and
// decodes them into a Document.
func Parse(data []byte, format Format) (*Document, error) {
	// First decode into plain values for schema validation.
	var raw any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse answer set: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse answer set: %w", err)
		}
	}

	if err := Validate(raw); err != nil {
		return nil, err
	}

	var doc Document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode answer set: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode answer set: %w", err)
		}
	}

	return &doc, nil
}

// LoadFile reads, validates and decodes an answer-set document from disk.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load answer set: %w", err)
	}
	return Parse(data, FormatForPath(path))
}
