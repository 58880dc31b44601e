package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File permission for schema round-trips.
const filePerm = 0o644

// LoadFile loads and parses a YAML schema file from the given path.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Schema.
func Parse(data []byte) (*Schema, error) {
	var s Schema

	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&s)

	return &s, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(s *Schema) {
	if s.Version == "" {
		s.Version = "1"
	}

	for i := range s.Nodes {
		n := &s.Nodes[i]
		// A collection always has a builder representation.
		if n.Collection {
			n.Buildable = true
		}
	}
}

// Marshal serializes a Schema to YAML.
func Marshal(s *Schema) ([]byte, error) {
	return yaml.Marshal(s)
}

// WriteFile writes a Schema to the given path.
func WriteFile(s *Schema, path string) error {
	data, err := Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file %s: %w", path, err)
	}

	return nil
}
