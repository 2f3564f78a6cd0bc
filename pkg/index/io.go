package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ReadClassPathSpec reads a classpath description.  Files ending in .yaml or
// .yml are read as YAML, anything else as JSON.
func ReadClassPathSpec(filename string) (*ClassPathSpec, error) {
	var spec ClassPathSpec
	if err := readFile(filename, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

// ReadUnitSpec reads a compilation unit description, as YAML or JSON.
func ReadUnitSpec(filename string) (*UnitSpec, error) {
	var spec UnitSpec
	if err := readFile(filename, &spec); err != nil {
		return nil, err
	}
	if spec.File == "" {
		spec.File = filename
	}
	return &spec, nil
}

// WriteJSONFile writes the spec as indented JSON.
func WriteJSONFile(filename string, spec interface{}) error {
	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

func readFile(filename string, v interface{}) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	switch filepath.Ext(filename) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("unmarshal yaml %s: %w", filename, err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("unmarshal json %s: %w", filename, err)
		}
	}
	return nil
}
