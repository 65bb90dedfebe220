package menu

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk menu definition. JSON documents decode as well since
// they are valid YAML.
type File struct {
	Items []Item `yaml:"items"`
}

// LoadFile reads a menu definition from path.
func LoadFile(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}
	items, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// Load decodes a menu definition and validates its ids.
func Load(r io.Reader) ([]Item, error) {
	var doc File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("menu definition is empty")
		}
		return nil, fmt.Errorf("decode menu definition: %w", err)
	}
	if _, err := BuildIndex(doc.Items); err != nil {
		return nil, err
	}
	return doc.Items, nil
}
