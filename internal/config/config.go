package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "config.yaml"

// Label is one classification category: the button text and the id stored in label files.
type Label struct {
	Name string
	ID   int
}

// Config holds the labels in the order they appear in the file.
type Config struct {
	Labels []Label
}

// document mirrors the YAML layout. The label mapping is kept as a node so
// key order survives decoding.
type document struct {
	Label yaml.Node `yaml:"label"`
}

// Load reads and parses a YAML config file
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	return config, nil
}

// Parse decodes a config document of the form
//
//	label:
//	  cat: 0
//	  dog: 1
func Parse(data []byte) (*Config, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if doc.Label.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("top-level \"label\" mapping is required")
	}

	config := &Config{Labels: make([]Label, 0, len(doc.Label.Content)/2)}
	for i := 0; i+1 < len(doc.Label.Content); i += 2 {
		keyNode := doc.Label.Content[i]
		valueNode := doc.Label.Content[i+1]

		var id int
		if err := valueNode.Decode(&id); err != nil {
			return nil, fmt.Errorf("label %q (line %d): id must be an integer: %w", keyNode.Value, valueNode.Line, err)
		}

		config.Labels = append(config.Labels, Label{Name: keyNode.Value, ID: id})
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects duplicate names and ids; buttons are addressed by id.
func (c *Config) Validate() error {
	names := make(map[string]bool, len(c.Labels))
	ids := make(map[int]string, len(c.Labels))

	for _, label := range c.Labels {
		if names[label.Name] {
			return fmt.Errorf("label %q defined more than once", label.Name)
		}
		names[label.Name] = true

		if other, exists := ids[label.ID]; exists {
			return fmt.Errorf("labels %q and %q share id %d", other, label.Name, label.ID)
		}
		ids[label.ID] = label.Name
	}

	return nil
}

// NameByID returns the display name for a label id.
func (c *Config) NameByID(id int) (string, bool) {
	for _, label := range c.Labels {
		if label.ID == id {
			return label.Name, true
		}
	}
	return "", false
}
