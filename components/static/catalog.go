package static

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Choice is one selectable item: a stable value identity and the text shown
// to the user.
type Choice struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// UnmarshalYAML accepts either a scalar (used for both value and label) or a
// {value, label} mapping with the label defaulting to the value.
func (c *Choice) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		text := strings.TrimSpace(node.Value)
		if text == "" {
			return fmt.Errorf("static: choice entry is blank")
		}
		c.Value = text
		c.Label = text
		return nil
	}

	type plain struct {
		Value string `yaml:"value"`
		Label string `yaml:"label"`
	}
	var p plain
	if err := node.Decode(&p); err != nil {
		return fmt.Errorf("static: decode choice: %w", err)
	}
	p.Value = strings.TrimSpace(p.Value)
	p.Label = strings.TrimSpace(p.Label)
	if p.Value == "" {
		return fmt.Errorf("static: choice entry is missing a value")
	}
	if p.Label == "" {
		p.Label = p.Value
	}
	c.Value = p.Value
	c.Label = p.Label
	return nil
}

// Catalog is the YAML document shape for declaring a component's choices.
type Catalog struct {
	Name    string   `yaml:"name"`
	Choices []Choice `yaml:"choices"`
}

// LoadCatalog decodes a YAML catalog from r.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	if r == nil {
		return nil, fmt.Errorf("static: missing reader")
	}

	var catalog Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&catalog); err != nil {
		return nil, fmt.Errorf("static: decode catalog: %w", err)
	}
	if len(catalog.Choices) == 0 {
		return nil, fmt.Errorf("static: catalog declares no choices")
	}
	return &catalog, nil
}

// LoadCatalogFile decodes a YAML catalog from a file on disk.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("static: open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()
	return LoadCatalog(f)
}
