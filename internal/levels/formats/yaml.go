package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLArena represents the YAML structure for an arena file.
type YAMLArena struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Layout []string `yaml:"layout"`
	Start  Start    `yaml:"start"`
}

// ParseYAML parses a YAML arena file.
func ParseYAML(data []byte) (Arena, error) {
	var ya YAMLArena
	if err := yaml.Unmarshal(data, &ya); err != nil {
		return Arena{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return Arena(ya), nil
}
