// Package formats provides pluggable arena file format parsers.
package formats

import (
	"fmt"
	"strings"
)

// Arena is a parsed arena file, before any validation of its contents.
type Arena struct {
	ID     string
	Name   string
	Layout []string
	Start  Start
}

// Start is the player's starting position and facing, in cell units and radians.
type Start struct {
	X     float64 `yaml:"x" toml:"x"`
	Y     float64 `yaml:"y" toml:"y"`
	Angle float64 `yaml:"angle" toml:"angle"`
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}

// Supported reports whether ext (with its dot, any case) has a parser.
func Supported(ext string) bool {
	ext = strings.ToLower(ext)
	for _, s := range FormatExtensions() {
		if ext == s {
			return true
		}
	}
	return false
}

// Parse routes data to the parser for ext.
func Parse(data []byte, ext string) (Arena, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return Arena{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
