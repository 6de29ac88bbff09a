package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// SkipFunc is told about config files that exist but could not be used.
type SkipFunc func(path string, err error)

// LoadEngine loads the engine configuration.
// Search order: customPath -> ~/.raycaster/configs/engine.yaml -> ./configs/engine.yaml -> embedded default
func LoadEngine(customPath string) (EngineConfig, error) {
	return LoadEngineReporting(customPath, nil)
}

// LoadEngineReporting is LoadEngine, calling skip for every candidate file
// that was found but failed to parse or validate.
func LoadEngineReporting(customPath string, skip SkipFunc) (EngineConfig, error) {
	// A custom path must load; there is no fallback past it.
	if customPath != "" {
		cfg, err := readEngine(customPath)
		if err != nil {
			return EngineConfig{}, err
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", "engine.yaml")}
	if userCfgPath := userConfigPath("engine.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, p := range candidates {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		cfg, err := readEngine(p)
		if err == nil {
			return cfg, nil
		}
		if skip != nil {
			skip(p, err)
		}
	}

	// Use embedded default YAML
	var cfg EngineConfig
	if err := yaml.Unmarshal(defaultEngineYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultEngineConfig(), nil
	}
	return cfg, nil
}

// readEngine decodes and validates one file, picking the decoder by extension.
// Keys missing from the file keep their default values.
func readEngine(path string) (EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EngineConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	cfg := DefaultEngineConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return EngineConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return EngineConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return EngineConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".raycaster", "configs", filename)
}
