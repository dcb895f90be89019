package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFileName is the project-local config file the driver loads if
// present, supplying defaults the CLI flags can still override.
const configFileName = "ludock.config.yaml"

// Config is the optional per-project configuration file, loaded from
// ludock.config.yaml at the project root if it exists.
type Config struct {
	// AnalyzerBinary overrides the name/path the analysis adapter looks
	// for, in place of "luau-analyze".
	AnalyzerBinary string `yaml:"analyzerBinary,omitempty"`
	// DefaultPreset names the preset applied when the caller passes no
	// explicit --preset flag.
	DefaultPreset string `yaml:"defaultPreset,omitempty"`
}

// LoadConfig reads ludock.config.yaml from root if it exists. A missing
// file is not an error — it returns a zero-value Config so callers can
// treat "absent" and "present but empty" identically.
func LoadConfig(root string) (*Config, error) {
	path := filepath.Join(root, configFileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("pipeline: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("pipeline: parse %s: %w", path, err)
	}
	return &cfg, nil
}
