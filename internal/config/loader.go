package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const demoFile = "demo.yaml"

// LoadDemo loads the demo configuration.
// Search order: customPath -> ~/.shapecast/configs/demo.yaml -> ./configs/demo.yaml -> embedded default.
// Keys missing from the chosen file keep their default values.
func LoadDemo(customPath string) (DemoConfig, error) {
	cfg := DefaultDemoConfig()

	// A custom path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(demoFile), filepath.Join("configs", demoFile)} {
		if path == "" {
			continue
		}
		if c, ok := tryLoad(path); ok {
			return c, nil
		}
	}

	// Use embedded default YAML
	embedded := DefaultDemoConfig()
	if err := yaml.Unmarshal(defaultDemoYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultDemoConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are skipped.
func tryLoad(path string) (DemoConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DemoConfig{}, false
	}
	cfg := DefaultDemoConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DemoConfig{}, false
	}
	if cfg.Validate() != nil {
		return DemoConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shapecast", "configs", filename)
}

// UserDataDir returns ~/.shapecast, or empty if home is unavailable.
func UserDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shapecast")
}
