package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "reef.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.reef/configs/reef.yaml -> ./configs/reef.yaml -> embedded default.
// A custom path that cannot be read, parsed or validated is an error; the
// other locations are skipped silently when they are missing or invalid.
func Load(customPath string) (ReefConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ReefConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return ReefConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultReefYAML)
	if err != nil {
		return DefaultReefConfig(), nil // Embedded document broken, use literals
	}
	return cfg, nil
}

// Parse decodes a YAML document over the built-in defaults and validates
// the result. Keys missing from the document keep their default values.
func Parse(data []byte) (ReefConfig, error) {
	cfg := DefaultReefConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ReefConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return ReefConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".reef", "configs", filename)
}
