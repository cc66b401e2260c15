package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPentix loads Pentix configuration.
// Search order: customPath -> ~/.arcade/configs/pentix.yaml -> ./configs/pentix.yaml -> embedded default
// Keys missing from a file keep their default values.
func LoadPentix(customPath string) (PentixConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PentixConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parsePentix(data)
		if err != nil {
			return PentixConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pentix.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parsePentix(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "pentix.yaml")); err == nil {
		if cfg, err := parsePentix(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parsePentix(defaultPentixYAML)
	if err != nil {
		return DefaultPentixConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parsePentix decodes YAML over the defaults and validates the result.
func parsePentix(data []byte) (PentixConfig, error) {
	cfg := DefaultPentixConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PentixConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PentixConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
