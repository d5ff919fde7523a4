package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search path.
const FileName = "refresh.yaml"

// LoadRefresh loads the header configuration. Values missing from a file
// keep their defaults.
// Search order: customPath -> ~/.funrefresh/configs/refresh.yaml -> ./configs/refresh.yaml -> embedded default
func LoadRefresh(customPath string) (RefreshConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RefreshConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return RefreshConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultRefreshYAML)
	if err != nil {
		return DefaultRefreshConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (RefreshConfig, error) {
	cfg := DefaultRefreshConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RefreshConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RefreshConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".funrefresh", "configs", filename)
}
