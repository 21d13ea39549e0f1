package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const driveFile = "drive.yaml"

// LoadDrive loads the driving configuration.
// Search order: customPath -> ~/.neon-drive/configs/drive.yaml -> ./configs/drive.yaml -> embedded default.
// Files are decoded over the defaults, so a partial YAML only overrides what it names.
func LoadDrive(customPath string) (DriveConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DriveConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := ParseDrive(data)
		if err != nil {
			return DriveConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(driveFile), filepath.Join("configs", driveFile)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := ParseDrive(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	var cfg DriveConfig
	if err := yaml.Unmarshal(defaultDriveYAML, &cfg); err != nil {
		return DefaultDriveConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseDrive decodes YAML over DefaultDriveConfig and validates the result.
func ParseDrive(data []byte) (DriveConfig, error) {
	cfg := DefaultDriveConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DriveConfig{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DriveConfig{}, err
	}
	return cfg, nil
}

// MarshalDrive renders cfg as YAML, used by `drive config`.
func MarshalDrive(cfg DriveConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".neon-drive", "configs", filename)
}
