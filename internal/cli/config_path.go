package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"citeprep/internal/config"
)

// resolveConfigPath normalizes a config path or finds one from the CWD. An
// empty result means no config file exists and defaults apply.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// loadConfig resolves and loads the config, then applies the input override.
func loadConfig(configPath, inputPath string) (config.Config, error) {
	resolved, err := resolveConfigPath(configPath)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.LoadOrDefault(resolved)
	if err != nil {
		return config.Config{}, err
	}
	if strings.TrimSpace(inputPath) != "" {
		cfg.Input.Path = inputPath
		if err := config.Validate(&cfg); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}
