package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalDir is the project-relative configs directory.
const LocalDir = "configs"

// LoadTetris loads the tetris configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml ->
// ./configs/tetris.yaml -> embedded default.
// Only a custom path that cannot be read or parsed is an error; broken
// files further down the search order are skipped.
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultTetrisConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range searchPaths("tetris.yaml") {
		if loaded, ok := tryFile(path); ok {
			return loaded, nil
		}
	}

	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), nil
	}
	return cfg, nil
}

// tryFile loads and validates one candidate file.
func tryFile(path string) (TetrisConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TetrisConfig{}, false
	}
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TetrisConfig{}, false
	}
	if cfg.Validate() != nil {
		return TetrisConfig{}, false
	}
	return cfg, true
}

// searchPaths lists the non-custom locations for filename in lookup order.
func searchPaths(filename string) []string {
	var paths []string
	if p := userConfigPath(filename); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join(LocalDir, filename))
}

// userConfigPath returns the path under ~/.tetris/configs, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}
