// Config loading for the strata CLI.
// Implements: prd010-configuration (R1 config file, R3 budgets).
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/strata/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyBackend         = "backend"
	cfgKeyDataDir         = "data_dir"
	cfgKeyManifestPath    = "manifest_path"
	cfgKeySearchIndexPath = "search_index_path"
	cfgKeyConstraints     = "constraints"
	cfgKeyBudgets         = "budgets"

	defaultBackend         = "sqlite"
	defaultManifestPath    = "manifest.md"
	defaultSearchIndexPath = "indexes/search.md"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Strata CLI configuration

# Backend selection
backend: sqlite

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Well-known artifact paths
manifest_path: manifest.md
search_index_path: indexes/search.md

# Cross-cutting constraint lines rendered into the manifest
# constraints:
#   - all timestamps are UTC

# Token budgets and lifecycle thresholds (zero means default)
# budgets:
#   manifest_ceiling: 2000
#   brief_min: 300
#   brief_max: 800
#   staleness_window_days: 180
#   consolidation_threshold: 3
#   runes_per_token: 4
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyManifestPath, defaultManifestPath)
	v.SetDefault(cfgKeySearchIndexPath, defaultSearchIndexPath)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// loadBudgets decodes the budgets section of config.yaml. Absent keys are
// zero, which the Budgets getters map to defaults.
func loadBudgets() (types.Budgets, error) {
	var b types.Budgets
	if err := cfg.UnmarshalKey(cfgKeyBudgets, &b); err != nil {
		return types.Budgets{}, fmt.Errorf("decode budgets: %w", err)
	}
	if err := b.Validate(); err != nil {
		return types.Budgets{}, err
	}
	return b, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
