// Package config provides configuration loading for po-coverage commands.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of per-user and per-repository configuration files.
const ConfigFileName = ".po-coverage.yaml"

// Config holds the complete po-coverage configuration.
type Config struct {
	Reference  string   `yaml:"reference"`
	Catalogs   string   `yaml:"catalogs"`
	Roots      []string `yaml:"roots"`
	Extensions []string `yaml:"extensions"`
	Tokens     []string `yaml:"tokens"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Reference:  "en",
		Catalogs:   "locales",
		Roots:      []string{"templates"},
		Extensions: []string{".tmpl", ".html", ".gohtml"},
		Tokens:     []string{"t"},
	}
}

// loadConfigFromFile loads configuration from a YAML file.
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// mergeConfigs merges overlay into base. Fields set in overlay win.
func mergeConfigs(base, overlay *Config) *Config {
	merged := *base
	if overlay.Reference != "" {
		merged.Reference = overlay.Reference
	}
	if overlay.Catalogs != "" {
		merged.Catalogs = overlay.Catalogs
	}
	if len(overlay.Roots) > 0 {
		merged.Roots = overlay.Roots
	}
	if len(overlay.Extensions) > 0 {
		merged.Extensions = overlay.Extensions
	}
	if len(overlay.Tokens) > 0 {
		merged.Tokens = overlay.Tokens
	}
	return &merged
}

// LoadToolConfig loads configuration along the lookup chain: built-in
// defaults, then ~/.po-coverage.yaml, then <workDir>/.po-coverage.yaml, then
// the file given with --config. Later files override earlier ones field by
// field. Missing files are skipped; unreadable or invalid files are errors.
func LoadToolConfig(workDir, explicitPath string) (*Config, error) {
	cfg := DefaultConfig()

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			homeCfg, err := loadConfigFromFile(path)
			if err != nil {
				return nil, err
			}
			cfg = mergeConfigs(cfg, homeCfg)
		}
	}

	if workDir != "" {
		path := filepath.Join(workDir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			repoCfg, err := loadConfigFromFile(path)
			if err != nil {
				return nil, err
			}
			cfg = mergeConfigs(cfg, repoCfg)
		}
	}

	if explicitPath != "" {
		explicitCfg, err := loadConfigFromFile(explicitPath)
		if err != nil {
			return nil, err
		}
		cfg = mergeConfigs(cfg, explicitCfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (v *Config) Validate() error {
	if v.Reference == "" {
		return fmt.Errorf("reference locale must not be empty")
	}
	if v.Catalogs == "" {
		return fmt.Errorf("catalogs directory must not be empty")
	}
	if len(v.Tokens) == 0 {
		return fmt.Errorf("at least one lookup token must be configured")
	}
	for _, token := range v.Tokens {
		if token == "" {
			return fmt.Errorf("lookup token must not be empty")
		}
	}
	for _, ext := range v.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension '%s' must start with a period", ext)
		}
	}
	return nil
}
