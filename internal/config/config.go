// Package config loads the site configuration.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the site configuration.
type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Source SourceConfig `yaml:"source"`
	Output OutputConfig `yaml:"output"`

	// Quiet suppresses link-integrity and indexing warnings.
	Quiet bool `yaml:"quiet,omitempty"`
}

// SiteConfig describes the generated site.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
}

// SourceConfig locates the documentation sources.
type SourceConfig struct {
	Directory string `yaml:"directory"`
}

// OutputConfig controls where and how the site is written.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean"` // Remove the output directory before building
}

// WarningsEnabled reports whether advisory warnings should be produced.
func (c *Config) WarningsEnabled() bool {
	return !c.Quiet
}

// Load reads configuration from the specified file. A .env file next to the
// working directory is loaded first and environment variables are expanded
// in the YAML content.
func Load(configPath string) (*Config, error) {
	// Missing .env files are fine.
	_ = godotenv.Load()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s", configPath)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Site.Title == "" {
		cfg.Site.Title = "Documentation"
	}
	if cfg.Source.Directory == "" {
		cfg.Source.Directory = "./docs"
	}
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = "./site"
	}
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := Config{
		Site: SiteConfig{
			Title:       "My Documentation",
			Description: "Generated with docsmith",
		},
		Source: SourceConfig{Directory: "./docs"},
		Output: OutputConfig{Directory: "./site", Clean: true},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
