// Package config loads and persists edda's YAML configuration: the data
// directory plus the table schemas that drive schema-based decoding from
// the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Column pairs a stored qualifier with the codec type tag used to decode
// it (for example "i32" or "?string").
type Column struct {
	Qualifier string `yaml:"qualifier"`
	Type      string `yaml:"type"`
}

// Table is a named, ordered column schema. Column order is significant: it
// is the declared field order the decoder sees.
type Table struct {
	Name    string   `yaml:"name"`
	Columns []Column `yaml:"columns"`
}

// Qualifiers returns the table's qualifiers in declared order.
func (t *Table) Qualifiers() []string {
	qs := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		qs[i] = c.Qualifier
	}
	return qs
}

// TypeSpec returns the comma-separated tag list accepted by
// codec.Registry.Schema.
func (t *Table) TypeSpec() string {
	tags := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		tags[i] = c.Type
	}
	return strings.Join(tags, ",")
}

// Config represents the edda configuration
type Config struct {
	DataDir string  `yaml:"data_dir"`
	Tables  []Table `yaml:"tables"`
}

// Table looks up a table schema by name.
func (c *Config) Table(name string) (*Table, bool) {
	for i := range c.Tables {
		if c.Tables[i].Name == name {
			return &c.Tables[i], true
		}
	}
	return nil, false
}

// DefaultConfig returns a default configuration with a sample table.
func DefaultConfig() *Config {
	return &Config{
		DataDir: "./data",
		Tables: []Table{
			{
				Name: "users",
				Columns: []Column{
					{Qualifier: "name", Type: "string"},
					{Qualifier: "age", Type: "i32"},
					{Qualifier: "email", Type: "?string"},
				},
			},
		},
	}
}

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	// Validate path to prevent directory traversal
	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves the configuration to the specified path
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// BootstrapConfig creates and saves a default configuration if none exists.
func BootstrapConfig(configPath string, dataDir string) (*Config, error) {
	config := DefaultConfig()
	if dataDir != "" {
		config.DataDir = dataDir
	}

	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./edda.yaml"
	}

	configDir := filepath.Join(homeDir, ".config", "edda")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
